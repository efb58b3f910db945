package archive

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// magic identifies an archive stream: the ASCII bytes "GARC".
var magic = [4]byte{0x47, 0x41, 0x52, 0x43}

// currentVersion is the format version this build writes.
const currentVersion = 1

// versionWindowAge bounds how many versions older than currentVersion
// this build still reads; bump it when a format revision keeps reading
// the previous one instead of breaking it outright.
const versionWindowAge = 0

func writeHeader(w io.Writer) error {
	if _, err := w.Write(magic[:]); err != nil {
		return errors.Wrap(err, "archive: write magic")
	}
	if _, err := w.Write([]byte{currentVersion}); err != nil {
		return errors.Wrap(err, "archive: write version")
	}
	return nil
}

func readHeader(r io.Reader) error {
	var got [5]byte
	if _, err := io.ReadFull(r, got[:]); err != nil {
		return errors.Wrap(err, "archive: read header")
	}
	if got[0] != magic[0] || got[1] != magic[1] || got[2] != magic[2] || got[3] != magic[3] {
		return ErrFormat.New("bad magic")
	}
	version := got[4]
	if version > currentVersion || int(version) < currentVersion-versionWindowAge {
		return ErrVersion.New("unsupported archive version")
	}
	return nil
}

func writeUvarint(w io.Writer, v uint64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	_, err := w.Write(buf[:n])
	return errors.Wrap(err, "archive: write varint")
}

func readUvarint(r io.ByteReader) (uint64, error) {
	v, err := binary.ReadUvarint(r)
	if err != nil {
		return 0, ErrFormat.New("bad varint: " + err.Error())
	}
	return v, nil
}

func writeBytes(w io.Writer, b []byte) error {
	if err := writeUvarint(w, uint64(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return errors.Wrap(err, "archive: write bytes")
}

func readBytes(r *bufio.Reader) ([]byte, error) {
	n, err := readUvarint(r)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, errors.Wrap(err, "archive: read bytes")
	}
	return buf, nil
}

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return errors.Wrap(err, "archive: write byte")
}

func readByte(r io.ByteReader) (byte, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, errors.Wrap(err, "archive: read byte")
	}
	return b, nil
}
