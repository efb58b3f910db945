package archive

import (
	"bufio"
	"bytes"
	"math/big"

	"github.com/pkg/errors"

	"gocas.dev/gocas/numeric"
)

// Numeric leaves are archived as an opaque byte string: a one-byte kind
// tag followed by the stdlib's own gob encoding of the underlying
// math/big value, which already round-trips a big.Int/big.Rat/
// big.Float exactly, precision included — reusing encoding/gob here
// instead of hand-rolling a decimal or binary digit format.
const (
	tagInteger byte = iota
	tagRational
	tagComplex
	tagFloat
)

func encodeNumber(n numeric.Number) ([]byte, error) {
	var buf bytes.Buffer
	switch v := n.(type) {
	case numeric.Integer:
		buf.WriteByte(tagInteger)
		b, err := v.Int.GobEncode()
		if err != nil {
			return nil, errors.Wrap(err, "archive: encode integer")
		}
		buf.Write(b)
	case numeric.Rational:
		buf.WriteByte(tagRational)
		b, err := v.Rat.GobEncode()
		if err != nil {
			return nil, errors.Wrap(err, "archive: encode rational")
		}
		buf.Write(b)
	case numeric.Complex:
		buf.WriteByte(tagComplex)
		reBytes, err := v.Re().Rat.GobEncode()
		if err != nil {
			return nil, errors.Wrap(err, "archive: encode complex real part")
		}
		imBytes, err := v.Im().Rat.GobEncode()
		if err != nil {
			return nil, errors.Wrap(err, "archive: encode complex imaginary part")
		}
		if err := writeBytes(&buf, reBytes); err != nil {
			return nil, err
		}
		if err := writeBytes(&buf, imBytes); err != nil {
			return nil, err
		}
	case numeric.Float:
		buf.WriteByte(tagFloat)
		b, err := v.Float.GobEncode()
		if err != nil {
			return nil, errors.Wrap(err, "archive: encode float")
		}
		buf.Write(b)
	default:
		return nil, ErrUnsupported.New("unrecognized numeric value")
	}
	return buf.Bytes(), nil
}

func decodeNumber(data []byte) (numeric.Number, error) {
	if len(data) == 0 {
		return nil, ErrCorrupt.New("empty numeric value")
	}
	tag, rest := data[0], data[1:]
	switch tag {
	case tagInteger:
		z := new(big.Int)
		if err := z.GobDecode(rest); err != nil {
			return nil, errors.Wrap(err, "archive: decode integer")
		}
		return numeric.NewInteger(z), nil
	case tagRational:
		z := new(big.Rat)
		if err := z.GobDecode(rest); err != nil {
			return nil, errors.Wrap(err, "archive: decode rational")
		}
		return numeric.NewRational(z), nil
	case tagComplex:
		r := bufio.NewReader(bytes.NewReader(rest))
		reBytes, err := readBytes(r)
		if err != nil {
			return nil, err
		}
		imBytes, err := readBytes(r)
		if err != nil {
			return nil, err
		}
		re, im := new(big.Rat), new(big.Rat)
		if err := re.GobDecode(reBytes); err != nil {
			return nil, errors.Wrap(err, "archive: decode complex real part")
		}
		if err := im.GobDecode(imBytes); err != nil {
			return nil, errors.Wrap(err, "archive: decode complex imaginary part")
		}
		return numeric.NewComplex(numeric.NewRational(re), numeric.NewRational(im)), nil
	case tagFloat:
		z := new(big.Float)
		if err := z.GobDecode(rest); err != nil {
			return nil, errors.Wrap(err, "archive: decode float")
		}
		return numeric.NewFloat(z), nil
	default:
		return nil, ErrCorrupt.New("unrecognized numeric tag")
	}
}
