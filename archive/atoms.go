package archive

import "bufio"

// atomWriter interns the property names written to an archive. Every
// distinct property name is written once; repeated occurrences (e.g.
// the "term" property name on every term of a sum) cost one small
// varint instead of the string bytes again. String property values
// (symbol, function and constant names, encoded numbers) are not
// interned: each is written inline as a length-prefixed byte string.
type atomWriter struct {
	ids     map[string]uint64
	ordered []string
}

func newAtomWriter() *atomWriter {
	return &atomWriter{ids: make(map[string]uint64)}
}

// intern returns s's atom id, assigning it the next id on first sight.
func (a *atomWriter) intern(s string) uint64 {
	if id, ok := a.ids[s]; ok {
		return id
	}
	id := uint64(len(a.ordered))
	a.ids[s] = id
	a.ordered = append(a.ordered, s)
	return id
}

func (a *atomWriter) writeTo(w *bufio.Writer) error {
	if err := writeUvarint(w, uint64(len(a.ordered))); err != nil {
		return err
	}
	for _, s := range a.ordered {
		if err := writeBytes(w, []byte(s)); err != nil {
			return err
		}
	}
	return nil
}

// atomReader is the read-side atom table: a plain slice indexed by id.
type atomReader struct {
	atoms []string
}

func readAtomTable(r *bufio.Reader) (*atomReader, error) {
	n, err := readUvarint(r)
	if err != nil {
		return nil, err
	}
	atoms := make([]string, n)
	for i := range atoms {
		b, err := readBytes(r)
		if err != nil {
			return nil, err
		}
		atoms[i] = string(b)
	}
	return &atomReader{atoms: atoms}, nil
}

func (a *atomReader) get(id uint64) (string, error) {
	if id >= uint64(len(a.atoms)) {
		return "", ErrCorrupt.New("atom id out of range")
	}
	return a.atoms[id], nil
}
