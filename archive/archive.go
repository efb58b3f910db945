package archive

import (
	"bufio"
	"io"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"gocas.dev/gocas/expr"
	"gocas.dev/gocas/numeric"
)

// propType tags the four shapes a node's property value can take, the
// same four the save format's property bag carries.
type propType byte

const (
	ptBool propType = iota
	ptUnsigned
	ptString
	ptNode
)

type property struct {
	name uint64
	typ  propType
	b    bool
	u    uint64
	s    string
}

type nodeRecord struct {
	kind  byte
	props []property
}

// encoder builds the atom and node tables for one archive write. Nodes
// are de-duplicated by printed form plus a structural equality check
// (expr's node kinds are Go value types, not pointers, so there's no
// pointer identity to key on the way a heap-allocated AST would): the
// first occurrence of an equal subexpression wins, and every later
// reference reuses its node id — which is also what makes writing the
// same expression twice produce byte-identical archives.
type encoder struct {
	atoms   *atomWriter
	handles []expr.Handle
	nodes   []nodeRecord
	buckets map[string][]uint64
}

func newEncoder() *encoder {
	return &encoder{atoms: newAtomWriter(), buckets: make(map[string][]uint64)}
}

func (e *encoder) prop(name string, p property) property {
	p.name = e.atoms.intern(name)
	return p
}

func (e *encoder) strProp(name, s string) property   { return e.prop(name, property{typ: ptString, s: s}) }
func (e *encoder) uintProp(name string, v uint64) property {
	return e.prop(name, property{typ: ptUnsigned, u: v})
}
func (e *encoder) nodeProp(name string, id uint64) property {
	return e.prop(name, property{typ: ptNode, u: id})
}

// encode returns h's node id, reusing an existing one if an equal
// subexpression was already archived.
func (e *encoder) encode(h expr.Handle) (uint64, error) {
	key := h.String()
	for _, id := range e.buckets[key] {
		if expr.Equal(h, e.handles[id]) {
			return id, nil
		}
	}
	rec, err := e.encodeNode(h)
	if err != nil {
		return 0, err
	}
	id := uint64(len(e.nodes))
	e.nodes = append(e.nodes, rec)
	e.handles = append(e.handles, h)
	e.buckets[key] = append(e.buckets[key], id)
	return id, nil
}

func (e *encoder) encodeChildren(h expr.Handle, name string) ([]property, error) {
	props := make([]property, h.Nops())
	for i := range props {
		id, err := e.encode(h.Op(i))
		if err != nil {
			return nil, err
		}
		props[i] = e.nodeProp(name, id)
	}
	return props, nil
}

func (e *encoder) encodeNode(h expr.Handle) (nodeRecord, error) {
	switch {
	case h.IsSymbol():
		sym, _ := h.AsSymbol()
		return nodeRecord{kind: byte(expr.KindSymbol), props: []property{e.strProp("name", sym.Name())}}, nil

	case h.IsNumeric():
		v, _ := h.Numeric()
		b, err := encodeNumber(v)
		if err != nil {
			return nodeRecord{}, err
		}
		return nodeRecord{kind: byte(expr.KindNumeric), props: []property{e.strProp("value", string(b))}}, nil

	case h.IsConstant():
		c, _ := h.AsConstant()
		return nodeRecord{kind: byte(expr.KindConstant), props: []property{e.strProp("name", c.Name())}}, nil

	case h.IsPower():
		baseID, err := e.encode(h.Base())
		if err != nil {
			return nodeRecord{}, err
		}
		expID, err := e.encode(h.Exponent())
		if err != nil {
			return nodeRecord{}, err
		}
		return nodeRecord{kind: byte(expr.KindPower), props: []property{e.nodeProp("base", baseID), e.nodeProp("exp", expID)}}, nil

	case h.IsSum():
		props, err := e.encodeChildren(h, "term")
		if err != nil {
			return nodeRecord{}, err
		}
		return nodeRecord{kind: byte(expr.KindSum), props: props}, nil

	case h.IsProduct():
		props, err := e.encodeChildren(h, "factor")
		if err != nil {
			return nodeRecord{}, err
		}
		return nodeRecord{kind: byte(expr.KindProduct), props: props}, nil

	case h.IsFunction():
		name, _ := h.FunctionName()
		args, err := e.encodeChildren(h, "arg")
		if err != nil {
			return nodeRecord{}, err
		}
		props := append([]property{e.strProp("name", name)}, args...)
		return nodeRecord{kind: byte(expr.KindFunction), props: props}, nil

	case h.IsList():
		props, err := e.encodeChildren(h, "item")
		if err != nil {
			return nodeRecord{}, err
		}
		return nodeRecord{kind: byte(expr.KindList), props: props}, nil

	case h.IsTuple():
		props, err := e.encodeChildren(h, "item")
		if err != nil {
			return nodeRecord{}, err
		}
		return nodeRecord{kind: byte(expr.KindTuple), props: props}, nil

	case h.IsMatrix():
		rows, cols := h.Dims()
		cells, err := e.encodeChildren(h, "cell")
		if err != nil {
			return nodeRecord{}, err
		}
		props := append([]property{e.uintProp("rows", uint64(rows)), e.uintProp("cols", uint64(cols))}, cells...)
		return nodeRecord{kind: byte(expr.KindMatrix), props: props}, nil

	case h.IsRelational():
		op, lhs, rhs, _ := h.AsRelational()
		lhsID, err := e.encode(lhs)
		if err != nil {
			return nodeRecord{}, err
		}
		rhsID, err := e.encode(rhs)
		if err != nil {
			return nodeRecord{}, err
		}
		props := []property{e.uintProp("op", uint64(op)), e.nodeProp("lhs", lhsID), e.nodeProp("rhs", rhsID)}
		return nodeRecord{kind: byte(expr.KindRelational), props: props}, nil

	case h.IsFail():
		op, args, _ := h.AsFail()
		argProps := make([]property, len(args))
		for i, a := range args {
			id, err := e.encode(a)
			if err != nil {
				return nodeRecord{}, err
			}
			argProps[i] = e.nodeProp("arg", id)
		}
		props := append([]property{e.strProp("op", op)}, argProps...)
		return nodeRecord{kind: byte(expr.KindFail), props: props}, nil

	default:
		return nodeRecord{}, ErrUnsupported.New("cannot archive a " + h.Kind().String() + " node")
	}
}

func (e *encoder) writeTo(w *bufio.Writer, rootID uint64) error {
	if err := writeHeader(w); err != nil {
		return err
	}
	if err := e.atoms.writeTo(w); err != nil {
		return err
	}
	if err := writeUvarint(w, uint64(len(e.nodes))); err != nil {
		return err
	}
	for _, rec := range e.nodes {
		if err := writeByte(w, rec.kind); err != nil {
			return err
		}
		if err := writeUvarint(w, uint64(len(rec.props))); err != nil {
			return err
		}
		for _, p := range rec.props {
			if err := writeUvarint(w, p.name); err != nil {
				return err
			}
			if err := writeByte(w, byte(p.typ)); err != nil {
				return err
			}
			switch p.typ {
			case ptBool:
				v := byte(0)
				if p.b {
					v = 1
				}
				if err := writeByte(w, v); err != nil {
					return err
				}
			case ptUnsigned, ptNode:
				if err := writeUvarint(w, p.u); err != nil {
					return err
				}
			case ptString:
				if err := writeBytes(w, []byte(p.s)); err != nil {
					return err
				}
			}
		}
	}
	return writeUvarint(w, rootID)
}

// Archive writes h to w in the kernel's binary save format.
func Archive(w io.Writer, h expr.Handle) error {
	e := newEncoder()
	rootID, err := e.encode(h)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if err := e.writeTo(bw, rootID); err != nil {
		return err
	}
	return pkgerrors.Wrap(bw.Flush(), "archive: flush")
}

// decodedProp is a property as read off the wire, before it is
// resolved against the atom table.
type decodedProp struct {
	name uint64
	typ  propType
	u    uint64
	s    string
}

type decodedNode struct {
	kind  byte
	props []decodedProp
}

type decoder struct {
	atoms   *atomReader
	records []decodedNode
	built   []expr.Handle
	done    []bool
}

func (d *decoder) propNamed(rec decodedNode, name string) ([]decodedProp, error) {
	var out []decodedProp
	for _, p := range rec.props {
		n, err := d.atoms.get(p.name)
		if err != nil {
			return nil, err
		}
		if n == name {
			out = append(out, p)
		}
	}
	return out, nil
}

func (d *decoder) stringProp(rec decodedNode, name string) (string, error) {
	ps, err := d.propNamed(rec, name)
	if err != nil {
		return "", err
	}
	if len(ps) == 0 {
		return "", ErrCorrupt.New("missing property " + name)
	}
	return ps[0].s, nil
}

func (d *decoder) uintProp(rec decodedNode, name string) (uint64, error) {
	ps, err := d.propNamed(rec, name)
	if err != nil {
		return 0, err
	}
	if len(ps) == 0 {
		return 0, ErrCorrupt.New("missing property " + name)
	}
	return ps[0].u, nil
}

func (d *decoder) children(rec decodedNode, name string) ([]expr.Handle, error) {
	ps, err := d.propNamed(rec, name)
	if err != nil {
		return nil, err
	}
	out := make([]expr.Handle, len(ps))
	for i, p := range ps {
		h, err := d.build(p.u)
		if err != nil {
			return nil, err
		}
		out[i] = h
	}
	return out, nil
}

func (d *decoder) build(id uint64) (expr.Handle, error) {
	if id >= uint64(len(d.records)) {
		return expr.Handle{}, ErrCorrupt.New("node id out of range")
	}
	if d.done[id] {
		return d.built[id], nil
	}
	rec := d.records[id]
	h, err := d.buildNode(rec)
	if err != nil {
		return expr.Handle{}, err
	}
	d.built[id] = h
	d.done[id] = true
	return h, nil
}

func (d *decoder) buildNode(rec decodedNode) (expr.Handle, error) {
	switch expr.Kind(rec.kind) {
	case expr.KindSymbol:
		name, err := d.stringProp(rec, "name")
		if err != nil {
			return expr.Handle{}, err
		}
		return expr.Sym(name), nil

	case expr.KindNumeric:
		s, err := d.stringProp(rec, "value")
		if err != nil {
			return expr.Handle{}, err
		}
		v, err := decodeNumber([]byte(s))
		if err != nil {
			return expr.Handle{}, err
		}
		return expr.NewNumeric(v), nil

	case expr.KindConstant:
		name, err := d.stringProp(rec, "name")
		if err != nil {
			return expr.Handle{}, err
		}
		// NewConstantValue's get-or-create semantics return the real
		// constant if name was already registered by the running
		// process (e.g. pi, e); otherwise it fabricates an exact-zero
		// placeholder, since the archive has no way to recover an
		// evaluator function from bytes.
		logrus.WithField("name", name).Debug("unarchiving named constant")
		return expr.NewConstantValue(name, numeric.Zero), nil

	case expr.KindPower:
		baseID, err := d.uintProp(rec, "base")
		if err != nil {
			return expr.Handle{}, err
		}
		expID, err := d.uintProp(rec, "exp")
		if err != nil {
			return expr.Handle{}, err
		}
		base, err := d.build(baseID)
		if err != nil {
			return expr.Handle{}, err
		}
		exp, err := d.build(expID)
		if err != nil {
			return expr.Handle{}, err
		}
		return expr.Pow(base, exp), nil

	case expr.KindSum:
		terms, err := d.children(rec, "term")
		if err != nil {
			return expr.Handle{}, err
		}
		return foldHandles(terms, expr.NewNumeric(numeric.Zero), expr.Add)

	case expr.KindProduct:
		factors, err := d.children(rec, "factor")
		if err != nil {
			return expr.Handle{}, err
		}
		return foldHandles(factors, expr.NewNumeric(numeric.One), expr.Mul)

	case expr.KindFunction:
		name, err := d.stringProp(rec, "name")
		if err != nil {
			return expr.Handle{}, err
		}
		args, err := d.children(rec, "arg")
		if err != nil {
			return expr.Handle{}, err
		}
		return expr.NewFunction(name, args), nil

	case expr.KindList:
		items, err := d.children(rec, "item")
		if err != nil {
			return expr.Handle{}, err
		}
		return expr.NewList(items), nil

	case expr.KindTuple:
		items, err := d.children(rec, "item")
		if err != nil {
			return expr.Handle{}, err
		}
		return expr.NewTuple(items), nil

	case expr.KindMatrix:
		rows, err := d.uintProp(rec, "rows")
		if err != nil {
			return expr.Handle{}, err
		}
		cols, err := d.uintProp(rec, "cols")
		if err != nil {
			return expr.Handle{}, err
		}
		cells, err := d.children(rec, "cell")
		if err != nil {
			return expr.Handle{}, err
		}
		return expr.NewMatrix(int(rows), int(cols), cells)

	case expr.KindRelational:
		op, err := d.uintProp(rec, "op")
		if err != nil {
			return expr.Handle{}, err
		}
		lhsID, err := d.uintProp(rec, "lhs")
		if err != nil {
			return expr.Handle{}, err
		}
		rhsID, err := d.uintProp(rec, "rhs")
		if err != nil {
			return expr.Handle{}, err
		}
		lhs, err := d.build(lhsID)
		if err != nil {
			return expr.Handle{}, err
		}
		rhs, err := d.build(rhsID)
		if err != nil {
			return expr.Handle{}, err
		}
		return expr.NewRelational(lhs, rhs, expr.RelOp(op)), nil

	case expr.KindFail:
		op, err := d.stringProp(rec, "op")
		if err != nil {
			return expr.Handle{}, err
		}
		args, err := d.children(rec, "arg")
		if err != nil {
			return expr.Handle{}, err
		}
		return expr.NewFail(op, args), nil

	default:
		return expr.Handle{}, ErrUnsupported.New("cannot unarchive node kind byte")
	}
}

func foldHandles(items []expr.Handle, identity expr.Handle, op func(a, b expr.Handle) (expr.Handle, error)) (expr.Handle, error) {
	acc := identity
	for _, it := range items {
		var err error
		acc, err = op(acc, it)
		if err != nil {
			return expr.Handle{}, err
		}
	}
	return acc, nil
}

func readNodeTable(r *bufio.Reader) ([]decodedNode, error) {
	n, err := readUvarint(r)
	if err != nil {
		return nil, err
	}
	records := make([]decodedNode, n)
	for i := range records {
		kind, err := readByte(r)
		if err != nil {
			return nil, err
		}
		propCount, err := readUvarint(r)
		if err != nil {
			return nil, err
		}
		props := make([]decodedProp, propCount)
		for j := range props {
			name, err := readUvarint(r)
			if err != nil {
				return nil, err
			}
			typByte, err := readByte(r)
			if err != nil {
				return nil, err
			}
			p := decodedProp{name: name, typ: propType(typByte)}
			switch p.typ {
			case ptBool:
				b, err := readByte(r)
				if err != nil {
					return nil, err
				}
				p.u = uint64(b)
			case ptUnsigned, ptNode:
				v, err := readUvarint(r)
				if err != nil {
					return nil, err
				}
				p.u = v
			case ptString:
				b, err := readBytes(r)
				if err != nil {
					return nil, err
				}
				p.s = string(b)
			default:
				return nil, ErrCorrupt.New("unrecognized property type")
			}
			props[j] = p
		}
		records[i] = decodedNode{kind: kind, props: props}
	}
	return records, nil
}

// Unarchive reads one expression previously written by Archive.
func Unarchive(r io.Reader) (expr.Handle, error) {
	br := bufio.NewReader(r)
	if err := readHeader(br); err != nil {
		return expr.Handle{}, err
	}
	atoms, err := readAtomTable(br)
	if err != nil {
		return expr.Handle{}, err
	}
	records, err := readNodeTable(br)
	if err != nil {
		return expr.Handle{}, err
	}
	rootID, err := readUvarint(br)
	if err != nil {
		return expr.Handle{}, err
	}
	d := &decoder{
		atoms:   atoms,
		records: records,
		built:   make([]expr.Handle, len(records)),
		done:    make([]bool, len(records)),
	}
	return d.build(rootID)
}
