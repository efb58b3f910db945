// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// seqNode backs both List and Tuple: a fixed-order, uncanonicalized
// aggregate of operands. The two kinds share every operation here and
// differ only in the Kind tag and in intent (List: a homogeneous
// ordered collection meant to be mapped/filtered over; Tuple: a fixed
// heterogeneous grouping, e.g. a function's multiple return values) —
// the same fold-two-sibling-kinds-into-one-struct move expairseq makes
// for Sum and Product.
type seqNode struct {
	isTuple bool
	items   []Handle
}

// NewList builds an ordered list of items, evaluated independently (no
// flattening: a list containing a list is a list of one list).
func NewList(items []Handle) Handle {
	return wrap(seqNode{items: items})
}

// NewTuple builds a fixed-arity grouping of items.
func NewTuple(items []Handle) Handle {
	return wrap(seqNode{isTuple: true, items: items})
}

func (s seqNode) kind() Kind {
	if s.isTuple {
		return KindTuple
	}
	return KindList
}

func (s seqNode) nops() int { return len(s.items) }
func (s seqNode) op(i int) Handle {
	if i < 0 || i >= len(s.items) {
		panic(ErrRange.New("list/tuple operand index out of range"))
	}
	return s.items[i]
}

func (s seqNode) hash() uint64 {
	parts := make([]uint64, len(s.items)+1)
	parts[0] = uint64(s.kind())
	for i, it := range s.items {
		parts[i+1] = it.hash()
	}
	return mixHash(parts...)
}

func (s seqNode) text(precedence int) string {
	open, close := "[", "]"
	if s.isTuple {
		open, close = "(", ")"
	}
	str := open
	for i, it := range s.items {
		if i > 0 {
			str += ", "
		}
		str += it.n.text(0)
	}
	return str + close
}

func (s seqNode) rebuild(items []Handle) node {
	return seqNode{isTuple: s.isTuple, items: items}
}

func (s seqNode) evalSelf(depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	items := make([]Handle, len(s.items))
	for i, it := range s.items {
		ev, err := it.n.evalSelf(depth)
		if err != nil {
			return Handle{}, err
		}
		items[i] = ev
	}
	return wrap(s.rebuild(items)), nil
}

func (s seqNode) expandSelf(depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	items := make([]Handle, len(s.items))
	for i, it := range s.items {
		ex, err := it.n.expandSelf(depth)
		if err != nil {
			return Handle{}, err
		}
		items[i] = ex
	}
	return wrap(s.rebuild(items)), nil
}

func (s seqNode) substSelf(m *substitution, depth int) (Handle, error) {
	if to, ok := m.lookup(wrap(s)); ok {
		return to, nil
	}
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	items := make([]Handle, len(s.items))
	for i, it := range s.items {
		sub, err := it.n.substSelf(m, depth)
		if err != nil {
			return Handle{}, err
		}
		items[i] = sub
	}
	return wrap(s.rebuild(items)), nil
}

func (s seqNode) diffSelf(sym *Symbol, depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	items := make([]Handle, len(s.items))
	for i, it := range s.items {
		d, err := it.n.diffSelf(sym, depth)
		if err != nil {
			return Handle{}, err
		}
		items[i] = d
	}
	return wrap(s.rebuild(items)), nil
}

func (s seqNode) compareSameKind(other node) int {
	return compareHandleSlices(s.items, other.(seqNode).items)
}

func (s seqNode) has(target Handle) bool {
	if Equal(wrap(s), target) {
		return true
	}
	for _, it := range s.items {
		if it.Has(target) {
			return true
		}
	}
	return false
}

// IsList reports whether h is a list.
func (h Handle) IsList() bool {
	s, ok := h.n.(seqNode)
	return ok && !s.isTuple
}

// IsTuple reports whether h is a tuple.
func (h Handle) IsTuple() bool {
	s, ok := h.n.(seqNode)
	return ok && s.isTuple
}
