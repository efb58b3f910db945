// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// matrixNode is a rows*cols grid of expressions, stored row-major.
// Only elementwise operations (add, subtract, scale) are modeled at
// this layer; general matrix multiplication belongs to a numeric
// linear-algebra library operating on evaluated matrices, not to the
// symbolic kernel.
type matrixNode struct {
	rows, cols int
	data       []Handle
}

// NewMatrix builds a rows*cols matrix from data in row-major order. It
// fails with ErrInvalidArgument if len(data) != rows*cols.
func NewMatrix(rows, cols int, data []Handle) (Handle, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return Handle{}, ErrInvalidArgument.New("matrix data length must equal rows*cols")
	}
	cp := make([]Handle, len(data))
	copy(cp, data)
	return wrap(matrixNode{rows: rows, cols: cols, data: cp}), nil
}

func (m matrixNode) kind() Kind { return KindMatrix }
func (m matrixNode) nops() int  { return len(m.data) }
func (m matrixNode) op(i int) Handle {
	if i < 0 || i >= len(m.data) {
		panic(ErrRange.New("matrix operand index out of range"))
	}
	return m.data[i]
}

func (m matrixNode) at(r, c int) Handle { return m.data[r*m.cols+c] }

func (m matrixNode) hash() uint64 {
	parts := make([]uint64, len(m.data)+3)
	parts[0] = uint64(KindMatrix)
	parts[1] = uint64(m.rows)
	parts[2] = uint64(m.cols)
	for i, d := range m.data {
		parts[i+3] = d.hash()
	}
	return mixHash(parts...)
}

func (m matrixNode) text(precedence int) string {
	s := "["
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			s += "; "
		}
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				s += " "
			}
			s += m.at(r, c).n.text(0)
		}
	}
	return s + "]"
}

func (m matrixNode) mapElements(f func(Handle) (Handle, error)) (matrixNode, error) {
	out := make([]Handle, len(m.data))
	for i, d := range m.data {
		v, err := f(d)
		if err != nil {
			return matrixNode{}, err
		}
		out[i] = v
	}
	return matrixNode{rows: m.rows, cols: m.cols, data: out}, nil
}

func (m matrixNode) evalSelf(depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	r, err := m.mapElements(func(h Handle) (Handle, error) { return h.n.evalSelf(depth) })
	return wrap(r), err
}

func (m matrixNode) expandSelf(depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	r, err := m.mapElements(func(h Handle) (Handle, error) { return h.n.expandSelf(depth) })
	return wrap(r), err
}

func (m matrixNode) substSelf(sub *substitution, depth int) (Handle, error) {
	if to, ok := sub.lookup(wrap(m)); ok {
		return to, nil
	}
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	r, err := m.mapElements(func(h Handle) (Handle, error) { return h.n.substSelf(sub, depth) })
	return wrap(r), err
}

func (m matrixNode) diffSelf(sym *Symbol, depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	r, err := m.mapElements(func(h Handle) (Handle, error) { return h.n.diffSelf(sym, depth) })
	return wrap(r), err
}

func (m matrixNode) compareSameKind(other node) int {
	o := other.(matrixNode)
	if m.rows != o.rows {
		return m.rows - o.rows
	}
	if m.cols != o.cols {
		return m.cols - o.cols
	}
	return compareHandleSlices(m.data, o.data)
}

func (m matrixNode) has(target Handle) bool {
	if Equal(wrap(m), target) {
		return true
	}
	for _, d := range m.data {
		if d.Has(target) {
			return true
		}
	}
	return false
}

// IsMatrix reports whether h is a matrix.
func (h Handle) IsMatrix() bool {
	_, ok := h.n.(matrixNode)
	return ok
}

// Dims returns h's row and column count; both are 0 if h isn't a
// matrix.
func (h Handle) Dims() (rows, cols int) {
	if m, ok := h.n.(matrixNode); ok {
		return m.rows, m.cols
	}
	return 0, 0
}

// At returns the element at (r, c), panicking with ErrRange if out of
// bounds or if h is not a matrix.
func (h Handle) At(r, c int) Handle {
	m, ok := h.n.(matrixNode)
	if !ok || r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(ErrRange.New("matrix index out of range"))
	}
	return m.at(r, c)
}

// addMatrices adds two same-shape matrices elementwise, failing with
// ErrDomain on a shape mismatch.
func addMatrices(a, b matrixNode) (Handle, error) {
	if a.rows != b.rows || a.cols != b.cols {
		return Handle{}, ErrDomain.New("matrix addition requires matching shapes")
	}
	data := make([]Handle, len(a.data))
	for i := range data {
		data[i] = newSum([]Handle{a.data[i], b.data[i]})
	}
	return wrap(matrixNode{rows: a.rows, cols: a.cols, data: data}), nil
}

// scaleMatrix multiplies every element of a by scalar.
func scaleMatrix(a matrixNode, scalar Handle) Handle {
	data := make([]Handle, len(a.data))
	for i, d := range a.data {
		data[i] = newProduct([]Handle{scalar, d})
	}
	return wrap(matrixNode{rows: a.rows, cols: a.cols, data: data})
}

// hadamardMatrices multiplies two same-shape matrices elementwise.
func hadamardMatrices(a, b matrixNode) (Handle, error) {
	if a.rows != b.rows || a.cols != b.cols {
		return Handle{}, ErrDomain.New("matrix elementwise multiplication requires matching shapes")
	}
	data := make([]Handle, len(a.data))
	for i := range data {
		data[i] = newProduct([]Handle{a.data[i], b.data[i]})
	}
	return wrap(matrixNode{rows: a.rows, cols: a.cols, data: data}), nil
}
