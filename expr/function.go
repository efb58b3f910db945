// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "gocas.dev/gocas/numeric"

// FunctionHooks is what a named function registers with this package
// to participate in evaluation and differentiation: the registry
// package (gocas.dev/gocas/registry) is the only expected caller of
// RegisterFunction, kept separate from expr to avoid a dependency
// cycle (registry imports expr, not the other way around).
type FunctionHooks struct {
	// Eval computes f(args) when every argument is a numeric leaf.
	Eval func(args []numeric.Number) (numeric.Number, error)

	// Diff returns d/d(args[i]) f(args) symbolically, e.g. for sin at
	// index 0 it returns cos(args[0]). The chain rule multiplication by
	// d(args[i])/dx is applied by functionNode.diffSelf, not by this
	// hook.
	Diff func(args []Handle, i int) (Handle, error)
}

var functionHooks = map[string]FunctionHooks{}

// RegisterFunction installs the evaluation and differentiation rules
// for a named function. Calling it twice for the same name replaces
// the previous registration.
func RegisterFunction(name string, hooks FunctionHooks) {
	functionHooks[name] = hooks
}

type functionNode struct {
	name string
	args []Handle
}

// NewFunction builds a call to the named function over args. The call
// is left unevaluated if no hooks are registered for name, or if the
// arguments aren't all numeric; eval.go's Eval calls back into this
// constructor once children are in canonical form.
func NewFunction(name string, args []Handle) Handle {
	if hooks, ok := functionHooks[name]; ok && hooks.Eval != nil {
		nums := make([]numeric.Number, len(args))
		allNumeric := true
		for i, a := range args {
			v, ok := a.Numeric()
			if !ok {
				allNumeric = false
				break
			}
			nums[i] = v
		}
		if allNumeric {
			if v, err := hooks.Eval(nums); err == nil {
				return NewNumeric(v)
			}
		}
	}
	return wrap(functionNode{name: name, args: args})
}

func (f functionNode) kind() Kind { return KindFunction }
func (f functionNode) nops() int  { return len(f.args) }
func (f functionNode) op(i int) Handle {
	if i < 0 || i >= len(f.args) {
		panic(ErrRange.New("function operand index out of range"))
	}
	return f.args[i]
}

func (f functionNode) hash() uint64 {
	parts := make([]uint64, len(f.args)+2)
	parts[0] = uint64(KindFunction)
	parts[1] = hashString(f.name)
	for i, a := range f.args {
		parts[i+2] = a.hash()
	}
	return mixHash(parts...)
}

func (f functionNode) text(precedence int) string {
	s := f.name + "("
	for i, a := range f.args {
		if i > 0 {
			s += ", "
		}
		s += a.n.text(0)
	}
	return s + ")"
}

func (f functionNode) evalSelf(depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	args := make([]Handle, len(f.args))
	for i, a := range f.args {
		ev, err := a.n.evalSelf(depth)
		if err != nil {
			return Handle{}, err
		}
		args[i] = ev
	}
	return NewFunction(f.name, args), nil
}

func (f functionNode) expandSelf(depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	args := make([]Handle, len(f.args))
	for i, a := range f.args {
		ex, err := a.n.expandSelf(depth)
		if err != nil {
			return Handle{}, err
		}
		args[i] = ex
	}
	return NewFunction(f.name, args), nil
}

func (f functionNode) substSelf(m *substitution, depth int) (Handle, error) {
	if to, ok := m.lookup(wrap(f)); ok {
		return to, nil
	}
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	args := make([]Handle, len(f.args))
	for i, a := range f.args {
		s, err := a.n.substSelf(m, depth)
		if err != nil {
			return Handle{}, err
		}
		args[i] = s
	}
	return NewFunction(f.name, args), nil
}

func (f functionNode) diffSelf(sym *Symbol, depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	hooks, ok := functionHooks[f.name]
	if !ok || hooks.Diff == nil {
		return NewFail("Derivative", []Handle{wrap(f), Sym(sym.name)}), nil
	}
	var terms []Handle
	for i, a := range f.args {
		dai, err := a.n.diffSelf(sym, depth)
		if err != nil {
			return Handle{}, err
		}
		if dai.IsNumeric() {
			if v, _ := dai.Numeric(); v.IsZero() {
				continue
			}
		}
		dFi, err := hooks.Diff(f.args, i)
		if err != nil {
			return Handle{}, err
		}
		terms = append(terms, newProduct([]Handle{dFi, dai}))
	}
	return newSum(terms), nil
}

func (f functionNode) compareSameKind(other node) int {
	o := other.(functionNode)
	if f.name != o.name {
		if f.name < o.name {
			return -1
		}
		return 1
	}
	return compareHandleSlices(f.args, o.args)
}

func (f functionNode) has(target Handle) bool {
	if Equal(wrap(f), target) {
		return true
	}
	for _, a := range f.args {
		if a.Has(target) {
			return true
		}
	}
	return false
}

// IsFunction reports whether h is a named function call.
func (h Handle) IsFunction() bool {
	_, ok := h.n.(functionNode)
	return ok
}

// FunctionName returns h's function name and true if h is a function
// call.
func (h Handle) FunctionName() (string, bool) {
	f, ok := h.n.(functionNode)
	if !ok {
		return "", false
	}
	return f.name, true
}
