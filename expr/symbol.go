// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"sync"
	"sync/atomic"

	"gocas.dev/gocas/numeric"
)

// serialCounter hands out the process-unique serial every Symbol
// carries, so two symbols with the same printed name but different
// provenance (one interned by Sym, one created by NewSymbol) never
// compare equal.
var serialCounter uint64

func nextSerial() uint64 {
	return atomic.AddUint64(&serialCounter, 1)
}

// Symbol is an indeterminate: a named leaf that carries no value of
// its own, ordered and hashed by its serial rather than its name so
// that shadowing (two symbols printed "x") can never be confused for
// identity.
type Symbol struct {
	name   string
	serial uint64
}

func (s *Symbol) kind() Kind   { return KindSymbol }
func (s *Symbol) nops() int    { return 0 }
func (s *Symbol) op(i int) Handle {
	panic(ErrRange.New("symbol has no operands"))
}
func (s *Symbol) hash() uint64 {
	return mixHash(uint64(KindSymbol), s.serial)
}
func (s *Symbol) text(precedence int) string { return s.name }

func (s *Symbol) evalSelf(depth int) (Handle, error)   { return wrap(s), nil }
func (s *Symbol) expandSelf(depth int) (Handle, error) { return wrap(s), nil }

func (s *Symbol) substSelf(m *substitution, depth int) (Handle, error) {
	if to, ok := m.lookup(wrap(s)); ok {
		return to, nil
	}
	return wrap(s), nil
}

func (s *Symbol) diffSelf(sym *Symbol, depth int) (Handle, error) {
	if s == sym {
		return NewNumeric(numeric.One), nil
	}
	return NewNumeric(numeric.Zero), nil
}

func (s *Symbol) compareSameKind(other node) int {
	o := other.(*Symbol)
	switch {
	case s.serial < o.serial:
		return -1
	case s.serial > o.serial:
		return 1
	default:
		return 0
	}
}

func (s *Symbol) has(target Handle) bool {
	return Equal(wrap(s), target)
}

// Name returns the symbol's printed name.
func (s *Symbol) Name() string { return s.name }

// NewSymbol creates a fresh, uninterned symbol: distinct from any
// other symbol ever created, even one with the same name.
func NewSymbol(name string) Handle {
	return wrap(&Symbol{name: name, serial: nextSerial()})
}

var (
	internMu sync.Mutex
	interned = map[string]*Symbol{}
)

// Sym returns the interned symbol for name, creating it on first use.
// Every call with the same name returns a Handle wrapping the same
// *Symbol, so "x + x" built from two separate Sym("x") calls combines
// into "2*x" the way the canonicalization pipeline expects. Use
// NewSymbol instead when a fresh, never-colliding name is wanted.
func Sym(name string) Handle {
	internMu.Lock()
	defer internMu.Unlock()
	s, ok := interned[name]
	if !ok {
		s = &Symbol{name: name, serial: nextSerial()}
		interned[name] = s
	}
	return wrap(s)
}

// IsSymbol reports whether h is a symbol leaf.
func (h Handle) IsSymbol() bool {
	_, ok := h.n.(*Symbol)
	return ok
}

// AsSymbol returns h's underlying *Symbol and true if h is a symbol.
func (h Handle) AsSymbol() (*Symbol, bool) {
	s, ok := h.n.(*Symbol)
	return s, ok
}
