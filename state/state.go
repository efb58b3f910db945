// Package state holds the variable environment an infix session reads
// and assigns through, grounded on the session type ivy's state
// package wraps around value.Context, reworked here to carry a plain
// name-to-expression map instead of an interpreter context.
package state

import (
	"gocas.dev/gocas/config"
	"gocas.dev/gocas/expr"
)

// State is the mutable environment a shell session evaluates against:
// the configuration that governs precision and formatting, and the
// variables assigned so far.
type State struct {
	conf *config.Config
	vars map[string]expr.Handle
}

// New returns a State bound to conf with no variables assigned.
func New(conf *config.Config) *State {
	return &State{conf: conf, vars: make(map[string]expr.Handle)}
}

// Config returns the configuration this state evaluates under.
func (s *State) Config() *config.Config { return s.conf }

// Lookup returns the value bound to name, if any.
func (s *State) Lookup(name string) (expr.Handle, bool) {
	h, ok := s.vars[name]
	return h, ok
}

// Assign binds name to v, replacing any previous binding.
func (s *State) Assign(name string, v expr.Handle) {
	s.vars[name] = v
}

// Names returns every currently assigned variable name, unordered.
func (s *State) Names() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	return names
}
