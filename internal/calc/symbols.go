package calc

import (
	"maps"
	"slices"
)

// Symbols maps variable names to their values. Names are case sensitive.
type Symbols struct {
	vars map[string]int64
}

// NewSymbols creates an empty symbol table.
func NewSymbols() *Symbols {
	return &Symbols{vars: make(map[string]int64)}
}

// Get returns the value bound to name.
func (s *Symbols) Get(name string) (int64, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Set binds name to value, replacing any previous binding.
func (s *Symbols) Set(name string, value int64) {
	s.vars[name] = value
}

// Len returns the number of bound names.
func (s *Symbols) Len() int {
	return len(s.vars)
}

// Names returns the bound names in sorted order.
func (s *Symbols) Names() []string {
	var names []string
	for name := range s.vars {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Snapshot returns a copy of the table.
func (s *Symbols) Snapshot() map[string]int64 {
	return maps.Clone(s.vars)
}
