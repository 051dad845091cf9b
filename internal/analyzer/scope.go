package analyzer

import "github.com/quill-lang/quill/internal/types"

// Variable is one local binding: a variable or parameter, with the
// mutability it was declared with.
type Variable struct {
	Name    string
	Type    types.Type
	Mutable bool
}

// Scope is a chain of lexical scopes for local bindings. The analyzer only
// reads it; the declaration pass (or a test fixture) populates it.
type Scope struct {
	vars  map[string]*Variable
	outer *Scope
}

// NewScope returns an empty top-level scope.
func NewScope() *Scope {
	return &Scope{vars: make(map[string]*Variable)}
}

// Child opens a nested scope.
func (s *Scope) Child() *Scope {
	return &Scope{vars: make(map[string]*Variable), outer: s}
}

// Declare binds a name in this scope, shadowing any outer binding.
func (s *Scope) Declare(name string, t types.Type, mutable bool) *Variable {
	v := &Variable{Name: name, Type: t, Mutable: mutable}
	s.vars[name] = v
	return v
}

// Lookup finds the nearest binding for name.
func (s *Scope) Lookup(name string) (*Variable, bool) {
	for scope := s; scope != nil; scope = scope.outer {
		if v, ok := scope.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}
