package types

// Package owns the type definitions of one compilation unit. Definitions
// live in an arena and are referenced everywhere else by Handle, so
// superclass links, conformance lists and TypeContexts never carry owning
// pointers.
type Package struct {
	Name          string
	Version       string
	Documentation string

	defs  []*TypeDefinition
	index map[string]int
}

// NewPackage returns an empty package with the given name.
func NewPackage(name string) *Package {
	return &Package{Name: name, index: make(map[string]int)}
}

// Handle is a stable, lightweight reference to a definition in a package's
// arena. Handles are comparable and remain valid for the lifetime of the
// package.
type Handle struct {
	Pkg   *Package
	Index int
}

// Definition returns the referenced definition.
func (h Handle) Definition() *TypeDefinition {
	return h.Pkg.defs[h.Index]
}

// Valid reports whether the handle refers to a definition.
func (h Handle) Valid() bool { return h.Pkg != nil }

// Add places a definition in the arena and returns its handle. Adding a
// second definition with the same name replaces the lookup entry but keeps
// existing handles valid.
func (p *Package) Add(def *TypeDefinition) Handle {
	p.defs = append(p.defs, def)
	p.index[def.Name] = len(p.defs) - 1
	return Handle{Pkg: p, Index: len(p.defs) - 1}
}

// Lookup finds a definition by name.
func (p *Package) Lookup(name string) (Handle, bool) {
	i, ok := p.index[name]
	if !ok {
		return Handle{}, false
	}
	return Handle{Pkg: p, Index: i}, true
}

// ExportedTypes returns the handles of all exported definitions in
// declaration order.
func (p *Package) ExportedTypes() []Handle {
	var out []Handle
	for i, def := range p.defs {
		if def.Exported {
			out = append(out, Handle{Pkg: p, Index: i})
		}
	}
	return out
}
