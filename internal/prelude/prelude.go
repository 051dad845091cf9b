// Package prelude assembles the built-in "s" package: the library value
// types every Quill program can reach without an import. The primitive
// types themselves are kinds, not declarations; what lives here are the
// collection-like types layered over the Memory primitive, plus the small
// generic containers the test suite and the interface exporter exercise.
package prelude

import (
	"github.com/quill-lang/quill/internal/config"
	"github.com/quill-lang/quill/internal/types"
)

// Prelude holds the built-in package and handles to the definitions the
// analyzer needs directly.
type Prelude struct {
	Package *types.Package

	// List is the list value type; list literals produce it.
	List types.Handle
	// Box is a single-slot generic container.
	Box types.Handle
}

// New assembles a fresh prelude package.
func New() *Prelude {
	pkg := types.NewPackage(config.BuiltinPackageName)
	pkg.Documentation = "The Quill standard prelude."

	p := &Prelude{Package: pkg}
	p.List = pkg.Add(listDefinition())
	p.Box = pkg.Add(boxDefinition())
	return p
}

// ListType returns the type List<element>.
func (p *Prelude) ListType(element types.Type) types.Type {
	return types.NewNamed(p.List, element)
}

// BoxType returns the type Box<element>.
func (p *Prelude) BoxType(element types.Type) types.Type {
	return types.NewNamed(p.Box, element)
}

func listDefinition() *types.TypeDefinition {
	element := types.NewGenericVariable(0)
	memory := types.Type{Kind: types.KindMemory, Generics: []types.Type{element}}
	integer := types.NewPrimitive(types.KindInteger)

	return &types.TypeDefinition{
		Kind:          types.DefValueType,
		Name:          config.ListTypeName,
		Documentation: "An ordered, growable collection.",
		Exported:      true,
		Generics:      []types.GenericParameter{{Name: "Element"}},
		Properties: []types.Property{
			{Name: "storage", Type: memory, Mutable: true, Access: types.AccessPrivate},
			{Name: "count", Type: integer, Mutable: true, Access: types.AccessPrivate},
		},
		Methods: []*types.Function{
			{
				Kind:          types.KindMethod,
				Name:          "get",
				Access:        types.AccessPublic,
				Documentation: "Returns the element at the given index.",
				Parameters:    []types.Parameter{{Name: "index", Type: integer}},
				ReturnType:    element,
			},
			{
				Kind:          types.KindMethod,
				Name:          "append",
				Access:        types.AccessPublic,
				Documentation: "Appends an element to the end of the list.",
				Parameters:    []types.Parameter{{Name: "value", Type: element}},
				Mutating:      true,
			},
			{
				Kind:          types.KindMethod,
				Name:          "size",
				Access:        types.AccessPublic,
				Documentation: "Returns the number of elements.",
				ReturnType:    integer,
			},
		},
		Initializers: []*types.Function{
			{
				Kind:   types.KindInitializer,
				Name:   "new",
				Access: types.AccessPublic,
			},
		},
	}
}

func boxDefinition() *types.TypeDefinition {
	element := types.NewGenericVariable(0)

	return &types.TypeDefinition{
		Kind:          types.DefValueType,
		Name:          config.BoxTypeName,
		Documentation: "A single-slot generic container.",
		Exported:      true,
		Generics:      []types.GenericParameter{{Name: "T"}},
		Properties: []types.Property{
			{Name: "value", Type: element, Mutable: true, Access: types.AccessPrivate},
		},
		Methods: []*types.Function{
			{
				Kind:          types.KindMethod,
				Name:          "get",
				Access:        types.AccessPublic,
				Documentation: "Returns the contained value.",
				ReturnType:    element,
			},
			{
				Kind:          types.KindMethod,
				Name:          "set",
				Access:        types.AccessPublic,
				Documentation: "Replaces the contained value.",
				Parameters:    []types.Parameter{{Name: "value", Type: element}},
				Mutating:      true,
			},
		},
		Initializers: []*types.Function{
			{
				Kind:       types.KindInitializer,
				Name:       "new",
				Access:     types.AccessPublic,
				Parameters: []types.Parameter{{Name: "value", Type: element}},
			},
		},
	}
}
