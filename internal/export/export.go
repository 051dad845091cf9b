// Package export emits the package interface document: a structured JSON
// description of every exported declaration, consumed by downstream tooling
// and package consumers. The exporter performs no inference — it requires
// that every type it touches is already fully resolved — and writes to an
// explicit sink, so multiple exports can run independently and tests can
// capture output in memory.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/quill-lang/quill/internal/diagnostics"
	"github.com/quill-lang/quill/internal/token"
	"github.com/quill-lang/quill/internal/types"
)

// Document is the top-level interface document.
type Document struct {
	Documentation string         `json:"documentation,omitempty"`
	ValueTypes    []TypeDocument `json:"valueTypes"`
	Classes       []TypeDocument `json:"classes"`
	Enums         []TypeDocument `json:"enums"`
	Protocols     []TypeDocument `json:"protocols"`
}

// TypeRef identifies a type by package, rendered name and optionality.
type TypeRef struct {
	Package  string `json:"package"`
	Name     string `json:"name"`
	Optional bool   `json:"optional"`
}

// SuperRef identifies a superclass by package and name.
type SuperRef struct {
	Package string `json:"package"`
	Name    string `json:"name"`
}

// GenericDocument describes one generic parameter and its constraint.
type GenericDocument struct {
	Name       string   `json:"name"`
	Constraint *TypeRef `json:"constraint,omitempty"`
}

// ArgumentDocument describes one declared parameter.
type ArgumentDocument struct {
	Type TypeRef `json:"type"`
	Name string  `json:"name"`
}

// FunctionDocument describes a method, type method or initializer.
type FunctionDocument struct {
	Name             string             `json:"name"`
	Access           string             `json:"access"`
	ReturnType       *TypeRef           `json:"returnType,omitempty"`
	ErrorType        *TypeRef           `json:"errorType,omitempty"`
	GenericArguments []GenericDocument  `json:"genericArguments"`
	Documentation    string             `json:"documentation,omitempty"`
	Arguments        []ArgumentDocument `json:"arguments"`
}

// ValueDocument describes one enum value.
type ValueDocument struct {
	Documentation string `json:"documentation,omitempty"`
	Value         string `json:"value"`
}

// TypeDocument describes one exported type definition.
type TypeDocument struct {
	Name             string             `json:"name"`
	Documentation    string             `json:"documentation,omitempty"`
	ConformsTo       []TypeRef          `json:"conformsTo"`
	GenericArguments []GenericDocument  `json:"genericArguments"`
	Methods          []FunctionDocument `json:"methods"`
	Initializers     []FunctionDocument `json:"initializers"`
	TypeMethods      []FunctionDocument `json:"typeMethods"`
	Superclass       *SuperRef          `json:"superclass,omitempty"`
	Values           []ValueDocument    `json:"values,omitempty"`
}

// Exporter writes interface documents to one sink.
type Exporter struct {
	w io.Writer
}

// New returns an exporter writing to w.
func New(w io.Writer) *Exporter {
	return &Exporter{w: w}
}

// Export builds and writes the interface document for pkg. It fails if any
// exported declaration still references an error type or a generic variable
// that is not one of the declaration's own parameters; by the time export
// runs, analysis must have fully resolved everything else.
func (e *Exporter) Export(pkg *types.Package) error {
	doc, err := Build(pkg)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = e.w.Write(data)
	return err
}

// Build assembles the interface document for pkg without writing it.
func Build(pkg *types.Package) (*Document, error) {
	doc := &Document{
		Documentation: pkg.Documentation,
		ValueTypes:    []TypeDocument{},
		Classes:       []TypeDocument{},
		Enums:         []TypeDocument{},
		Protocols:     []TypeDocument{},
	}
	for _, h := range pkg.ExportedTypes() {
		def := h.Definition()
		td, err := buildType(def)
		if err != nil {
			return nil, err
		}
		switch def.Kind {
		case types.DefValueType:
			doc.ValueTypes = append(doc.ValueTypes, td)
		case types.DefClass:
			doc.Classes = append(doc.Classes, td)
		case types.DefEnum:
			doc.Enums = append(doc.Enums, td)
		case types.DefProtocol:
			doc.Protocols = append(doc.Protocols, td)
		}
	}
	return doc, nil
}

// renderer names generic-variable placeholders after the declaration that
// owns them, the way the analyzed declarations spell them.
type renderer struct {
	owner       string
	defGenerics []types.GenericParameter
	fnGenerics  []types.GenericParameter
}

func buildType(def *types.TypeDefinition) (TypeDocument, error) {
	r := renderer{owner: def.Name, defGenerics: def.Generics}
	td := TypeDocument{
		Name:             def.Name,
		Documentation:    def.Documentation,
		ConformsTo:       []TypeRef{},
		GenericArguments: []GenericDocument{},
		Methods:          []FunctionDocument{},
		Initializers:     []FunctionDocument{},
		TypeMethods:      []FunctionDocument{},
	}

	for _, p := range def.Protocols {
		ref, err := r.typeRef(p)
		if err != nil {
			return td, err
		}
		td.ConformsTo = append(td.ConformsTo, ref)
	}

	for _, g := range def.Generics {
		gd, err := r.genericDoc(g)
		if err != nil {
			return td, err
		}
		td.GenericArguments = append(td.GenericArguments, gd)
	}

	for _, fn := range def.Methods {
		fd, err := r.buildFunction(fn)
		if err != nil {
			return td, err
		}
		td.Methods = append(td.Methods, fd)
	}
	for _, fn := range def.Initializers {
		fd, err := r.buildFunction(fn)
		if err != nil {
			return td, err
		}
		td.Initializers = append(td.Initializers, fd)
	}
	for _, fn := range def.TypeMethods {
		fd, err := r.buildFunction(fn)
		if err != nil {
			return td, err
		}
		td.TypeMethods = append(td.TypeMethods, fd)
	}

	if def.Superclass != nil {
		super := def.Superclass.Definition()
		td.Superclass = &SuperRef{Package: def.Superclass.Pkg.Name, Name: super.Name}
	}

	for _, v := range def.Values {
		td.Values = append(td.Values, ValueDocument{Documentation: v.Documentation, Value: v.Name})
	}
	return td, nil
}

func (r renderer) buildFunction(fn *types.Function) (FunctionDocument, error) {
	r.fnGenerics = fn.Generics
	fd := FunctionDocument{
		Name:             fn.Name,
		Access:           fn.Access.String(),
		GenericArguments: []GenericDocument{},
		Documentation:    fn.Documentation,
		Arguments:        []ArgumentDocument{},
	}

	switch {
	case fn.Kind == types.KindInitializer && fn.ErrorProne:
		ref, err := r.typeRef(fn.ErrorType)
		if err != nil {
			return fd, err
		}
		fd.ErrorType = &ref
	case fn.Kind == types.KindInitializer:
		// Initializers have no return type of their own.
	case fn.ReturnType.Kind != types.KindNoReturn:
		ref, err := r.typeRef(fn.ReturnType)
		if err != nil {
			return fd, err
		}
		fd.ReturnType = &ref
	}

	for _, g := range fn.Generics {
		gd, err := r.genericDoc(g)
		if err != nil {
			return fd, err
		}
		fd.GenericArguments = append(fd.GenericArguments, gd)
	}

	for _, param := range fn.Parameters {
		ref, err := r.typeRef(param.Type)
		if err != nil {
			return fd, err
		}
		fd.Arguments = append(fd.Arguments, ArgumentDocument{Type: ref, Name: param.Name})
	}
	return fd, nil
}

func (r renderer) genericDoc(g types.GenericParameter) (GenericDocument, error) {
	gd := GenericDocument{Name: g.Name}
	if g.Constraint.Kind != types.KindNoReturn {
		ref, err := r.typeRef(g.Constraint)
		if err != nil {
			return gd, err
		}
		gd.Constraint = &ref
	}
	return gd, nil
}

func (r renderer) typeRef(t types.Type) (TypeRef, error) {
	name, err := r.render(t)
	if err != nil {
		return TypeRef{}, err
	}
	return TypeRef{
		Package:  t.Package(),
		Name:     name,
		Optional: t.Optional,
	}, nil
}

// render spells t the way the declaration does, substituting the owning
// declaration's generic parameter names for placeholder indices.
func (r renderer) render(t types.Type) (string, error) {
	switch t.Kind {
	case types.KindError:
		return "", r.unresolved("an error type")
	case types.KindGenericVariable:
		if t.Index >= len(r.defGenerics) {
			return "", r.unresolved(fmt.Sprintf("unresolved generic variable %d", t.Index))
		}
		return r.defGenerics[t.Index].Name, nil
	case types.KindLocalGenericVariable:
		if t.Index >= len(r.fnGenerics) {
			return "", r.unresolved(fmt.Sprintf("unresolved generic variable %d", t.Index))
		}
		return r.fnGenerics[t.Index].Name, nil
	case types.KindMultiProtocol:
		parts := make([]string, len(t.Protocols))
		for i, p := range t.Protocols {
			name, err := r.render(p)
			if err != nil {
				return "", err
			}
			parts[i] = name
		}
		return strings.Join(parts, " & "), nil
	}
	if t.IsNamed() && len(t.Generics) > 0 {
		args := make([]string, len(t.Generics))
		for i, g := range t.Generics {
			name, err := r.render(g)
			if err != nil {
				return "", err
			}
			if g.Optional {
				// Only the outermost optionality is carried by the
				// TypeRef flag; nested ones stay in the rendered name.
				name += "?"
			}
			args[i] = name
		}
		return fmt.Sprintf("%s<%s>", t.Def.Definition().Name, strings.Join(args, ", ")), nil
	}
	return t.WithOptional(false).String(), nil
}

func (r renderer) unresolved(what string) error {
	return diagnostics.NewError(diagnostics.ErrUnresolvedExport, token.Token{},
		fmt.Sprintf("declaration %s references %s", r.owner, what))
}
