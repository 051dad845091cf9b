package types

import (
	"fmt"
	"strings"
)

// Kind discriminates what a Type refers to.
type Kind int

const (
	// KindNoReturn is the return type of functions that return nothing.
	// Deliberately the zero value: an unset Type means "no return".
	KindNoReturn Kind = iota

	// Primitive kinds. Method calls on these are candidates for the
	// intrinsic fast path in the analyzer.
	KindInteger
	KindReal
	KindBoolean
	KindSymbol
	KindMemory

	// KindNoValue is the type of the no-value literal. It only ever
	// appears as an operand of the optional-presence intrinsics.
	KindNoValue

	// Named kinds. Def identifies the declaration.
	KindClass
	KindEnum
	KindProtocol
	KindValueType

	// KindGenericVariable is a placeholder for the enclosing type
	// definition's generic parameter at Index. Only meaningful relative
	// to a TypeContext.
	KindGenericVariable
	// KindLocalGenericVariable is a placeholder for the enclosing
	// function's own generic parameter at Index.
	KindLocalGenericVariable

	// KindMultiProtocol denotes simultaneous conformance to the ordered
	// protocol list in Protocols.
	KindMultiProtocol

	// KindError is the sentinel the analyzer assigns to expressions it
	// could not type. It suppresses cascading diagnostics upstream.
	KindError
)

var primitiveNames = map[Kind]string{
	KindInteger:  "Integer",
	KindReal:     "Real",
	KindBoolean:  "Boolean",
	KindSymbol:   "Symbol",
	KindMemory:   "Memory",
	KindNoValue:  "NoValue",
	KindNoReturn: "NoReturn",
	KindError:    "<error>",
}

// Type is an immutable value object describing a resolved (or still
// placeholder-carrying) type. Copy it freely; never mutate a field after
// construction.
type Type struct {
	Kind Kind

	// Def identifies the declaration for named kinds.
	Def Handle

	// Generics are the ordered generic arguments for named kinds.
	Generics []Type

	// Optional marks the nullable variant of the type.
	Optional bool

	// Index is the generic-variable index for the placeholder kinds.
	Index int

	// Protocols are the ordered constituents of a KindMultiProtocol type.
	Protocols []Type
}

// NewPrimitive returns the non-optional type of a primitive kind.
func NewPrimitive(kind Kind) Type {
	return Type{Kind: kind}
}

// NewNamed returns a type referring to the given declaration with the given
// generic arguments.
func NewNamed(def Handle, generics ...Type) Type {
	kind := KindClass
	switch def.Definition().Kind {
	case DefClass:
		kind = KindClass
	case DefEnum:
		kind = KindEnum
	case DefProtocol:
		kind = KindProtocol
	case DefValueType:
		kind = KindValueType
	}
	return Type{Kind: kind, Def: def, Generics: generics}
}

// NewGenericVariable returns the placeholder for the enclosing type
// definition's generic parameter at index.
func NewGenericVariable(index int) Type {
	return Type{Kind: KindGenericVariable, Index: index}
}

// NewLocalGenericVariable returns the placeholder for the enclosing
// function's own generic parameter at index.
func NewLocalGenericVariable(index int) Type {
	return Type{Kind: KindLocalGenericVariable, Index: index}
}

// NewMultiProtocol returns the composition of the given protocols. Order is
// significant: it is the declared order and drives method resolution.
func NewMultiProtocol(protocols ...Type) Type {
	return Type{Kind: KindMultiProtocol, Protocols: protocols}
}

// NoReturn is the type of expressions that produce nothing.
func NoReturn() Type { return Type{Kind: KindNoReturn} }

// Error is the sentinel assigned to expressions the analyzer could not type.
func Error() Type { return Type{Kind: KindError} }

// WithOptional returns a copy of t with the optionality flag set.
func (t Type) WithOptional(optional bool) Type {
	t.Optional = optional
	return t
}

// IsError reports whether t is the error sentinel.
func (t Type) IsError() bool { return t.Kind == KindError }

// IsNamed reports whether t refers to a declaration.
func (t Type) IsNamed() bool {
	switch t.Kind {
	case KindClass, KindEnum, KindProtocol, KindValueType:
		return true
	}
	return false
}

// IsPrimitive reports whether method calls on t are candidates for the
// intrinsic fast path.
func (t Type) IsPrimitive() bool {
	switch t.Kind {
	case KindInteger, KindReal, KindBoolean, KindSymbol, KindMemory:
		return true
	}
	return false
}

// ValueSemantics reports whether t copies on assignment, which makes
// mutating calls subject to the mutation check.
func (t Type) ValueSemantics() bool {
	return t.Kind == KindValueType || t.Kind == KindEnum
}

// Package returns the name of the package owning t's declaration, or the
// built-in package name for primitives.
func (t Type) Package() string {
	if t.IsNamed() {
		return t.Def.Pkg.Name
	}
	return "s"
}

// Equal implements structural equality: two Types are the same type only if
// every field matches.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind || t.Optional != other.Optional || t.Index != other.Index {
		return false
	}
	if t.Def != other.Def {
		return false
	}
	if len(t.Generics) != len(other.Generics) || len(t.Protocols) != len(other.Protocols) {
		return false
	}
	for i := range t.Generics {
		if !t.Generics[i].Equal(other.Generics[i]) {
			return false
		}
	}
	for i := range t.Protocols {
		if !t.Protocols[i].Equal(other.Protocols[i]) {
			return false
		}
	}
	return true
}

// Resolved reports whether t contains no generic-variable placeholder.
// Everything handed to code generation or the interface exporter must be
// resolved.
func (t Type) Resolved() bool {
	switch t.Kind {
	case KindGenericVariable, KindLocalGenericVariable:
		return false
	}
	for _, g := range t.Generics {
		if !g.Resolved() {
			return false
		}
	}
	for _, p := range t.Protocols {
		if !p.Resolved() {
			return false
		}
	}
	return true
}

// String renders t for diagnostics and the interface document.
func (t Type) String() string {
	var b strings.Builder
	switch {
	case t.IsNamed():
		b.WriteString(t.Def.Definition().Name)
		if len(t.Generics) > 0 {
			args := make([]string, len(t.Generics))
			for i, g := range t.Generics {
				args[i] = g.String()
			}
			b.WriteString("<")
			b.WriteString(strings.Join(args, ", "))
			b.WriteString(">")
		}
	case t.Kind == KindMultiProtocol:
		parts := make([]string, len(t.Protocols))
		for i, p := range t.Protocols {
			parts[i] = p.String()
		}
		b.WriteString(strings.Join(parts, " & "))
	case t.Kind == KindGenericVariable:
		fmt.Fprintf(&b, "T%d", t.Index)
	case t.Kind == KindLocalGenericVariable:
		fmt.Fprintf(&b, "L%d", t.Index)
	default:
		b.WriteString(primitiveNames[t.Kind])
	}
	if t.Optional {
		b.WriteString("?")
	}
	return b.String()
}
