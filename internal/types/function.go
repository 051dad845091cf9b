package types

// FunctionKind tags the flavour of a callable declaration. The analyzer and
// the exporter match on it instead of inspecting the concrete type.
type FunctionKind int

const (
	KindMethod FunctionKind = iota
	KindTypeMethod
	KindInitializer
)

// Parameter is one declared argument of a function.
type Parameter struct {
	Name string
	Type Type
}

// Function is the analyzed signature of a method, type method or
// initializer. Initializers reuse the struct with Kind set accordingly;
// error-prone initializers additionally carry an error type.
type Function struct {
	Kind          FunctionKind
	Name          string
	Access        AccessLevel
	Documentation string

	Parameters []Parameter
	ReturnType Type

	// Generics are the function's own generic parameters, layered on top
	// of the enclosing definition's.
	Generics []GenericParameter

	// Mutating methods may alter receiver state in place. Only enforced
	// for value-semantics receivers.
	Mutating bool

	// Final methods cannot be overridden and may be statically dispatched
	// even on unsealed classes.
	Final bool

	// ErrorProne marks a fallible initializer; ErrorType is the type of
	// the error it may produce.
	ErrorProne bool
	ErrorType  Type
}

// SignatureEqual reports whether two functions declare structurally
// identical signatures: same parameter types, same return type and same
// generic parameters with identical constraints. Used by the multi-protocol
// resolver to decide whether two declarations of the same name agree.
func (f *Function) SignatureEqual(other *Function) bool {
	if len(f.Parameters) != len(other.Parameters) || len(f.Generics) != len(other.Generics) {
		return false
	}
	for i := range f.Parameters {
		if !f.Parameters[i].Type.Equal(other.Parameters[i].Type) {
			return false
		}
	}
	for i := range f.Generics {
		if !f.Generics[i].Constraint.Equal(other.Generics[i].Constraint) {
			return false
		}
	}
	return f.ReturnType.Equal(other.ReturnType)
}
