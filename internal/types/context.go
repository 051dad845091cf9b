package types

// TypeContext binds generic-variable placeholders to concrete types at one
// analysis site: the callee type supplies bindings for the enclosing
// definition's generics, FunctionArguments for the function's own. It
// borrows into the declaration tables and must not outlive the analysis
// call that created it.
type TypeContext struct {
	Callee            Type
	Function          *Function
	FunctionArguments []Type
}

// NewTypeContext returns a context for analysing members of callee.
func NewTypeContext(callee Type) TypeContext {
	return TypeContext{Callee: callee}
}

// WithFunction layers a function's own generic bindings on top of the
// receiver bindings.
func (tc TypeContext) WithFunction(fn *Function, arguments []Type) TypeContext {
	tc.Function = fn
	tc.FunctionArguments = arguments
	return tc
}

// Resolve substitutes every generic-variable placeholder in t using this
// context. Placeholders without a binding are returned unchanged, so
// callers can detect incomplete substitution with Resolved.
func (tc TypeContext) Resolve(t Type) Type {
	switch t.Kind {
	case KindGenericVariable:
		// Bindings are already expressed in the caller's context; resolving
		// them again here would loop forever on a self-referential callee
		// such as Box<T0> inside Box's own method bodies.
		if t.Index < len(tc.Callee.Generics) {
			return tc.carryOptional(tc.Callee.Generics[t.Index], t.Optional)
		}
		return t
	case KindLocalGenericVariable:
		if t.Index < len(tc.FunctionArguments) {
			return tc.carryOptional(tc.FunctionArguments[t.Index], t.Optional)
		}
		return t
	}
	if len(t.Generics) > 0 {
		generics := make([]Type, len(t.Generics))
		for i, g := range t.Generics {
			generics[i] = tc.Resolve(g)
		}
		t.Generics = generics
	}
	if len(t.Protocols) > 0 {
		protocols := make([]Type, len(t.Protocols))
		for i, p := range t.Protocols {
			protocols[i] = tc.Resolve(p)
		}
		t.Protocols = protocols
	}
	return t
}

// carryOptional keeps an optional placeholder optional after substitution.
func (tc TypeContext) carryOptional(t Type, optional bool) Type {
	if optional {
		return t.WithOptional(true)
	}
	return t
}
