package analyzer

import (
	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/diagnostics"
	"github.com/quill-lang/quill/internal/types"
)

// analyseCall analyses one method-call node: it determines the callee's
// static type, consults the intrinsic table, resolves the method through
// ordinary or multi-protocol lookup, validates arguments and mutability,
// and records the resolved call plan on the node.
func (a *Analyzer) analyseCall(call *ast.CallExpression, expectation Expectation, ctx types.TypeContext) types.Type {
	if plan := call.Plan(); plan != nil {
		return plan.ResultType
	}

	// Type-expression callees resolve against type methods and
	// initializers instead of instance members.
	if te, ok := call.Callee.(*ast.TypeExpression); ok {
		return a.analyseTypeCall(call, te, ctx)
	}

	calleeType := a.analyseExpr(call.Callee, NoExpectation(), ctx)
	if calleeType.IsError() {
		// The callee already failed; stay silent to avoid cascades.
		return types.Error()
	}

	// Intrinsic fast path. A partial match (right name, wrong arity or
	// operand types) falls through to ordinary lookup: the name may be a
	// user-declared method elsewhere.
	if result, ok := a.builtIn(call, calleeType, ctx); ok {
		return result
	}

	// An optional wraps its value; nothing can be called through it until
	// it is unwrapped. The presence comparisons above are the only
	// exception.
	if calleeType.Optional {
		a.errorf(diagnostics.ErrUnknownMethod, call,
			"cannot call method %s on the optional type %s; unwrap the value first", call.Name, calleeType)
		return types.Error()
	}

	if calleeType.Kind == types.KindMultiProtocol {
		return a.analyseMultiProtocolCall(call, calleeType, ctx)
	}

	if !calleeType.IsNamed() {
		a.errorf(diagnostics.ErrUnknownMethod, call, "type %s has no method %s", calleeType, call.Name)
		return types.Error()
	}

	resolution, ok := a.lookupMethod(call, calleeType)
	if !ok {
		return types.Error()
	}
	return a.finishCall(call, calleeType, resolution, ctx)
}

// resolution is the outcome of method lookup: the declaration plus the
// dispatch classification it implies.
type resolution struct {
	method      *types.Function
	dispatch    types.Dispatch
	witness     types.Type
	witnessSlot int
}

// lookupMethod performs ordinary member lookup: the callee type's own
// declaration, then the superclass chain, then the conformed protocols, in
// that order. Subclass shadowing wins silently; the same name declared with
// a different signature in a second location is an ambiguity error.
func (a *Analyzer) lookupMethod(call *ast.CallExpression, calleeType types.Type) (resolution, bool) {
	def := calleeType.Def.Definition()

	// A protocol-typed receiver dispatches through its own witness table.
	if calleeType.Kind == types.KindProtocol {
		if fn := def.Method(call.Name); fn != nil {
			return resolution{
				method:      fn,
				dispatch:    types.DispatchWitness,
				witness:     calleeType,
				witnessSlot: def.MethodIndex(call.Name),
			}, true
		}
		a.errorf(diagnostics.ErrUnknownMethod, call, "protocol %s declares no method %s", calleeType, call.Name)
		return resolution{}, false
	}

	// Own declaration, then the superclass chain. The nearest declaration
	// wins: redeclaring a superclass method shadows it.
	var found *types.Function
	for d := def; ; {
		if fn := d.Method(call.Name); fn != nil {
			found = fn
			break
		}
		if d.Superclass == nil {
			break
		}
		d = d.Superclass.Definition()
	}
	if found != nil {
		res := resolution{method: found, dispatch: types.DispatchStatic}
		if calleeType.Kind == types.KindClass {
			res.dispatch = types.DispatchDynamic
			if def.Sealed || found.Final {
				res.dispatch = types.DispatchStatic
			}
		}
		// A concrete declaration coexisting with a conflicting protocol
		// declaration of the same name must not resolve silently.
		for _, p := range conformances(def) {
			if pfn := p.Def.Definition().Method(call.Name); pfn != nil && !pfn.SignatureEqual(found) {
				a.errorf(diagnostics.ErrAmbiguousMethod, call,
					"method %s is declared on %s and on protocol %s with different signatures",
					call.Name, calleeType, p)
				return resolution{}, false
			}
		}
		return res, true
	}

	// Conformed protocols last. All declaring protocols must agree on the
	// signature; the first-declared one then provides the witness slot.
	var matches []resolution
	for _, p := range conformances(def) {
		pdef := p.Def.Definition()
		if fn := pdef.Method(call.Name); fn != nil {
			matches = append(matches, resolution{
				method:      fn,
				dispatch:    types.DispatchWitness,
				witness:     p,
				witnessSlot: pdef.MethodIndex(call.Name),
			})
		}
	}
	switch {
	case len(matches) == 0:
		a.errorf(diagnostics.ErrUnknownMethod, call, "type %s has no method %s", calleeType, call.Name)
		return resolution{}, false
	case len(matches) > 1:
		for _, m := range matches[1:] {
			if !m.method.SignatureEqual(matches[0].method) {
				a.errorf(diagnostics.ErrAmbiguousMethod, call,
					"method %s is declared with different signatures on protocols %s and %s",
					call.Name, matches[0].witness, m.witness)
				return resolution{}, false
			}
		}
	}
	return matches[0], true
}

// conformances collects the conformed protocols of def and, for classes,
// of its superclass chain, preserving declaration order.
func conformances(def *types.TypeDefinition) []types.Type {
	out := append([]types.Type(nil), def.Protocols...)
	for d := def; d.Superclass != nil; {
		d = d.Superclass.Definition()
		out = append(out, d.Protocols...)
	}
	return out
}

// analyseTypeCall resolves a call on a type expression: type methods first,
// then initializers.
func (a *Analyzer) analyseTypeCall(call *ast.CallExpression, te *ast.TypeExpression, ctx types.TypeContext) types.Type {
	constructed := te.Type
	if !constructed.IsNamed() {
		a.errorf(diagnostics.ErrUnknownMethod, call, "type %s has no type method %s", constructed, call.Name)
		return types.Error()
	}
	def := constructed.Def.Definition()

	res := resolution{dispatch: types.DispatchStatic}
	if fn := def.TypeMethod(call.Name); fn != nil {
		res.method = fn
		if constructed.Kind == types.KindClass && !def.Sealed && !fn.Final {
			res.dispatch = types.DispatchDynamic
		}
	} else if fn := def.Initializer(call.Name); fn != nil {
		res.method = fn
	} else {
		a.errorf(diagnostics.ErrUnknownMethod, call, "type %s has no type method or initializer %s", constructed, call.Name)
		return types.Error()
	}
	return a.finishCall(call, constructed, res, ctx)
}

// finishCall validates generic arguments, arity, argument types and
// mutability, then computes the substituted result type and records the
// call plan. Any diagnostic leaves the node planless with the error-type
// sentinel as its result.
func (a *Analyzer) finishCall(call *ast.CallExpression, calleeType types.Type, res resolution, ctx types.TypeContext) types.Type {
	method := res.method

	if len(call.GenericArguments) != len(method.Generics) {
		a.errorf(diagnostics.ErrGenericArgumentCount, call,
			"method %s declares %d generic argument(s), got %d",
			method.Name, len(method.Generics), len(call.GenericArguments))
		return types.Error()
	}
	methodCtx := types.NewTypeContext(calleeType).WithFunction(method, call.GenericArguments)
	for i, param := range method.Generics {
		if param.Constraint.Kind == types.KindNoReturn {
			continue
		}
		constraint := methodCtx.Resolve(param.Constraint)
		if !types.Compatible(call.GenericArguments[i], constraint) {
			a.errorf(diagnostics.ErrArgumentType, call,
				"generic argument %s does not satisfy constraint %s", call.GenericArguments[i], constraint)
			return types.Error()
		}
	}

	if len(call.Arguments) != len(method.Parameters) {
		a.errorf(diagnostics.ErrArgumentCount, call,
			"method %s expects %d argument(s), got %d",
			method.Name, len(method.Parameters), len(call.Arguments))
		return types.Error()
	}

	failed := false
	for i, arg := range call.Arguments {
		expected := methodCtx.Resolve(method.Parameters[i].Type)
		got := a.analyseExpr(arg, ExpectType(expected), ctx)
		if got.IsError() {
			// The argument already carries the sentinel; checking it
			// again would only produce a secondary diagnostic.
			continue
		}
		if !types.Compatible(got, expected) {
			a.errorf(diagnostics.ErrArgumentType, arg,
				"argument %d of %s: expected %s, got %s", i+1, method.Name, expected, got)
			failed = true
		}
	}
	if failed {
		return types.Error()
	}

	if method.Mutating && method.Kind == types.KindMethod {
		if !a.checkMutation(call, calleeType, ctx) {
			return types.Error()
		}
	}

	plan := &ast.CallPlan{
		Dispatch:    res.dispatch,
		Intrinsic:   types.IntrinsicNone,
		Witness:     res.witness,
		WitnessSlot: res.witnessSlot,
		CalleeType:  calleeType,
		Method:      method,
	}
	if method.Kind == types.KindInitializer {
		plan.ResultType = methodCtx.Resolve(calleeType)
		if method.ErrorProne {
			plan.ErrorType = methodCtx.Resolve(method.ErrorType)
		}
	} else {
		plan.ResultType = methodCtx.Resolve(method.ReturnType)
	}
	call.Resolve(plan)
	return plan.ResultType
}
