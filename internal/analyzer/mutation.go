package analyzer

import (
	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/diagnostics"
	"github.com/quill-lang/quill/internal/types"
)

// checkMutation verifies that a mutating call's receiver is a legal mutable
// storage location. Classes are reference types, so the check is a no-op
// for them: the binding's mutability is irrelevant. Value types and enums
// copy on assignment — a mutating call on a copy would silently discard the
// mutation, so the receiver must be mutable storage.
func (a *Analyzer) checkMutation(call *ast.CallExpression, calleeType types.Type, ctx types.TypeContext) bool {
	if !calleeType.ValueSemantics() {
		return true
	}
	if a.isMutableStorage(call.Callee, ctx) {
		return true
	}
	a.errorf(diagnostics.ErrImmutableReceiver, call,
		"cannot call mutating method %s on an immutable %s value", call.Name, calleeType)
	return false
}

// isMutableStorage reports whether expr denotes storage a mutating method
// may write through: a mutable local binding, the receiver inside a
// mutating method, or a mutable member-access chain rooted in one of those.
// A chain segment behind a class-typed receiver ends the requirement — the
// class value is shared by reference, so only the property itself must be
// mutable.
func (a *Analyzer) isMutableStorage(expr ast.Expression, ctx types.TypeContext) bool {
	switch e := expr.(type) {
	case *ast.Identifier:
		v, ok := a.scope.Lookup(e.Value)
		return ok && v.Mutable

	case *ast.SelfExpression:
		return ctx.Function != nil && ctx.Function.Mutating

	case *ast.PropertyAccess:
		receiver, ok := a.Types[e.Receiver]
		if !ok || !receiver.IsNamed() {
			return false
		}
		prop := receiver.Def.Definition().Property(e.Name)
		if prop == nil || !prop.Mutable {
			return false
		}
		if receiver.Kind == types.KindClass {
			return true
		}
		return a.isMutableStorage(e.Receiver, ctx)
	}

	// Temporaries, call results and literals are never mutable storage.
	return false
}
