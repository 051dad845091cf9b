package analyzer_test

import (
	"testing"

	"github.com/quill-lang/quill/internal/analyzer"
	"github.com/quill-lang/quill/internal/diagnostics"
	"github.com/quill-lang/quill/internal/types"
)

func TestMutatingCallOnImmutableValueBinding(t *testing.T) {
	f := newFixture()
	a := analyzer.New(f.pre)
	a.Scope().Declare("p", types.NewNamed(f.point), false)

	c := call("move", ident("p"), intLit(1), intLit(2))
	got := a.AnalyseExpression(c, types.NewTypeContext(types.Type{}))
	if !got.IsError() {
		t.Fatalf("expected the error sentinel, got %s", got)
	}
	requireCode(t, a, diagnostics.ErrImmutableReceiver)
	if c.Plan() != nil {
		t.Fatal("failed call must stay planless")
	}
}

func TestMutatingCallOnMutableValueBinding(t *testing.T) {
	f := newFixture()
	a := analyzer.New(f.pre)
	a.Scope().Declare("p", types.NewNamed(f.point), true)

	c := call("move", ident("p"), intLit(1), intLit(2))
	a.AnalyseExpression(c, types.NewTypeContext(types.Type{}))
	requireNoErrors(t, a)
	requirePlan(t, c)
}

func TestMutatingCallOnClassIgnoresBindingMutability(t *testing.T) {
	f := newFixture()
	a := analyzer.New(f.pre)
	// Classes are reference types; the binding's mutability is irrelevant
	// even for a mutating method.
	a.Scope().Declare("s", types.NewNamed(f.shape), false)

	c := call("grow", ident("s"))
	a.AnalyseExpression(c, types.NewTypeContext(types.Type{}))
	requireNoErrors(t, a)
}

func TestMutatingCallOnSelf(t *testing.T) {
	f := newFixture()
	pointT := types.NewNamed(f.point)
	mutating := &types.Function{Kind: types.KindMethod, Name: "shift", Mutating: true}
	plain := &types.Function{Kind: types.KindMethod, Name: "snapshot"}

	t.Run("inside a mutating method", func(t *testing.T) {
		a := analyzer.New(f.pre)
		ctx := types.NewTypeContext(pointT).WithFunction(mutating, nil)
		c := call("move", selfExpr(), intLit(1), intLit(2))
		a.AnalyseExpression(c, ctx)
		requireNoErrors(t, a)
	})

	t.Run("inside a non-mutating method", func(t *testing.T) {
		a := analyzer.New(f.pre)
		ctx := types.NewTypeContext(pointT).WithFunction(plain, nil)
		c := call("move", selfExpr(), intLit(1), intLit(2))
		a.AnalyseExpression(c, ctx)
		requireCode(t, a, diagnostics.ErrImmutableReceiver)
	})
}

func TestMutatingCallThroughPropertyChain(t *testing.T) {
	f := newFixture()

	t.Run("mutable property of a class receiver", func(t *testing.T) {
		// The class value is shared by reference, so the chain ends
		// there: only the property itself must be mutable.
		a := analyzer.New(f.pre)
		a.Scope().Declare("h", types.NewNamed(f.holder), false)
		c := call("move", propAccess(ident("h"), "point"), intLit(1), intLit(2))
		a.AnalyseExpression(c, types.NewTypeContext(types.Type{}))
		requireNoErrors(t, a)
	})

	t.Run("immutable property of a class receiver", func(t *testing.T) {
		a := analyzer.New(f.pre)
		a.Scope().Declare("h", types.NewNamed(f.holder), false)
		c := call("move", propAccess(ident("h"), "fixed"), intLit(1), intLit(2))
		a.AnalyseExpression(c, types.NewTypeContext(types.Type{}))
		requireCode(t, a, diagnostics.ErrImmutableReceiver)
	})

	t.Run("value chain rooted in a mutable binding", func(t *testing.T) {
		a := analyzer.New(f.pre)
		a.Scope().Declare("o", types.NewNamed(f.outer), true)
		c := call("move", propAccess(ident("o"), "inner"), intLit(1), intLit(2))
		a.AnalyseExpression(c, types.NewTypeContext(types.Type{}))
		requireNoErrors(t, a)
	})

	t.Run("value chain rooted in an immutable binding", func(t *testing.T) {
		a := analyzer.New(f.pre)
		a.Scope().Declare("o", types.NewNamed(f.outer), false)
		c := call("move", propAccess(ident("o"), "inner"), intLit(1), intLit(2))
		a.AnalyseExpression(c, types.NewTypeContext(types.Type{}))
		requireCode(t, a, diagnostics.ErrImmutableReceiver)
	})
}

func TestMutatingCallOnTemporary(t *testing.T) {
	f := newFixture()
	a := analyzer.New(f.pre)
	a.Scope().Declare("c", types.NewNamed(f.calc), false)

	// The call result is a copy; mutating it would be silently lost.
	receiver := call("origin", ident("c"))
	c := call("move", receiver, intLit(1), intLit(2))
	a.AnalyseExpression(c, types.NewTypeContext(types.Type{}))
	requireCode(t, a, diagnostics.ErrImmutableReceiver)
}
