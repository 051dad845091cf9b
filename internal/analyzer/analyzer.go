package analyzer

import (
	"fmt"

	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/diagnostics"
	"github.com/quill-lang/quill/internal/prelude"
	"github.com/quill-lang/quill/internal/types"
)

// Analyzer performs method-call semantic analysis on expression trees. It
// walks each tree depth-first, records the static type of every expression
// and a resolved call plan on every call node, and collects diagnostics
// instead of aborting: a failed node gets the error-type sentinel and
// analysis of its siblings continues.
type Analyzer struct {
	pre   *prelude.Prelude
	scope *Scope

	// Types stores the inferred static type of every analysed expression.
	Types map[ast.Expression]types.Type

	// tentative, while non-nil, records every expression typed since the
	// intrinsic path started testing operands, so a failed match can be
	// undone without leaving stale types or diagnostics behind.
	tentative []ast.Expression

	errors []error
}

// New creates an Analyzer. The prelude supplies the built-in package the
// analyzer needs for literal types.
func New(pre *prelude.Prelude) *Analyzer {
	return &Analyzer{
		pre:   pre,
		scope: NewScope(),
		Types: make(map[ast.Expression]types.Type),
	}
}

// Scope returns the analyzer's lexical scope. The caller (the declaration
// pass, or a test) declares locals and parameters on it before analysing
// the expressions that reference them.
func (a *Analyzer) Scope() *Scope { return a.scope }

// Errors returns every diagnostic collected so far.
func (a *Analyzer) Errors() []error { return a.errors }

func (a *Analyzer) addError(err error) {
	a.errors = append(a.errors, err)
}

func (a *Analyzer) errorf(code diagnostics.ErrorCode, node ast.Expression, format string, args ...interface{}) {
	a.addError(diagnostics.NewError(code, node.GetToken(), fmt.Sprintf(format, args...)))
}

// Expectation is an optional expected-type hint. It flows into contexts
// where it resolves an otherwise-ambiguous literal (an empty list literal)
// and never overrides an already-determined type.
type Expectation struct {
	typ types.Type
	ok  bool
}

// ExpectType builds an expectation of t.
func ExpectType(t types.Type) Expectation {
	return Expectation{typ: t, ok: true}
}

// NoExpectation is the absent hint.
func NoExpectation() Expectation { return Expectation{} }

// AnalyseExpression analyses one expression tree under the given context
// and returns its static type. The context carries the receiver type and
// enclosing function when analysing a method body.
func (a *Analyzer) AnalyseExpression(expr ast.Expression, ctx types.TypeContext) types.Type {
	return a.analyseExpr(expr, NoExpectation(), ctx)
}

// analyseExpr is the depth-first walk. Analysis of a node is idempotent on
// success: an already-typed node returns its recorded type unchanged.
func (a *Analyzer) analyseExpr(expr ast.Expression, expectation Expectation, ctx types.TypeContext) types.Type {
	if typ, done := a.Types[expr]; done {
		return typ
	}
	typ := a.analyseExprUncached(expr, expectation, ctx)
	a.Types[expr] = typ
	if a.tentative != nil {
		a.tentative = append(a.tentative, expr)
	}
	return typ
}

// speculation marks a point the analyzer can return to. The intrinsic path
// analyses operands before it knows whether the call is an intrinsic at
// all; when the match fails, everything typed during the attempt must be
// forgotten so the ordinary path re-analyses the arguments under their
// declared parameter types.
type speculation struct {
	outer  []ast.Expression
	errors int
}

func (a *Analyzer) speculate() speculation {
	s := speculation{outer: a.tentative, errors: len(a.errors)}
	a.tentative = []ast.Expression{}
	return s
}

// commit keeps the speculatively computed types. An enclosing speculation
// inherits them so its own rollback stays complete.
func (a *Analyzer) commit(s speculation) {
	if s.outer != nil {
		s.outer = append(s.outer, a.tentative...)
	}
	a.tentative = s.outer
}

// rollback discards every type and diagnostic recorded since speculate.
func (a *Analyzer) rollback(s speculation) {
	for _, expr := range a.tentative {
		delete(a.Types, expr)
	}
	a.errors = a.errors[:s.errors]
	a.tentative = s.outer
}

func (a *Analyzer) analyseExprUncached(expr ast.Expression, expectation Expectation, ctx types.TypeContext) types.Type {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return types.NewPrimitive(types.KindInteger)

	case *ast.RealLiteral:
		return types.NewPrimitive(types.KindReal)

	case *ast.BooleanLiteral:
		return types.NewPrimitive(types.KindBoolean)

	case *ast.NoValueLiteral:
		return types.NewPrimitive(types.KindNoValue)

	case *ast.ListLiteral:
		return a.analyseListLiteral(e, expectation, ctx)

	case *ast.Identifier:
		v, ok := a.scope.Lookup(e.Value)
		if !ok {
			a.errorf(diagnostics.ErrUndeclaredVariable, e, "undeclared variable %s", e.Value)
			return types.Error()
		}
		return v.Type

	case *ast.SelfExpression:
		return ctx.Callee

	case *ast.TypeExpression:
		// A bare type expression only occurs as the callee of a
		// type-method or initializer call; its own value is the type.
		return e.Type

	case *ast.PropertyAccess:
		return a.analysePropertyAccess(e, ctx)

	case *ast.CallExpression:
		return a.analyseCall(e, expectation, ctx)
	}
	panic(fmt.Sprintf("analyzer: unknown expression node %T", expr))
}

func (a *Analyzer) analyseListLiteral(lit *ast.ListLiteral, expectation Expectation, ctx types.TypeContext) types.Type {
	if len(lit.Elements) == 0 {
		// Only here does the expected type participate: an empty list
		// literal has no type of its own.
		if expectation.ok && expectation.typ.IsNamed() && expectation.typ.Def == a.pre.List {
			return expectation.typ
		}
		a.errorf(diagnostics.ErrAmbiguousLiteral, lit, "cannot determine the element type of an empty list literal")
		return types.Error()
	}
	elem := a.analyseExpr(lit.Elements[0], NoExpectation(), ctx)
	if elem.IsError() {
		return types.Error()
	}
	for i, el := range lit.Elements[1:] {
		got := a.analyseExpr(el, ExpectType(elem), ctx)
		if !types.Compatible(got, elem) {
			a.errorf(diagnostics.ErrArgumentType, el,
				"list element %d: expected %s, got %s", i+2, elem, got)
		}
	}
	return types.NewNamed(a.pre.List, elem)
}

func (a *Analyzer) analysePropertyAccess(access *ast.PropertyAccess, ctx types.TypeContext) types.Type {
	receiver := a.analyseExpr(access.Receiver, NoExpectation(), ctx)
	if receiver.IsError() {
		return types.Error()
	}
	if !receiver.IsNamed() {
		a.errorf(diagnostics.ErrUnknownProperty, access, "type %s has no property %s", receiver, access.Name)
		return types.Error()
	}
	prop := receiver.Def.Definition().Property(access.Name)
	if prop == nil {
		a.errorf(diagnostics.ErrUnknownProperty, access, "type %s has no property %s", receiver, access.Name)
		return types.Error()
	}
	return types.NewTypeContext(receiver).Resolve(prop.Type)
}
