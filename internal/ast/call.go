package ast

import (
	"github.com/quill-lang/quill/internal/token"
	"github.com/quill-lang/quill/internal/types"
)

// CallExpression is a method call `callee.name(args...)`. The node owns its
// callee and argument sub-expressions. Analysis records exactly one CallPlan
// on it; the plan is what code generation reads.
type CallExpression struct {
	Token     token.Token
	Name      string
	Callee    Expression
	Arguments []Expression

	// GenericArguments are the explicit bindings for the method's own
	// generic parameters, supplied by the parser.
	GenericArguments []types.Type

	plan *CallPlan
}

func (ce *CallExpression) expressionNode()       {}
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token { return ce.Token }

// Plan returns the resolved call plan, or nil before successful analysis.
func (ce *CallExpression) Plan() *CallPlan { return ce.plan }

// Resolve records the call plan. The plan is written exactly once; a second
// write is a bug in the analysis pipeline, not a supported path.
func (ce *CallExpression) Resolve(plan *CallPlan) {
	if ce.plan != nil {
		panic("ast: call expression resolved twice")
	}
	ce.plan = plan
}

// CallPlan is the immutable result of analysing one call expression. All
// fields are set together: a node either has no plan or a complete one.
type CallPlan struct {
	// Dispatch is the mechanism code generation must emit.
	Dispatch types.Dispatch

	// Intrinsic is the primitive operation the call lowers to, or
	// IntrinsicNone for an ordinary method call.
	Intrinsic types.Intrinsic

	// Witness identifies the protocol whose conformance table serves the
	// call and the slot within it. Only meaningful for DispatchWitness.
	Witness     types.Type
	WitnessSlot int

	// CalleeType is the statically determined type of the callee.
	CalleeType types.Type

	// ResultType is the fully substituted static result type.
	ResultType types.Type

	// ErrorType is the substituted error type of an error-prone
	// initializer call; the zero Type otherwise.
	ErrorType types.Type

	// Method is the resolved declaration. Nil for intrinsic calls.
	Method *types.Function
}
