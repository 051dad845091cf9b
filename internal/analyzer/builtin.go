package analyzer

import (
	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/config"
	"github.com/quill-lang/quill/internal/types"
)

// typeRule derives an operand or result type from the callee type.
type typeRule int

const (
	ruleSame typeRule = iota // the callee's own primitive type
	ruleInteger
	ruleReal
	ruleBoolean
	ruleElement  // the callee's first generic argument (Memory)
	ruleNoReturn // result only
)

func (r typeRule) apply(callee types.Type) types.Type {
	switch r {
	case ruleSame:
		return types.NewPrimitive(callee.Kind)
	case ruleInteger:
		return types.NewPrimitive(types.KindInteger)
	case ruleReal:
		return types.NewPrimitive(types.KindReal)
	case ruleBoolean:
		return types.NewPrimitive(types.KindBoolean)
	case ruleElement:
		if len(callee.Generics) > 0 {
			return callee.Generics[0]
		}
		return types.Error()
	case ruleNoReturn:
		return types.NoReturn()
	}
	return types.Error()
}

type builtinKey struct {
	kind  types.Kind
	name  string
	arity int
}

type builtinEntry struct {
	op       types.Intrinsic
	operands []typeRule
	result   typeRule
}

// builtins is the fixed intrinsic table: (primitive kind, method name,
// arity) to operation and result-type rule. Every primitive operation of
// the language is spelled as a method call; this table is what keeps each
// of them from paying for full dispatch.
var builtins = map[builtinKey]builtinEntry{}

func register(kind types.Kind, name string, entry builtinEntry) {
	builtins[builtinKey{kind: kind, name: name, arity: len(entry.operands)}] = entry
}

func init() {
	binary := func(op types.Intrinsic, result typeRule) builtinEntry {
		return builtinEntry{op: op, operands: []typeRule{ruleSame}, result: result}
	}
	unary := func(op types.Intrinsic, result typeRule) builtinEntry {
		return builtinEntry{op: op, result: result}
	}

	register(types.KindInteger, config.AddMethodName, binary(types.IntegerAdd, ruleSame))
	register(types.KindInteger, config.SubtractMethodName, binary(types.IntegerSubtract, ruleSame))
	register(types.KindInteger, config.MultiplyMethodName, binary(types.IntegerMultiply, ruleSame))
	register(types.KindInteger, config.DivideMethodName, binary(types.IntegerDivide, ruleSame))
	register(types.KindInteger, config.RemainderMethodName, binary(types.IntegerRemainder, ruleSame))
	register(types.KindInteger, config.AndMethodName, binary(types.IntegerAnd, ruleSame))
	register(types.KindInteger, config.OrMethodName, binary(types.IntegerOr, ruleSame))
	register(types.KindInteger, config.XorMethodName, binary(types.IntegerXor, ruleSame))
	register(types.KindInteger, config.NotMethodName, unary(types.IntegerNot, ruleSame))
	register(types.KindInteger, config.LeftShiftMethodName, binary(types.IntegerLeftShift, ruleSame))
	register(types.KindInteger, config.RightShiftMethodName, binary(types.IntegerRightShift, ruleSame))
	register(types.KindInteger, config.GreaterMethodName, binary(types.IntegerGreater, ruleBoolean))
	register(types.KindInteger, config.GreaterOrEqualMethodName, binary(types.IntegerGreaterOrEqual, ruleBoolean))
	register(types.KindInteger, config.LessMethodName, binary(types.IntegerLess, ruleBoolean))
	register(types.KindInteger, config.LessOrEqualMethodName, binary(types.IntegerLessOrEqual, ruleBoolean))
	register(types.KindInteger, config.ToRealMethodName, unary(types.IntegerToReal, ruleReal))
	register(types.KindInteger, config.EqualMethodName, binary(types.Equal, ruleBoolean))

	register(types.KindReal, config.AddMethodName, binary(types.RealAdd, ruleSame))
	register(types.KindReal, config.SubtractMethodName, binary(types.RealSubtract, ruleSame))
	register(types.KindReal, config.MultiplyMethodName, binary(types.RealMultiply, ruleSame))
	register(types.KindReal, config.DivideMethodName, binary(types.RealDivide, ruleSame))
	register(types.KindReal, config.RemainderMethodName, binary(types.RealRemainder, ruleSame))
	register(types.KindReal, config.GreaterMethodName, binary(types.RealGreater, ruleBoolean))
	register(types.KindReal, config.GreaterOrEqualMethodName, binary(types.RealGreaterOrEqual, ruleBoolean))
	register(types.KindReal, config.LessMethodName, binary(types.RealLess, ruleBoolean))
	register(types.KindReal, config.LessOrEqualMethodName, binary(types.RealLessOrEqual, ruleBoolean))
	register(types.KindReal, config.EqualMethodName, binary(types.RealEqual, ruleBoolean))

	register(types.KindBoolean, config.AndMethodName, binary(types.BooleanAnd, ruleSame))
	register(types.KindBoolean, config.OrMethodName, binary(types.BooleanOr, ruleSame))
	register(types.KindBoolean, config.NegateMethodName, unary(types.BooleanNegate, ruleSame))
	register(types.KindBoolean, config.EqualMethodName, binary(types.Equal, ruleBoolean))

	register(types.KindSymbol, config.EqualMethodName, binary(types.Equal, ruleBoolean))

	register(types.KindMemory, config.LoadMethodName, builtinEntry{
		op:       types.Load,
		operands: []typeRule{ruleInteger},
		result:   ruleElement,
	})
	register(types.KindMemory, config.StoreMethodName, builtinEntry{
		op:       types.Store,
		operands: []typeRule{ruleElement, ruleInteger},
		result:   ruleNoReturn,
	})
}

// builtIn attempts the intrinsic fast path for a call on calleeType. It
// returns ok=false when the call is no intrinsic: unknown name or arity for
// the primitive, or operand types that do not match exactly — the caller
// then proceeds with ordinary lookup. On a match it records the call plan
// and no lookup happens at all.
func (a *Analyzer) builtIn(call *ast.CallExpression, calleeType types.Type, ctx types.TypeContext) (types.Type, bool) {
	if op, ok := a.noValueComparison(call, calleeType, ctx); ok {
		return a.resolveIntrinsic(call, calleeType, op, types.NewPrimitive(types.KindBoolean)), true
	}

	if !calleeType.IsPrimitive() || calleeType.Optional || len(call.GenericArguments) > 0 {
		return types.Type{}, false
	}
	entry, ok := builtins[builtinKey{kind: calleeType.Kind, name: call.Name, arity: len(call.Arguments)}]
	if !ok {
		return types.Type{}, false
	}

	// Operand types must match exactly: no widening, no boxing, no
	// optional wrapping. The attempt is speculative; a mismatch must leave
	// no trace, or the ordinary path would see stale argument types.
	spec := a.speculate()
	for i, arg := range call.Arguments {
		required := entry.operands[i].apply(calleeType)
		got := a.analyseExpr(arg, ExpectType(required), ctx)
		if !got.Equal(required) {
			a.rollback(spec)
			return types.Type{}, false
		}
	}
	a.commit(spec)
	return a.resolveIntrinsic(call, calleeType, entry.op, entry.result.apply(calleeType)), true
}

// noValueComparison recognizes the optional-presence intrinsics: comparing
// an optional against the no-value literal on either side.
func (a *Analyzer) noValueComparison(call *ast.CallExpression, calleeType types.Type, ctx types.TypeContext) (types.Intrinsic, bool) {
	if call.Name != config.EqualMethodName || len(call.Arguments) != 1 {
		return types.IntrinsicNone, false
	}
	if calleeType.Optional {
		spec := a.speculate()
		arg := a.analyseExpr(call.Arguments[0], NoExpectation(), ctx)
		if arg.Kind == types.KindNoValue {
			a.commit(spec)
			return types.IsNoValueLeft, true
		}
		a.rollback(spec)
		return types.IntrinsicNone, false
	}
	if calleeType.Kind == types.KindNoValue {
		spec := a.speculate()
		arg := a.analyseExpr(call.Arguments[0], NoExpectation(), ctx)
		if arg.Optional {
			a.commit(spec)
			return types.IsNoValueRight, true
		}
		a.rollback(spec)
	}
	return types.IntrinsicNone, false
}

func (a *Analyzer) resolveIntrinsic(call *ast.CallExpression, calleeType types.Type, op types.Intrinsic, result types.Type) types.Type {
	call.Resolve(&ast.CallPlan{
		Dispatch:   types.DispatchStatic,
		Intrinsic:  op,
		CalleeType: calleeType,
		ResultType: result,
	})
	return result
}
