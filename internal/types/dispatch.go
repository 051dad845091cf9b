package types

// Dispatch classifies the mechanism code generation must emit for a call.
type Dispatch int

const (
	// DispatchStatic is a direct call: value-type and enum methods,
	// initializers, final methods and methods of sealed classes.
	DispatchStatic Dispatch = iota
	// DispatchDynamic is a virtual call through the class vtable.
	DispatchDynamic
	// DispatchWitness is a call through a protocol conformance table.
	DispatchWitness
)

func (d Dispatch) String() string {
	switch d {
	case DispatchStatic:
		return "static"
	case DispatchDynamic:
		return "dynamic"
	case DispatchWitness:
		return "witness"
	}
	return "unknown"
}

// Intrinsic identifies a primitive operation a method call lowers to,
// bypassing dispatch entirely. The set is closed: every consumer matches
// exhaustively so adding an operation is a compile-time-checked exercise.
type Intrinsic int

const (
	IntrinsicNone Intrinsic = iota

	IntegerAdd
	IntegerSubtract
	IntegerMultiply
	IntegerDivide
	IntegerRemainder
	IntegerAnd
	IntegerOr
	IntegerXor
	IntegerNot
	IntegerLeftShift
	IntegerRightShift
	IntegerGreater
	IntegerGreaterOrEqual
	IntegerLess
	IntegerLessOrEqual
	IntegerToReal

	RealAdd
	RealSubtract
	RealMultiply
	RealDivide
	RealRemainder
	RealGreater
	RealGreaterOrEqual
	RealLess
	RealLessOrEqual
	RealEqual

	BooleanAnd
	BooleanOr
	BooleanNegate

	Equal
	Load
	Store

	IsNoValueLeft
	IsNoValueRight
)

var intrinsicNames = map[Intrinsic]string{
	IntrinsicNone:         "none",
	IntegerAdd:            "integer.add",
	IntegerSubtract:       "integer.subtract",
	IntegerMultiply:       "integer.multiply",
	IntegerDivide:         "integer.divide",
	IntegerRemainder:      "integer.remainder",
	IntegerAnd:            "integer.and",
	IntegerOr:             "integer.or",
	IntegerXor:            "integer.xor",
	IntegerNot:            "integer.not",
	IntegerLeftShift:      "integer.leftShift",
	IntegerRightShift:     "integer.rightShift",
	IntegerGreater:        "integer.greater",
	IntegerGreaterOrEqual: "integer.greaterOrEqual",
	IntegerLess:           "integer.less",
	IntegerLessOrEqual:    "integer.lessOrEqual",
	IntegerToReal:         "integer.toReal",
	RealAdd:               "real.add",
	RealSubtract:          "real.subtract",
	RealMultiply:          "real.multiply",
	RealDivide:            "real.divide",
	RealRemainder:         "real.remainder",
	RealGreater:           "real.greater",
	RealGreaterOrEqual:    "real.greaterOrEqual",
	RealLess:              "real.less",
	RealLessOrEqual:       "real.lessOrEqual",
	RealEqual:             "real.equal",
	BooleanAnd:            "boolean.and",
	BooleanOr:             "boolean.or",
	BooleanNegate:         "boolean.negate",
	Equal:                 "equal",
	Load:                  "memory.load",
	Store:                 "memory.store",
	IsNoValueLeft:         "isNoValue.left",
	IsNoValueRight:        "isNoValue.right",
}

func (i Intrinsic) String() string {
	if s, ok := intrinsicNames[i]; ok {
		return s
	}
	return "unknown"
}
