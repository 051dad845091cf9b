package config

// SourceFileExt is the extension of Quill source files.
const SourceFileExt = ".quill"

// ManifestFileName is the per-package manifest read by the driver.
const ManifestFileName = "quill.yaml"

// BuiltinPackageName is the name of the built-in package providing the
// primitive types and the prelude library types.
const BuiltinPackageName = "s"

// Intrinsic method names. In Quill every primitive operation is spelled as
// a method call; these are the names the intrinsic table recognizes.
const (
	AddMethodName            = "add"
	SubtractMethodName       = "subtract"
	MultiplyMethodName       = "multiply"
	DivideMethodName         = "divide"
	RemainderMethodName      = "remainder"
	AndMethodName            = "and"
	OrMethodName             = "or"
	XorMethodName            = "xor"
	NotMethodName            = "not"
	LeftShiftMethodName      = "leftShift"
	RightShiftMethodName     = "rightShift"
	GreaterMethodName        = "greater"
	GreaterOrEqualMethodName = "greaterOrEqual"
	LessMethodName           = "less"
	LessOrEqualMethodName    = "lessOrEqual"
	ToRealMethodName         = "toReal"
	EqualMethodName          = "equal"
	NegateMethodName         = "negate"
	LoadMethodName           = "load"
	StoreMethodName          = "store"
)

// Prelude type names.
const (
	ListTypeName = "List"
	BoxTypeName  = "Box"
)
