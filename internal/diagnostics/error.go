package diagnostics

import (
	"fmt"

	"github.com/quill-lang/quill/internal/token"
)

// ErrorCode is a stable identifier for one diagnostic. Codes are grouped by
// phase: A1xx name resolution, A2xx call analysis, A3xx export.
type ErrorCode string

const (
	// ErrUndeclaredVariable reports an identifier with no binding in scope.
	ErrUndeclaredVariable ErrorCode = "A101"
	// ErrUnknownProperty reports a property access with no matching stored
	// property on the receiver type.
	ErrUnknownProperty ErrorCode = "A102"

	// ErrUnknownMethod reports a call to a name not found on the callee
	// type, its superclass chain or its protocols.
	ErrUnknownMethod ErrorCode = "A201"
	// ErrArgumentCount reports a call with the wrong number of arguments.
	ErrArgumentCount ErrorCode = "A202"
	// ErrArgumentType reports an argument whose static type is not
	// compatible with the declared parameter type.
	ErrArgumentType ErrorCode = "A203"
	// ErrImmutableReceiver reports a mutating call on a value-semantics
	// receiver that is not a mutable storage location.
	ErrImmutableReceiver ErrorCode = "A204"
	// ErrAmbiguousProtocolMethod reports a composition call where several
	// protocols declare the name with incompatible signatures.
	ErrAmbiguousProtocolMethod ErrorCode = "A205"
	// ErrAmbiguousMethod reports an ordinary lookup that found the name in
	// two locations with different signatures.
	ErrAmbiguousMethod ErrorCode = "A206"
	// ErrGenericArgumentCount reports a call providing the wrong number of
	// generic arguments for the method's own generic parameters.
	ErrGenericArgumentCount ErrorCode = "A207"
	// ErrAmbiguousLiteral reports a literal whose type cannot be
	// determined without an expected type, such as an empty list.
	ErrAmbiguousLiteral ErrorCode = "A208"

	// ErrUnresolvedExport reports an exported declaration that still
	// references an unresolved or error type.
	ErrUnresolvedExport ErrorCode = "A301"
)

// DiagnosticError is a compile-time diagnostic tied to a source position.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
}

// NewError builds a diagnostic at the given token.
func NewError(code ErrorCode, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: message}
}

func (e *DiagnosticError) Error() string {
	return fmt.Sprintf("%s: error[%s]: %s", e.Token.Position(), e.Code, e.Message)
}
