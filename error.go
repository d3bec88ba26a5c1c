package knight

import "fmt"

// ErrorKind identifies the kind of failure an Error carries, per spec.md
// §4.8. Grounded on exception.go's Exception/Error pair (typed, Go
// error-implementing values) and original_source/knightrs/src/error.rs's
// kind enumeration.
type ErrorKind int

const (
	ErrParseTrailingTokens ErrorKind = iota
	ErrParseUnterminatedString
	ErrParseUnknownFunction
	ErrParseUnexpectedEnd
	ErrParseInvalidVariableName
	ErrUndefinedVariable
	ErrTypeError
	ErrDomainError
	ErrDivisionByZero
	ErrIntegerOverflow
	ErrContainerTooLarge
	ErrIoError
	ErrCustom
)

func (k ErrorKind) String() string {
	switch k {
	case ErrParseTrailingTokens:
		return "TrailingTokens"
	case ErrParseUnterminatedString:
		return "UnterminatedString"
	case ErrParseUnknownFunction:
		return "UnknownFunction"
	case ErrParseUnexpectedEnd:
		return "UnexpectedEndOfInput"
	case ErrParseInvalidVariableName:
		return "InvalidVariableName"
	case ErrUndefinedVariable:
		return "UndefinedVariable"
	case ErrTypeError:
		return "TypeError"
	case ErrDomainError:
		return "DomainError"
	case ErrDivisionByZero:
		return "DivisionByZero"
	case ErrIntegerOverflow:
		return "IntegerOverflow"
	case ErrContainerTooLarge:
		return "ContainerTooLarge"
	case ErrIoError:
		return "IoError"
	case ErrCustom:
		return "CustomError"
	default:
		return "Error"
	}
}

// Error is a Knight runtime or parse error. It implements the standard
// error interface so it composes with ordinary Go error handling, the same
// way exception.go's Exception and Error types do.
type Error struct {
	Kind ErrorKind
	Msg  string

	// Payload carries the value YEET was given, for ErrCustom errors caught
	// by a HANDLE block (spec.md §4.7's "_errmsg" binding).
	Payload Value

	// Stack is the captured shadow stack at the point the error was raised,
	// populated only when Flags.Stacktrace is enabled (see stacktrace.go).
	Stack []Frame
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func newErrorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// NewError and NewErrorf are the exported forms newError/newErrorf, for
// package ext's extension builtins to raise typed errors without needing
// access to this package's internals.
func NewError(kind ErrorKind, msg string) *Error { return newError(kind, msg) }

func NewErrorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return newErrorf(kind, format, args...)
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}

// NewYeetError builds the CustomError a YEET raises, carrying payload so
// an enclosing HANDLE can bind it to `_errmsg` unchanged (spec.md §4.8's
// CustomError(msg)).
func NewYeetError(payload Value) *Error {
	return &Error{Kind: ErrCustom, Msg: payload.String(), Payload: payload}
}

// Quit is not an *Error: it is `Q`'s clean-termination signal (spec.md
// §7: "Q n is not an error; it is a clean termination carrying exit code
// n"). It still satisfies the error interface so it can propagate through
// the same (Value, error) return path as everything else, and callers
// distinguish it with a type assertion instead of an ErrorKind check.
type Quit struct {
	Code int
}

func (q *Quit) Error() string { return "quit" }
