package apperrors

import "errors"

// Kind classifies a business error so callers can branch on the class
// instead of parsing message text.
type Kind int

const (
	Internal Kind = iota
	Validation
	Conflict
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Conflict:
		return "conflict"
	case NotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is a kinded error with a user-facing message.
type Error struct {
	kind Kind
	msg  string
	err  error
}

// New creates a kinded error. Services declare their sentinels with it.
func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{kind: kind, msg: msg, err: err}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.err }

// Kind returns the error's classification.
func (e *Error) Kind() Kind { return e.kind }

// KindOf extracts the Kind from any error in the chain.
// Unclassified errors are Internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.kind
	}
	return Internal
}
