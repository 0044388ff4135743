package ecsig

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrSigInvalidLen is returned when an encoded signature does not have
	// exactly two field widths of hex digits.
	ErrSigInvalidLen = ErrorKind("ErrSigInvalidLen")

	// ErrSigInvalidHex is returned when an encoded signature contains a
	// character that is not a hex digit.
	ErrSigInvalidHex = ErrorKind("ErrSigInvalidHex")

	// ErrSigRIsZero is returned when a signature has R set to the value zero.
	ErrSigRIsZero = ErrorKind("ErrSigRIsZero")

	// ErrSigRTooBig is returned when a signature has R with a value that is
	// greater than or equal to the group order.
	ErrSigRTooBig = ErrorKind("ErrSigRTooBig")

	// ErrSigSIsZero is returned when a signature has S set to the value zero.
	ErrSigSIsZero = ErrorKind("ErrSigSIsZero")

	// ErrSigSTooBig is returned when a signature has S with a value that is
	// greater than or equal to the group order.
	ErrSigSTooBig = ErrorKind("ErrSigSTooBig")

	// ErrPrivateScalarInvalid is returned when a private scalar is negative,
	// wider than the group order, or (in strict mode) outside [1, n-1].
	ErrPrivateScalarInvalid = ErrorKind("ErrPrivateScalarInvalid")

	// ErrRandomSource is returned when the random source fails to deliver the
	// requested bytes.
	ErrRandomSource = ErrorKind("ErrRandomSource")

	// ErrAttemptsExhausted is returned when signing or strict key generation
	// draws the configured number of candidates without finding a usable one.
	ErrAttemptsExhausted = ErrorKind("ErrAttemptsExhausted")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to signing, verification or signature
// decoding. It has full support for errors.Is and errors.As, so the caller can
// ascertain the specific reason for the error by checking the underlying
// error.
type Error struct {
	Err         error
	Description string

	cause error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the error kind and, when present, the error that caused it.
func (e Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.cause}
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// wrapError creates an Error of the given kind that also wraps cause.
func wrapError(kind ErrorKind, cause error, desc string) Error {
	return Error{Err: kind, Description: desc, cause: cause}
}
