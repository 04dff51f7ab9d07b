package errors

// ErrorDetails carries a classified failure: a human-readable message, the
// stable code it belongs to and, when the failure concerns a single field of a
// record, which field that was.
type ErrorDetails struct {
	// Message is the human-readable description,
	// e.g. "price -5 is not a finite non-negative number".
	Message string

	// Code classifies the failure.
	Code ErrorCode

	// Field names the offending record field, empty when the failure is not
	// field-specific.
	Field string
}

// NewErrorDetails builds an ErrorDetails for a whole-record failure.
func NewErrorDetails(code ErrorCode, message string) *ErrorDetails {
	return &ErrorDetails{Message: message, Code: code}
}

// NewFieldError builds an ErrorDetails pinned to one record field.
func NewFieldError(code ErrorCode, field, message string) *ErrorDetails {
	return &ErrorDetails{Message: message, Code: code, Field: field}
}

// Error implements the error interface.
func (e *ErrorDetails) Error() string {
	return e.Message
}

// CodeOf returns the ErrorCode carried by err, or the empty code when err is
// not an ErrorDetails.
func CodeOf(err error) ErrorCode {
	details, ok := err.(*ErrorDetails)
	if !ok {
		return ""
	}
	return details.Code
}
