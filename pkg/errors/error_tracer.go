package errors

import "github.com/pkg/errors"

// StackTracer is satisfied by errors that carry a github.com/pkg/errors
// stack trace.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// ErrorTracer pairs a message with an underlying error that is guaranteed to
// carry a stack trace. The logger unwraps it to emit the trace alongside the
// message.
type ErrorTracer struct {
	Message string
	Err     error
}

// NewTracer creates an ErrorTracer with only a message; attach a cause with
// Wrap.
func NewTracer(message string) *ErrorTracer {
	return &ErrorTracer{Message: message}
}

// TracerFromError wraps err, capturing a stack trace at the call site unless
// err already carries one.
func TracerFromError(err error) *ErrorTracer {
	return NewTracer(err.Error()).Wrap(err)
}

// Wrap attaches err as the tracer's cause, capturing a stack trace if err does
// not already have one.
func (e *ErrorTracer) Wrap(err error) *ErrorTracer {
	if _, ok := err.(StackTracer); ok {
		e.Err = err
	} else {
		e.Err = errors.WithStack(err)
	}
	return e
}

func (e *ErrorTracer) Error() string {
	return e.Message
}

func (e *ErrorTracer) Unwrap() error {
	return e.Err
}

// StackTrace returns the trace captured when the cause was wrapped, or nil
// when there is no cause.
func (e *ErrorTracer) StackTrace() errors.StackTrace {
	if traced, ok := e.Unwrap().(StackTracer); ok {
		return traced.StackTrace()
	}
	return nil
}
