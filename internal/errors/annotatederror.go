// Package errors provides error wrapping with slog annotations and source
// locations so that failures deep in the engine surface as structured logs.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// annotatedError carries a message, an optional wrapped error, slog attributes
// and the source location of the call site that created it.
type annotatedError struct {
	msg     string
	wrapped error
	attrs   []slog.Attr
	source  string
}

func (e *annotatedError) Error() string {
	if e.wrapped == nil {
		return e.msg
	}
	return e.msg + ": " + e.wrapped.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.wrapped
}

// New returns an error with the given message. It is a drop-in replacement for
// the standard library errors.New.
func New(msg string) error {
	return errors.New(msg)
}

// NewSentinel creates an error meant for package-level sentinel variables.
// Sentinels carry no source location since they are created during init.
func NewSentinel(msg string) error {
	return &annotatedError{msg: msg, wrapped: nil, attrs: nil, source: ""}
}

// Wrap annotates err with a message and optional slog attributes. The call
// site of Wrap is recorded so logs point at the origin of the failure.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		msg:     msg,
		wrapped: err,
		attrs:   attrs,
		source:  callerSource(2), //nolint:mnd // skip callerSource and Wrap
	}
}

// Errorf formats an annotated error. The %w verb wraps like fmt.Errorf.
func Errorf(format string, args ...any) error {
	wrapped := fmt.Errorf(format, args...)
	return &annotatedError{
		msg:     wrapped.Error(),
		wrapped: errors.Unwrap(wrapped),
		attrs:   nil,
		source:  callerSource(2), //nolint:mnd // skip callerSource and Errorf
	}
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join wraps the given errors into a single error.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// SlogError converts an error into a structured attribute carrying the
// message, the source location, and all annotations found in the error tree.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{Key: "error", Value: slog.StringValue("<nil>")}
	}

	attrs := []slog.Attr{slog.String("message", err.Error())}
	if source := firstSource(err); source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	if annotations := collectAnnotations(err); len(annotations) > 0 {
		attrs = append(attrs, slog.Attr{Key: "annotations", Value: slog.GroupValue(annotations...)})
	}

	return slog.Attr{Key: "error", Value: slog.GroupValue(attrs...)}
}

// DecoratePanic converts a recovered panic value into an error pointing at the
// panic site rather than the recovery site.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}

	var wrapped error
	if err, ok := recovered.(error); ok {
		wrapped = err
	}

	return &annotatedError{
		msg:     fmt.Sprintf("panic: %v", recovered),
		wrapped: wrapped,
		attrs:   nil,
		source:  panicSource(),
	}
}

// firstSource returns the source location of the outermost annotated error in
// the tree that has one.
func firstSource(err error) string {
	for err != nil {
		var annotated *annotatedError
		if !errors.As(err, &annotated) {
			return ""
		}
		if annotated.source != "" {
			return annotated.source
		}
		err = annotated.wrapped
	}
	return ""
}

// collectAnnotations gathers attributes from every annotated error in the
// chain, outermost first.
func collectAnnotations(err error) []slog.Attr {
	var attrs []slog.Attr
	for err != nil {
		var annotated *annotatedError
		if !errors.As(err, &annotated) {
			break
		}
		attrs = append(attrs, annotated.attrs...)
		err = annotated.wrapped
	}
	return attrs
}

// callerSource formats the file:line of the caller skip frames up the stack.
func callerSource(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", trimPath(file), line)
}

// panicSource walks the stack past the runtime panic machinery to find the
// frame that actually panicked.
func panicSource() string {
	pcs := make([]uintptr, 32) //nolint:mnd // enough for any realistic panic depth
	n := runtime.Callers(1, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	sawPanic := false
	for {
		frame, more := frames.Next()
		if strings.HasPrefix(frame.Function, "runtime.gopanic") {
			sawPanic = true
		} else if sawPanic && !strings.HasPrefix(frame.Function, "runtime.") {
			return fmt.Sprintf("%s:%d", trimPath(frame.File), frame.Line)
		}
		if !more {
			return ""
		}
	}
}

// trimPath shortens an absolute file path to its last two elements.
func trimPath(file string) string {
	parts := strings.Split(file, "/")
	if len(parts) <= 2 { //nolint:mnd // dir + file
		return file
	}
	return strings.Join(parts[len(parts)-2:], "/")
}
