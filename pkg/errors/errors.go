// Package errors provides structured error handling for the slidable engine.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid pane, profile, or tuning configuration.
	KindConfig
	// KindLifecycle indicates a use-after-dispose or attach/detach violation.
	KindLifecycle
	// KindGesture indicates an inconsistent gesture event stream.
	KindGesture
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLifecycle:
		return "lifecycle"
	case KindGesture:
		return "gesture"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// SlidableError represents a structured error in the slidable engine.
type SlidableError struct {
	// Op is the operation that failed (e.g., "slidable.ActionPane.Validate").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SlidableError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SlidableError) Unwrap() error {
	return e.Err
}

func newf(op string, kind ErrorKind, format string, args ...any) *SlidableError {
	return &SlidableError{
		Op:        op,
		Kind:      kind,
		Err:       fmt.Errorf(format, args...),
		Timestamp: time.Now(),
	}
}

// Configf builds a KindConfig error for op with a formatted message.
func Configf(op, format string, args ...any) *SlidableError {
	return newf(op, KindConfig, format, args...)
}

// Lifecyclef builds a KindLifecycle error for op with a formatted message.
func Lifecyclef(op, format string, args ...any) *SlidableError {
	return newf(op, KindLifecycle, format, args...)
}

// Gesturef builds a KindGesture error for op with a formatted message.
func Gesturef(op, format string, args ...any) *SlidableError {
	return newf(op, KindGesture, format, args...)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *SlidableError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
