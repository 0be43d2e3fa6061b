// Package errors provides structured error reporting for dot indicators.
//
// Widget operations never fail loudly: a missing resource or a panicking
// observer is reported to the global [ErrorHandler] and the widget carries on
// with a fallback. Loaders and tools return these types as ordinary errors.
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
	// KindResource indicates a drawable or animator resource could not be loaded.
	KindResource
	// KindConfig indicates an invalid configuration value.
	KindConfig
	// KindRender indicates a painting error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindResource:
		return "resource"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// DriftError represents a structured error raised by the indicator packages.
type DriftError struct {
	// Op is the operation that failed (e.g., "drawable.Factory.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Resource is the resource identifier involved, if applicable.
	Resource string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *DriftError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s [%s] resource=%s: %v", e.Op, e.Kind, e.Resource, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *DriftError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "widgets.DotIndicator.click").
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

// ConfigError represents an invalid configuration attribute.
type ConfigError struct {
	// Field is the attribute name (e.g., "dots_count").
	Field string
	// Value is the offending value.
	Value any
	// Reason explains what is wrong with it.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// NotFoundError reports an unregistered resource identifier.
type NotFoundError struct {
	// Type is the resource type ("drawable", "animator").
	Type string
	// ID is the identifier that was looked up.
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Type, e.ID)
}

// ErrorHandler receives errors reported by the indicator packages.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *DriftError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
