// Package errors provides structured error handling for the vista toolkit.
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
	// KindConfig indicates conflicting or invalid control configuration.
	KindConfig
	// KindPrecondition indicates a violated call-order or attachment precondition.
	KindPrecondition
	// KindTemplate indicates a template or binding resolution failure.
	KindTemplate
	// KindTheme indicates a theme resource error.
	KindTheme
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindPrecondition:
		return "precondition"
	case KindTemplate:
		return "template"
	case KindTheme:
		return "theme"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ControlError represents a structured error in the vista toolkit.
type ControlError struct {
	// Op is the operation that failed (e.g., "controls.ItemsControl.SetItemTemplate").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Container is the container type name, if applicable.
	Container string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ControlError) Error() string {
	if e.Container != "" {
		return fmt.Sprintf("%s [%s] container=%s: %v", e.Op, e.Kind, e.Container, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ControlError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "presenters.StackPresenter.Refresh").
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

// ThemeError represents a failure to load or validate a theme resource.
type ThemeError struct {
	// Path is the resource file path.
	Path string
	// Reason describes what was wrong with the resource.
	Reason string
	// Err is the underlying error (nil for pure validation failures).
	Err error
}

func (e *ThemeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("theme resource %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("theme resource %s: %s", e.Path, e.Reason)
}

func (e *ThemeError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the vista toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ControlError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleThemeError is called when a theme resource fails to load.
	HandleThemeError(err *ThemeError)
}
