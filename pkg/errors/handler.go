package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex

	// DefaultHandler receives everything the Report functions are given.
	// It defaults to a LogHandler printing to stderr.
	DefaultHandler ErrorHandler = &LogHandler{}
)

// SetHandler replaces the global error handler. Passing nil restores the
// default LogHandler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		h = &LogHandler{}
	}
	DefaultHandler = h
}

func currentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report hands err to the global handler. A zero Timestamp is stamped with
// the current time, and an empty StackTrace with the caller's stack.
func Report(err *ControlError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if err.StackTrace == "" {
		err.StackTrace = CaptureStack()
	}
	if h := currentHandler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic hands a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if h := currentHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// ReportThemeError hands a theme resource failure to the global handler.
func ReportThemeError(err *ThemeError) {
	if err == nil {
		return
	}
	if h := currentHandler(); h != nil {
		h.HandleThemeError(err)
	}
}

// Recover reports a recovered panic and swallows it.
//
//	defer errors.Recover("presenters.refresh")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{
			Op:         op,
			Value:      r,
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		})
	}
}

// RecoverWithCallback is Recover plus a callback receiving the panic value
// after it has been reported.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{
			Op:         op,
			Value:      r,
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		})
		if callback != nil {
			callback(r)
		}
	}
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line"
// entry per frame.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
