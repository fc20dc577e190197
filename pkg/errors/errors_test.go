package errors

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestControlErrorString(t *testing.T) {
	err := &ControlError{
		Op:   "controls.ItemsControl.SetItemTemplate",
		Kind: KindConfig,
		Err:  errors.New("display member binding already set"),
	}
	got := err.Error()
	want := "controls.ItemsControl.SetItemTemplate [config]: display member binding already set"
	if got != want {
		t.Errorf("ControlError.Error() = %q, want %q", got, want)
	}
}

func TestControlErrorWithContainer(t *testing.T) {
	err := &ControlError{
		Op:        "controls.ItemsControl.PrepareItemContainer",
		Kind:      KindPrecondition,
		Container: "*presenters.ContentPresenter",
		Err:       errors.New("container is not attached"),
	}
	got := err.Error()
	want := "container=*presenters.ContentPresenter"
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestControlErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &ControlError{Op: "test.op", Kind: KindPrecondition, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindPrecondition, "precondition"},
		{KindTemplate, "template"},
		{KindTheme, "theme"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "presenters.StackPresenter.Refresh",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in presenters.StackPresenter.Refresh: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestThemeErrorString(t *testing.T) {
	err := &ThemeError{Path: "themes/list.yaml", Reason: "unsupported format version"}
	got := err.Error()
	want := "theme resource themes/list.yaml: unsupported format version"
	if got != want {
		t.Errorf("ThemeError.Error() = %q, want %q", got, want)
	}

	inner := errors.New("yaml: line 3: mapping values are not allowed")
	err = &ThemeError{Path: "themes/list.yaml", Reason: "parse failure", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestReport(t *testing.T) {
	var capturedErr *ControlError
	handler := &testHandler{
		onError: func(err *ControlError) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&ControlError{
		Op:   "test.op",
		Kind: KindTemplate,
		Err:  errors.New("binding path not found"),
	})

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	if capturedErr.StackTrace == "" {
		t.Error("expected StackTrace to be captured")
	}
}

func TestReportPanic(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	ReportPanic(&PanicError{
		Value:     "test panic value",
		Timestamp: time.Now(),
	})

	if capturedPanic == nil {
		t.Fatal("expected panic to be captured")
	}
	if capturedPanic.Value != "test panic value" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "test panic value")
	}
}

func TestReportThemeError(t *testing.T) {
	var capturedErr *ThemeError
	handler := &testHandler{
		onThemeError: func(err *ThemeError) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	ReportThemeError(&ThemeError{Path: "themes/bad.yaml", Reason: "missing target type"})

	if capturedErr == nil {
		t.Fatal("expected theme error to be captured")
	}
	if capturedErr.Path != "themes/bad.yaml" {
		t.Errorf("Path = %q, want %q", capturedErr.Path, "themes/bad.yaml")
	}
}

func TestRecover(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if capturedPanic == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if capturedPanic.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "intentional test panic")
	}
	if capturedPanic.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", capturedPanic.Op, "test.recover")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	handler := &testHandler{}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	var got any
	func() {
		defer RecoverWithCallback("test.recover", func(r any) { got = r })
		panic(42)
	}()

	if got != 42 {
		t.Errorf("callback value = %v, want 42", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if DefaultHandler == nil {
		t.Error("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

type testHandler struct {
	onError      func(*ControlError)
	onPanic      func(*PanicError)
	onThemeError func(*ThemeError)
}

func (h *testHandler) HandleError(err *ControlError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func (h *testHandler) HandleThemeError(err *ThemeError) {
	if h.onThemeError != nil {
		h.onThemeError(err)
	}
}
