package input

import "github.com/go-drift/vista/pkg/visual"

// FocusManager tracks the currently focused node.
type FocusManager struct {
	focused visual.Visual
}

var focusManager = &FocusManager{}

// GetFocusManager returns the singleton focus manager.
func GetFocusManager() *FocusManager {
	return focusManager
}

// Focused returns the node that currently has focus, or nil.
func (m *FocusManager) Focused() visual.Visual {
	return m.focused
}

// Focus moves focus to node. It reports false, leaving focus unchanged, when
// the node cannot receive focus.
func (m *FocusManager) Focus(node visual.Visual) bool {
	if !CanReceiveFocus(node) {
		return false
	}
	m.focused = node
	return true
}

// ClearFocus removes focus from whatever holds it.
func (m *FocusManager) ClearFocus() {
	m.focused = nil
}

// CanReceiveFocus reports whether node is focusable, enabled and visible.
func CanReceiveFocus(node visual.Visual) bool {
	if node == nil {
		return false
	}
	el, ok := node.(visual.InputElement)
	if !ok {
		return false
	}
	return el.Focusable() && el.Enabled() && el.Visible()
}
