// Package input provides the keyboard event model and the minimal focus
// state list-like controls need for directional navigation. Full focus
// management (scopes, tab order, pointer interaction) lives outside this
// module; controls only read and move the current focus.
package input

import "github.com/go-drift/vista/pkg/visual"

// Key identifies a logical keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyTab
	KeyEnter
	KeyEscape
	KeySpace
)

func (k Key) String() string {
	switch k {
	case KeyArrowUp:
		return "ArrowUp"
	case KeyArrowDown:
		return "ArrowDown"
	case KeyArrowLeft:
		return "ArrowLeft"
	case KeyArrowRight:
		return "ArrowRight"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyTab:
		return "Tab"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	default:
		return "None"
	}
}

// KeyEvent is a key press delivered to a control.
type KeyEvent struct {
	// Key is the logical key pressed.
	Key Key
	// Source is the node the event was routed from.
	Source visual.Visual
	// Handled marks the event as consumed; routing stops once set.
	Handled bool
}
