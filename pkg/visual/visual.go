// Package visual defines the minimal node contract the item-collection core
// works against.
//
// Visual is deliberately small: parentage only. Everything else a control
// might need from a node (data context, theming, focus eligibility) is an
// optional capability discovered by interface assertion, so third-party node
// types participate by implementing just the capabilities they support. Base
// implements all of them and is meant to be embedded.
package visual

import "github.com/go-drift/vista/pkg/themes"

// Visual is a node in the visual tree.
type Visual interface {
	// Parent returns the node's parent, or nil at the root.
	Parent() Visual
	// SetParent reparents the node. Passing nil detaches it.
	SetParent(parent Visual)
}

// DataContextHost is implemented by nodes that carry an inheritable data
// context.
type DataContextHost interface {
	DataContext() any
	SetDataContext(ctx any)
}

// Themeable is implemented by nodes that can carry a control theme. StyleKey
// is the identity themes target; it defaults to the node's type name.
type Themeable interface {
	Theme() *themes.ControlTheme
	SetTheme(theme *themes.ControlTheme)
	StyleKey() string
}

// InputElement exposes the eligibility flags directional navigation checks.
type InputElement interface {
	Focusable() bool
	Enabled() bool
	Visible() bool
}

// PseudoClassHost is implemented by nodes exposing style-state flags.
type PseudoClassHost interface {
	SetPseudoClass(name string, on bool)
	HasPseudoClass(name string) bool
}

// IsDescendant reports whether node sits strictly below ancestor in the
// visual tree.
func IsDescendant(node, ancestor Visual) bool {
	if node == nil || ancestor == nil {
		return false
	}
	for p := node.Parent(); p != nil; p = p.Parent() {
		if p == ancestor {
			return true
		}
	}
	return false
}
