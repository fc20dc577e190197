package visual

import (
	"reflect"

	"github.com/go-drift/vista/pkg/themes"
)

// Base is the common node implementation. Concrete node types embed it and
// bind themselves with Init so style-key reflection sees the outer type.
//
// The zero value is enabled, visible and unfocusable.
type Base struct {
	self        Visual
	parent      Visual
	dataContext any
	theme       *themes.ControlTheme
	styleKey    string

	focusable bool
	disabled  bool
	hidden    bool

	pseudoClasses map[string]bool
}

// Init binds the embedding node to its base. Constructors call it once,
// before the node is used.
func (b *Base) Init(self Visual) {
	b.self = self
}

// Parent returns the node's parent, or nil at the root.
func (b *Base) Parent() Visual {
	return b.parent
}

// SetParent reparents the node. Passing nil detaches it.
func (b *Base) SetParent(parent Visual) {
	b.parent = parent
}

// DataContext returns the node's data context.
func (b *Base) DataContext() any {
	return b.dataContext
}

// SetDataContext assigns the node's data context.
func (b *Base) SetDataContext(ctx any) {
	b.dataContext = ctx
}

// Theme returns the explicitly assigned control theme, or nil.
func (b *Base) Theme() *themes.ControlTheme {
	return b.theme
}

// SetTheme assigns an explicit control theme.
func (b *Base) SetTheme(theme *themes.ControlTheme) {
	b.theme = theme
}

// StyleKey returns the identity themes target for this node. It defaults to
// the bound node's type name and is memoized after the first query.
func (b *Base) StyleKey() string {
	if b.styleKey == "" && b.self != nil {
		t := reflect.TypeOf(b.self)
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		b.styleKey = t.Name()
	}
	return b.styleKey
}

// SetStyleKey overrides the node's style key.
func (b *Base) SetStyleKey(key string) {
	b.styleKey = key
}

// Focusable reports whether the node can take focus.
func (b *Base) Focusable() bool {
	return b.focusable
}

// SetFocusable marks the node as focusable.
func (b *Base) SetFocusable(focusable bool) {
	b.focusable = focusable
}

// Enabled reports whether the node accepts interaction.
func (b *Base) Enabled() bool {
	return !b.disabled
}

// SetEnabled toggles interaction.
func (b *Base) SetEnabled(enabled bool) {
	b.disabled = !enabled
}

// Visible reports whether the node is shown.
func (b *Base) Visible() bool {
	return !b.hidden
}

// SetVisible toggles visibility.
func (b *Base) SetVisible(visible bool) {
	b.hidden = !visible
}

// SetPseudoClass turns the named style-state flag on or off.
func (b *Base) SetPseudoClass(name string, on bool) {
	if on {
		if b.pseudoClasses == nil {
			b.pseudoClasses = make(map[string]bool)
		}
		b.pseudoClasses[name] = true
		return
	}
	delete(b.pseudoClasses, name)
}

// HasPseudoClass reports whether the named style-state flag is on.
func (b *Base) HasPseudoClass(name string) bool {
	return b.pseudoClasses[name]
}
