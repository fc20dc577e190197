// Package themes provides control themes: named bundles of property setters
// targeted at a node type, loadable from YAML resources.
//
// The item-collection core only assigns themes to containers; interpreting
// setters is the styling engine's job. A theme matches a container when the
// container's style key equals the theme's target type.
package themes

// Setter assigns one property value.
type Setter struct {
	Property string
	Value    any
}

// ControlTheme is a bundle of setters for one target node type.
type ControlTheme struct {
	// TargetType is the style key this theme applies to.
	TargetType string
	// BasedOn optionally chains to a parent theme consulted for setters this
	// theme does not define.
	BasedOn *ControlTheme

	setters []Setter
}

// New builds a theme for targetType from setters.
func New(targetType string, setters ...Setter) *ControlTheme {
	return &ControlTheme{TargetType: targetType, setters: setters}
}

// Setters returns the theme's own setters, excluding inherited ones.
func (t *ControlTheme) Setters() []Setter {
	return t.setters
}

// Setter returns the value for property, consulting the BasedOn chain when
// the theme does not define it.
func (t *ControlTheme) Setter(property string) (any, bool) {
	for theme := t; theme != nil; theme = theme.BasedOn {
		for _, s := range theme.setters {
			if s.Property == property {
				return s.Value, true
			}
		}
	}
	return nil, false
}
