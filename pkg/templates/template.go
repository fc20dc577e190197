// Package templates defines how data items turn into visuals: the Template
// contract, function-backed templates, reflective property-path bindings and
// the tree template used for hierarchical items.
package templates

import (
	"github.com/go-drift/vista/pkg/visual"
)

// Template builds a visual representation for a data item.
type Template interface {
	// Build returns a new visual for item, or nil when it cannot.
	Build(item any) visual.Visual
	// Match reports whether the template can represent item.
	Match(item any) bool
}

// FuncTemplate adapts plain functions to the Template contract. A nil
// MatchFunc matches every item.
type FuncTemplate struct {
	BuildFunc func(item any) visual.Visual
	MatchFunc func(item any) bool
}

// NewFunc wraps build as a match-all template.
func NewFunc(build func(item any) visual.Visual) *FuncTemplate {
	return &FuncTemplate{BuildFunc: build}
}

func (t *FuncTemplate) Build(item any) visual.Visual {
	if t.BuildFunc == nil {
		return nil
	}
	return t.BuildFunc(item)
}

func (t *FuncTemplate) Match(item any) bool {
	if t.MatchFunc == nil {
		return true
	}
	return t.MatchFunc(item)
}
