package presenters

import (
	"github.com/go-drift/vista/pkg/templates"
	"github.com/go-drift/vista/pkg/visual"
)

// ContentPresenter is the bare content host: the default generated container
// for items that are not their own containers. It carries the item as
// Content plus an optional template, and can materialize them into a child
// visual on demand.
type ContentPresenter struct {
	visual.Base

	content         any
	contentTemplate templates.Template
	child           visual.Visual
}

// NewContentPresenter returns an empty presenter.
func NewContentPresenter() *ContentPresenter {
	p := &ContentPresenter{}
	p.Init(p)
	return p
}

// Content returns the presented item.
func (p *ContentPresenter) Content() any {
	return p.content
}

// SetContent assigns the presented item.
func (p *ContentPresenter) SetContent(content any) {
	p.content = content
}

// ContentTemplate returns the template used to materialize Content.
func (p *ContentPresenter) ContentTemplate() templates.Template {
	return p.contentTemplate
}

// SetContentTemplate assigns the template used to materialize Content.
func (p *ContentPresenter) SetContentTemplate(t templates.Template) {
	p.contentTemplate = t
}

// Child returns the materialized content visual, or nil before UpdateChild.
func (p *ContentPresenter) Child() visual.Visual {
	return p.child
}

// UpdateChild materializes Content into the child visual: through the
// template when one is set and matches, directly when the content is itself
// a visual, otherwise no child.
func (p *ContentPresenter) UpdateChild() {
	var child visual.Visual
	if p.contentTemplate != nil && p.contentTemplate.Match(p.content) {
		child = p.contentTemplate.Build(p.content)
	} else if v, ok := p.content.(visual.Visual); ok {
		child = v
	}

	if p.child == child {
		return
	}
	if p.child != nil {
		p.child.SetParent(nil)
	}
	p.child = child
	if child != nil {
		child.SetParent(p)
	}
}
