package controls

import (
	"github.com/go-drift/vista/pkg/templates"
	"github.com/go-drift/vista/pkg/visual"
)

// ContentControl is a control presenting a single content value through an
// optional template.
type ContentControl struct {
	visual.Base

	content         any
	contentTemplate templates.Template
}

var _ ContentHost = (*ContentControl)(nil)

func NewContentControl() *ContentControl {
	c := &ContentControl{}
	c.Init(c)
	return c
}

// Content returns the presented value.
func (c *ContentControl) Content() any {
	return c.content
}

// SetContent assigns the presented value.
func (c *ContentControl) SetContent(content any) {
	c.content = content
}

// ContentTemplate returns the template used to materialize Content.
func (c *ContentControl) ContentTemplate() templates.Template {
	return c.contentTemplate
}

// SetContentTemplate assigns the template used to materialize Content.
func (c *ContentControl) SetContentTemplate(t templates.Template) {
	c.contentTemplate = t
}

// HeaderedContentControl is a ContentControl with a header slot above the
// content.
type HeaderedContentControl struct {
	ContentControl

	header         any
	headerTemplate templates.Template
}

var _ HeaderedContentHost = (*HeaderedContentControl)(nil)

func NewHeaderedContentControl() *HeaderedContentControl {
	c := &HeaderedContentControl{}
	c.Init(c)
	return c
}

// Header returns the header value.
func (c *HeaderedContentControl) Header() any {
	return c.header
}

// SetHeader assigns the header value.
func (c *HeaderedContentControl) SetHeader(header any) {
	c.header = header
}

// HeaderTemplate returns the template used to materialize the header.
func (c *HeaderedContentControl) HeaderTemplate() templates.Template {
	return c.headerTemplate
}

// SetHeaderTemplate assigns the template used to materialize the header.
func (c *HeaderedContentControl) SetHeaderTemplate(t templates.Template) {
	c.headerTemplate = t
}
