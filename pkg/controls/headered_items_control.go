package controls

import (
	"github.com/go-drift/vista/pkg/templates"
)

// HeaderedItemsControl is an items control with a header slot: the container
// type for hierarchical data, where each container presents its item as the
// header and the item's children as its own nested items.
type HeaderedItemsControl struct {
	ItemsControl

	header         any
	headerTemplate templates.Template
}

var _ HeaderedItemsHost = (*HeaderedItemsControl)(nil)

func NewHeaderedItemsControl() *HeaderedItemsControl {
	c := &HeaderedItemsControl{}
	c.initItemsControl(c)
	return c
}

// Header returns the header value.
func (c *HeaderedItemsControl) Header() any {
	return c.header
}

// SetHeader assigns the header value.
func (c *HeaderedItemsControl) SetHeader(header any) {
	c.header = header
}

// HeaderTemplate returns the template used to materialize the header.
func (c *HeaderedItemsControl) HeaderTemplate() templates.Template {
	return c.headerTemplate
}

// SetHeaderTemplate assigns the template used to materialize the header.
func (c *HeaderedItemsControl) SetHeaderTemplate(t templates.Template) {
	c.headerTemplate = t
}
