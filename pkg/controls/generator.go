package controls

import (
	"github.com/go-drift/vista/pkg/collections"
	"github.com/go-drift/vista/pkg/presenters"
	"github.com/go-drift/vista/pkg/templates"
	"github.com/go-drift/vista/pkg/themes"
	"github.com/go-drift/vista/pkg/visual"
)

// ContainerGenerator decides how items become container visuals. The default
// strategy treats items that are already visuals as their own containers and
// wraps everything else in a ContentPresenter; controls with richer container
// types install their own strategy via SetContainerGenerator.
type ContainerGenerator interface {
	// IsItemItsOwnContainer reports whether item can go into the panel
	// as-is, with no generated wrapper.
	IsItemItsOwnContainer(item any) bool

	// CreateContainer builds an empty container for one item.
	CreateContainer() visual.Visual

	// PrepareContainer binds item state onto container. It is not called
	// when the item is its own container.
	PrepareContainer(container visual.Visual, item any, index int)

	// ClearContainer releases whatever PrepareContainer bound, so the
	// container can be discarded or reused.
	ClearContainer(container visual.Visual)
}

// ContainerIndexObserver is an optional ContainerGenerator capability for
// strategies that track where their realized containers sit.
type ContainerIndexObserver interface {
	ContainerIndexChanged(container visual.Visual, oldIndex, newIndex int)
}

// Headered is implemented by items that carry their own header value. It is
// consulted when preparing header-and-content containers.
type Headered interface {
	Header() any
}

// ContentHost is the capability of containers with a single content slot.
type ContentHost interface {
	SetContent(content any)
	SetContentTemplate(t templates.Template)
}

// HeaderedContentHost is the capability of containers with a header slot
// above their content slot.
type HeaderedContentHost interface {
	ContentHost
	SetHeader(header any)
	SetHeaderTemplate(t templates.Template)
}

// ItemsHost is the capability of containers that host nested items. During
// preparation the owning control hands its item template and container theme
// down to hosts that have none of their own.
type ItemsHost interface {
	Items() collections.Enumerable
	SetItems(items collections.Enumerable)
	ItemTemplate() templates.Template
	SetItemTemplate(t templates.Template)
	ItemContainerTheme() *themes.ControlTheme
	SetItemContainerTheme(theme *themes.ControlTheme)
}

// HeaderedItemsHost is the capability of hierarchical containers: nested
// items plus a header presenting the item itself.
type HeaderedItemsHost interface {
	ItemsHost
	SetHeader(header any)
	SetHeaderTemplate(t templates.Template)
}

// NewDefaultGenerator returns the built-in container strategy bound to
// control. Custom strategies can embed it and override single methods,
// keeping the default preparation dispatch.
func NewDefaultGenerator(control *ItemsControl) ContainerGenerator {
	return &defaultGenerator{control: control}
}

// defaultGenerator is the built-in container strategy.
type defaultGenerator struct {
	control *ItemsControl
}

var _ ContainerGenerator = (*defaultGenerator)(nil)

func (g *defaultGenerator) IsItemItsOwnContainer(item any) bool {
	_, ok := item.(visual.Visual)
	return ok
}

func (g *defaultGenerator) CreateContainer() visual.Visual {
	return presenters.NewContentPresenter()
}

// PrepareContainer dispatches on the container's capabilities, most specific
// first. Hierarchical hosts additionally get their header and child items
// bound, orthogonally to the content dispatch.
func (g *defaultGenerator) PrepareContainer(container visual.Visual, item any, index int) {
	template := g.control.effectiveTemplate()

	if host, ok := container.(HeaderedContentHost); ok {
		host.SetContent(item)
		if h, ok := item.(Headered); ok {
			host.SetHeader(h.Header())
		} else if _, isVisual := item.(visual.Visual); !isVisual {
			host.SetHeader(item)
		}
		host.SetHeaderTemplate(template)
	} else if host, ok := container.(ContentHost); ok {
		host.SetContent(item)
		host.SetContentTemplate(template)
	} else if host, ok := container.(ItemsHost); ok {
		g.propagate(host)
	}

	if host, ok := container.(HeaderedItemsHost); ok {
		host.SetHeader(item)
		host.SetHeaderTemplate(template)
		if tree, ok := template.(*templates.TreeTemplate); ok {
			if children, ok := tree.ItemsFor(item); ok {
				host.SetItems(children)
				g.control.markNestedItemsBound(container)
			}
		}
	}
}

// propagate hands the control's template and container theme down to a
// nested items host. Nothing the host configured itself is overwritten.
func (g *defaultGenerator) propagate(host ItemsHost) {
	if host.ItemTemplate() == nil && g.control.itemTemplate != nil {
		if b, ok := host.(interface{ DisplayMemberBinding() *templates.Binding }); !ok || b.DisplayMemberBinding() == nil {
			host.SetItemTemplate(g.control.itemTemplate)
		}
	}
	if host.ItemContainerTheme() == nil && g.control.containerTheme != nil {
		host.SetItemContainerTheme(g.control.containerTheme)
	}
}

func (g *defaultGenerator) ClearContainer(container visual.Visual) {}
