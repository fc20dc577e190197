// Package presenters realizes visual containers for the items of a host
// control. The host owns the collection, the count and the container
// lifecycle; a presenter owns which items are realized, the panel they live
// in and the index bookkeeping for realized containers.
package presenters

import (
	"github.com/go-drift/vista/pkg/collections"
	"github.com/go-drift/vista/pkg/visual"
)

// Host is the view a presenter has of its owning control.
type Host interface {
	// ItemCount returns the host's cached item count.
	ItemCount() int
	// ItemAt returns the item at index, or (nil, false) out of range.
	ItemAt(index int) (any, bool)

	// RealizeContainer returns the container for item: the item itself when
	// it is its own container, otherwise a freshly generated one.
	RealizeContainer(item any, index int) visual.Visual
	// PrepareItemContainer binds item state onto a container that is already
	// attached under the host's visual subtree.
	PrepareItemContainer(container visual.Visual, item any, index int)
	// ClearItemContainer undoes prepare-time state so the container can be
	// discarded or reused.
	ClearItemContainer(container visual.Visual)
	// ItemContainerIndexChanged tells the host a realized container now
	// represents a different index.
	ItemContainerIndexChanged(container visual.Visual, oldIndex, newIndex int)

	// CreateItemsPanel builds the panel containers are placed in.
	CreateItemsPanel() Panel
	// AdoptItemsPanel attaches the panel under the host's visual subtree.
	// Presenters call it once, before realizing any container.
	AdoptItemsPanel(panel Panel)

	// AddItemsChangedListener subscribes fn to the host's relayed collection
	// changes. The returned function removes the subscription.
	AddItemsChangedListener(fn func(collections.Change)) func()
}

// ItemsPresenter realizes item containers on behalf of a Host.
type ItemsPresenter interface {
	// Attach binds the presenter to its host. The host calls it exactly once,
	// at registration.
	Attach(host Host)
	// Detach releases everything Attach built.
	Detach()

	// Panel returns the realized items panel, or nil before Attach.
	Panel() Panel
	// ContainerFromIndex returns the realized container at index, or nil.
	ContainerFromIndex(index int) visual.Visual
	// IndexFromContainer returns the index container represents, or -1.
	IndexFromContainer(container visual.Visual) int
	// RealizedContainers returns the realized containers in index order.
	RealizedContainers() []visual.Visual
	// Refresh discards and re-realizes every container.
	Refresh()
}
