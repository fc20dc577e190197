package presenters

import (
	"github.com/go-drift/vista/pkg/collections"
	"github.com/go-drift/vista/pkg/visual"
)

// StackPresenter is the non-virtualizing items presenter: every item gets a
// realized container, kept in collection order in the items panel.
//
// Incremental collection changes are patched in place; anything the patch
// cannot reconcile falls back to a full Refresh.
type StackPresenter struct {
	host        Host
	panel       Panel
	containers  []visual.Visual
	unsubscribe func()
}

// NewStackPresenter returns an unattached presenter.
func NewStackPresenter() *StackPresenter {
	return &StackPresenter{}
}

// Attach binds the presenter to host, builds the items panel and realizes a
// container for every item. Attaching twice is a no-op.
func (p *StackPresenter) Attach(host Host) {
	if p.host != nil || host == nil {
		return
	}
	p.host = host
	p.panel = host.CreateItemsPanel()
	host.AdoptItemsPanel(p.panel)
	p.realizeAll()
	p.unsubscribe = host.AddItemsChangedListener(p.onItemsChanged)
}

// Detach clears every container and releases the panel and subscription.
func (p *StackPresenter) Detach() {
	if p.host == nil {
		return
	}
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
	p.clearAll()
	p.panel.SetParent(nil)
	p.panel = nil
	p.host = nil
}

// Panel returns the items panel, or nil before Attach.
func (p *StackPresenter) Panel() Panel {
	return p.panel
}

// ContainerFromIndex returns the realized container at index, or nil.
func (p *StackPresenter) ContainerFromIndex(index int) visual.Visual {
	if index < 0 || index >= len(p.containers) {
		return nil
	}
	return p.containers[index]
}

// IndexFromContainer returns the index container represents, or -1.
func (p *StackPresenter) IndexFromContainer(container visual.Visual) int {
	for i, c := range p.containers {
		if c == container {
			return i
		}
	}
	return -1
}

// RealizedContainers returns the realized containers in index order.
func (p *StackPresenter) RealizedContainers() []visual.Visual {
	out := make([]visual.Visual, len(p.containers))
	copy(out, p.containers)
	return out
}

// Refresh discards and re-realizes every container.
func (p *StackPresenter) Refresh() {
	if p.host == nil {
		return
	}
	p.clearAll()
	p.realizeAll()
}

func (p *StackPresenter) realizeAll() {
	count := p.host.ItemCount()
	for i := 0; i < count; i++ {
		item, ok := p.host.ItemAt(i)
		if !ok {
			break
		}
		p.realizeAt(i, item)
	}
}

// realizeAt inserts a prepared container for item at index. The container is
// attached to the panel before preparation so the host's attachment
// precondition holds.
func (p *StackPresenter) realizeAt(index int, item any) {
	container := p.host.RealizeContainer(item, index)
	if index >= len(p.containers) {
		p.containers = append(p.containers, container)
	} else {
		p.containers = append(p.containers, nil)
		copy(p.containers[index+1:], p.containers[index:])
		p.containers[index] = container
	}
	p.panel.InsertChildAt(index, container)
	p.host.PrepareItemContainer(container, item, index)
}

func (p *StackPresenter) unrealizeAt(index int) {
	container := p.containers[index]
	p.host.ClearItemContainer(container)
	p.panel.RemoveChild(container)
	p.containers = append(p.containers[:index], p.containers[index+1:]...)
}

func (p *StackPresenter) clearAll() {
	for i := len(p.containers) - 1; i >= 0; i-- {
		p.unrealizeAt(i)
	}
	p.containers = nil
}

func (p *StackPresenter) onItemsChanged(change collections.Change) {
	switch change.Action {
	case collections.ChangeAdd:
		p.insertRange(change.NewIndex, change.NewItems)
	case collections.ChangeRemove:
		p.removeRange(change.OldIndex, len(change.OldItems))
	case collections.ChangeReplace:
		p.replaceRange(change.NewIndex, change.NewItems)
	case collections.ChangeMove:
		if len(change.NewItems) == 1 {
			p.moveOne(change.OldIndex, change.NewIndex)
		} else {
			p.Refresh()
		}
	default:
		p.Refresh()
	}
}

func (p *StackPresenter) insertRange(index int, items []any) {
	if index < 0 || index > len(p.containers) {
		p.Refresh()
		return
	}
	for k, item := range items {
		p.realizeAt(index+k, item)
	}
	// Containers after the inserted block represent shifted indices now.
	for j := index + len(items); j < len(p.containers); j++ {
		p.host.ItemContainerIndexChanged(p.containers[j], j-len(items), j)
	}
}

func (p *StackPresenter) removeRange(index, count int) {
	if index < 0 || count < 0 || index+count > len(p.containers) {
		p.Refresh()
		return
	}
	for k := 0; k < count; k++ {
		p.unrealizeAt(index)
	}
	for j := index; j < len(p.containers); j++ {
		p.host.ItemContainerIndexChanged(p.containers[j], j+count, j)
	}
}

func (p *StackPresenter) replaceRange(index int, items []any) {
	if index < 0 || index+len(items) > len(p.containers) {
		p.Refresh()
		return
	}
	for k, item := range items {
		p.unrealizeAt(index + k)
		p.realizeAt(index+k, item)
	}
}

func (p *StackPresenter) moveOne(oldIndex, newIndex int) {
	if oldIndex < 0 || oldIndex >= len(p.containers) ||
		newIndex < 0 || newIndex >= len(p.containers) || oldIndex == newIndex {
		if oldIndex != newIndex {
			p.Refresh()
		}
		return
	}

	container := p.containers[oldIndex]
	p.containers = append(p.containers[:oldIndex], p.containers[oldIndex+1:]...)
	p.containers = append(p.containers, nil)
	copy(p.containers[newIndex+1:], p.containers[newIndex:])
	p.containers[newIndex] = container
	p.panel.RemoveChild(container)
	p.panel.InsertChildAt(newIndex, container)

	lo, hi := oldIndex, newIndex
	if lo > hi {
		lo, hi = hi, lo
	}
	for j := lo; j <= hi; j++ {
		old := j
		switch {
		case j == newIndex:
			old = oldIndex
		case oldIndex < newIndex:
			old = j + 1
		default:
			old = j - 1
		}
		p.host.ItemContainerIndexChanged(p.containers[j], old, j)
	}
}
