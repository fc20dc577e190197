package controls

import (
	"fmt"
	"time"

	"github.com/go-drift/vista/pkg/collections"
	"github.com/go-drift/vista/pkg/errors"
	"github.com/go-drift/vista/pkg/input"
	"github.com/go-drift/vista/pkg/presenters"
	"github.com/go-drift/vista/pkg/semantics"
	"github.com/go-drift/vista/pkg/templates"
	"github.com/go-drift/vista/pkg/themes"
	"github.com/go-drift/vista/pkg/visual"
)

// Pseudo-classes reflecting the collection's count state.
const (
	pseudoEmpty      = ":empty"
	pseudoSingleItem = ":singleitem"
)

// preparingContainer is the transient slot naming the container currently
// inside PrepareItemContainer. Index queries consult it so that bindings
// firing during preparation resolve, before the presenter has recorded the
// container.
type preparingContainer struct {
	index     int
	container visual.Visual
}

// containerState records what PrepareItemContainer established on one
// container, so ClearItemContainer can undo exactly that.
type containerState struct {
	dataContextSet bool
	nestedItemsSet bool
}

// ItemsControl presents a collection of items as container visuals.
//
// The control owns the collection reference, the cached count, the logical
// children and the container lifecycle. Which containers are realized, and
// the panel they live in, belongs to a registered presenters.ItemsPresenter.
// All methods must be called from the UI thread; reentrant callbacks during
// preparation are tolerated, concurrent calls are not.
type ItemsControl struct {
	visual.Base

	// self is the outermost visual identity, so embedding control types
	// keep a consistent tree.
	self visual.Visual

	items     collections.Enumerable
	itemCount int
	watcher   *collectionWatcher

	generator       ContainerGenerator
	itemTemplate    templates.Template
	displayBinding  *templates.Binding
	displayTemplate templates.Template

	containerTheme *themes.ControlTheme
	panelFactory   func() presenters.Panel
	wrapFocus      bool

	presenter presenters.ItemsPresenter
	panel     presenters.Panel

	logicalChildren []visual.Visual

	preparing *preparingContainer
	prepared  map[visual.Visual]containerState

	indexListeners map[int]func(semantics.ChildIndexChange)
	itemsListeners map[int]func(collections.Change)
	nextListenerID int
}

var (
	_ presenters.Host              = (*ItemsControl)(nil)
	_ semantics.ChildIndexProvider = (*ItemsControl)(nil)
	_ ItemsHost                    = (*ItemsControl)(nil)
)

// NewItemsControl returns an empty control with the default container
// strategy and a vertical stack panel.
func NewItemsControl() *ItemsControl {
	c := &ItemsControl{}
	c.initItemsControl(c)
	return c
}

// initItemsControl wires the control state for self, which is the outermost
// value when a control type embeds ItemsControl.
func (c *ItemsControl) initItemsControl(self visual.Visual) {
	c.Init(self)
	c.self = self
	c.generator = &defaultGenerator{control: c}
	c.prepared = make(map[visual.Visual]containerState)
	c.indexListeners = make(map[int]func(semantics.ChildIndexChange))
	c.itemsListeners = make(map[int]func(collections.Change))
	c.refreshCountFlags()
}

// Items returns the current collection, or nil when none is assigned.
func (c *ItemsControl) Items() collections.Enumerable {
	return c.items
}

// SetItems assigns the backing collection. The old collection's subscription
// is dropped, the count recomputed, the logical children rebuilt from the
// new collection's visual items, and a reset relayed to the presenter.
// The collection stays shared: the control only holds a change subscription,
// never exclusive ownership.
func (c *ItemsControl) SetItems(items collections.Enumerable) {
	if c.watcher != nil {
		c.watcher.detach()
		c.watcher = nil
	}
	c.items = items
	c.itemCount = collections.Count(items)

	c.logicalChildren = c.logicalChildren[:0]
	if items != nil {
		items.Each(func(_ int, item any) bool {
			c.addLogicalChild(item)
			return true
		})
	}

	if notifier, ok := items.(collections.Notifier); ok {
		c.watcher = newCollectionWatcher(c, notifier)
	}

	c.refreshCountFlags()
	c.notifyItemsChanged(collections.Change{
		Action:   collections.ChangeReset,
		NewIndex: -1,
		OldIndex: -1,
	})
	log.V(1).Info("items assigned", "control", c.StyleKey(), "count", c.itemCount)
}

// ItemCount returns the cached number of items. Counting never traverses
// the collection here; the cache is maintained on assignment and on every
// change notification.
func (c *ItemsControl) ItemCount() int {
	return c.itemCount
}

// ItemAt returns the item at index, or (nil, false) out of range.
func (c *ItemsControl) ItemAt(index int) (any, bool) {
	return collections.ItemAt(c.items, index)
}

// LogicalChildren returns the items that are visuals, in collection order at
// the time they were added. Only Add and Remove changes adjust membership;
// replaced and moved items keep their original membership until Items is
// reassigned.
func (c *ItemsControl) LogicalChildren() []visual.Visual {
	out := make([]visual.Visual, len(c.logicalChildren))
	copy(out, c.logicalChildren)
	return out
}

// ItemTemplate returns the explicit item template.
func (c *ItemsControl) ItemTemplate() templates.Template {
	return c.itemTemplate
}

// SetItemTemplate assigns the template used to materialize generated
// containers' content. Panics with a config error when a display member
// binding is already set; the control keeps its previous state.
func (c *ItemsControl) SetItemTemplate(t templates.Template) {
	if t != nil && c.displayBinding != nil {
		panic(&errors.ControlError{
			Op:         "controls.ItemsControl.SetItemTemplate",
			Kind:       errors.KindConfig,
			Err:        ErrTemplateBindingConflict,
			StackTrace: errors.CaptureStack(),
			Timestamp:  time.Now(),
		})
	}
	c.itemTemplate = t
	c.refreshPresenter()
}

// DisplayMemberBinding returns the property path binding items are rendered
// through when no template is set.
func (c *ItemsControl) DisplayMemberBinding() *templates.Binding {
	return c.displayBinding
}

// SetDisplayMemberBinding assigns the binding whose resolved value becomes
// each item's display text. Panics with a config error when an item template
// is already set; the control keeps its previous state.
func (c *ItemsControl) SetDisplayMemberBinding(b *templates.Binding) {
	if b != nil && c.itemTemplate != nil {
		panic(&errors.ControlError{
			Op:         "controls.ItemsControl.SetDisplayMemberBinding",
			Kind:       errors.KindConfig,
			Err:        ErrTemplateBindingConflict,
			StackTrace: errors.CaptureStack(),
			Timestamp:  time.Now(),
		})
	}
	c.displayBinding = b
	c.displayTemplate = nil
	c.refreshPresenter()
}

// effectiveTemplate resolves what generated containers render with: the
// explicit template, else a text template derived from the display member
// binding. The derived template is memoized until the binding changes.
func (c *ItemsControl) effectiveTemplate() templates.Template {
	if c.itemTemplate != nil {
		return c.itemTemplate
	}
	if c.displayBinding == nil {
		return nil
	}
	if c.displayTemplate == nil {
		binding := c.displayBinding
		c.displayTemplate = templates.NewFunc(func(item any) visual.Visual {
			text := NewTextBlock()
			if value, ok := binding.Eval(item); ok {
				text.SetText(fmt.Sprintf("%v", value))
			} else {
				log.V(1).Info("display member binding did not resolve",
					"path", binding.Path, "item", fmt.Sprintf("%T", item))
			}
			return text
		})
	}
	return c.displayTemplate
}

// ItemContainerTheme returns the theme applied to generated containers.
func (c *ItemsControl) ItemContainerTheme() *themes.ControlTheme {
	return c.containerTheme
}

// SetItemContainerTheme assigns the theme applied to prepared containers
// whose style key matches the theme's target type.
func (c *ItemsControl) SetItemContainerTheme(theme *themes.ControlTheme) {
	c.containerTheme = theme
	c.refreshPresenter()
}

// ContainerGenerator returns the active container strategy.
func (c *ItemsControl) ContainerGenerator() ContainerGenerator {
	return c.generator
}

// SetContainerGenerator replaces the container strategy. Passing nil
// restores the default.
func (c *ItemsControl) SetContainerGenerator(g ContainerGenerator) {
	if g == nil {
		g = &defaultGenerator{control: c}
	}
	c.generator = g
	c.refreshPresenter()
}

// WrapFocus reports whether directional navigation wraps at the ends.
func (c *ItemsControl) WrapFocus() bool {
	return c.wrapFocus
}

// SetWrapFocus controls whether directional navigation wraps at the ends.
func (c *ItemsControl) SetWrapFocus(wrap bool) {
	c.wrapFocus = wrap
}

// PanelFactory returns the custom panel factory, or nil when the default
// vertical stack panel is in use.
func (c *ItemsControl) PanelFactory() func() presenters.Panel {
	return c.panelFactory
}

// SetPanelFactory replaces how the items panel is built. Passing nil
// restores the default vertical stack panel. When a presenter is attached
// it is re-attached so the new panel takes effect.
func (c *ItemsControl) SetPanelFactory(factory func() presenters.Panel) {
	c.panelFactory = factory
	if c.presenter != nil {
		p := c.presenter
		p.Detach()
		c.panel = nil
		p.Attach(c)
	}
}

// RegisterItemsPresenter attaches p as the control's presenter, detaching
// any previous one. Passing nil just detaches.
func (c *ItemsControl) RegisterItemsPresenter(p presenters.ItemsPresenter) {
	if c.presenter != nil {
		c.presenter.Detach()
		c.panel = nil
	}
	c.presenter = p
	if p != nil {
		p.Attach(c)
		log.V(1).Info("items presenter registered", "control", c.StyleKey())
	}
}

// Presenter returns the registered presenter, or nil.
func (c *ItemsControl) Presenter() presenters.ItemsPresenter {
	return c.presenter
}

// Panel returns the realized items panel, or nil before a presenter
// attaches.
func (c *ItemsControl) Panel() presenters.Panel {
	return c.panel
}

// CreateItemsPanel builds the panel containers are placed in.
func (c *ItemsControl) CreateItemsPanel() presenters.Panel {
	if c.panelFactory != nil {
		return c.panelFactory()
	}
	return presenters.NewStackPanel()
}

// AdoptItemsPanel attaches the presenter's panel under the control.
func (c *ItemsControl) AdoptItemsPanel(panel presenters.Panel) {
	panel.SetParent(c.self)
	c.panel = panel
}

// RealizeContainer returns the container for item: the item itself when the
// generator says it is its own container, otherwise a freshly generated one.
func (c *ItemsControl) RealizeContainer(item any, index int) visual.Visual {
	if c.generator.IsItemItsOwnContainer(item) {
		if v, ok := item.(visual.Visual); ok {
			return v
		}
	}
	return c.generator.CreateContainer()
}

// PrepareItemContainer binds item onto container: theme first, then data
// context, then the generator's capability dispatch, then the index-changed
// notification. The container must already be attached under the control's
// visual subtree so preparation hooks observe a live tree; a detached
// container panics with a precondition error.
//
// While the call runs, the container is visible to index queries through
// the transient preparing slot. The slot is cleared on every return path,
// including panics out of preparation hooks.
func (c *ItemsControl) PrepareItemContainer(container visual.Visual, item any, index int) {
	if container == nil || !visual.IsDescendant(container, c.self) {
		panic(&errors.ControlError{
			Op:         "controls.ItemsControl.PrepareItemContainer",
			Kind:       errors.KindPrecondition,
			Err:        ErrContainerNotAttached,
			Container:  fmt.Sprintf("%T", container),
			StackTrace: errors.CaptureStack(),
			Timestamp:  time.Now(),
		})
	}

	c.applyContainerTheme(container)

	state := containerState{}
	if _, isVisual := item.(visual.Visual); !isVisual {
		if host, ok := container.(visual.DataContextHost); ok {
			host.SetDataContext(item)
			state.dataContextSet = true
		}
	}
	c.prepared[container] = state

	c.preparing = &preparingContainer{index: index, container: container}
	defer func() { c.preparing = nil }()

	if v, ok := item.(visual.Visual); !ok || v != container {
		c.generator.PrepareContainer(container, item, index)
	}

	c.notifyChildIndexChanged(container, index)
}

// ClearItemContainer releases what PrepareItemContainer established: the
// data context when prepare assigned one, nested item bindings on
// hierarchical containers, then the generator's clear hook.
func (c *ItemsControl) ClearItemContainer(container visual.Visual) {
	if container == nil {
		return
	}
	if state, ok := c.prepared[container]; ok {
		delete(c.prepared, container)
		if state.dataContextSet {
			if host, ok := container.(visual.DataContextHost); ok {
				host.SetDataContext(nil)
			}
		}
		if state.nestedItemsSet {
			if host, ok := container.(ItemsHost); ok {
				host.SetItems(nil)
			}
		}
	}
	c.generator.ClearContainer(container)
}

// ItemContainerIndexChanged relays a realized container's index shift to the
// generator (when it observes indices) and to child-index listeners.
func (c *ItemsControl) ItemContainerIndexChanged(container visual.Visual, oldIndex, newIndex int) {
	if observer, ok := c.generator.(ContainerIndexObserver); ok {
		observer.ContainerIndexChanged(container, oldIndex, newIndex)
	}
	c.notifyChildIndexChanged(container, newIndex)
}

// markNestedItemsBound records that preparation bound nested items onto
// container, so ClearItemContainer releases them.
func (c *ItemsControl) markNestedItemsBound(container visual.Visual) {
	state := c.prepared[container]
	state.nestedItemsSet = true
	c.prepared[container] = state
}

// applyContainerTheme assigns the item container theme when the container
// is themeable, has no explicit theme of its own, and its style key matches
// the theme's target type.
func (c *ItemsControl) applyContainerTheme(container visual.Visual) {
	theme := c.containerTheme
	if theme == nil {
		return
	}
	themeable, ok := container.(visual.Themeable)
	if !ok {
		return
	}
	if themeable.Theme() != nil {
		return
	}
	if themeable.StyleKey() != theme.TargetType {
		return
	}
	themeable.SetTheme(theme)
}

// ContainerFromIndex returns the realized container at index, or nil when
// none is realized there.
func (c *ItemsControl) ContainerFromIndex(index int) visual.Visual {
	if c.presenter == nil {
		return nil
	}
	return c.presenter.ContainerFromIndex(index)
}

// IndexFromContainer returns the index container represents, or -1 when the
// container is not realized.
func (c *ItemsControl) IndexFromContainer(container visual.Visual) int {
	if c.presenter == nil {
		return -1
	}
	return c.presenter.IndexFromContainer(container)
}

// ContainerFromItem returns the realized container for item, or nil. The
// lookup traverses the collection for the item's index, so it is linear.
func (c *ItemsControl) ContainerFromItem(item any) visual.Visual {
	index := collections.IndexOf(c.items, item)
	if index < 0 {
		return nil
	}
	return c.ContainerFromIndex(index)
}

// ItemFromContainer returns the item container currently represents, or nil.
// The item is re-derived positionally from the collection, so a container
// whose index is stale against the collection yields nil rather than a
// wrong item.
func (c *ItemsControl) ItemFromContainer(container visual.Visual) any {
	index := c.IndexFromContainer(container)
	if index < 0 || index >= c.itemCount {
		return nil
	}
	item, ok := collections.ItemAt(c.items, index)
	if !ok {
		return nil
	}
	return item
}

// RealizedContainers returns the realized containers in index order, or nil
// before a presenter attaches.
func (c *ItemsControl) RealizedContainers() []visual.Visual {
	if c.presenter == nil {
		return nil
	}
	return c.presenter.RealizedContainers()
}

// ChildIndex reports the item index child represents, or -1. The container
// currently being prepared resolves here before the presenter has recorded
// it, so index queries from inside preparation hooks work.
func (c *ItemsControl) ChildIndex(child visual.Visual) int {
	if p := c.preparing; p != nil && p.container == child {
		return p.index
	}
	return c.IndexFromContainer(child)
}

// TotalCount reports the cached item count. The cache is maintained eagerly,
// so the count is always known.
func (c *ItemsControl) TotalCount() (int, bool) {
	return c.itemCount, true
}

// AddChildIndexChangedListener subscribes fn to container index
// notifications. The returned function removes the subscription.
func (c *ItemsControl) AddChildIndexChangedListener(fn func(semantics.ChildIndexChange)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.indexListeners[id] = fn
	return func() {
		delete(c.indexListeners, id)
	}
}

// AddItemsChangedListener subscribes fn to the control's relayed collection
// changes. The returned function removes the subscription.
func (c *ItemsControl) AddItemsChangedListener(fn func(collections.Change)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.itemsListeners[id] = fn
	return func() {
		delete(c.itemsListeners, id)
	}
}

// OnKeyDown implements directional keyboard navigation across realized
// containers. When a new container takes focus the event is marked handled;
// otherwise it is left for an enclosing control.
func (c *ItemsControl) OnKeyDown(event *input.KeyEvent) {
	if event == nil || event.Handled {
		return
	}
	direction, ok := input.DirectionFromKey(event.Key)
	if !ok {
		return
	}
	panel := c.panel
	if panel == nil {
		return
	}
	navigable, ok := panel.(presenters.NavigableContainer)
	if !ok {
		return
	}
	from := immediatePanelChild(panel, input.GetFocusManager().Focused())
	if from == nil {
		return
	}
	next := c.scanFocusable(navigable, from, direction)
	if next == nil {
		return
	}
	if input.GetFocusManager().Focus(next) {
		event.Handled = true
	}
}

// onCollectionChanged is the watcher's entry point for collection changes.
// The count cache always tracks the collection; logical membership follows
// only Add and Remove.
func (c *ItemsControl) onCollectionChanged(change collections.Change) {
	c.itemCount = collections.Count(c.items)

	switch change.Action {
	case collections.ChangeAdd:
		for _, item := range change.NewItems {
			c.addLogicalChild(item)
		}
	case collections.ChangeRemove:
		for _, item := range change.OldItems {
			c.removeLogicalChild(item)
		}
	}

	c.refreshCountFlags()
	c.notifyItemsChanged(change)
}

// addLogicalChild appends item when it is a visual not already tracked.
func (c *ItemsControl) addLogicalChild(item any) {
	v, ok := item.(visual.Visual)
	if !ok {
		return
	}
	for _, existing := range c.logicalChildren {
		if existing == v {
			return
		}
	}
	c.logicalChildren = append(c.logicalChildren, v)
}

func (c *ItemsControl) removeLogicalChild(item any) {
	v, ok := item.(visual.Visual)
	if !ok {
		return
	}
	for i, existing := range c.logicalChildren {
		if existing == v {
			c.logicalChildren = append(c.logicalChildren[:i], c.logicalChildren[i+1:]...)
			return
		}
	}
}

// refreshCountFlags keeps the count pseudo-classes in sync with the cache.
func (c *ItemsControl) refreshCountFlags() {
	c.SetPseudoClass(pseudoEmpty, c.itemCount == 0)
	c.SetPseudoClass(pseudoSingleItem, c.itemCount == 1)
}

func (c *ItemsControl) refreshPresenter() {
	if c.presenter != nil {
		c.presenter.Refresh()
	}
}

func (c *ItemsControl) notifyChildIndexChanged(container visual.Visual, index int) {
	change := semantics.ChildIndexChange{Child: container, Index: index}
	for _, fn := range c.indexListeners {
		fn(change)
	}
}

func (c *ItemsControl) notifyItemsChanged(change collections.Change) {
	for _, fn := range c.itemsListeners {
		fn(change)
	}
}

// scanFocusable repeatedly asks the panel for the next container in
// direction, skipping candidates that cannot take focus. First and Last
// degrade to directional scans after their initial jump. The scan gives up
// when the panel runs out of candidates or hands back the starting
// container.
func (c *ItemsControl) scanFocusable(navigable presenters.NavigableContainer, from visual.Visual, direction input.NavigationDirection) visual.Visual {
	current := from
	for {
		candidate := navigable.GetControl(direction, current, c.wrapFocus)
		if candidate == nil || candidate == from {
			return nil
		}
		if input.CanReceiveFocus(candidate) {
			return candidate
		}
		switch direction {
		case input.NavigationDirectionFirst:
			direction = input.NavigationDirectionDown
		case input.NavigationDirectionLast:
			direction = input.NavigationDirectionUp
		}
		current = candidate
	}
}

// immediatePanelChild walks up from node to the panel child containing it,
// or nil when node is not inside the panel.
func immediatePanelChild(panel presenters.Panel, node visual.Visual) visual.Visual {
	for node != nil {
		parent := node.Parent()
		if parent == visual.Visual(panel) {
			return node
		}
		node = parent
	}
	return nil
}
