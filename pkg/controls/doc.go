// Package controls provides the item-collection control family: controls
// that project a data collection into realized container visuals.
//
// # ItemsControl
//
// ItemsControl is the orchestrator. It owns the Items collection reference,
// the cached item count, the logical children, templates and container
// themes, and the container lifecycle. A registered presenter
// (pkg/presenters) owns which containers are realized, the panel they live
// in, and the index bookkeeping for realized containers.
//
//	list := controls.NewItemsControl()
//	list.SetItems(collections.Of("alpha", "beta", "gamma"))
//	list.RegisterItemsPresenter(presenters.NewStackPresenter())
//
// Items may be any collections.Enumerable. When the collection also
// implements collections.Notifier (as ObservableList does), the control
// tracks structural changes incrementally instead of rebuilding.
//
// # Containers
//
// How an item becomes a container is a pluggable strategy, the
// ContainerGenerator. The default strategy treats items that are already
// visuals as their own containers and wraps everything else in a
// ContentPresenter. Preparation dispatches on container capabilities:
// HeaderedContentHost, then ContentHost, then nested ItemsHost, with
// HeaderedItemsHost (hierarchical containers) bound orthogonally.
//
// Content for generated containers comes from the control's ItemTemplate,
// or from DisplayMemberBinding, which derives a text template from a
// property path. The two are mutually exclusive; assigning both panics
// with a config error.
//
// # Hierarchy
//
// HeaderedItemsControl is the container type for tree-like data. Combined
// with a templates.TreeTemplate it presents the item as its header and binds
// the item's children as its own nested Items:
//
//	tree := controls.NewItemsControl()
//	tree.SetItemTemplate(templates.NewTree(nil, "Children"))
//	tree.SetContainerGenerator(myTreeGenerator)
//
// # Index bookkeeping
//
// The control implements semantics.ChildIndexProvider for accessibility and
// layout consumers. Index queries resolve even while a container is still
// being prepared, through a transient slot scoped to the prepare call.
package controls
