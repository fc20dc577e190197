package controls

import (
	"testing"

	"github.com/go-drift/vista/pkg/collections"
	"github.com/go-drift/vista/pkg/presenters"
	"github.com/go-drift/vista/pkg/templates"
	"github.com/go-drift/vista/pkg/themes"
	"github.com/go-drift/vista/pkg/visual"
)

// containerFactory keeps the default preparation dispatch but produces a
// specific container type, the way richer control families install their own
// strategies.
type containerFactory struct {
	ContainerGenerator
	create func() visual.Visual
}

func (g *containerFactory) IsItemItsOwnContainer(item any) bool { return false }

func (g *containerFactory) CreateContainer() visual.Visual { return g.create() }

func newFactoryControl(create func() visual.Visual) *ItemsControl {
	c := NewItemsControl()
	c.SetContainerGenerator(&containerFactory{
		ContainerGenerator: &defaultGenerator{control: c},
		create:             create,
	})
	return c
}

// badge carries its own header value.
type badge struct {
	label string
}

func (b badge) Header() any { return "badge:" + b.label }

func TestPrepareHeaderedContentHost(t *testing.T) {
	c := newFactoryControl(func() visual.Visual { return NewHeaderedContentControl() })
	c.SetItems(collections.Of(badge{label: "a"}, "plain"))
	c.RegisterItemsPresenter(presenters.NewStackPresenter())

	first := c.ContainerFromIndex(0).(*HeaderedContentControl)
	if first.Content() != any(badge{label: "a"}) {
		t.Errorf("Content = %v, want the item", first.Content())
	}
	if first.Header() != "badge:a" {
		t.Errorf("Header = %v, want the item's Headered value", first.Header())
	}

	second := c.ContainerFromIndex(1).(*HeaderedContentControl)
	if second.Content() != "plain" {
		t.Errorf("Content = %v, want plain", second.Content())
	}
	if second.Header() != "plain" {
		t.Error("a non-visual item without a Headered capability becomes its own header")
	}
}

func TestPrepareHeaderedContentHostVisualItem(t *testing.T) {
	c := newFactoryControl(func() visual.Visual { return NewHeaderedContentControl() })
	item := newTestItem("v")
	c.SetItems(collections.Of(item))
	c.RegisterItemsPresenter(presenters.NewStackPresenter())

	container := c.ContainerFromIndex(0).(*HeaderedContentControl)
	if got, ok := container.Content().(*testItem); !ok || got != item {
		t.Errorf("Content = %v, want the visual item", container.Content())
	}
	if container.Header() != nil {
		t.Error("visual items do not become their own header")
	}
}

func TestPrepareContentHostAppliesTemplate(t *testing.T) {
	tpl := templates.NewFunc(func(any) visual.Visual { return NewTextBlock() })
	c := NewItemsControl()
	c.SetItemTemplate(tpl)
	c.SetItems(collections.Of("a"))
	c.RegisterItemsPresenter(presenters.NewStackPresenter())

	container := c.ContainerFromIndex(0).(*presenters.ContentPresenter)
	if container.ContentTemplate() != templates.Template(tpl) {
		t.Error("the explicit template should flow to generated containers")
	}
	if container.Content() != "a" {
		t.Errorf("Content = %v, want a", container.Content())
	}
}

func TestPrepareNestedItemsHostPropagation(t *testing.T) {
	tpl := templates.NewFunc(func(any) visual.Visual { return NewTextBlock() })
	theme := themes.New("ContentPresenter")

	parent := newFactoryControl(func() visual.Visual { return NewItemsControl() })
	parent.SetItemTemplate(tpl)
	parent.SetItemContainerTheme(theme)
	parent.SetItems(collections.Of("group"))
	parent.RegisterItemsPresenter(presenters.NewStackPresenter())

	nested := parent.ContainerFromIndex(0).(*ItemsControl)
	if nested.ItemTemplate() != templates.Template(tpl) {
		t.Error("the item template should propagate into a nested host without one")
	}
	if nested.ItemContainerTheme() != theme {
		t.Error("the container theme should propagate into a nested host without one")
	}
}

func TestPrepareNestedHostKeepsOwnConfiguration(t *testing.T) {
	parentTpl := templates.NewFunc(func(any) visual.Visual { return NewTextBlock() })
	ownTpl := templates.NewFunc(func(any) visual.Visual { return NewTextBlock() })

	parent := newFactoryControl(func() visual.Visual {
		nested := NewItemsControl()
		nested.SetItemTemplate(ownTpl)
		return nested
	})
	parent.SetItemTemplate(parentTpl)
	parent.SetItems(collections.Of("group"))
	parent.RegisterItemsPresenter(presenters.NewStackPresenter())

	nested := parent.ContainerFromIndex(0).(*ItemsControl)
	if nested.ItemTemplate() != templates.Template(ownTpl) {
		t.Error("propagation must not overwrite the nested host's own template")
	}
}

func TestPrepareNestedHostWithBindingKeepsIt(t *testing.T) {
	binding := templates.NewBinding("Name")
	parent := newFactoryControl(func() visual.Visual {
		nested := NewItemsControl()
		nested.SetDisplayMemberBinding(binding)
		return nested
	})
	parent.SetItemTemplate(templates.NewFunc(func(any) visual.Visual { return NewTextBlock() }))
	parent.SetItems(collections.Of("group"))

	// Without the binding guard this would panic on the config conflict.
	parent.RegisterItemsPresenter(presenters.NewStackPresenter())

	nested := parent.ContainerFromIndex(0).(*ItemsControl)
	if nested.ItemTemplate() != nil {
		t.Error("a nested host with a display binding must not receive a template")
	}
	if nested.DisplayMemberBinding() != binding {
		t.Error("the nested host's binding should be untouched")
	}
}

type treeNode struct {
	Name string
	Kids []any
}

func TestPrepareHierarchicalContainer(t *testing.T) {
	tree := templates.NewTree(nil, "Kids")
	c := newFactoryControl(func() visual.Visual { return NewHeaderedItemsControl() })
	c.SetItemTemplate(tree)

	root := treeNode{
		Name: "root",
		Kids: []any{treeNode{Name: "kid1"}, treeNode{Name: "kid2"}},
	}
	list := collections.NewObservableList(root)
	c.SetItems(list)
	c.RegisterItemsPresenter(presenters.NewStackPresenter())

	container := c.ContainerFromIndex(0).(*HeaderedItemsControl)
	if got, ok := container.Header().(treeNode); !ok || got.Name != "root" {
		t.Errorf("Header = %v, want the item", container.Header())
	}
	if container.HeaderTemplate() != templates.Template(tree) {
		t.Error("the tree template should materialize the header")
	}
	if container.ItemTemplate() != templates.Template(tree) {
		t.Error("the tree template should recurse into nested items")
	}

	kids := container.Items()
	if kids == nil {
		t.Fatal("the child selector should bind nested items")
	}
	if got := collections.Count(kids); got != 2 {
		t.Errorf("bound child count = %d, want 2", got)
	}

	// Clearing the container releases the child binding.
	list.RemoveAt(0)
	if container.Items() != nil {
		t.Error("clear should release the bound child items")
	}
}

func TestPrepareHierarchicalLeafWithoutChildren(t *testing.T) {
	tree := templates.NewTree(nil, "Kids")
	c := newFactoryControl(func() visual.Visual { return NewHeaderedItemsControl() })
	c.SetItemTemplate(tree)
	c.SetItems(collections.Of("leaf"))
	c.RegisterItemsPresenter(presenters.NewStackPresenter())

	container := c.ContainerFromIndex(0).(*HeaderedItemsControl)
	if container.Header() != "leaf" {
		t.Errorf("Header = %v, want leaf", container.Header())
	}
	if container.Items() != nil {
		t.Error("an item without a child collection binds no nested items")
	}
}

type indexShift struct {
	container visual.Visual
	oldIndex  int
	newIndex  int
}

type indexObservingGenerator struct {
	ContainerGenerator
	shifts []indexShift
}

func (g *indexObservingGenerator) ContainerIndexChanged(container visual.Visual, oldIndex, newIndex int) {
	g.shifts = append(g.shifts, indexShift{container, oldIndex, newIndex})
}

func TestGeneratorObservesIndexShifts(t *testing.T) {
	c := NewItemsControl()
	g := &indexObservingGenerator{ContainerGenerator: &defaultGenerator{control: c}}
	c.SetContainerGenerator(g)
	list := collections.NewObservableList("a", "b", "c")
	c.SetItems(list)
	c.RegisterItemsPresenter(presenters.NewStackPresenter())

	list.RemoveAt(0)

	if len(g.shifts) != 2 {
		t.Fatalf("observed %d shifts, want 2", len(g.shifts))
	}
	if g.shifts[0].oldIndex != 1 || g.shifts[0].newIndex != 0 {
		t.Errorf("first shift = %+v, want 1 -> 0", g.shifts[0])
	}
	if g.shifts[1].oldIndex != 2 || g.shifts[1].newIndex != 1 {
		t.Errorf("second shift = %+v, want 2 -> 1", g.shifts[1])
	}
}

type recordingGenerator struct {
	ContainerGenerator
	prepared []any
	cleared  []visual.Visual
}

func (g *recordingGenerator) PrepareContainer(container visual.Visual, item any, index int) {
	g.prepared = append(g.prepared, item)
	g.ContainerGenerator.PrepareContainer(container, item, index)
}

func (g *recordingGenerator) ClearContainer(container visual.Visual) {
	g.cleared = append(g.cleared, container)
	g.ContainerGenerator.ClearContainer(container)
}

func TestSelfContainerSkipsPrepareHook(t *testing.T) {
	c := NewItemsControl()
	g := &recordingGenerator{ContainerGenerator: &defaultGenerator{control: c}}
	c.SetContainerGenerator(g)
	item := newTestItem("self")
	list := collections.NewObservableList(item, "scalar")
	c.SetItems(list)
	c.RegisterItemsPresenter(presenters.NewStackPresenter())

	if len(g.prepared) != 1 || g.prepared[0] != "scalar" {
		t.Errorf("prepare hook ran for %v, want only the scalar item", g.prepared)
	}

	// The clear hook runs for every container, self or generated.
	list.Clear()
	if len(g.cleared) != 2 {
		t.Errorf("clear hook ran %d times, want 2", len(g.cleared))
	}
}

func TestSetContainerGeneratorNilRestoresDefault(t *testing.T) {
	c := NewItemsControl()
	c.SetContainerGenerator(&recordingGenerator{ContainerGenerator: &defaultGenerator{control: c}})
	c.SetContainerGenerator(nil)
	if _, ok := c.ContainerGenerator().(*defaultGenerator); !ok {
		t.Errorf("generator = %T, want the default strategy", c.ContainerGenerator())
	}
}
