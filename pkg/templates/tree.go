package templates

import (
	"reflect"

	"github.com/go-drift/vista/pkg/collections"
	"github.com/go-drift/vista/pkg/visual"
)

// TreeTemplate represents hierarchical items: it builds the item visual like
// any template and additionally selects the item's child collection, so a
// nested items host can bind its own items to it.
type TreeTemplate struct {
	// Inner builds the per-item visual. It may be nil when containers render
	// items directly.
	Inner Template
	// ItemsBinding selects the child collection from an item.
	ItemsBinding *Binding
}

// NewTree builds a tree template from an inner template and a child-items
// binding path.
func NewTree(inner Template, itemsPath string) *TreeTemplate {
	return &TreeTemplate{Inner: inner, ItemsBinding: NewBinding(itemsPath)}
}

func (t *TreeTemplate) Build(item any) visual.Visual {
	if t.Inner == nil {
		return nil
	}
	return t.Inner.Build(item)
}

func (t *TreeTemplate) Match(item any) bool {
	if t.Inner == nil {
		return true
	}
	return t.Inner.Match(item)
}

// ItemsFor resolves the child collection for item. The bound value may be a
// collections.Enumerable or any slice or array; anything else reports false.
func (t *TreeTemplate) ItemsFor(item any) (collections.Enumerable, bool) {
	if t.ItemsBinding == nil {
		return nil, false
	}
	value, ok := t.ItemsBinding.Eval(item)
	if !ok || value == nil {
		return nil, false
	}
	if e, ok := value.(collections.Enumerable); ok {
		return e, true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return collections.FromSlice(items), true
	}
	return nil, false
}
