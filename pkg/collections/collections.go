// Package collections defines the item sequence contract consumed by
// list-like controls, plus an observable list implementation.
//
// The base contract is Enumerable: an ordered sequence traversed in index
// order. Richer behavior is discovered by capability assertion: Counter for
// a direct length query, Indexable for positional access, Notifier for
// structural change subscriptions. Controls hold a reference to a shared
// collection; they never own it.
package collections

// Enumerable is an ordered sequence of arbitrary items.
//
// Each calls fn for every item in index order until fn returns false.
type Enumerable interface {
	Each(fn func(index int, item any) bool)
}

// Counter is an optional capability for collections that know their length.
type Counter interface {
	Count() int
}

// Indexable is an optional capability for collections with positional access.
type Indexable interface {
	// ItemAt returns the item at index, or (nil, false) when out of range.
	ItemAt(index int) (any, bool)
	// IndexOf returns the index of the first occurrence of item, or -1.
	IndexOf(item any) int
}

// Notifier is an optional capability for collections that publish structural
// changes. Both registrations return a removal function.
type Notifier interface {
	// AddChangedListener subscribes fn to post-change notifications.
	AddChangedListener(fn func(Change)) func()
	// AddChangingListener subscribes fn to pre-change notifications, fired
	// before the mutation is applied.
	AddChangingListener(fn func(Change)) func()
}

// Count returns the number of items in e. Collections exposing Counter are
// queried directly; anything else is traversed in full. A nil collection has
// zero items.
func Count(e Enumerable) int {
	if e == nil {
		return 0
	}
	if c, ok := e.(Counter); ok {
		return c.Count()
	}
	n := 0
	e.Each(func(int, any) bool {
		n++
		return true
	})
	return n
}

// IndexOf returns the index of the first occurrence of item in e, or -1.
// Items are compared with ==, so they must be comparable values or shared
// references.
func IndexOf(e Enumerable, item any) int {
	if e == nil {
		return -1
	}
	if ix, ok := e.(Indexable); ok {
		return ix.IndexOf(item)
	}
	found := -1
	e.Each(func(i int, it any) bool {
		if it == item {
			found = i
			return false
		}
		return true
	})
	return found
}

// ItemAt returns the item at index in e, or (nil, false) when the index is
// out of range or e is nil.
func ItemAt(e Enumerable, index int) (any, bool) {
	if e == nil || index < 0 {
		return nil, false
	}
	if ix, ok := e.(Indexable); ok {
		return ix.ItemAt(index)
	}
	var item any
	found := false
	e.Each(func(i int, it any) bool {
		if i == index {
			item = it
			found = true
			return false
		}
		return true
	})
	return item, found
}
