package collections

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// ObservableList is an ordered collection that publishes structural change
// notifications. It implements Enumerable, Counter, Indexable and Notifier.
//
// Notifications fire synchronously on the mutating goroutine: a "changing"
// notification before the mutation is applied, then a "changed" notification
// after. ObservableList is not safe for concurrent use; like the controls
// that consume it, it belongs to a single logical thread.
type ObservableList struct {
	items *arraylist.List

	changed        map[int]func(Change)
	changing       map[int]func(Change)
	nextListenerID int
}

// NewObservableList returns a list seeded with items.
func NewObservableList(items ...any) *ObservableList {
	return &ObservableList{items: arraylist.New(items...)}
}

// Count returns the number of items.
func (l *ObservableList) Count() int {
	return l.items.Size()
}

// ItemAt returns the item at index, or (nil, false) when out of range.
func (l *ObservableList) ItemAt(index int) (any, bool) {
	return l.items.Get(index)
}

// IndexOf returns the index of the first occurrence of item, or -1.
func (l *ObservableList) IndexOf(item any) int {
	return l.items.IndexOf(item)
}

// Each calls fn for every item in index order until fn returns false.
func (l *ObservableList) Each(fn func(index int, item any) bool) {
	for i := 0; i < l.items.Size(); i++ {
		item, _ := l.items.Get(i)
		if !fn(i, item) {
			return
		}
	}
}

// Values returns a snapshot of the list contents.
func (l *ObservableList) Values() []any {
	return l.items.Values()
}

// Add appends items to the end of the list.
func (l *ObservableList) Add(items ...any) {
	if len(items) == 0 {
		return
	}
	change := Change{
		Action:   ChangeAdd,
		NewItems: items,
		NewIndex: l.items.Size(),
		OldIndex: -1,
	}
	l.notifyChanging(change)
	l.items.Add(items...)
	l.notifyChanged(change)
}

// Insert places items at index, shifting subsequent items right. index may
// equal Count, which appends. Returns false when index is out of range.
func (l *ObservableList) Insert(index int, items ...any) bool {
	if index < 0 || index > l.items.Size() {
		return false
	}
	if len(items) == 0 {
		return true
	}
	change := Change{
		Action:   ChangeAdd,
		NewItems: items,
		NewIndex: index,
		OldIndex: -1,
	}
	l.notifyChanging(change)
	l.items.Insert(index, items...)
	l.notifyChanged(change)
	return true
}

// RemoveAt removes and returns the item at index.
func (l *ObservableList) RemoveAt(index int) (any, bool) {
	item, ok := l.items.Get(index)
	if !ok {
		return nil, false
	}
	change := Change{
		Action:   ChangeRemove,
		OldItems: []any{item},
		OldIndex: index,
		NewIndex: -1,
	}
	l.notifyChanging(change)
	l.items.Remove(index)
	l.notifyChanged(change)
	return item, true
}

// Remove removes the first occurrence of item. Returns false when absent.
func (l *ObservableList) Remove(item any) bool {
	index := l.items.IndexOf(item)
	if index < 0 {
		return false
	}
	_, ok := l.RemoveAt(index)
	return ok
}

// Set overwrites the item at index and returns the previous value.
func (l *ObservableList) Set(index int, item any) (any, bool) {
	old, ok := l.items.Get(index)
	if !ok {
		return nil, false
	}
	change := Change{
		Action:   ChangeReplace,
		NewItems: []any{item},
		OldItems: []any{old},
		NewIndex: index,
		OldIndex: index,
	}
	l.notifyChanging(change)
	l.items.Set(index, item)
	l.notifyChanged(change)
	return old, true
}

// Move relocates the item at oldIndex to newIndex. newIndex is interpreted
// after the item has been removed from oldIndex. Returns false when either
// index is out of range.
func (l *ObservableList) Move(oldIndex, newIndex int) bool {
	size := l.items.Size()
	if oldIndex < 0 || oldIndex >= size || newIndex < 0 || newIndex >= size {
		return false
	}
	if oldIndex == newIndex {
		return true
	}
	item, _ := l.items.Get(oldIndex)
	change := Change{
		Action:   ChangeMove,
		NewItems: []any{item},
		OldItems: []any{item},
		NewIndex: newIndex,
		OldIndex: oldIndex,
	}
	l.notifyChanging(change)
	l.items.Remove(oldIndex)
	l.items.Insert(newIndex, item)
	l.notifyChanged(change)
	return true
}

// Clear removes all items, publishing a single reset notification.
func (l *ObservableList) Clear() {
	change := Change{
		Action:   ChangeReset,
		NewIndex: -1,
		OldIndex: -1,
	}
	l.notifyChanging(change)
	l.items.Clear()
	l.notifyChanged(change)
}

// AddChangedListener subscribes fn to post-change notifications. The returned
// function removes the subscription.
func (l *ObservableList) AddChangedListener(fn func(Change)) func() {
	if l.changed == nil {
		l.changed = make(map[int]func(Change))
	}
	id := l.nextListenerID
	l.nextListenerID++
	l.changed[id] = fn
	return func() {
		delete(l.changed, id)
	}
}

// AddChangingListener subscribes fn to pre-change notifications, fired before
// the mutation is applied. The returned function removes the subscription.
func (l *ObservableList) AddChangingListener(fn func(Change)) func() {
	if l.changing == nil {
		l.changing = make(map[int]func(Change))
	}
	id := l.nextListenerID
	l.nextListenerID++
	l.changing[id] = fn
	return func() {
		delete(l.changing, id)
	}
}

func (l *ObservableList) notifyChanging(change Change) {
	for _, fn := range l.changing {
		fn(change)
	}
}

func (l *ObservableList) notifyChanged(change Change) {
	for _, fn := range l.changed {
		fn(change)
	}
}
