package collections

// SliceList adapts a plain slice to the Enumerable contract. It implements
// Counter and Indexable but not Notifier: it is a fixed snapshot with no
// change notifications.
type SliceList struct {
	items []any
}

// FromSlice wraps items without copying. The caller must not mutate the
// slice afterwards.
func FromSlice(items []any) *SliceList {
	return &SliceList{items: items}
}

// Of builds a SliceList from its arguments.
func Of(items ...any) *SliceList {
	return &SliceList{items: items}
}

func (l *SliceList) Count() int {
	return len(l.items)
}

func (l *SliceList) ItemAt(index int) (any, bool) {
	if index < 0 || index >= len(l.items) {
		return nil, false
	}
	return l.items[index], true
}

func (l *SliceList) IndexOf(item any) int {
	for i, it := range l.items {
		if it == item {
			return i
		}
	}
	return -1
}

func (l *SliceList) Each(fn func(index int, item any) bool) {
	for i, it := range l.items {
		if !fn(i, it) {
			return
		}
	}
}
