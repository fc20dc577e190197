package controls

import "github.com/go-drift/vista/pkg/collections"

// collectionWatcher owns one control's subscription to its items collection.
// Both notification phases are subscribed so the subscription is symmetric
// with what ObservableList offers; only the post-change phase drives the
// control today.
type collectionWatcher struct {
	control        *ItemsControl
	removeChanging func()
	removeChanged  func()
}

func newCollectionWatcher(control *ItemsControl, notifier collections.Notifier) *collectionWatcher {
	w := &collectionWatcher{control: control}
	w.removeChanging = notifier.AddChangingListener(w.onChanging)
	w.removeChanged = notifier.AddChangedListener(w.onChanged)
	return w
}

// detach drops the subscriptions. Safe to call more than once.
func (w *collectionWatcher) detach() {
	if w.removeChanging != nil {
		w.removeChanging()
		w.removeChanging = nil
	}
	if w.removeChanged != nil {
		w.removeChanged()
		w.removeChanged = nil
	}
}

// onChanging runs before the mutation lands. Nothing to snapshot yet.
func (w *collectionWatcher) onChanging(collections.Change) {}

func (w *collectionWatcher) onChanged(change collections.Change) {
	w.control.onCollectionChanged(change)
}
