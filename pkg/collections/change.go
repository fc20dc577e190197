package collections

// ChangeAction identifies the kind of structural change applied to a
// collection.
type ChangeAction int

const (
	// ChangeAdd indicates items were inserted.
	ChangeAdd ChangeAction = iota
	// ChangeRemove indicates items were removed.
	ChangeRemove
	// ChangeReplace indicates items were overwritten in place.
	ChangeReplace
	// ChangeMove indicates items changed position without changing count.
	ChangeMove
	// ChangeReset indicates the collection changed wholesale; consumers
	// should requery rather than patch.
	ChangeReset
)

func (a ChangeAction) String() string {
	switch a {
	case ChangeAdd:
		return "add"
	case ChangeRemove:
		return "remove"
	case ChangeReplace:
		return "replace"
	case ChangeMove:
		return "move"
	case ChangeReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Change describes one structural change to a collection.
//
// Index fields are -1 when not applicable to the action. For ChangeMove,
// NewIndex is interpreted after the items have been removed from OldIndex.
type Change struct {
	Action ChangeAction
	// NewItems holds inserted items (ChangeAdd), replacement items
	// (ChangeReplace) or the moved items (ChangeMove).
	NewItems []any
	// OldItems holds removed items (ChangeRemove), overwritten items
	// (ChangeReplace) or the moved items (ChangeMove).
	OldItems []any
	// NewIndex is the position at which NewItems took effect.
	NewIndex int
	// OldIndex is the position OldItems occupied before the change.
	OldIndex int
}
