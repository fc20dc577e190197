package controls

import "errors"

// Failure modes reported through the vista error pipeline. Both are carried
// inside an *errors.ControlError when the control panics.
var (
	// ErrTemplateBindingConflict is the cause when ItemTemplate and
	// DisplayMemberBinding are assigned at the same time.
	ErrTemplateBindingConflict = errors.New("item template and display member binding are mutually exclusive")

	// ErrContainerNotAttached is the cause when a container is prepared
	// before being attached under the control's visual subtree.
	ErrContainerNotAttached = errors.New("container is not attached under the control's visual subtree")
)
