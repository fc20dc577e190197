package presenters

import (
	"github.com/go-drift/vista/pkg/input"
	"github.com/go-drift/vista/pkg/visual"
)

// Panel arranges realized containers in document order. Attaching a child
// reparents it to the panel; removing it detaches it.
type Panel interface {
	visual.Visual
	Children() []visual.Visual
	AddChild(child visual.Visual)
	InsertChildAt(index int, child visual.Visual)
	RemoveChild(child visual.Visual)
}

// NavigableContainer is implemented by panels that can answer directional
// navigation queries over their children.
type NavigableContainer interface {
	// GetControl returns the child reached by moving direction from the
	// child `from`, or nil when there is no candidate. wrap allows the scan
	// to continue past the ends of the child list.
	GetControl(direction input.NavigationDirection, from visual.Visual, wrap bool) visual.Visual
}

// Orientation is the stacking axis of a StackPanel.
type Orientation int

const (
	// OrientationVertical stacks children top to bottom.
	OrientationVertical Orientation = iota

	// OrientationHorizontal stacks children left to right.
	OrientationHorizontal
)

// StackPanel is the default items panel: an ordered stack of children along
// one axis, navigable in that axis.
type StackPanel struct {
	visual.Base

	orientation Orientation
	children    []visual.Visual
}

// NewStackPanel returns a vertical stack panel.
func NewStackPanel() *StackPanel {
	p := &StackPanel{}
	p.Init(p)
	return p
}

// NewHorizontalStackPanel returns a horizontal stack panel.
func NewHorizontalStackPanel() *StackPanel {
	p := NewStackPanel()
	p.orientation = OrientationHorizontal
	return p
}

// Orientation returns the stacking axis.
func (p *StackPanel) Orientation() Orientation {
	return p.orientation
}

// Children returns the panel's children in order. The returned slice is the
// panel's own; callers must not mutate it.
func (p *StackPanel) Children() []visual.Visual {
	return p.children
}

// AddChild appends child and reparents it to the panel.
func (p *StackPanel) AddChild(child visual.Visual) {
	p.InsertChildAt(len(p.children), child)
}

// InsertChildAt places child at index, shifting subsequent children right.
// Out-of-range indices clamp to the nearest end.
func (p *StackPanel) InsertChildAt(index int, child visual.Visual) {
	if child == nil {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(p.children) {
		index = len(p.children)
	}
	p.children = append(p.children, nil)
	copy(p.children[index+1:], p.children[index:])
	p.children[index] = child
	child.SetParent(p)
}

// RemoveChild detaches child from the panel. Unknown children are ignored.
func (p *StackPanel) RemoveChild(child visual.Visual) {
	for i, c := range p.children {
		if c == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			child.SetParent(nil)
			return
		}
	}
}

// GetControl implements NavigableContainer over the panel's child order.
// Directions along the stacking axis move by one child; First and Last jump
// to the ends; cross-axis directions have no candidate.
func (p *StackPanel) GetControl(direction input.NavigationDirection, from visual.Visual, wrap bool) visual.Visual {
	count := len(p.children)
	if count == 0 {
		return nil
	}

	switch direction {
	case input.NavigationDirectionFirst:
		return p.children[0]
	case input.NavigationDirectionLast:
		return p.children[count-1]
	}

	index := p.indexOfChild(from)
	if index < 0 {
		return nil
	}
	delta, ok := p.linearDelta(direction)
	if !ok {
		return nil
	}

	next := index + delta
	if next < 0 || next >= count {
		if !wrap {
			return nil
		}
		next = wrapIndex(next, count)
	}
	return p.children[next]
}

func (p *StackPanel) indexOfChild(child visual.Visual) int {
	for i, c := range p.children {
		if c == child {
			return i
		}
	}
	return -1
}

// linearDelta maps a direction to a step along the stacking axis. Directions
// across the axis report false.
func (p *StackPanel) linearDelta(direction input.NavigationDirection) (int, bool) {
	switch direction {
	case input.NavigationDirectionNext:
		return 1, true
	case input.NavigationDirectionPrevious:
		return -1, true
	case input.NavigationDirectionUp:
		if p.orientation == OrientationVertical {
			return -1, true
		}
	case input.NavigationDirectionDown:
		if p.orientation == OrientationVertical {
			return 1, true
		}
	case input.NavigationDirectionLeft:
		if p.orientation == OrientationHorizontal {
			return -1, true
		}
	case input.NavigationDirectionRight:
		if p.orientation == OrientationHorizontal {
			return 1, true
		}
	}
	return 0, false
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}
