package presenters

import (
	"testing"

	"github.com/go-drift/vista/pkg/input"
	"github.com/go-drift/vista/pkg/visual"
)

type panelChild struct {
	visual.Base
	name string
}

func newPanelChild(name string) *panelChild {
	c := &panelChild{name: name}
	c.Init(c)
	return c
}

func TestStackPanelChildManagement(t *testing.T) {
	p := NewStackPanel()
	a := newPanelChild("a")
	b := newPanelChild("b")
	c := newPanelChild("c")

	p.AddChild(a)
	p.AddChild(c)
	p.InsertChildAt(1, b)

	children := p.Children()
	if len(children) != 3 {
		t.Fatalf("len(Children) = %d, want 3", len(children))
	}
	if children[0] != visual.Visual(a) || children[1] != visual.Visual(b) || children[2] != visual.Visual(c) {
		t.Error("children should be in insertion order a, b, c")
	}
	if a.Parent() != visual.Visual(p) {
		t.Error("AddChild should reparent the child to the panel")
	}

	p.RemoveChild(b)
	if len(p.Children()) != 2 {
		t.Errorf("len(Children) after remove = %d, want 2", len(p.Children()))
	}
	if b.Parent() != nil {
		t.Error("RemoveChild should detach the child")
	}

	// Unknown children are ignored.
	p.RemoveChild(newPanelChild("x"))
	if len(p.Children()) != 2 {
		t.Error("removing an unknown child should be a no-op")
	}
}

func TestStackPanelInsertClamps(t *testing.T) {
	p := NewStackPanel()
	a := newPanelChild("a")
	b := newPanelChild("b")
	p.InsertChildAt(-5, a)
	p.InsertChildAt(99, b)
	children := p.Children()
	if len(children) != 2 || children[0] != visual.Visual(a) || children[1] != visual.Visual(b) {
		t.Errorf("out-of-range inserts should clamp to the ends, got %d children", len(children))
	}
	p.InsertChildAt(0, nil)
	if len(p.Children()) != 2 {
		t.Error("inserting nil should be a no-op")
	}
}

func TestStackPanelGetControlLinear(t *testing.T) {
	p := NewStackPanel()
	a := newPanelChild("a")
	b := newPanelChild("b")
	c := newPanelChild("c")
	p.AddChild(a)
	p.AddChild(b)
	p.AddChild(c)

	tests := []struct {
		direction input.NavigationDirection
		from      visual.Visual
		wrap      bool
		want      visual.Visual
	}{
		{input.NavigationDirectionNext, a, false, b},
		{input.NavigationDirectionPrevious, c, false, b},
		{input.NavigationDirectionFirst, b, false, a},
		{input.NavigationDirectionLast, b, false, c},
		{input.NavigationDirectionDown, a, false, b},
		{input.NavigationDirectionUp, b, false, a},
		{input.NavigationDirectionNext, c, false, nil},
		{input.NavigationDirectionNext, c, true, a},
		{input.NavigationDirectionPrevious, a, false, nil},
		{input.NavigationDirectionPrevious, a, true, c},
		{input.NavigationDirectionLeft, b, false, nil},
		{input.NavigationDirectionRight, b, false, nil},
	}
	for _, tt := range tests {
		got := p.GetControl(tt.direction, tt.from, tt.wrap)
		if got != tt.want {
			t.Errorf("GetControl(%v, wrap=%v) = %v, want %v", tt.direction, tt.wrap, got, tt.want)
		}
	}

	if p.GetControl(input.NavigationDirectionNext, newPanelChild("x"), false) != nil {
		t.Error("GetControl from a non-child should be nil")
	}

	empty := NewStackPanel()
	if empty.GetControl(input.NavigationDirectionFirst, nil, false) != nil {
		t.Error("GetControl on an empty panel should be nil")
	}
}

func TestHorizontalStackPanelUsesLeftRight(t *testing.T) {
	p := NewHorizontalStackPanel()
	a := newPanelChild("a")
	b := newPanelChild("b")
	p.AddChild(a)
	p.AddChild(b)

	if got := p.GetControl(input.NavigationDirectionRight, a, false); got != visual.Visual(b) {
		t.Errorf("Right from a = %v, want b", got)
	}
	if got := p.GetControl(input.NavigationDirectionLeft, b, false); got != visual.Visual(a) {
		t.Errorf("Left from b = %v, want a", got)
	}
	if p.GetControl(input.NavigationDirectionDown, a, false) != nil {
		t.Error("Down should have no candidate in a horizontal panel")
	}
}
