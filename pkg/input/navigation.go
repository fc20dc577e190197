package input

// NavigationDirection indicates where directional navigation should move
// focus relative to the current element.
type NavigationDirection int

const (
	// NavigationDirectionNext moves to the following element in order.
	NavigationDirectionNext NavigationDirection = iota

	// NavigationDirectionPrevious moves to the preceding element in order.
	NavigationDirectionPrevious

	// NavigationDirectionFirst moves to the first element.
	NavigationDirectionFirst

	// NavigationDirectionLast moves to the last element.
	NavigationDirectionLast

	// NavigationDirectionUp moves focus upward.
	NavigationDirectionUp

	// NavigationDirectionDown moves focus downward.
	NavigationDirectionDown

	// NavigationDirectionLeft moves focus leftward.
	NavigationDirectionLeft

	// NavigationDirectionRight moves focus rightward.
	NavigationDirectionRight
)

func (d NavigationDirection) String() string {
	switch d {
	case NavigationDirectionNext:
		return "next"
	case NavigationDirectionPrevious:
		return "previous"
	case NavigationDirectionFirst:
		return "first"
	case NavigationDirectionLast:
		return "last"
	case NavigationDirectionUp:
		return "up"
	case NavigationDirectionDown:
		return "down"
	case NavigationDirectionLeft:
		return "left"
	case NavigationDirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFromKey translates a pressed key to a navigation direction.
// Keys with no directional meaning report false.
func DirectionFromKey(key Key) (NavigationDirection, bool) {
	switch key {
	case KeyTab:
		return NavigationDirectionNext, true
	case KeyArrowUp:
		return NavigationDirectionUp, true
	case KeyArrowDown:
		return NavigationDirectionDown, true
	case KeyArrowLeft:
		return NavigationDirectionLeft, true
	case KeyArrowRight:
		return NavigationDirectionRight, true
	case KeyHome:
		return NavigationDirectionFirst, true
	case KeyEnd:
		return NavigationDirectionLast, true
	default:
		return NavigationDirectionNext, false
	}
}
