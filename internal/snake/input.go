package snake

import "github.com/vovakirdan/snake-pwa/internal/core"

// Swipe is a touch or mouse drag from a start point to an end point,
// in host coordinates.
type Swipe struct {
	StartX, StartY int
	EndX, EndY     int
}

// defaultKeys maps key identifiers from every host to directions:
// DOM KeyboardEvent.key names and Bubble Tea key strings.
var defaultKeys = map[string]Direction{
	"ArrowUp":    DirUp,
	"ArrowDown":  DirDown,
	"ArrowLeft":  DirLeft,
	"ArrowRight": DirRight,
	"up":         DirUp,
	"down":       DirDown,
	"left":       DirLeft,
	"right":      DirRight,
	"w":          DirUp,
	"s":          DirDown,
	"a":          DirLeft,
	"d":          DirRight,
}

// InputMapper translates raw input into direction requests.
type InputMapper struct {
	keys           map[string]Direction
	swipeThreshold int
}

// NewInputMapper creates a mapper with the default key table. Swipes whose
// dominant axis moved no more than threshold units are ignored.
func NewInputMapper(threshold int) *InputMapper {
	return &InputMapper{
		keys:           defaultKeys,
		swipeThreshold: max(threshold, 0),
	}
}

// MapKey returns the direction bound to a key identifier.
func (m *InputMapper) MapKey(key string) (Direction, bool) {
	d, ok := m.keys[key]
	return d, ok
}

// MapSwipe returns the direction of a swipe. The axis with the larger
// movement wins; ties go to the vertical axis.
func (m *InputMapper) MapSwipe(sw Swipe) (Direction, bool) {
	dx := sw.EndX - sw.StartX
	dy := sw.EndY - sw.StartY

	if core.Abs(dx) > core.Abs(dy) {
		if core.Abs(dx) <= m.swipeThreshold {
			return DirRight, false
		}
		if dx > 0 {
			return DirRight, true
		}
		return DirLeft, true
	}

	if dy == 0 || core.Abs(dy) <= m.swipeThreshold {
		return DirUp, false
	}
	if dy > 0 {
		return DirDown, true
	}
	return DirUp, true
}

// Steer applies the reversal guard: a request for the exact opposite of the
// current direction is discarded and pending is returned unchanged.
func Steer(current, pending, requested Direction) (Direction, bool) {
	if requested == current.Opposite() {
		return pending, false
	}
	return requested, requested != pending
}
