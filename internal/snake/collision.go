package snake

import "github.com/vovakirdan/snake-pwa/internal/core"

// CheckCollision reports whether moving the head onto c is fatal: c lies
// outside the width x height grid, or c is occupied by any segment except the
// current tail. The tail is excluded even when the move eats food and the
// tail stays.
func CheckCollision(body []Cell, c Cell, width, height int) bool {
	if !core.NewRect(0, 0, width, height).Contains(c.X, c.Y) {
		return true
	}
	if len(body) == 0 {
		return false
	}
	for _, seg := range body[:len(body)-1] {
		if seg == c {
			return true
		}
	}
	return false
}

// occupies reports whether c is part of the body.
func occupies(body []Cell, c Cell) bool {
	for _, seg := range body {
		if seg == c {
			return true
		}
	}
	return false
}
