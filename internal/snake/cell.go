// Package snake implements the Snake game core: the timer-driven session
// state machine, collision checks, food spawning, input mapping and a
// renderer over an abstract drawing surface. Hosts (terminal, SSH, browser)
// own a Session and feed it ticks and input events from one goroutine.
package snake

import "fmt"

// Cell is a grid coordinate, 0-based.
type Cell struct {
	X, Y int
}

// NoFood marks the absence of food when the snake covers the whole grid.
var NoFood = Cell{X: -1, Y: -1}

// Add returns the cell shifted by one step in direction d.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Vector()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the unit step for the direction. Y grows downward.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
