// Package seabattle implements the Sea Battle engine: ship placement with
// exclusion zones, shot resolution, players and the match driver.
// It has no terminal dependencies; front ends drive it through Match.
package seabattle

import (
	"slices"

	"github.com/vovakirdan/seabattle/internal/core"
)

// Orientation is the axis a ship extends along from its bow.
type Orientation int

const (
	Vertical   Orientation = iota // extends along rows
	Horizontal                    // extends along columns
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Ship is a straight segment of cells anchored at its bow.
type Ship struct {
	bow         core.Coord
	length      int
	orientation Orientation
	lives       int
}

// NewShip creates an undamaged ship. Length must be at least 1.
func NewShip(bow core.Coord, length int, o Orientation) *Ship {
	if length < 1 {
		length = 1
	}
	return &Ship{
		bow:         bow,
		length:      length,
		orientation: o,
		lives:       length,
	}
}

// Bow returns the anchor cell.
func (s *Ship) Bow() core.Coord { return s.bow }

// Len returns the number of cells the ship occupies.
func (s *Ship) Len() int { return s.length }

// Orientation returns the ship's axis.
func (s *Ship) Orientation() Orientation { return s.orientation }

// Lives returns the number of cells not yet hit.
func (s *Ship) Lives() int { return s.lives }

// Sunk reports whether every cell has been hit.
func (s *Ship) Sunk() bool { return s.lives == 0 }

// Cells returns the occupied cells, bow first.
func (s *Ship) Cells() []core.Coord {
	cells := make([]core.Coord, 0, s.length)
	for i := 0; i < s.length; i++ {
		if s.orientation == Vertical {
			cells = append(cells, s.bow.Add(i, 0))
		} else {
			cells = append(cells, s.bow.Add(0, i))
		}
	}
	return cells
}

// IsHitBy reports whether c is one of the ship's cells.
func (s *Ship) IsHitBy(c core.Coord) bool {
	return slices.Contains(s.Cells(), c)
}

// damage removes one life. Callers guarantee the cell was not hit before.
func (s *Ship) damage() {
	if s.lives > 0 {
		s.lives--
	}
}
