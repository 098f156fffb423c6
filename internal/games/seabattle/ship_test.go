package seabattle

import (
	"testing"

	"github.com/vovakirdan/seabattle/internal/core"
)

func TestShipCells(t *testing.T) {
	tests := []struct {
		name     string
		ship     *Ship
		expected []core.Coord
	}{
		{
			name:     "vertical extends along rows",
			ship:     NewShip(core.C(1, 2), 3, Vertical),
			expected: []core.Coord{core.C(1, 2), core.C(2, 2), core.C(3, 2)},
		},
		{
			name:     "horizontal extends along columns",
			ship:     NewShip(core.C(2, 2), 3, Horizontal),
			expected: []core.Coord{core.C(2, 2), core.C(2, 3), core.C(2, 4)},
		},
		{
			name:     "single cell",
			ship:     NewShip(core.C(0, 0), 1, Horizontal),
			expected: []core.Coord{core.C(0, 0)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cells := tc.ship.Cells()
			if len(cells) != len(tc.expected) {
				t.Fatalf("Cells() len = %d, expected %d", len(cells), len(tc.expected))
			}
			for i := range cells {
				if cells[i] != tc.expected[i] {
					t.Errorf("Cells()[%d] = %v, expected %v", i, cells[i], tc.expected[i])
				}
			}
		})
	}
}

func TestShipIsHitBy(t *testing.T) {
	s := NewShip(core.C(2, 2), 3, Horizontal)

	tests := []struct {
		name     string
		c        core.Coord
		expected bool
	}{
		{"bow", core.C(2, 2), true},
		{"stern", core.C(2, 4), true},
		{"past stern", core.C(2, 5), false},
		{"wrong axis", core.C(3, 2), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.IsHitBy(tc.c); got != tc.expected {
				t.Errorf("IsHitBy(%v) = %v, expected %v", tc.c, got, tc.expected)
			}
		})
	}
}

func TestShipLives(t *testing.T) {
	s := NewShip(core.C(0, 0), 2, Vertical)
	if s.Lives() != 2 || s.Sunk() {
		t.Fatalf("New ship: lives = %d, sunk = %v", s.Lives(), s.Sunk())
	}

	s.damage()
	s.damage()
	if !s.Sunk() {
		t.Error("Ship should be sunk after losing every life")
	}

	// Lives never go negative
	s.damage()
	if s.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", s.Lives())
	}
}

func TestNewShipClampsLength(t *testing.T) {
	if got := NewShip(core.C(0, 0), 0, Vertical).Len(); got != 1 {
		t.Errorf("Len() = %d, expected 1", got)
	}
}
