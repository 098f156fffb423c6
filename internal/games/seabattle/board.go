package seabattle

import (
	"fmt"

	"github.com/vovakirdan/seabattle/internal/core"
)

// DefaultSize is the side length of a standard board.
const DefaultSize = 7

// Mark is what the display shows for one cell.
type Mark uint8

const (
	MarkEmpty Mark = iota
	MarkShip
	MarkHit
	MarkMiss
)

// Outcome is the result of a legal shot.
type Outcome int

const (
	Miss Outcome = iota
	Hit
	Sunk
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Sunk:
		return "sunk"
	default:
		return "miss"
	}
}

// Repeat reports whether the shooter fires again.
// A hit that leaves the ship afloat repeats the turn; a sink or a miss ends it.
func (o Outcome) Repeat() bool {
	return o == Hit
}

// ShotResult describes a resolved shot.
type ShotResult struct {
	Target  core.Coord
	Outcome Outcome
	Ship    *Ship // nil on a miss
}

// Board is a square grid that owns a fleet.
//
// The occupied set is the single source of truth for "already used": during
// setup it holds ship bodies and their exclusion rings, after Begin it holds
// every targeted cell plus the rings around sunk ships.
type Board struct {
	size      int
	hidden    bool
	ships     []*Ship
	occupied  map[core.Coord]struct{}
	marks     [][]Mark
	destroyed int
	started   bool
}

// NewBoard creates an empty board with the given side length.
func NewBoard(size int) *Board {
	if size < 1 {
		size = DefaultSize
	}
	marks := make([][]Mark, size)
	for r := range marks {
		marks[r] = make([]Mark, size)
	}
	return &Board{
		size:     size,
		occupied: make(map[core.Coord]struct{}),
		marks:    marks,
	}
}

// Size returns the side length.
func (b *Board) Size() int { return b.size }

// Hidden reports whether ship bodies are concealed when rendered.
func (b *Board) Hidden() bool { return b.hidden }

// SetHidden toggles concealment of ship bodies.
func (b *Board) SetHidden(hidden bool) { b.hidden = hidden }

// Ships returns the placed ships in placement order.
func (b *Board) Ships() []*Ship { return b.ships }

// Destroyed returns the number of sunk ships.
func (b *Board) Destroyed() int { return b.destroyed }

// Remaining returns the number of ships still afloat.
func (b *Board) Remaining() int { return len(b.ships) - b.destroyed }

// Started reports whether Begin has been called.
func (b *Board) Started() bool { return b.started }

// Mark returns the display mark for c. Out-of-bounds cells read as empty.
func (b *Board) Mark(c core.Coord) Mark {
	if b.OutOfBounds(c) {
		return MarkEmpty
	}
	return b.marks[c.Row][c.Col]
}

// OutOfBounds reports whether c lies outside the grid.
func (b *Board) OutOfBounds(c core.Coord) bool {
	return c.Row < 0 || c.Row >= b.size || c.Col < 0 || c.Col >= b.size
}

// Occupied reports whether c is committed, either by placement or by a shot.
func (b *Board) Occupied(c core.Coord) bool {
	_, ok := b.occupied[c]
	return ok
}

// Contour commits the ring around ship (and the ship's own free cells) as
// occupied and returns the cells it newly committed. With markMiss the cells
// are also shown as misses.
func (b *Board) Contour(ship *Ship, markMiss bool) []core.Coord {
	var added []core.Coord
	for _, cell := range ship.Cells() {
		for _, d := range core.Neighborhood {
			cur := cell.Add(d[0], d[1])
			if b.OutOfBounds(cur) || b.Occupied(cur) {
				continue
			}
			if markMiss {
				b.marks[cur.Row][cur.Col] = MarkMiss
			}
			b.occupied[cur] = struct{}{}
			added = append(added, cur)
		}
	}
	return added
}

// Place adds a ship to the board. All cells are validated before any state
// changes, so a failed call leaves the board untouched.
func (b *Board) Place(ship *Ship) error {
	if b.started {
		return fmt.Errorf("place %s ship at %s: board already started: %w",
			ship.Orientation(), ship.Bow(), ErrWrongPlacement)
	}

	cells := ship.Cells()
	for _, c := range cells {
		if b.OutOfBounds(c) || b.Occupied(c) {
			return ErrWrongPlacement
		}
	}

	for _, c := range cells {
		b.marks[c.Row][c.Col] = MarkShip
		b.occupied[c] = struct{}{}
	}
	b.ships = append(b.ships, ship)
	b.Contour(ship, false)
	return nil
}

// Begin discards placement occupancy so play starts with no targeted cells.
// Ship shapes survive in the ship list.
func (b *Board) Begin() {
	clear(b.occupied)
	b.started = true
}

// Shoot resolves a shot at c.
func (b *Board) Shoot(c core.Coord) (ShotResult, error) {
	if !b.started {
		return ShotResult{}, ErrNotStarted
	}
	if b.OutOfBounds(c) {
		return ShotResult{}, ErrOutOfBounds
	}
	if b.Occupied(c) {
		return ShotResult{}, ErrAlreadyTargeted
	}
	b.occupied[c] = struct{}{}

	for _, ship := range b.ships {
		if !ship.IsHitBy(c) {
			continue
		}
		ship.damage()
		b.marks[c.Row][c.Col] = MarkHit
		if ship.Sunk() {
			b.destroyed++
			b.Contour(ship, true)
			return ShotResult{Target: c, Outcome: Sunk, Ship: ship}, nil
		}
		return ShotResult{Target: c, Outcome: Hit, Ship: ship}, nil
	}

	b.marks[c.Row][c.Col] = MarkMiss
	return ShotResult{Target: c, Outcome: Miss}, nil
}

// Defeated reports whether every ship on the board has been sunk.
func (b *Board) Defeated() bool {
	return b.destroyed == len(b.ships)
}
