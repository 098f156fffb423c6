package seabattle

import (
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/vovakirdan/seabattle/internal/core"
)

// scriptStrategy replays fixed targets, then reports io.EOF.
type scriptStrategy struct {
	targets []core.Coord
	asked   int
}

func (s *scriptStrategy) Target() (core.Coord, error) {
	if s.asked >= len(s.targets) {
		return core.Coord{}, io.EOF
	}
	c := s.targets[s.asked]
	s.asked++
	return c, nil
}

func script(targets ...core.Coord) *scriptStrategy {
	return &scriptStrategy{targets: targets}
}

func TestTakeTurnRetriesRejectedTargets(t *testing.T) {
	enemy := startedBoard(t, NewShip(core.C(3, 3), 2, Vertical))
	enemy.Shoot(core.C(0, 0))

	var rejected []error
	p := &Player{
		Name:     "tester",
		Enemy:    enemy,
		Strategy: script(core.C(9, 9), core.C(0, 0), core.C(3, 3)),
		OnReject: func(_ *Player, _ core.Coord, err error) {
			rejected = append(rejected, err)
		},
	}

	res, err := p.TakeTurn()
	if err != nil {
		t.Fatalf("TakeTurn() failed: %v", err)
	}
	if res.Outcome != Hit || res.Target != core.C(3, 3) {
		t.Errorf("TakeTurn() = %+v, expected hit at (3,3)", res)
	}

	if len(rejected) != 2 {
		t.Fatalf("rejected %d targets, expected 2", len(rejected))
	}
	if !errors.Is(rejected[0], ErrOutOfBounds) {
		t.Errorf("first rejection = %v, expected ErrOutOfBounds", rejected[0])
	}
	if !errors.Is(rejected[1], ErrAlreadyTargeted) {
		t.Errorf("second rejection = %v, expected ErrAlreadyTargeted", rejected[1])
	}
}

func TestTakeTurnStopsOnStrategyError(t *testing.T) {
	p := &Player{
		Name:     "tester",
		Enemy:    startedBoard(t, NewShip(core.C(0, 0), 1, Vertical)),
		Strategy: script(),
	}

	if _, err := p.TakeTurn(); !errors.Is(err, io.EOF) {
		t.Errorf("TakeTurn() error = %v, expected io.EOF", err)
	}
}

func TestTakeTurnAttemptBudget(t *testing.T) {
	enemy := startedBoard(t, NewShip(core.C(6, 6), 1, Vertical))
	enemy.Shoot(core.C(0, 0))

	p := &Player{
		Name:        "tester",
		Enemy:       enemy,
		Strategy:    NewRandomStrategy(rand.New(rand.NewSource(1)), 1),
		MaxAttempts: 5,
	}

	if _, err := p.TakeTurn(); !errors.Is(err, ErrTurnStalled) {
		t.Errorf("TakeTurn() error = %v, expected ErrTurnStalled", err)
	}
}

func TestRandomStrategySpan(t *testing.T) {
	s := NewRandomStrategy(rand.New(rand.NewSource(3)), 6)
	seen := make(map[core.Coord]bool)

	for i := 0; i < 2000; i++ {
		c, err := s.Target()
		if err != nil {
			t.Fatalf("Target() failed: %v", err)
		}
		if c.Row < 0 || c.Row >= 6 || c.Col < 0 || c.Col >= 6 {
			t.Fatalf("Target() = %v, outside span 6", c)
		}
		seen[c] = true
	}

	if len(seen) != 36 {
		t.Errorf("covered %d cells, expected all 36", len(seen))
	}
}

func TestRandomStrategyDefaultSpan(t *testing.T) {
	s := NewRandomStrategy(rand.New(rand.NewSource(1)), 0)
	if s.span != DefaultSize {
		t.Errorf("span = %d, expected %d", s.span, DefaultSize)
	}
}
