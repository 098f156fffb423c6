package seabattle

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/seabattle/internal/core"
)

// Strategy proposes the next cell to fire at.
// An error means the strategy cannot produce targets any more (e.g. input closed).
type Strategy interface {
	Target() (core.Coord, error)
}

// Player pairs the board it owns with the opponent board it fires at.
type Player struct {
	Name     string
	Side     Side
	Own      *Board
	Enemy    *Board
	Strategy Strategy

	// MaxAttempts bounds rejected targets per turn. Zero means unlimited.
	MaxAttempts int

	// OnReject is told about every target the enemy board refused.
	OnReject func(p *Player, target core.Coord, err error)
}

// TakeTurn asks the strategy for targets until the enemy board accepts one.
// Out-of-bounds and already-targeted cells are reported and retried within the
// same turn.
func (p *Player) TakeTurn() (ShotResult, error) {
	for attempt := 1; ; attempt++ {
		if p.MaxAttempts > 0 && attempt > p.MaxAttempts {
			return ShotResult{}, fmt.Errorf("%s: %w", p.Name, ErrTurnStalled)
		}

		target, err := p.Strategy.Target()
		if err != nil {
			return ShotResult{}, err
		}

		res, err := p.Enemy.Shoot(target)
		if err == nil {
			return res, nil
		}
		if !recoverable(err) {
			return ShotResult{}, err
		}
		if p.OnReject != nil {
			p.OnReject(p, target, err)
		}
	}
}

// RandomStrategy fires blindly at uniformly random cells in [0, span) on both
// axes. It does not remember earlier shots; the board rejects repeats.
type RandomStrategy struct {
	rng  *rand.Rand
	span int
}

// NewRandomStrategy creates a random shooter. A non-positive span falls back
// to the default board size.
func NewRandomStrategy(rng *rand.Rand, span int) *RandomStrategy {
	if span < 1 {
		span = DefaultSize
	}
	return &RandomStrategy{rng: rng, span: span}
}

// Target implements Strategy.
func (s *RandomStrategy) Target() (core.Coord, error) {
	return core.C(s.rng.Intn(s.span), s.rng.Intn(s.span)), nil
}
