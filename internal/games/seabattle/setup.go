package seabattle

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/seabattle/internal/core"
)

// Fleet lists the ship lengths every board carries, placed longest first.
var Fleet = []int{3, 2, 2, 1, 1, 1, 1}

// Default setup budgets.
const (
	DefaultPlacementAttempts = 2000
	DefaultSetupRestarts     = 100
)

// Placer builds boards by random placement.
//
// Ships are placed greedily; a rejected candidate is resampled. Greedy placement
// can paint itself into a corner, so once Attempts candidates have been tried the
// whole board is thrown away and rebuilt, at most Restarts times.
type Placer struct {
	Rng      *rand.Rand
	Size     int
	Fleet    []int
	Attempts int
	Restarts int
}

// NewPlacer returns a placer for the standard fleet.
func NewPlacer(rng *rand.Rand, size int) *Placer {
	return &Placer{
		Rng:      rng,
		Size:     size,
		Fleet:    Fleet,
		Attempts: DefaultPlacementAttempts,
		Restarts: DefaultSetupRestarts,
	}
}

// Build returns a started board and the number of restarts it took.
func (p *Placer) Build() (*Board, int, error) {
	for restart := 0; restart <= p.Restarts; restart++ {
		if b := p.tryBuild(); b != nil {
			b.Begin()
			return b, restart, nil
		}
	}
	return nil, p.Restarts, fmt.Errorf("fleet %v on %dx%d board after %d restarts: %w",
		p.Fleet, p.Size, p.Size, p.Restarts, ErrSetupFailed)
}

// tryBuild places the whole fleet or returns nil once the attempt budget is spent.
func (p *Placer) tryBuild() *Board {
	b := NewBoard(p.Size)
	attempts := 0
	for _, length := range p.Fleet {
		for {
			attempts++
			if attempts > p.Attempts {
				return nil
			}
			if b.Place(p.randomShip(length)) == nil {
				break
			}
		}
	}
	return b
}

// randomShip samples an in-board bow and a random orientation.
func (p *Placer) randomShip(length int) *Ship {
	bow := core.C(p.Rng.Intn(p.Size), p.Rng.Intn(p.Size))
	return NewShip(bow, length, Orientation(p.Rng.Intn(2)))
}
