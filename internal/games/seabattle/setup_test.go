package seabattle

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/seabattle/internal/core"
)

// touching reports whether two cells are equal or neighbours, diagonals included.
func touching(a, b core.Coord) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

func TestPlacerBuildsValidBoards(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		p := NewPlacer(rand.New(rand.NewSource(seed)), DefaultSize)
		b, _, err := p.Build()
		if err != nil {
			t.Fatalf("seed %d: Build() failed: %v", seed, err)
		}

		if len(b.Ships()) != len(Fleet) {
			t.Fatalf("seed %d: %d ships, expected %d", seed, len(b.Ships()), len(Fleet))
		}
		if !b.Started() {
			t.Fatalf("seed %d: board should be started", seed)
		}

		ships := b.Ships()
		for i, s := range ships {
			if s.Len() != Fleet[i] {
				t.Errorf("seed %d: ship %d len %d, expected %d", seed, i, s.Len(), Fleet[i])
			}
			for _, c := range s.Cells() {
				if b.OutOfBounds(c) {
					t.Errorf("seed %d: ship %d cell %v out of bounds", seed, i, c)
				}
			}
			for j := i + 1; j < len(ships); j++ {
				for _, a := range s.Cells() {
					for _, o := range ships[j].Cells() {
						if touching(a, o) {
							t.Errorf("seed %d: ships %d and %d touch at %v/%v", seed, i, j, a, o)
						}
					}
				}
			}
		}
	}
}

func TestPlacerDeterministic(t *testing.T) {
	b1, _, err1 := NewPlacer(rand.New(rand.NewSource(7)), DefaultSize).Build()
	b2, _, err2 := NewPlacer(rand.New(rand.NewSource(7)), DefaultSize).Build()
	if err1 != nil || err2 != nil {
		t.Fatalf("Build() failed: %v, %v", err1, err2)
	}

	for i := range b1.Ships() {
		s1, s2 := b1.Ships()[i], b2.Ships()[i]
		if s1.Bow() != s2.Bow() || s1.Orientation() != s2.Orientation() {
			t.Errorf("ship %d differs: %v/%v vs %v/%v", i, s1.Bow(), s1.Orientation(), s2.Bow(), s2.Orientation())
		}
	}
}

func TestPlacerGivesUp(t *testing.T) {
	// Only one single-cell ship fits on a 2x2 board
	p := &Placer{
		Rng:      rand.New(rand.NewSource(1)),
		Size:     2,
		Fleet:    []int{1, 1},
		Attempts: 50,
		Restarts: 3,
	}

	_, restarts, err := p.Build()
	if !errors.Is(err, ErrSetupFailed) {
		t.Fatalf("Build() error = %v, expected ErrSetupFailed", err)
	}
	if restarts != 3 {
		t.Errorf("restarts = %d, expected 3", restarts)
	}
}
