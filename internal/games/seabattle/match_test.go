package seabattle

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/seabattle/internal/core"
)

// fixedMatch wires two hand-placed boards without random setup.
func fixedMatch(t *testing.T, humanShips, computerShips []*Ship) *Match {
	t.Helper()
	human := startedBoard(t, humanShips...)
	computer := startedBoard(t, computerShips...)
	computer.SetHidden(true)

	m := &Match{}
	m.players[Human] = &Player{Name: "You", Side: Human, Own: human, Enemy: computer}
	m.players[Computer] = &Player{Name: "Computer", Side: Computer, Own: computer, Enemy: human}
	return m
}

func fire(t *testing.T, m *Match, c core.Coord) Turn {
	t.Helper()
	turn, err := m.Fire(c)
	if err != nil {
		t.Fatalf("Fire(%v) failed: %v", c, err)
	}
	return turn
}

func TestMatchTurnPolarity(t *testing.T) {
	m := fixedMatch(t,
		[]*Ship{NewShip(core.C(0, 0), 1, Vertical)},
		[]*Ship{NewShip(core.C(2, 2), 3, Horizontal), NewShip(core.C(6, 6), 1, Vertical)},
	)

	// Hit keeps the turn
	turn := fire(t, m, core.C(2, 2))
	if turn.Shooter != Human || turn.Result.Outcome != Hit {
		t.Fatalf("turn = %+v, expected human hit", turn)
	}
	if m.Current() != Human {
		t.Fatal("a hit should let the human shoot again")
	}

	fire(t, m, core.C(2, 3))
	if m.Current() != Human {
		t.Fatal("a second hit should let the human shoot again")
	}

	// Sink passes the turn
	turn = fire(t, m, core.C(2, 4))
	if turn.Result.Outcome != Sunk {
		t.Fatalf("outcome = %v, expected sunk", turn.Result.Outcome)
	}
	if m.Current() != Computer {
		t.Fatal("a sink should pass the turn")
	}

	// Miss passes the turn
	fire(t, m, core.C(5, 5))
	if m.Current() != Human {
		t.Fatal("a miss should pass the turn")
	}
}

func TestMatchRefusedShotKeepsTurn(t *testing.T) {
	m := fixedMatch(t,
		[]*Ship{NewShip(core.C(0, 0), 1, Vertical)},
		[]*Ship{NewShip(core.C(4, 4), 1, Vertical)},
	)

	if _, err := m.Fire(core.C(10, 10)); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Fire() error = %v, expected ErrOutOfBounds", err)
	}
	if m.Current() != Human {
		t.Error("refused shot should not pass the turn")
	}
	if s := m.Summary(); s.Shots[Human] != 0 {
		t.Errorf("refused shot counted: %d shots", s.Shots[Human])
	}
}

func TestMatchEndsMidTurn(t *testing.T) {
	m := fixedMatch(t,
		[]*Ship{NewShip(core.C(0, 0), 1, Vertical)},
		[]*Ship{NewShip(core.C(3, 3), 1, Vertical)},
	)

	fire(t, m, core.C(3, 3))
	if m.State() != StateHumanWon {
		t.Fatalf("State() = %v, expected human won", m.State())
	}

	if _, err := m.Fire(core.C(0, 0)); !errors.Is(err, ErrMatchOver) {
		t.Errorf("Fire() after end error = %v, expected ErrMatchOver", err)
	}
	if _, err := m.Step(); !errors.Is(err, ErrMatchOver) {
		t.Errorf("Step() after end error = %v, expected ErrMatchOver", err)
	}

	s := m.Summary()
	if s.Winner != Human || s.Shots[Human] != 1 || s.Hits[Human] != 1 || s.Turns != 1 {
		t.Errorf("Summary() = %+v", s)
	}
}

func TestMatchComputerWins(t *testing.T) {
	m := fixedMatch(t,
		[]*Ship{NewShip(core.C(0, 0), 2, Horizontal)},
		[]*Ship{NewShip(core.C(5, 5), 1, Vertical)},
	)

	fire(t, m, core.C(3, 3)) // human misses
	fire(t, m, core.C(0, 0)) // computer hits, shoots again
	if m.Current() != Computer || m.Finished() {
		t.Fatal("computer should shoot again after a hit")
	}
	fire(t, m, core.C(0, 1))

	if m.State() != StateComputerWon {
		t.Errorf("State() = %v, expected computer won", m.State())
	}
	if m.Summary().Winner != Computer {
		t.Errorf("Winner = %v, expected computer", m.Summary().Winner)
	}
}

func TestMatchStepUsesStrategy(t *testing.T) {
	m := fixedMatch(t,
		[]*Ship{NewShip(core.C(0, 0), 1, Vertical)},
		[]*Ship{NewShip(core.C(3, 3), 2, Vertical)},
	)
	m.players[Human].Strategy = script(core.C(3, 3), core.C(4, 3))

	var shots []ShotResult
	m.onShot = func(_ *Player, res ShotResult) { shots = append(shots, res) }

	if _, err := m.Step(); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if _, err := m.Step(); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	if !m.Finished() || m.State() != StateHumanWon {
		t.Errorf("State() = %v, expected human won", m.State())
	}
	if len(shots) != 2 {
		t.Errorf("OnShot called %d times, expected 2", len(shots))
	}
}

func TestMatchStepWithoutStrategy(t *testing.T) {
	m := fixedMatch(t,
		[]*Ship{NewShip(core.C(0, 0), 1, Vertical)},
		[]*Ship{NewShip(core.C(3, 3), 1, Vertical)},
	)
	if _, err := m.Step(); err == nil {
		t.Error("Step() without a strategy should fail")
	}
}

func TestNewMatchSetup(t *testing.T) {
	m, err := NewMatch(Options{Rng: rand.New(rand.NewSource(5)), Size: DefaultSize})
	if err != nil {
		t.Fatalf("NewMatch() failed: %v", err)
	}

	human, computer := m.Player(Human), m.Player(Computer)
	if human.Own != computer.Enemy || computer.Own != human.Enemy {
		t.Error("players should fire at each other's boards")
	}
	if human.Own.Hidden() || !computer.Own.Hidden() {
		t.Error("only the computer's board should be hidden")
	}
	if m.Current() != Human {
		t.Error("human should start")
	}
	if !human.Own.Started() || !computer.Own.Started() {
		t.Error("both boards should be started")
	}
}

func TestNewMatchRequiresRng(t *testing.T) {
	if _, err := NewMatch(Options{}); err == nil {
		t.Error("NewMatch() without rng should fail")
	}
}

func TestMatchRunToCompletion(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		m, err := NewMatch(Options{
			Rng:                  rng,
			Size:                 DefaultSize,
			Human:                NewRandomStrategy(rng, DefaultSize),
			ComputerShotAttempts: 10000,
		})
		if err != nil {
			t.Fatalf("seed %d: NewMatch() failed: %v", seed, err)
		}

		s, err := m.Run()
		if err != nil {
			t.Fatalf("seed %d: Run() failed: %v", seed, err)
		}

		loser := m.Player(s.Winner.Other()).Own
		winner := m.Player(s.Winner).Own
		if !loser.Defeated() {
			t.Errorf("seed %d: loser board not defeated", seed)
		}
		if winner.Defeated() {
			t.Errorf("seed %d: winner board defeated too", seed)
		}

		cells := 0
		for _, l := range Fleet {
			cells += l
		}
		if s.Hits[s.Winner] != cells {
			t.Errorf("seed %d: winner hits = %d, expected %d", seed, s.Hits[s.Winner], cells)
		}
	}
}
