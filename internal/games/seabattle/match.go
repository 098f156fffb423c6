package seabattle

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/seabattle/internal/core"
)

// Side identifies one of the two players.
type Side int

const (
	Human Side = iota
	Computer
)

// String returns the side name used in logs and match history.
func (s Side) String() string {
	if s == Computer {
		return "computer"
	}
	return "human"
}

// Other returns the opposing side.
func (s Side) Other() Side {
	return 1 - s
}

// State is the match phase.
type State int

const (
	StatePlaying State = iota
	StateHumanWon
	StateComputerWon
)

// Options configures a new match.
type Options struct {
	Rng  *rand.Rand
	Size int

	// TargetSpan limits the computer's random targets to [0, TargetSpan).
	TargetSpan int

	PlacementAttempts int
	SetupRestarts     int

	// ComputerShotAttempts bounds rejected computer targets per turn.
	ComputerShotAttempts int

	// Human supplies the human's targets. Front ends that submit shots through
	// Fire may leave it nil.
	Human Strategy

	// OnShot is called after every legal shot.
	OnShot func(p *Player, res ShotResult)
	// OnReject is called for every refused target.
	OnReject func(p *Player, target core.Coord, err error)
}

// Turn is one legal shot as seen by the match.
type Turn struct {
	Shooter Side
	Result  ShotResult
}

// Summary is the outcome of a finished match.
type Summary struct {
	Winner Side
	Shots  [2]int
	Hits   [2]int
	Turns  int
}

// Match alternates shots between a human and a computer player.
type Match struct {
	players  [2]*Player
	current  Side
	state    State
	shots    [2]int
	hits     [2]int
	turns    int
	restarts [2]int
	onShot   func(p *Player, res ShotResult)
}

// NewMatch builds both boards by random placement and binds the players.
// The computer's board is hidden.
func NewMatch(opts Options) (*Match, error) {
	if opts.Rng == nil {
		return nil, fmt.Errorf("new match: nil random source")
	}
	if opts.Size < 1 {
		opts.Size = DefaultSize
	}

	placer := NewPlacer(opts.Rng, opts.Size)
	if opts.PlacementAttempts > 0 {
		placer.Attempts = opts.PlacementAttempts
	}
	if opts.SetupRestarts > 0 {
		placer.Restarts = opts.SetupRestarts
	}

	m := &Match{onShot: opts.OnShot}

	humanBoard, restarts, err := placer.Build()
	if err != nil {
		return nil, fmt.Errorf("human board: %w", err)
	}
	m.restarts[Human] = restarts

	computerBoard, restarts, err := placer.Build()
	if err != nil {
		return nil, fmt.Errorf("computer board: %w", err)
	}
	m.restarts[Computer] = restarts
	computerBoard.SetHidden(true)

	m.players[Human] = &Player{
		Name:     "You",
		Side:     Human,
		Own:      humanBoard,
		Enemy:    computerBoard,
		Strategy: opts.Human,
		OnReject: opts.OnReject,
	}
	m.players[Computer] = &Player{
		Name:        "Computer",
		Side:        Computer,
		Own:         computerBoard,
		Enemy:       humanBoard,
		Strategy:    NewRandomStrategy(opts.Rng, opts.TargetSpan),
		MaxAttempts: opts.ComputerShotAttempts,
		OnReject:    opts.OnReject,
	}
	return m, nil
}

// Player returns the player on the given side.
func (m *Match) Player(s Side) *Player { return m.players[s] }

// Current returns the side to shoot next.
func (m *Match) Current() Side { return m.current }

// State returns the match phase.
func (m *Match) State() State { return m.state }

// Finished reports whether one fleet has been destroyed.
func (m *Match) Finished() bool { return m.state != StatePlaying }

// SetupRestarts returns how many times each board had to be rebuilt from empty.
func (m *Match) SetupRestarts() [2]int { return m.restarts }

// Step plays one legal shot for the current player using its strategy.
func (m *Match) Step() (Turn, error) {
	if m.Finished() {
		return Turn{}, ErrMatchOver
	}
	shooter := m.current
	p := m.players[shooter]
	if p.Strategy == nil {
		return Turn{}, fmt.Errorf("%s has no target source", p.Name)
	}

	res, err := p.TakeTurn()
	if err != nil {
		return Turn{}, err
	}
	m.record(shooter, res)
	return Turn{Shooter: shooter, Result: res}, nil
}

// Fire submits a single target for the current player. Refused targets are
// returned as errors and leave the turn with the same player.
func (m *Match) Fire(target core.Coord) (Turn, error) {
	if m.Finished() {
		return Turn{}, ErrMatchOver
	}
	shooter := m.current
	res, err := m.players[shooter].Enemy.Shoot(target)
	if err != nil {
		return Turn{}, err
	}
	m.record(shooter, res)
	return Turn{Shooter: shooter, Result: res}, nil
}

// Run steps until the match is over.
func (m *Match) Run() (Summary, error) {
	for !m.Finished() {
		if _, err := m.Step(); err != nil {
			return m.Summary(), err
		}
	}
	return m.Summary(), nil
}

// Summary returns the statistics so far. Winner is only meaningful once the
// match is finished.
func (m *Match) Summary() Summary {
	winner := Human
	if m.state == StateComputerWon {
		winner = Computer
	}
	return Summary{
		Winner: winner,
		Shots:  m.shots,
		Hits:   m.hits,
		Turns:  m.turns,
	}
}

// record applies bookkeeping after a legal shot. Both boards are checked after
// every shot since a repeated shot can end the match mid-turn.
func (m *Match) record(shooter Side, res ShotResult) {
	m.shots[shooter]++
	if res.Outcome != Miss {
		m.hits[shooter]++
	}
	if m.onShot != nil {
		m.onShot(m.players[shooter], res)
	}

	switch {
	case m.players[Computer].Own.Defeated():
		m.state = StateHumanWon
	case m.players[Human].Own.Defeated():
		m.state = StateComputerWon
	}

	if m.Finished() {
		m.turns++
		return
	}
	if !res.Outcome.Repeat() {
		m.current = shooter.Other()
		m.turns++
	}
}
