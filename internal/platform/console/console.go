// Package console runs a match as a plain line-oriented terminal session:
// boards are printed before every turn and targets are read as "row col".
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seabattle/internal/core"
	"github.com/vovakirdan/seabattle/internal/games/seabattle"
	"github.com/vovakirdan/seabattle/internal/platform/tui"
)

const rule = "--------------------"

// Options configures a console session.
type Options struct {
	In      io.Reader
	Out     io.Writer
	Symbols seabattle.Symbols

	// Color renders boards with ANSI colors.
	Color bool

	Logger *log.Logger
}

// Session prints a match to Out and reads the human's targets from In.
type Session struct {
	out    io.Writer
	in     io.Reader
	sym    seabattle.Symbols
	color  bool
	logger *log.Logger
}

// New creates a console session.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		out:    opts.Out,
		in:     opts.In,
		sym:    opts.Symbols,
		color:  opts.Color,
		logger: logger,
	}
}

// Strategy returns the human's target source for this session.
func (s *Session) Strategy() seabattle.Strategy {
	return seabattle.NewPromptStrategy(s.in, s.out)
}

// Announce prints a legal shot. Use it as the match's OnShot hook.
func (s *Session) Announce(p *seabattle.Player, res seabattle.ShotResult) {
	fmt.Fprintln(s.out, seabattle.Announce(p.Side, res))
}

// Reject reports a refused target. Use it as the match's OnReject hook.
// The computer's blind repeats are only logged.
func (s *Session) Reject(p *seabattle.Player, target core.Coord, err error) {
	if p.Side == seabattle.Human {
		fmt.Fprintln(s.out, err)
		return
	}
	s.logger.Debug("target refused", "player", p.Name, "target", target.String(), "error", err)
}

// Introduction prints the opening banner.
func (s *Session) Introduction() {
	lines := []string{
		"**************************************",
		"      Welcome to Sea Battle",
		"      You play against the computer",
		"--------------------------------------",
		"  input format: x y",
		"  x - row number",
		"  y - column number",
		"**************************************",
	}
	fmt.Fprintln(s.out, strings.Join(lines, "\n"))
}

// Play runs the match to its end, printing both boards before every shot.
func (s *Session) Play(m *seabattle.Match) (seabattle.Summary, error) {
	for !m.Finished() {
		s.printBoards(m)
		if m.Current() == seabattle.Human {
			fmt.Fprintln(s.out, "Your turn")
		} else {
			fmt.Fprintln(s.out, "Computer's turn!")
		}

		if _, err := m.Step(); err != nil {
			return m.Summary(), err
		}
	}

	s.printBoards(m)
	if m.State() == seabattle.StateHumanWon {
		fmt.Fprintln(s.out, "You have won!")
	} else {
		fmt.Fprintln(s.out, "The computer has won.")
	}
	return m.Summary(), nil
}

func (s *Session) printBoards(m *seabattle.Match) {
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, "Your board:")
	fmt.Fprintln(s.out, s.render(m.Player(seabattle.Human).Own))
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, "Computer's board:")
	fmt.Fprintln(s.out, s.render(m.Player(seabattle.Computer).Own))
	fmt.Fprintln(s.out, rule)
}

func (s *Session) render(b *seabattle.Board) string {
	screen := seabattle.RenderBoard(b, s.sym)
	if s.color {
		return tui.RenderScreen(screen)
	}
	return screen.String()
}
