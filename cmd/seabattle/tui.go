package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seabattle/internal/games/seabattle"
	"github.com/vovakirdan/seabattle/internal/platform/tui"
)

var flagComputerDelay time.Duration

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in a full-screen terminal UI",
	Long: `Play a match in a full-screen terminal UI with both boards side by side.

Controls:
  Enter    - Fire at the typed "row col"
  Ctrl+U   - Clear the input
  Esc      - Quit

Logs are discarded unless --log-file is set, since stderr shares the screen.

Examples:
  seabattle tui
  seabattle tui --seed 42 --computer-delay 1s`,
	Args: cobra.NoArgs,
	Run:  runTUI,
}

func init() {
	tuiCmd.Flags().DurationVar(&flagComputerDelay, "computer-delay", 600*time.Millisecond, "Pause before each computer shot")
}

func runTUI(cmd *cobra.Command, args []string) {
	s, err := newSession(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		s.runtime.ScreenW = w
		s.runtime.ScreenH = h
	}
	needW, needH := tui.MinScreenSize(s.cfg.Board.Size)
	if s.runtime.ScreenW < needW || s.runtime.ScreenH < needH {
		s.logger.Warn("terminal is smaller than the game screen",
			"have", fmt.Sprintf("%dx%d", s.runtime.ScreenW, s.runtime.ScreenH),
			"need", fmt.Sprintf("%dx%d", needW, needH),
		)
	}

	m, err := s.newMatch(nil, nil, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up match: %v\n", err)
		s.Close()
		os.Exit(1)
	}

	finished, err := tui.Run(m, tui.Options{
		Symbols:       s.symbols(),
		ComputerDelay: flagComputerDelay,
		OnFinish:      func(sum seabattle.Summary) { s.recordMatch(sum) },
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		s.Close()
		os.Exit(1)
	}
	if finished {
		fmt.Printf("Replay this match with --seed %d\n", s.runtime.Seed)
	}
}
