package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seabattle/internal/platform/console"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the console",
	Long: `Play a match in the console. Both boards are printed before every shot.

Input format: "x y"
  x - row number, starting at 1
  y - column number, starting at 1

Board symbols:
  O - unknown / empty
  ■ - your ship
  X - hit
  . - miss

Press Ctrl+D to leave the game.

Examples:
  seabattle play
  seabattle play --seed 42
  seabattle play --config ./my-seabattle.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	s, err := newSession(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	con := console.New(console.Options{
		In:      os.Stdin,
		Out:     os.Stdout,
		Symbols: s.symbols(),
		Color:   term.IsTerminal(int(os.Stdout.Fd())),
		Logger:  s.logger,
	})

	m, err := s.newMatch(con.Strategy(), con.Announce, con.Reject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up match: %v\n", err)
		s.Close()
		os.Exit(1)
	}

	con.Introduction()
	sum, err := con.Play(m)
	if errors.Is(err, io.EOF) {
		fmt.Println()
		fmt.Println("Goodbye!")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		s.Close()
		os.Exit(1)
	}

	s.recordMatch(sum)
	fmt.Printf("Replay this match with --seed %d\n", s.runtime.Seed)
}
