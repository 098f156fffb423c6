package console

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/seabattle/internal/games/seabattle"
)

// sweep returns input lines covering every cell of the board, row by row.
func sweep(size int) string {
	var sb strings.Builder
	for r := 1; r <= size; r++ {
		for c := 1; c <= size; c++ {
			fmt.Fprintf(&sb, "%d %d\n", r, c)
		}
	}
	return sb.String()
}

func newSession(in string) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	return New(Options{
		In:      strings.NewReader(in),
		Out:     &out,
		Symbols: seabattle.DefaultSymbols(),
	}), &out
}

func newMatch(t *testing.T, s *Session, seed int64) *seabattle.Match {
	t.Helper()
	m, err := seabattle.NewMatch(seabattle.Options{
		Rng:                  rand.New(rand.NewSource(seed)),
		Size:                 seabattle.DefaultSize,
		ComputerShotAttempts: 10000,
		Human:                s.Strategy(),
		OnShot:               s.Announce,
		OnReject:             s.Reject,
	})
	if err != nil {
		t.Fatalf("NewMatch() failed: %v", err)
	}
	return m
}

func TestSessionPlaysToTheEnd(t *testing.T) {
	s, out := newSession("oops\n0 0\n" + sweep(seabattle.DefaultSize))
	m := newMatch(t, s, 3)

	if _, err := s.Play(m); err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if !m.Finished() {
		t.Fatal("match should be finished")
	}

	text := out.String()
	for _, want := range []string{
		"Your board:",
		"Computer's board:",
		seabattle.ErrMalformedInput.Error(),
		seabattle.ErrOutOfBounds.Error(),
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if !strings.Contains(text, "You have won!") && !strings.Contains(text, "The computer has won.") {
		t.Error("output missing the final banner")
	}
}

func TestSessionStopsOnEOF(t *testing.T) {
	s, _ := newSession("")
	m := newMatch(t, s, 3)

	if _, err := s.Play(m); !errors.Is(err, io.EOF) {
		t.Errorf("Play() error = %v, expected io.EOF", err)
	}
}

func TestIntroduction(t *testing.T) {
	s, out := newSession("")
	s.Introduction()

	if !strings.Contains(out.String(), "Welcome to Sea Battle") {
		t.Errorf("Introduction() = %q", out.String())
	}
}
