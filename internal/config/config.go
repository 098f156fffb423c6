// Package config provides YAML-based configuration loading for Sea Battle.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Config contains all configuration for a Sea Battle session.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Computer ComputerConfig `yaml:"computer"`
	Symbols  SymbolsConfig  `yaml:"symbols"`
	History  HistoryConfig  `yaml:"history"`
}

// BoardConfig defines the grid and the random setup budgets.
type BoardConfig struct {
	Size              int `yaml:"size"`
	PlacementAttempts int `yaml:"placement_attempts"`
	SetupRestarts     int `yaml:"setup_restarts"`
}

// ComputerConfig defines the random opponent.
type ComputerConfig struct {
	// TargetSpan limits random targets to [0, span) on both axes.
	// Zero means the whole board.
	TargetSpan   int `yaml:"target_span"`
	ShotAttempts int `yaml:"shot_attempts"`
}

// SymbolsConfig defines the characters used to draw cells.
type SymbolsConfig struct {
	Empty string `yaml:"empty"`
	Ship  string `yaml:"ship"`
	Hit   string `yaml:"hit"`
	Miss  string `yaml:"miss"`
}

// HistoryConfig defines where finished matches are recorded.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// Span returns the effective computer target span.
func (c Config) Span() int {
	if c.Computer.TargetSpan == 0 {
		return c.Board.Size
	}
	return c.Computer.TargetSpan
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	var errs []error
	if c.Board.Size < 1 {
		errs = append(errs, fmt.Errorf("board.size must be positive, got %d", c.Board.Size))
	}
	if c.Board.PlacementAttempts < 1 {
		errs = append(errs, fmt.Errorf("board.placement_attempts must be positive, got %d", c.Board.PlacementAttempts))
	}
	if c.Board.SetupRestarts < 0 {
		errs = append(errs, fmt.Errorf("board.setup_restarts must not be negative, got %d", c.Board.SetupRestarts))
	}
	if span := c.Span(); span < 1 || span > c.Board.Size {
		errs = append(errs, fmt.Errorf("computer.target_span must be within [1, %d], got %d", c.Board.Size, span))
	}
	if c.Computer.ShotAttempts < 1 {
		errs = append(errs, fmt.Errorf("computer.shot_attempts must be positive, got %d", c.Computer.ShotAttempts))
	}
	for name, sym := range map[string]string{
		"empty": c.Symbols.Empty,
		"ship":  c.Symbols.Ship,
		"hit":   c.Symbols.Hit,
		"miss":  c.Symbols.Miss,
	} {
		if utf8.RuneCountInString(sym) != 1 {
			errs = append(errs, fmt.Errorf("symbols.%s must be a single character, got %q", name, sym))
		}
	}
	return errors.Join(errs...)
}

// symbolRune returns the first rune of s.
func symbolRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// Runes returns the symbols as runes. Call Validate first.
func (s SymbolsConfig) Runes() (empty, ship, hit, miss rune) {
	return symbolRune(s.Empty), symbolRune(s.Ship), symbolRune(s.Hit), symbolRune(s.Miss)
}
