package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seabattle/internal/config"
	"github.com/vovakirdan/seabattle/internal/core"
	"github.com/vovakirdan/seabattle/internal/games/seabattle"
	"github.com/vovakirdan/seabattle/internal/storage"
)

// session holds everything a command needs to set up and record a match.
type session struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	logger  *log.Logger
	logFile *os.File
	started time.Time
}

// newSession loads the config and builds the logger. Logs go to stderr unless
// --log-file is set or fallback is given.
func newSession(fallback io.Writer) (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if flagDBPath != "" {
		cfg.History.DBPath = flagDBPath
	}
	if flagNoHistory {
		cfg.History.Enabled = false
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	s := &session{
		cfg:     cfg,
		runtime: core.DefaultConfig(),
	}
	s.runtime.Seed = flagSeed
	if s.runtime.Seed == 0 {
		s.runtime.Seed = time.Now().UnixNano()
	}

	out := io.Writer(os.Stderr)
	if fallback != nil {
		out = fallback
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		s.logFile = f
		out = f
	}

	s.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "seabattle",
		Level:           level,
	})
	return s, nil
}

// Close releases the log file, if any.
func (s *session) Close() {
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// newMatch sets up a match from the loaded config. human may be nil for front
// ends that submit shots through Match.Fire.
func (s *session) newMatch(human seabattle.Strategy, onShot func(*seabattle.Player, seabattle.ShotResult), onReject func(*seabattle.Player, core.Coord, error)) (*seabattle.Match, error) {
	m, err := seabattle.NewMatch(seabattle.Options{
		Rng:                  rand.New(rand.NewSource(s.runtime.Seed)),
		Size:                 s.cfg.Board.Size,
		TargetSpan:           s.cfg.Span(),
		PlacementAttempts:    s.cfg.Board.PlacementAttempts,
		SetupRestarts:        s.cfg.Board.SetupRestarts,
		ComputerShotAttempts: s.cfg.Computer.ShotAttempts,
		Human:                human,
		OnShot:               onShot,
		OnReject:             onReject,
	})
	if err != nil {
		if errors.Is(err, seabattle.ErrSetupFailed) {
			s.logger.Error("setup failed", "size", s.cfg.Board.Size, "fleet", seabattle.Fleet, "error", err)
		}
		return nil, err
	}

	restarts := m.SetupRestarts()
	s.logger.Debug("boards placed",
		"human_restarts", restarts[seabattle.Human],
		"computer_restarts", restarts[seabattle.Computer],
	)
	s.logger.Info("match started", "seed", s.runtime.Seed, "size", s.cfg.Board.Size)
	s.started = time.Now()
	return m, nil
}

// symbols returns the configured cell symbols.
func (s *session) symbols() seabattle.Symbols {
	empty, ship, hit, miss := s.cfg.Symbols.Runes()
	return seabattle.Symbols{Empty: empty, Ship: ship, Hit: hit, Miss: miss}
}

// recordMatch stores a finished match in the history database.
// Failures are logged; the game result stands regardless.
func (s *session) recordMatch(sum seabattle.Summary) {
	duration := time.Since(s.started)
	s.logger.Info("match finished",
		"winner", sum.Winner.String(),
		"turns", sum.Turns,
		"duration", duration.Round(time.Second),
	)

	if !s.cfg.History.Enabled {
		return
	}

	store, err := storage.Open(s.cfg.History.DBPath)
	if err != nil {
		s.logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveMatch(storage.MatchRecord{
		Winner:        sum.Winner.String(),
		HumanShots:    sum.Shots[seabattle.Human],
		ComputerShots: sum.Shots[seabattle.Computer],
		HumanHits:     sum.Hits[seabattle.Human],
		ComputerHits:  sum.Hits[seabattle.Computer],
		Turns:         sum.Turns,
		BoardSize:     s.cfg.Board.Size,
		Seed:          s.runtime.Seed,
		Duration:      duration,
	})
	if err != nil {
		s.logger.Warn("could not record match", "error", err)
		return
	}
	s.logger.Debug("match recorded", "match_id", id)
}

// historyPath returns the database path for the read-only commands.
func historyPath() (string, error) {
	if flagDBPath != "" {
		return flagDBPath, nil
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return cfg.History.DBPath, nil
}
