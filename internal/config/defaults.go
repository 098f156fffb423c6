package config

import (
	_ "embed"
)

//go:embed defaults/seabattle.yaml
var defaultYAML []byte

// DefaultConfig returns the default Sea Battle configuration.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Size:              7,
			PlacementAttempts: 2000,
			SetupRestarts:     100,
		},
		Computer: ComputerConfig{
			TargetSpan:   0,
			ShotAttempts: 10000,
		},
		Symbols: SymbolsConfig{
			Empty: "O",
			Ship:  "■",
			Hit:   "X",
			Miss:  ".",
		},
		History: HistoryConfig{
			Enabled: true,
			DBPath:  "~/.seabattle/history.db",
		},
	}
}
