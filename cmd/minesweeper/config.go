package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/samdwyer/minesweeper/internal/game"
	"github.com/samdwyer/minesweeper/internal/gamedata"
)

// resolveConfig builds the game configuration. A preset supplies the
// defaults, MINESWEEPER_* environment variables override it and command-line
// flags override both.
func resolveConfig(args []string, getenv func(string) string, presets *gamedata.PresetRegistry) (game.Config, error) {
	fs := flag.NewFlagSet("minesweeper", flag.ContinueOnError)
	presetID := fs.String("preset", getenv("MINESWEEPER_PRESET"), "named board: beginner, intermediate or expert")
	size := fs.Int("size", 0, "board rows and columns (overrides the preset)")
	mines := fs.Int("mines", 0, "number of mines (overrides the preset)")
	seed := fs.Int64("seed", 0, "random seed; 0 picks one from the clock")
	if err := fs.Parse(args); err != nil {
		return game.Config{}, err
	}

	preset := presets.Default()
	if *presetID != "" {
		p, err := presets.Lookup(*presetID)
		if err != nil {
			return game.Config{}, err
		}
		preset = p
	}
	cfg := game.Config{Size: preset.Size, Mines: preset.Mines}

	for _, v := range []struct {
		env string
		dst *int
	}{
		{"MINESWEEPER_SIZE", &cfg.Size},
		{"MINESWEEPER_MINES", &cfg.Mines},
	} {
		if raw := getenv(v.env); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return game.Config{}, fmt.Errorf("%s: %w", v.env, err)
			}
			*v.dst = n
		}
	}
	if raw := getenv("MINESWEEPER_SEED"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return game.Config{}, fmt.Errorf("MINESWEEPER_SEED: %w", err)
		}
		cfg.Seed = n
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Size = *size
		case "mines":
			cfg.Mines = *mines
		case "seed":
			cfg.Seed = *seed
		}
	})

	if err := cfg.Validate(); err != nil {
		return game.Config{}, err
	}
	return cfg, nil
}
