package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/samdwyer/minesweeper/internal/game"
	"github.com/samdwyer/minesweeper/internal/gamedata"
	"github.com/samdwyer/minesweeper/internal/ui"
)

func TestResolveConfig(t *testing.T) {
	presets := gamedata.MustLoadPresetRegistry()

	tests := []struct {
		name string
		args []string
		env  map[string]string
		want game.Config
	}{
		{"default preset", nil, nil, game.Config{Size: 9, Mines: 10}},
		{"preset flag", []string{"-preset", "expert"}, nil, game.Config{Size: 24, Mines: 99}},
		{"preset env", nil, map[string]string{"MINESWEEPER_PRESET": "intermediate"}, game.Config{Size: 16, Mines: 40}},
		{
			"env overrides preset",
			nil,
			map[string]string{"MINESWEEPER_SIZE": "12", "MINESWEEPER_MINES": "20", "MINESWEEPER_SEED": "7"},
			game.Config{Size: 12, Mines: 20, Seed: 7},
		},
		{
			"flags override env",
			[]string{"-size", "5", "-mines", "4", "-seed", "3"},
			map[string]string{"MINESWEEPER_SIZE": "12", "MINESWEEPER_MINES": "20"},
			game.Config{Size: 5, Mines: 4, Seed: 3},
		},
	}

	for _, tt := range tests {
		getenv := func(k string) string { return tt.env[k] }
		got, err := resolveConfig(tt.args, getenv, presets)
		if err != nil {
			t.Errorf("%s: resolveConfig() error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: resolveConfig() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestResolveConfigErrors(t *testing.T) {
	presets := gamedata.MustLoadPresetRegistry()
	noEnv := func(string) string { return "" }

	if _, err := resolveConfig([]string{"-preset", "impossible"}, noEnv, presets); err == nil {
		t.Error("unknown preset should fail")
	}
	if _, err := resolveConfig(nil, func(k string) string {
		if k == "MINESWEEPER_SIZE" {
			return "big"
		}
		return ""
	}, presets); err == nil {
		t.Error("non-numeric MINESWEEPER_SIZE should fail")
	}
	if _, err := resolveConfig([]string{"-size", "3", "-mines", "1"}, noEnv, presets); !errors.Is(err, game.ErrInvalidConfiguration) {
		t.Errorf("too many mines error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestNewLogger(t *testing.T) {
	if _, _, err := newLogger("loud", ""); err == nil {
		t.Error("unknown level should fail")
	}

	logger, closeLog, err := newLogger("debug", t.TempDir()+"/minesweeper.log")
	if err != nil {
		t.Fatalf("newLogger() error: %v", err)
	}
	defer closeLog()
	logger.Info().Msg("hello")
}

func TestRunReturnsStartupErrors(t *testing.T) {
	noTTY := errors.New("open /dev/tty: no such device or address")
	opened := false
	noTerminal := func() (ui.Display, error) {
		opened = true
		return nil, noTTY
	}

	tests := []struct {
		name string
		args []string
		env  map[string]string
		want string
	}{
		{"bad log level", nil, map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"bad flag", []string{"-size", "x"}, nil, "invalid value"},
		{"too many mines", []string{"-size", "3", "-mines", "1"}, nil, "invalid game configuration"},
		{"no terminal", nil, nil, "open terminal"},
	}

	for _, tt := range tests {
		getenv := func(k string) string { return tt.env[k] }
		err := run(context.Background(), tt.args, getenv, noTerminal)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: run() error = %v, want it to mention %q", tt.name, err, tt.want)
		}
	}
	if !opened {
		t.Fatal("run() never tried to open the terminal")
	}

	// Even with logging discarded, the terminal failure must reach the caller.
	err := run(context.Background(), nil, func(string) string { return "" }, noTerminal)
	if !errors.Is(err, noTTY) {
		t.Errorf("run() error = %v, want it to wrap %v", err, noTTY)
	}
}
