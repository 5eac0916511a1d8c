// Package main is the entry point for the terminal minesweeper.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/minesweeper/internal/game"
	"github.com/samdwyer/minesweeper/internal/gamedata"
	"github.com/samdwyer/minesweeper/internal/telemetry"
	"github.com/samdwyer/minesweeper/internal/ui"
)

func main() {
	err := run(context.Background(), os.Args[1:], os.Getenv, openScreen)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		// The log file may be unset, so stderr is the only reliable place
		fmt.Fprintf(os.Stderr, "minesweeper: %v\n", err)
		os.Exit(1)
	}
}

// run plays one session and returns the first error that stops it.
func run(ctx context.Context, args []string, getenv func(string) string, openDisplay func() (ui.Display, error)) error {
	// Not fatal: env vars might be set directly
	envErr := godotenv.Load()

	logger, closeLog, err := newLogger(getenv("LOG_LEVEL"), getenv("LOG_FILE"))
	if err != nil {
		return fmt.Errorf("log setup: %w", err)
	}
	defer closeLog()
	log.Logger = logger
	if envErr != nil {
		logger.Debug().Err(envErr).Msg(".env file not loaded")
	}

	cfg, err := resolveConfig(args, getenv, gamedata.MustLoadPresetRegistry())
	if err != nil {
		return err
	}

	machine, err := game.New(cfg, game.WithLogger(logger))
	if err != nil {
		logger.Error().Err(err).Msg("failed to create game")
		return fmt.Errorf("create game: %w", err)
	}

	display, err := openDisplay()
	if err != nil {
		logger.Error().Err(err).Msg("failed to open terminal")
		return fmt.Errorf("open terminal: %w", err)
	}

	setupOTelEnv(getenv)
	shutdown, err := telemetry.Setup(ctx, cfg.Size, cfg.Mines)
	if err != nil {
		// The game still works without observability
		logger.Warn().Err(err).Msg("telemetry setup failed")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error().Err(err).Msg("telemetry shutdown failed")
			}
		}()
	}

	logger.Info().
		Int("size", cfg.Size).
		Int("mines", cfg.Mines).
		Str("game_id", machine.ID().String()).
		Msg("starting minesweeper")

	app := ui.NewApp(display, machine, gamedata.MustLoadPalette(), logger)
	if err := app.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("game error")
		return err
	}
	return nil
}

func openScreen() (ui.Display, error) {
	s, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// newLogger builds the process logger. The terminal belongs to the UI, so
// logs go to path when set and are discarded otherwise.
func newLogger(level, path string) (zerolog.Logger, func(), error) {
	if level == "" {
		level = "info"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)

	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}
	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, func() { f.Close() }, nil
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is present.
func setupOTelEnv(getenv func(string) string) {
	apiKey := getenv("HONEYCOMB_MINESWEEPER_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := getenv("HONEYCOMB_MINESWEEPER_DATASET")
	if dataset == "" {
		dataset = "minesweeper"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
