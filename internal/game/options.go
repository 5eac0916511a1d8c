package game

import (
	"math/rand"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/minesweeper/internal/grid"
)

// Option customizes a Machine at construction.
type Option func(*Machine)

// WithLogger sets the logger used for transition records.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithTracer sets the tracer used for dispatch spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(m *Machine) {
		m.tracer = tracer
	}
}

// WithRand sets the random source mine schedules are drawn from,
// overriding Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(m *Machine) {
		m.rng = rng
	}
}

// WithSchedule fixes the mine schedule of the first game instead of
// drawing one. Games after a reset draw their own.
func WithSchedule(s grid.Schedule) Option {
	return func(m *Machine) {
		m.schedule = &s
	}
}
