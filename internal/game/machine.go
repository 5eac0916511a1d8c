package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/minesweeper/internal/grid"
	"github.com/samdwyer/minesweeper/internal/telemetry"
)

// Machine owns a board and drives it through the game lifecycle.
//
// Events are applied one at a time by Dispatch, which runs to completion
// and never dispatches further events itself. A Machine is not safe for
// concurrent use.
type Machine struct {
	id       uuid.UUID
	cfg      Config
	state    State
	board    *grid.Board
	schedule *grid.Schedule // Pending until the first reveal, nil afterwards
	rng      *rand.Rand
	logger   zerolog.Logger
	tracer   trace.Tracer
}

// New creates an idle game with an all-concealed, mine-free board. The mine
// schedule is drawn on the first reveal unless WithSchedule supplied one.
func New(cfg Config, opts ...Option) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Machine{
		cfg:    cfg,
		logger: zerolog.Nop(),
		tracer: telemetry.Tracer("game"),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		m.rng = rand.New(rand.NewSource(seed))
	}

	if m.schedule != nil && m.schedule.Len() != cfg.Mines {
		return nil, fmt.Errorf("%w: schedule places %d mines, config wants %d",
			ErrInvalidConfiguration, m.schedule.Len(), cfg.Mines)
	}

	pending := m.schedule
	m.reset()
	m.schedule = pending

	return m, nil
}

// ID returns the identifier of the current game. It changes on reset.
func (m *Machine) ID() uuid.UUID {
	return m.id
}

// State returns the current lifecycle state.
func (m *Machine) State() State {
	return m.state
}

// Size returns the board dimension.
func (m *Machine) Size() int {
	return m.cfg.Size
}

// Mines returns the configured mine count.
func (m *Machine) Mines() int {
	return m.cfg.Mines
}

// FlagsPlaced returns the number of flagged cells.
func (m *Machine) FlagsPlaced() int {
	return m.board.Count(grid.Flagged)
}

// Snapshot returns a copy of the current board.
func (m *Machine) Snapshot() grid.Snapshot {
	return m.board.Snapshot()
}

// Dispatch applies ev and returns the resulting state and board.
//
// Reveal and flag events outside the board fail with ErrInvalidIndex and
// leave the game untouched. Events that have no meaning in the current
// state are ignored.
func (m *Machine) Dispatch(ctx context.Context, ev Event) (State, grid.Snapshot, error) {
	ctx, span := m.tracer.Start(ctx, "game.dispatch")
	defer span.End()

	from := m.state
	span.SetAttributes(
		telemetry.GameIDKey.String(m.id.String()),
		telemetry.EventKey.String(ev.Kind.String()),
		telemetry.StateFromKey.String(from.String()),
	)

	if ev.targetsCell() {
		span.SetAttributes(telemetry.CellIndexKey.Int(ev.Index))
		if !m.board.Contains(ev.Index) {
			err := fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, ev.Index, m.board.Len())
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			m.logger.Debug().Err(err).Str("game_id", m.id.String()).Msg("event rejected")
			return m.state, m.board.Snapshot(), err
		}
	}

	switch m.state {
	case StateIdle:
		if ev.Kind == EventRevealCell {
			m.start(ctx, ev.Index)
		}
	case StatePlaying:
		m.play(ctx, ev)
	case StateWon, StateLost:
		if ev.Kind == EventReset {
			m.reset()
		}
	}

	span.SetAttributes(telemetry.StateToKey.String(m.state.String()))
	m.logger.Debug().
		Str("game_id", m.id.String()).
		Str("event", ev.Kind.String()).
		Int("index", ev.Index).
		Str("from", from.String()).
		Str("to", m.state.String()).
		Msg("event dispatched")

	return m.state, m.board.Snapshot(), nil
}

// start places the mines around the first click and opens it.
func (m *Machine) start(ctx context.Context, first int) {
	_, span := m.tracer.Start(ctx, "game.place_mines")
	defer span.End()

	if m.schedule == nil {
		s := m.drawSchedule(first)
		m.schedule = &s
	}
	want := m.schedule.Len()
	placed := grid.PlaceMines(m.board, first, *m.schedule)
	m.schedule = nil

	if placed < want {
		m.logger.Warn().
			Str("game_id", m.id.String()).
			Int("scheduled", want).
			Int("placed", placed).
			Msg("schedule ran past the candidate cells")
	}

	m.board.Reveal(first)
	flooded := m.board.FloodReveal(first)
	m.state = StatePlaying

	span.SetAttributes(
		telemetry.MinesPlacedKey.Int(placed),
		telemetry.FirstClickKey.Int(first),
		telemetry.RevealCellsKey.Int(flooded+1),
	)
}

// play handles events while the game is in progress.
func (m *Machine) play(ctx context.Context, ev Event) {
	switch ev.Kind {
	case EventRevealCell:
		cell := m.board.Cell(ev.Index)
		switch {
		case cell.Mine:
			m.board.Reveal(ev.Index)
			m.state = StateLost
		case cell.Status == grid.Concealed:
			m.board.Reveal(ev.Index)
			flooded := m.board.FloodReveal(ev.Index)
			trace.SpanFromContext(ctx).SetAttributes(telemetry.RevealCellsKey.Int(flooded+1))
		}
	case EventFlagCell:
		m.board.ToggleFlag(ev.Index)
	case EventCheckWin:
		if m.board.IsWon() {
			m.state = StateWon
		}
	}
}

// reset discards the board and any pending schedule and starts a new idle game.
func (m *Machine) reset() {
	m.id = uuid.New()
	m.board = grid.NewBoard(m.cfg.Size)
	m.schedule = nil
	m.state = StateIdle
}

// drawSchedule samples ranks over the cells first actually leaves open, so
// every one of them can receive a mine.
func (m *Machine) drawSchedule(first int) grid.Schedule {
	return grid.Distribute(m.rng, grid.CandidatesFor(first, m.cfg.Size), m.cfg.Mines)
}
