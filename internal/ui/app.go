package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/samdwyer/minesweeper/internal/game"
	"github.com/samdwyer/minesweeper/internal/gamedata"
	"github.com/samdwyer/minesweeper/internal/telemetry"
)

// App runs the interactive loop: it turns terminal input into game events
// and redraws after each one.
type App struct {
	display  Display
	renderer *Renderer
	machine  *game.Machine
	logger   zerolog.Logger
	cursor   int
	buttons  tcell.ButtonMask
	running  bool
}

// NewApp creates an app that drives machine on display.
func NewApp(display Display, machine *game.Machine, palette *gamedata.PaletteDef, logger zerolog.Logger) *App {
	size := machine.Size()
	return &App{
		display:  display,
		renderer: NewRenderer(display, palette),
		machine:  machine,
		logger:   logger,
		cursor:   (size/2)*size + size/2,
		running:  true,
	}
}

// Run executes the main loop until the player quits.
func (a *App) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("ui")
	ctx, span := tracer.Start(ctx, "ui.session")
	defer span.End()
	span.SetAttributes(telemetry.BoardAttributes(a.machine.Size(), a.machine.Mines())...)

	for a.running {
		a.renderer.Render(a.view())

		// Blocks until the next input event
		a.handleEvent(ctx, a.display.PollEvent())
	}

	a.display.Close()
	return nil
}

// handleEvent processes a single input event.
func (a *App) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		a.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		a.display.Sync()
	case nil:
		// The screen was finalized underneath us
		a.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (a *App) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.running = false

	case tcell.KeyUp:
		a.moveCursor(0, -1)
	case tcell.KeyDown:
		a.moveCursor(0, 1)
	case tcell.KeyLeft:
		a.moveCursor(-1, 0)
	case tcell.KeyRight:
		a.moveCursor(1, 0)
	case tcell.KeyEnter:
		a.reveal(ctx, a.cursor)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			a.running = false
		case 'k':
			a.moveCursor(0, -1)
		case 'j':
			a.moveCursor(0, 1)
		case 'h':
			a.moveCursor(-1, 0)
		case 'l':
			a.moveCursor(1, 0)
		case ' ':
			a.reveal(ctx, a.cursor)
		case 'f', 'F':
			a.flag(ctx, a.cursor)
		case 'r', 'R':
			a.reset(ctx)
		}
	}
}

// handleMouseEvent reveals on left press and flags on right press.
func (a *App) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	pressed := ev.Buttons() &^ a.buttons
	a.buttons = ev.Buttons()

	x, y := ev.Position()
	i, ok := CellAt(x, y, a.machine.Size())
	if !ok {
		return
	}
	a.cursor = i

	switch {
	case pressed&tcell.Button1 != 0:
		a.reveal(ctx, i)
	case pressed&tcell.Button2 != 0:
		a.flag(ctx, i)
	}
}

// moveCursor shifts the selection, stopping at the board edges.
func (a *App) moveCursor(dx, dy int) {
	size := a.machine.Size()
	row, col := a.cursor/size, a.cursor%size
	row = min(max(row+dy, 0), size-1)
	col = min(max(col+dx, 0), size-1)
	a.cursor = row*size + col
}

// reveal opens cell i and then asks the machine whether the game is won.
func (a *App) reveal(ctx context.Context, i int) {
	a.send(ctx, game.RevealCell(i))
	a.checkWin(ctx)
}

// flag toggles the flag on cell i and then asks whether the game is won.
func (a *App) flag(ctx context.Context, i int) {
	a.send(ctx, game.FlagCell(i))
	a.checkWin(ctx)
}

// reset starts a new game; the machine ignores it until the current one is over.
func (a *App) reset(ctx context.Context) {
	a.send(ctx, game.Reset())
}

func (a *App) checkWin(ctx context.Context) {
	if a.machine.State() == game.StatePlaying {
		a.send(ctx, game.CheckWin())
	}
}

func (a *App) send(ctx context.Context, ev game.Event) {
	if _, _, err := a.machine.Dispatch(ctx, ev); err != nil {
		a.logger.Error().Err(err).Str("event", ev.Kind.String()).Msg("dispatch failed")
	}
}

func (a *App) view() View {
	return View{
		Snapshot:  a.machine.Snapshot(),
		State:     a.machine.State(),
		Cursor:    a.cursor,
		MinesLeft: a.machine.Mines() - a.machine.FlagsPlaced(),
		GameID:    a.machine.ID().String(),
	}
}
