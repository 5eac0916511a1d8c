// Package telemetry provides OpenTelemetry instrumentation for Honeycomb.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "minesweeper"
	serviceVersion = "0.1.0"
	tracerPrefix   = serviceName + "/"
)

// Attribute keys shared by the game and ui spans and the process resource.
const (
	GameIDKey      = attribute.Key("minesweeper.game.id")
	EventKey       = attribute.Key("minesweeper.event")
	StateFromKey   = attribute.Key("minesweeper.state.from")
	StateToKey     = attribute.Key("minesweeper.state.to")
	CellIndexKey   = attribute.Key("minesweeper.cell.index")
	FirstClickKey  = attribute.Key("minesweeper.first_click")
	MinesPlacedKey = attribute.Key("minesweeper.mines.placed")
	RevealCellsKey = attribute.Key("minesweeper.reveal.cells")
	BoardSizeKey   = attribute.Key("minesweeper.board.size")
	BoardMinesKey  = attribute.Key("minesweeper.board.mines")
)

// BoardAttributes describes the board every game in this process is played on.
func BoardAttributes(size, mines int) []attribute.KeyValue {
	return []attribute.KeyValue{
		BoardSizeKey.Int(size),
		BoardMinesKey.Int(mines),
		attribute.Int("minesweeper.board.cells", size*size),
	}
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter configured from
// the standard OTEL_* environment variables:
//   - OTEL_EXPORTER_OTLP_ENDPOINT: collector endpoint
//   - OTEL_EXPORTER_OTLP_HEADERS: headers such as x-honeycomb-team=<api-key>
//
// The board dimensions are recorded on the resource so every span carries
// them. The returned function flushes and stops the provider; call it on exit.
func Setup(ctx context.Context, size, mines int) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx, size, mines)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// newResource is built standalone rather than merged with resource.Default()
// to avoid schema URL conflicts.
func newResource(ctx context.Context, size, mines int) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("telemetry.sdk.language", "go"),
		attribute.String("host.name", hostname()),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.version", runtime.Version()),
	}
	return resource.New(ctx, resource.WithAttributes(append(attrs, BoardAttributes(size, mines)...)...))
}

// Tracer returns a named tracer for the given component from the global
// provider. Before Setup runs, or when it fails, spans are dropped.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(tracerPrefix + name)
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(tracerPrefix + "noop")
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}
