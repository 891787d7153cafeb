package odr

import (
	"context"
	"fmt"
	"log/slog"
)

type DiagnosticKind int

const (
	// No lane section covers the queried arc length.
	MissingLaneSection DiagnosticKind = iota + 1
	// The lane section has no lane for the queried lateral offset.
	MissingLane
)

func (k DiagnosticKind) String() string {
	switch k {
	case MissingLaneSection:
		return "missing lane section"
	case MissingLane:
		return "missing lane"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic describes a recoverable problem encountered while answering a
// query. The query still produced a usable result; the diagnostic says which
// fallback was taken.
type Diagnostic struct {
	Kind DiagnosticKind
	Road string
	S, T float64
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("road %s: %s at s=%.2f, t=%.2f", d.Road, d.Kind, d.S, d.T)
}

// LogValue implements slog.LogValuer.
func (d *Diagnostic) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("road", d.Road),
		slog.String("kind", d.Kind.String()),
		slog.Float64("s", d.S),
		slog.Float64("t", d.T),
	)
}

// Log writes d to logger at warning level. It does nothing if d is nil, so
// that the result of a query can be passed in unconditionally.
func (d *Diagnostic) Log(ctx context.Context, logger *slog.Logger) {
	if d == nil {
		return
	}
	logger.LogAttrs(ctx, slog.LevelWarn, "road surface fallback", slog.Any("diagnostic", d))
}
