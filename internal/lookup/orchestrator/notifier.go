package orchestrator

import (
	"context"
	"log/slog"

	"vehicleinfo/internal/lookup/providers"
)

// Stage is the point in an attempt an Event reports.
type Stage string

const (
	StageAttempt   Stage = "attempt"
	StageHit       Stage = "hit"
	StageMiss      Stage = "miss"
	StageGenerated Stage = "generated"
)

// Event is a progress notification emitted while a chain runs.
type Event struct {
	Domain providers.Domain
	Source string
	Tier   providers.Tier
	Stage  Stage
	Err    error
}

// Notifier receives progress events. Implementations must not block.
type Notifier interface {
	Notify(ctx context.Context, e Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, e Event)

func (f NotifierFunc) Notify(ctx context.Context, e Event) { f(ctx, e) }

type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Event) {}

// LogNotifier reports events at debug level. The server uses it where the CLI
// prints status lines.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Notify(ctx context.Context, e Event) {
	if n.Logger == nil {
		return
	}
	attrs := []any{"domain", string(e.Domain), "source", e.Source, "stage", string(e.Stage)}
	if e.Err != nil {
		attrs = append(attrs, "category", providers.GetCategory(e.Err))
	}
	n.Logger.DebugContext(ctx, "lookup progress", attrs...)
}
