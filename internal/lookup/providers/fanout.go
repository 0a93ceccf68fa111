package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// TryEach calls attempt for every target in order and returns the first
// success. Cancellation of ctx stops the walk immediately.
func TryEach[T any](
	ctx context.Context,
	log *slog.Logger,
	id string,
	targets []string,
	attempt func(ctx context.Context, target string) (T, error),
) (T, error) {
	var zero T
	if len(targets) == 0 {
		return zero, NewProviderError(ErrorInternal, id, "no targets configured", ErrNoSourcesConfigured)
	}

	errs := make([]error, 0, len(targets))
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		result, err := attempt(ctx, target)
		if err == nil {
			log.DebugContext(ctx, "target answered", "source", id, "target", target)
			return result, nil
		}
		log.DebugContext(ctx, "target missed",
			"source", id,
			"target", target,
			"category", GetCategory(err),
			"error", err,
		)
		errs = append(errs, err)
	}
	return zero, fmt.Errorf("%s: %w: %w", id, ErrAllProvidersFailed, errors.Join(errs...))
}
