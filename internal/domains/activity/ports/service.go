package ports

import (
	"context"
	"log/slog"

	"github.com/Apurer/storefront-api/internal/domains/activity/domain"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

// Repository persists activity entries.
type Repository interface {
	Create(ctx context.Context, entry domain.Activity) (projection.Projection[domain.Activity], error)
	Find(ctx context.Context, pred func(projection.Projection[domain.Activity]) bool) []projection.Projection[domain.Activity]
}

// Recorder appends entries to a user's feed. Other contexts depend on this
// port only.
type Recorder interface {
	Record(ctx context.Context, entry domain.Activity) error
}

// Service exposes activity feed use cases to adapters.
type Service interface {
	Recorder
	Feed(ctx context.Context, userID string) ([]projection.Projection[domain.Activity], error)
}

// NoopRecorder discards entries. It is the default for services constructed
// without a feed.
var NoopRecorder Recorder = noopRecorder{}

type noopRecorder struct{}

func (noopRecorder) Record(context.Context, domain.Activity) error { return nil }

// RecordOrWarn appends entry through rec. A failed write is logged at WARN
// on logger and not returned.
func RecordOrWarn(ctx context.Context, rec Recorder, logger *slog.Logger, entry domain.Activity) {
	if err := rec.Record(ctx, entry); err != nil {
		logger.LogAttrs(ctx, slog.LevelWarn, "failed to record activity",
			slog.String("user.id", entry.UserID),
			slog.String("activity.type", string(entry.Type)),
			slog.String("error", err.Error()),
		)
	}
}
