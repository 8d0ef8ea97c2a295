package application

import (
	"context"
	"io"
	"log/slog"

	activitydomain "github.com/Apurer/storefront-api/internal/domains/activity/domain"
	activityports "github.com/Apurer/storefront-api/internal/domains/activity/ports"
	"github.com/Apurer/storefront-api/internal/domains/users/domain"
	"github.com/Apurer/storefront-api/internal/domains/users/ports"
	"github.com/Apurer/storefront-api/internal/shared/projection"
	"github.com/Apurer/storefront-api/internal/shared/resource"
)

// ProfileService lets users read and edit their own account.
type ProfileService struct {
	repo     ports.Repository
	activity activityports.Recorder
	logger   *slog.Logger
}

// Option configures a ProfileService.
type Option func(*ProfileService)

// WithLogger sets the logger used for activity feed failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *ProfileService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewProfileService(repo ports.Repository, activity activityports.Recorder, opts ...Option) *ProfileService {
	if activity == nil {
		activity = activityports.NoopRecorder
	}
	s := &ProfileService{repo: repo, activity: activity, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ProfileService) Get(ctx context.Context, userID string) (projection.Projection[domain.User], error) {
	rec, ok := s.repo.Get(ctx, userID)
	if !ok {
		return projection.Projection[domain.User]{}, resource.ErrNotFound
	}
	return rec, nil
}

// Update applies patch to the caller's account. Email and role are account
// settings and are dropped from the patch.
func (s *ProfileService) Update(ctx context.Context, userID string, patch domain.Patch) (projection.Projection[domain.User], error) {
	patch.Email = nil
	patch.Role = nil
	rec, err := s.repo.Update(ctx, userID, patch)
	if err != nil {
		return projection.Projection[domain.User]{}, mapError(err)
	}
	activityports.RecordOrWarn(ctx, s.activity, s.logger, activitydomain.Activity{
		UserID:      userID,
		Type:        activitydomain.TypeProfileUpdated,
		Title:       "Profile Updated",
		Description: "Your profile information has been updated",
	})
	return rec, nil
}

var _ ports.ProfileService = (*ProfileService)(nil)
