package mapper

import (
	activitydomain "github.com/Apurer/storefront-api/internal/domains/activity/domain"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

// Activity represents the transport-level feed entry.
type Activity struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   string         `json:"createdAt"`
}

// FromProjection converts a stored entry into its transport representation.
func FromProjection(rec projection.Projection[activitydomain.Activity]) Activity {
	return Activity{
		ID:          rec.ID,
		UserID:      rec.Entity.UserID,
		Type:        string(rec.Entity.Type),
		Title:       rec.Entity.Title,
		Description: rec.Entity.Description,
		Metadata:    rec.Entity.Metadata,
		CreatedAt:   projection.FormatTimestamp(rec.Metadata.CreatedAt),
	}
}

// FromProjections converts a feed.
func FromProjections(recs []projection.Projection[activitydomain.Activity]) []Activity {
	result := make([]Activity, 0, len(recs))
	for _, rec := range recs {
		result = append(result, FromProjection(rec))
	}
	return result
}
