package provider

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_response_system/internal/models"
)

// StaticSocialFeed - подменный источник социального сигнала.
// Возвращает фиксированный набор постов; ядро зависит только от
// задокументированных полей, не от происхождения данных.
type StaticSocialFeed struct{}

func NewStaticSocialFeed() *StaticSocialFeed {
	return &StaticSocialFeed{}
}

func (s *StaticSocialFeed) FetchPosts(ctx context.Context, disasterID uuid.UUID) ([]*models.SocialPost, error) {
	now := time.Now().UTC()
	return []*models.SocialPost{
		{
			ID:       disasterID.String() + "-1",
			User:     "citizen_reporter",
			Content:  "#floodrelief Need food and water in the affected area",
			PostedAt: now.Add(-15 * time.Minute),
		},
		{
			ID:       disasterID.String() + "-2",
			User:     "local_volunteer",
			Content:  "Shelter open near the main square, capacity for 50 people",
			PostedAt: now.Add(-5 * time.Minute),
		},
	}, nil
}
