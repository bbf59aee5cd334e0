package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/realtime"
	"github.com/sirupsen/logrus"
)

type socialService struct {
	source    SocialFeedSource
	publisher realtime.Publisher
	logger    *logrus.Logger
}

func NewSocialService(source SocialFeedSource, publisher realtime.Publisher, logger *logrus.Logger) SocialService {
	return &socialService{
		source:    source,
		publisher: publisher,
		logger:    logger,
	}
}

// GetSocialPosts получает социальный сигнал по инциденту и после успешной
// выборки рассылает событие social_signal_refreshed. Отказ источника дает
// пустой список без события.
func (s *socialService) GetSocialPosts(ctx context.Context, disasterID uuid.UUID) ([]*models.SocialPost, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "social",
		"method":      "GetSocialPosts",
		"disaster_id": disasterID,
	})

	posts, err := s.source.FetchPosts(ctx, disasterID)
	if err != nil {
		log.WithError(err).Warn("Social feed source failed, returning empty list")
		return []*models.SocialPost{}, nil
	}
	if posts == nil {
		posts = []*models.SocialPost{}
	}

	if err := s.publisher.Publish(ctx, realtime.SocialSignalRefreshed(disasterID, posts)); err != nil {
		log.WithError(err).Warn("Failed to publish social signal event")
	}

	log.WithField("count", len(posts)).Info("Social signal refreshed")
	return posts, nil
}
