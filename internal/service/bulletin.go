package service

import (
	"context"
	"time"

	"github.com/shenikar/disaster_response_system/internal/cache"
	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/observability"
	"github.com/sirupsen/logrus"
)

// Единственная глобальная запись: все вызовы разделяют один снимок ленты
const bulletinCacheKey = "official_updates"

type bulletinService struct {
	store   cache.Store
	source  BulletinSource
	logger  *logrus.Logger
	metrics *observability.Metrics
	ttl     time.Duration
}

func NewBulletinService(store cache.Store, source BulletinSource, logger *logrus.Logger, cfg *config.Config, metrics *observability.Metrics) BulletinService {
	return &bulletinService{
		store:   store,
		source:  source,
		logger:  logger,
		metrics: metrics,
		ttl:     cfg.CacheTTL,
	}
}

// OfficialUpdates возвращает кешированный снимок официальных оповещений.
// Оповещения вспомогательны: отказ источника дает пустой список, не ошибку.
func (s *bulletinService) OfficialUpdates(ctx context.Context) []*models.Bulletin {
	log := s.logger.WithFields(logrus.Fields{
		"service": "bulletin",
		"method":  "OfficialUpdates",
	})

	bulletins := make([]*models.Bulletin, 0)
	if cacheGet(ctx, s.store, log, s.metrics, "official_updates", bulletinCacheKey, &bulletins) {
		return bulletins
	}

	fetched, err := s.source.FetchBulletins(ctx)
	if err != nil {
		s.metrics.ProviderRequest("bulletins", "error")
		log.WithError(err).Warn("Bulletin source failed, returning empty list")
		return []*models.Bulletin{}
	}
	s.metrics.ProviderRequest("bulletins", "success")

	if fetched == nil {
		fetched = []*models.Bulletin{}
	}
	cacheSet(ctx, s.store, log, bulletinCacheKey, fetched, s.ttl)

	log.WithField("count", len(fetched)).Info("Official updates refreshed")
	return fetched
}
