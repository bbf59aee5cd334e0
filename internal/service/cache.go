package service

import (
	"context"
	"time"

	"github.com/shenikar/disaster_response_system/internal/cache"
	"github.com/shenikar/disaster_response_system/internal/observability"
	"github.com/sirupsen/logrus"
)

// Кеширование - оптимизация, а не зависимость корректности: ошибка Get
// трактуется как промах, ошибка Set логируется и глотается. Оба хелпера
// никогда не возвращают ошибку вызывающему.

func cacheGet(ctx context.Context, store cache.Store, log *logrus.Entry, metrics *observability.Metrics, feature, key string, dest any) bool {
	ok, err := store.Get(ctx, key, dest)
	if err != nil {
		metrics.CacheLookup(feature, "error")
		log.WithError(err).WithField("key", key).Debug("Cache get failed, treating as miss")
		return false
	}
	if ok {
		metrics.CacheLookup(feature, "hit")
	} else {
		metrics.CacheLookup(feature, "miss")
	}
	return ok
}

func cacheSet(ctx context.Context, store cache.Store, log *logrus.Entry, key string, value any, ttl time.Duration) {
	if err := store.Set(ctx, key, value, ttl); err != nil {
		log.WithError(err).WithField("key", key).Warn("Cache set failed, continuing without cache")
	}
}
