package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/observability"
	"github.com/sirupsen/logrus"
)

type resourceService struct {
	repo          ResourceRepository
	logger        *logrus.Logger
	metrics       *observability.Metrics
	defaultRadius int
}

func NewResourceService(repo ResourceRepository, logger *logrus.Logger, cfg *config.Config, metrics *observability.Metrics) ResourceService {
	return &resourceService{
		repo:          repo,
		logger:        logger,
		metrics:       metrics,
		defaultRadius: cfg.DefaultResourceRadiusM,
	}
}

// FindResources возвращает ресурсы инцидента. С координатами выполняется
// геопространственный поиск по близости; любой его отказ молча деградирует
// до простой выборки - близость лишь уточнение, список ресурсов инцидента
// должен быть получен всегда.
func (s *resourceService) FindResources(ctx context.Context, disasterID uuid.UUID, query models.ResourceQuery) ([]*models.Resource, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "resource",
		"method":      "FindResources",
		"disaster_id": disasterID,
	})

	if query.Lat == nil || query.Lng == nil {
		resources, err := s.repo.ListByDisaster(ctx, disasterID)
		if err != nil {
			log.WithError(err).Error("Failed to list resources from repository")
			return nil, fmt.Errorf("service: could not list resources: %w", err)
		}
		return resources, nil
	}

	radius := query.RadiusMeters
	if radius <= 0 {
		radius = s.defaultRadius
	}

	resources, err := s.repo.FindNearby(ctx, disasterID, *query.Lat, *query.Lng, radius)
	if err != nil {
		// Отказ геопространственного пути не поднимается наверх
		s.metrics.ProximityFallback()
		log.WithError(err).Warn("Proximity search failed, falling back to plain filter")

		resources, err = s.repo.ListByDisaster(ctx, disasterID)
		if err != nil {
			log.WithError(err).Error("Fallback resource listing failed")
			return nil, fmt.Errorf("service: could not list resources: %w", err)
		}
		return resources, nil
	}

	log.WithFields(logrus.Fields{
		"count":         len(resources),
		"radius_meters": radius,
	}).Info("Resources found by proximity")
	return resources, nil
}
