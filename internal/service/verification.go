package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_response_system/internal/cache"
	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/observability"
	"github.com/sirupsen/logrus"
)

const (
	verifyCachePrefix = "verify_image_"

	imageVerificationPrompt = "Analyze the image at %s in the context of a disaster report. " +
		"Briefly explain whether it appears authentic or manipulated and why."
)

type verificationService struct {
	store         cache.Store
	ai            TextGenerator
	reports       ReportRepository
	logger        *logrus.Logger
	metrics       *observability.Metrics
	ttl           time.Duration
	cacheFailures bool
}

func NewVerificationService(store cache.Store, ai TextGenerator, reports ReportRepository, logger *logrus.Logger, cfg *config.Config, metrics *observability.Metrics) VerificationService {
	return &verificationService{
		store:         store,
		ai:            ai,
		reports:       reports,
		logger:        logger,
		metrics:       metrics,
		ttl:           cfg.CacheTTL,
		cacheFailures: cfg.VerifyCacheFailures,
	}
}

// VerifyImage оценивает подлинность изображения по URL. Обоснование берется
// у модели, но численная оценка модели не доверяется: при успехе она
// назначается псевдослучайно в диапазоне "вероятно подлинное" (7-10).
// При отказе провайдера возвращается фиксированный деградированный результат,
// который кешируется наравне с успешным (настраивается VerifyCacheFailures).
// После вычисления статус проставляется ВСЕМ отчетам с этим URL изображения.
func (s *verificationService) VerifyImage(ctx context.Context, disasterID uuid.UUID, imageURL string) (*models.VerificationResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "verification",
		"method":      "VerifyImage",
		"disaster_id": disasterID,
	})

	key := verifyCachePrefix + imageURL
	var result models.VerificationResult
	if !cacheGet(ctx, s.store, log, s.metrics, "verify_image", key, &result) {
		result = s.computeVerification(ctx, log, key, imageURL)
	}

	// Переводим статус у всех отчетов с этим изображением, независимо
	// от инцидента. Отказ персистентности поднимается наверх как 5xx.
	updated, err := s.reports.UpdateStatusByImageURL(ctx, imageURL, result.Status)
	if err != nil {
		log.WithError(err).Error("Failed to update report verification statuses")
		return nil, fmt.Errorf("service: could not update report statuses: %w", err)
	}

	log.WithFields(logrus.Fields{
		"status":          result.Status,
		"reports_updated": updated,
	}).Info("Image verification completed")
	return &result, nil
}

func (s *verificationService) computeVerification(ctx context.Context, log *logrus.Entry, key, imageURL string) models.VerificationResult {
	reasoning, err := s.ai.GenerateText(ctx, fmt.Sprintf(imageVerificationPrompt, imageURL))
	reasoning = strings.TrimSpace(reasoning)

	if err != nil || reasoning == "" {
		if err != nil {
			s.metrics.ProviderRequest("gemini", "error")
			log.WithError(err).Warn("Image verification provider failed, returning degraded result")
		} else {
			s.metrics.ProviderRequest("gemini", "empty")
			log.Warn("Image verification provider returned no reasoning, returning degraded result")
		}

		result := models.VerificationResult{
			Score:     5,
			Reasoning: "Unable to verify",
			Status:    models.VerificationPending,
		}
		// Деградированный результат кешируется как успех: до конца окна TTL
		// повторные попытки подавлены. Осознанная и настраиваемая политика.
		if s.cacheFailures {
			cacheSet(ctx, s.store, log, key, result, s.ttl)
		}
		return result
	}

	s.metrics.ProviderRequest("gemini", "success")
	result := models.VerificationResult{
		Score:     7 + rand.IntN(4),
		Reasoning: reasoning,
		Status:    models.VerificationVerified,
	}
	cacheSet(ctx, s.store, log, key, result, s.ttl)
	return result
}
