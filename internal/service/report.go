package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

type reportService struct {
	repo   ReportRepository
	logger *logrus.Logger
}

func NewReportService(repo ReportRepository, logger *logrus.Logger) ReportService {
	return &reportService{
		repo:   repo,
		logger: logger,
	}
}

// CreateReport создает отчет. Статус проверки всегда начинается с pending:
// переводить его дальше вправе только проверка изображений.
func (s *reportService) CreateReport(ctx context.Context, report *models.Report) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "report",
		"method":      "CreateReport",
		"disaster_id": report.DisasterID,
	})

	report.VerificationStatus = models.VerificationPending
	if err := s.repo.Create(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return fmt.Errorf("service: could not create report: %w", err)
	}

	log.WithField("report_id", report.ID).Info("Report created successfully")
	return nil
}

// ListReports возвращает отчеты инцидента
func (s *reportService) ListReports(ctx context.Context, disasterID uuid.UUID) ([]*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "report",
		"method":      "ListReports",
		"disaster_id": disasterID,
	})

	reports, err := s.repo.ListByDisaster(ctx, disasterID)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}
	return reports, nil
}
