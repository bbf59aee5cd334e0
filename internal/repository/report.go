package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/service"
)

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) service.ReportRepository {
	return &ReportRepository{db: db}
}

// Create создает новый отчет со статусом проверки pending
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (disaster_id, user_id, content, image_url, verification_status)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.DisasterID,
		report.UserID,
		report.Content,
		report.ImageURL,
		report.VerificationStatus,
	).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// ListByDisaster возвращает отчеты, привязанные к инциденту
func (r *ReportRepository) ListByDisaster(ctx context.Context, disasterID uuid.UUID) ([]*models.Report, error) {
	query := `
		SELECT id, disaster_id, user_id, content, COALESCE(image_url, ''), verification_status, created_at
		FROM reports
		WHERE disaster_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, disasterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.Report, 0)
	for rows.Next() {
		report := &models.Report{}
		err := rows.Scan(
			&report.ID,
			&report.DisasterID,
			&report.UserID,
			&report.Content,
			&report.ImageURL,
			&report.VerificationStatus,
			&report.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, nil
}

// UpdateStatusByImageURL переводит статус проверки у всех отчетов
// с данным URL изображения, независимо от инцидента
func (r *ReportRepository) UpdateStatusByImageURL(ctx context.Context, imageURL string, status models.VerificationStatus) (int64, error) {
	query := `
		UPDATE reports SET verification_status = $1
		WHERE image_url = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, imageURL)
	if err != nil {
		return 0, fmt.Errorf("failed to update report verification status: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
