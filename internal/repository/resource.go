package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/service"
)

type ResourceRepository struct {
	db *pgxpool.Pool
}

func NewResourceRepository(db *pgxpool.Pool) service.ResourceRepository {
	return &ResourceRepository{db: db}
}

// ListByDisaster возвращает ресурсы инцидента без гарантий порядка,
// кроме порядка по умолчанию
func (r *ResourceRepository) ListByDisaster(ctx context.Context, disasterID uuid.UUID) ([]*models.Resource, error) {
	query := `
		SELECT
			id,
			disaster_id,
			name,
			location_name,
			type,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			created_at
		FROM resources
		WHERE disaster_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, disasterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	defer rows.Close()

	resources := make([]*models.Resource, 0)
	for rows.Next() {
		resource := &models.Resource{}
		var lat, lng *float64
		err := rows.Scan(
			&resource.ID,
			&resource.DisasterID,
			&resource.Name,
			&resource.LocationName,
			&resource.Type,
			&lat,
			&lng,
			&resource.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resource row: %w", err)
		}
		if lat != nil && lng != nil {
			resource.Coordinates = &models.Coordinates{Lat: *lat, Lng: *lng}
		}
		resources = append(resources, resource)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return resources, nil
}

// FindNearby находит ресурсы инцидента в радиусе точки, упорядоченные
// по удаленности. Требует геопространственной поддержки на стороне бд.
func (r *ResourceRepository) FindNearby(ctx context.Context, disasterID uuid.UUID, lat, lng float64, radiusMeters int) ([]*models.Resource, error) {
	query := `
		SELECT
			id,
			disaster_id,
			name,
			location_name,
			type,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			ST_Distance(location, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography) as distance_meters,
			created_at
		FROM resources
		WHERE
			disaster_id = $1
			AND location IS NOT NULL
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography,
				$4
			)
		ORDER BY distance_meters;
	`
	rows, err := r.db.Query(ctx, query, disasterID, lng, lat, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find resources nearby: %w", err)
	}
	defer rows.Close()

	resources := make([]*models.Resource, 0)
	for rows.Next() {
		resource := &models.Resource{}
		var rlat, rlng *float64
		var distance float64
		err := rows.Scan(
			&resource.ID,
			&resource.DisasterID,
			&resource.Name,
			&resource.LocationName,
			&resource.Type,
			&rlat,
			&rlng,
			&distance,
			&resource.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resource row in FindNearby: %w", err)
		}
		if rlat != nil && rlng != nil {
			resource.Coordinates = &models.Coordinates{Lat: *rlat, Lng: *rlng}
		}
		resource.DistanceMeters = &distance
		resources = append(resources, resource)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in FindNearby: %w", err)
	}
	return resources, nil
}
