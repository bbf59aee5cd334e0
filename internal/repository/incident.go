package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/service"
)

// ErrNotFound возвращается, когда запрошенная запись отсутствует
var ErrNotFound = errors.New("record not found")

const incidentCacheTTL = 5 * time.Minute

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (title, location_name, location, description, tags, owner_id, audit_trail)
		VALUES (
			$1, $2,
			CASE WHEN $3::float8 IS NULL THEN NULL
			     ELSE ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography END,
			$5, $6, $7, $8
		)
		RETURNING id, created_at, updated_at;
	`
	lng, lat := coordsToNullable(incident.Coordinates)
	err := r.db.QueryRow(ctx, query,
		incident.Title,
		incident.LocationName,
		lng,
		lat,
		incident.Description,
		incident.Tags,
		incident.OwnerID,
		incident.AuditTrail,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `
		SELECT
			id,
			title,
			location_name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			description,
			tags,
			owner_id,
			audit_trail,
			created_at,
			updated_at
		FROM incidents
		WHERE id = $1;
	`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// Update перезаписывает инцидент, включая дополненный журнал изменений
func (r *IncidentRepository) Update(ctx context.Context, incident *models.Incident) error {
	query := `
		UPDATE incidents SET
			title = $1,
			location_name = $2,
			location = CASE WHEN $3::float8 IS NULL THEN NULL
			                ELSE ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography END,
			description = $5,
			tags = $6,
			audit_trail = $7,
			updated_at = NOW()
		WHERE id = $8;
	`
	lng, lat := coordsToNullable(incident.Coordinates)
	cmdTag, err := r.db.Exec(ctx, query,
		incident.Title,
		incident.LocationName,
		lng,
		lat,
		incident.Description,
		incident.Tags,
		incident.AuditTrail,
		incident.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update incident: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s for update: %w", incident.ID, ErrNotFound)
	}
	return nil
}

// Delete удаляет инцидент
func (r *IncidentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM incidents WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s for delete: %w", id, ErrNotFound)
	}
	return nil
}

// ListIncidents возвращает список инцидентов с пагинацией
func (r *IncidentRepository) ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			title,
			location_name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			description,
			tags,
			owner_id,
			audit_trail,
			created_at,
			updated_at
		FROM incidents
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID.String())
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, incidentCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("incident:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIncident(row rowScanner) (*models.Incident, error) {
	incident := &models.Incident{}
	var lat, lng *float64
	err := row.Scan(
		&incident.ID,
		&incident.Title,
		&incident.LocationName,
		&lat,
		&lng,
		&incident.Description,
		&incident.Tags,
		&incident.OwnerID,
		&incident.AuditTrail,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		incident.Coordinates = &models.Coordinates{Lat: *lat, Lng: *lng}
	}
	return incident, nil
}

func coordsToNullable(coords *models.Coordinates) (lng, lat *float64) {
	if coords == nil {
		return nil, nil
	}
	return &coords.Lng, &coords.Lat
}
