package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_response_system/internal/models"
)

//go:generate mockgen -source=contracts.go -destination=mocks/mock_contracts.go -package=mocks

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	Update(ctx context.Context, incident *models.Incident) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// ReportRepository определяет контракт для работы с отчетами
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	ListByDisaster(ctx context.Context, disasterID uuid.UUID) ([]*models.Report, error)
	UpdateStatusByImageURL(ctx context.Context, imageURL string, status models.VerificationStatus) (int64, error)
}

// ResourceRepository определяет контракт для работы с ресурсами помощи.
// FindNearby опционален на стороне бд: его отказ не считается отказом системы.
type ResourceRepository interface {
	ListByDisaster(ctx context.Context, disasterID uuid.UUID) ([]*models.Resource, error)
	FindNearby(ctx context.Context, disasterID uuid.UUID, lat, lng float64, radiusMeters int) ([]*models.Resource, error)
}

// TextGenerator - внешний провайдер генеративной модели
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ForwardGeocoder - внешний провайдер прямого геокодирования.
// (nil, nil) означает "не найдено".
type ForwardGeocoder interface {
	ForwardGeocode(ctx context.Context, placeName string) (*models.Coordinates, error)
}

// BulletinSource - внешний источник официальных оповещений
type BulletinSource interface {
	FetchBulletins(ctx context.Context) ([]*models.Bulletin, error)
}

// SocialFeedSource - внешний источник социального сигнала
type SocialFeedSource interface {
	FetchPosts(ctx context.Context, disasterID uuid.UUID) ([]*models.SocialPost, error)
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	UpdateIncident(ctx context.Context, incident *models.Incident, userID string) (*models.Incident, error)
	DeleteIncident(ctx context.Context, id uuid.UUID, userID string) error
	ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error)
}

// ReportService определяет контракт для работы с отчетами
type ReportService interface {
	CreateReport(ctx context.Context, report *models.Report) error
	ListReports(ctx context.Context, disasterID uuid.UUID) ([]*models.Report, error)
}

// GeocodeService - цепочка "извлечение локации -> геокодирование"
type GeocodeService interface {
	GeocodeText(ctx context.Context, text string) (*models.GeocodeResult, error)
}

// VerificationService - проверка подлинности изображений отчетов
type VerificationService interface {
	VerifyImage(ctx context.Context, disasterID uuid.UUID, imageURL string) (*models.VerificationResult, error)
}

// ResourceService - поиск ресурсов помощи с опциональным поиском по близости
type ResourceService interface {
	FindResources(ctx context.Context, disasterID uuid.UUID, query models.ResourceQuery) ([]*models.Resource, error)
}

// BulletinService - агрегатор официальных оповещений
type BulletinService interface {
	OfficialUpdates(ctx context.Context) []*models.Bulletin
}

// SocialService - социальный сигнал по инциденту
type SocialService interface {
	GetSocialPosts(ctx context.Context, disasterID uuid.UUID) ([]*models.SocialPost, error)
}
