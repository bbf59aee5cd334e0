package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_response_system/internal/models"
)

// CoordinatesDTO географическая точка в ответах и запросах
// @Description Географическая точка
type CoordinatesDTO struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// GeocodeRequest DTO для геокодирования свободного текста
// @Description DTO для геокодирования свободного текста
type GeocodeRequest struct {
	Text string `json:"text" validate:"required"`
}

// GeocodeResponse DTO для ответа геокодирования
// @Description DTO для ответа геокодирования
type GeocodeResponse struct {
	LocationName string         `json:"locationName"`
	Coordinates  CoordinatesDTO `json:"coordinates"`
}

// CreateDisasterRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateDisasterRequest struct {
	Title        string          `json:"title" validate:"required,min=2,max=255"`
	LocationName string          `json:"location_name,omitempty"`
	Coordinates  *CoordinatesDTO `json:"coordinates,omitempty"`
	Description  string          `json:"description,omitempty"`
	Tags         []string        `json:"tags,omitempty"`
	OwnerID      string          `json:"owner_id" validate:"required"`
}

// UpdateDisasterRequest DTO для обновления инцидента
// @Description DTO для обновления инцидента
type UpdateDisasterRequest struct {
	Title        string          `json:"title" validate:"required,min=2,max=255"`
	LocationName string          `json:"location_name,omitempty"`
	Coordinates  *CoordinatesDTO `json:"coordinates,omitempty"`
	Description  string          `json:"description,omitempty"`
	Tags         []string        `json:"tags,omitempty"`
	UserID       string          `json:"user_id" validate:"required"`
}

// DisasterResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type DisasterResponse struct {
	ID           uuid.UUID           `json:"id"`
	Title        string              `json:"title"`
	LocationName string              `json:"location_name,omitempty"`
	Coordinates  *CoordinatesDTO     `json:"coordinates,omitempty"`
	Description  string              `json:"description,omitempty"`
	Tags         []string            `json:"tags"`
	OwnerID      string              `json:"owner_id"`
	AuditTrail   []models.AuditEntry `json:"audit_trail"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// CreateReportRequest DTO для создания отчета по инциденту
// @Description DTO для создания отчета по инциденту
type CreateReportRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// ReportResponse DTO для ответа с отчетом
// @Description DTO для ответа с отчетом
type ReportResponse struct {
	ID                 uuid.UUID                 `json:"id"`
	DisasterID         uuid.UUID                 `json:"disaster_id"`
	UserID             string                    `json:"user_id"`
	Content            string                    `json:"content"`
	ImageURL           string                    `json:"image_url,omitempty"`
	VerificationStatus models.VerificationStatus `json:"verification_status"`
	CreatedAt          time.Time                 `json:"created_at"`
}

// VerifyImageRequest DTO для проверки подлинности изображения
// @Description DTO для проверки подлинности изображения
type VerifyImageRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
}

// VerificationResponse DTO для ответа проверки изображения
// @Description DTO для ответа проверки изображения
type VerificationResponse struct {
	Score     int                       `json:"score"`
	Reasoning string                    `json:"reasoning"`
	Status    models.VerificationStatus `json:"status"`
}

// ResourceResponse DTO для ответа с ресурсом помощи
// @Description DTO для ответа с ресурсом помощи
type ResourceResponse struct {
	ID             uuid.UUID       `json:"id"`
	DisasterID     uuid.UUID       `json:"disaster_id"`
	Name           string          `json:"name"`
	LocationName   string          `json:"location_name,omitempty"`
	Type           string          `json:"type"`
	Coordinates    *CoordinatesDTO `json:"coordinates,omitempty"`
	DistanceMeters *float64        `json:"distance_meters,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
