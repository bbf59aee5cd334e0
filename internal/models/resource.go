package models

import (
	"time"

	"github.com/google/uuid"
)

// ResourceQuery - опциональные параметры поиска ресурсов по близости
type ResourceQuery struct {
	Lat          *float64
	Lng          *float64
	RadiusMeters int
}

// Resource - ресурс помощи (убежище, склад, медпункт), привязанный к инциденту
type Resource struct {
	ID             uuid.UUID    `json:"id"`
	DisasterID     uuid.UUID    `json:"disaster_id"`
	Name           string       `json:"name"`
	LocationName   string       `json:"location_name"`
	Type           string       `json:"type"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
	DistanceMeters *float64     `json:"distance_meters,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}
