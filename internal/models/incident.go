package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry - одна запись журнала изменений инцидента.
// Журнал append-only: каждая мутация добавляет ровно одну запись.
type AuditEntry struct {
	Action    string    `json:"action"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

type Incident struct {
	ID           uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	LocationName string       `json:"location_name"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	Description  string       `json:"description"`
	Tags         []string     `json:"tags"`
	OwnerID      string       `json:"owner_id"`
	AuditTrail   []AuditEntry `json:"audit_trail"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
