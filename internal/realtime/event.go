package realtime

import (
	"github.com/google/uuid"
	"github.com/shenikar/disaster_response_system/internal/models"
)

// Типы событий, рассылаемых всем подключенным наблюдателям
const (
	EventIncidentChanged       = "incident_changed"
	EventSocialSignalRefreshed = "social_signal_refreshed"
)

// Действия для события incident_changed
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Event - конверт события для рассылки
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// IncidentChangedPayload - нагрузка события изменения инцидента.
// Для delete передается только идентификатор: записи уже нет.
type IncidentChangedPayload struct {
	Action   string           `json:"action"`
	Incident *models.Incident `json:"incident,omitempty"`
	ID       string           `json:"id,omitempty"`
}

// SocialSignalPayload - нагрузка события обновления социального сигнала
type SocialSignalPayload struct {
	IncidentID uuid.UUID            `json:"incident_id"`
	Items      []*models.SocialPost `json:"items"`
}

func IncidentCreated(incident *models.Incident) Event {
	return Event{
		Type:    EventIncidentChanged,
		Payload: IncidentChangedPayload{Action: ActionCreate, Incident: incident},
	}
}

func IncidentUpdated(incident *models.Incident) Event {
	return Event{
		Type:    EventIncidentChanged,
		Payload: IncidentChangedPayload{Action: ActionUpdate, Incident: incident},
	}
}

func IncidentDeleted(id uuid.UUID) Event {
	return Event{
		Type:    EventIncidentChanged,
		Payload: IncidentChangedPayload{Action: ActionDelete, ID: id.String()},
	}
}

func SocialSignalRefreshed(incidentID uuid.UUID, items []*models.SocialPost) Event {
	return Event{
		Type:    EventSocialSignalRefreshed,
		Payload: SocialSignalPayload{IncidentID: incidentID, Items: items},
	}
}
