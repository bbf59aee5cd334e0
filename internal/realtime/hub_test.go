package realtime

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHub поднимает hub с тестовым websocket-сервером
func newTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	hub := NewHub(logger, nil)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.ServeConn(conn)
	}))
	t.Cleanup(srv.Close)

	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, got %d", want, hub.ClientCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHub_PublishReachesAllObservers(t *testing.T) {
	// Подготовка
	hub, srv := newTestHub(t)
	first := dial(t, srv)
	second := dial(t, srv)
	waitForClients(t, hub, 2)

	incident := &models.Incident{ID: uuid.New(), Title: "Flooding downtown"}

	// Действие
	err := hub.Publish(context.Background(), IncidentCreated(incident))
	require.NoError(t, err)

	// Проверки: оба наблюдателя получают одно и то же событие
	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err)

		var event struct {
			Type    string `json:"type"`
			Payload struct {
				Action   string           `json:"action"`
				Incident *models.Incident `json:"incident"`
			} `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(payload, &event))
		assert.Equal(t, EventIncidentChanged, event.Type)
		assert.Equal(t, ActionCreate, event.Payload.Action)
		assert.Equal(t, incident.ID, event.Payload.Incident.ID)
	}
}

func TestHub_LateObserverMissesEarlierEvents(t *testing.T) {
	// Подготовка: событие публикуется до подключения наблюдателя
	hub, srv := newTestHub(t)
	require.NoError(t, hub.Publish(context.Background(), IncidentDeleted(uuid.New())))

	conn := dial(t, srv)
	waitForClients(t, hub, 1)

	// Проверки: нет ни повтора, ни доставки задним числом
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestHub_PublishWithoutObserversDoesNotFail(t *testing.T) {
	hub, _ := newTestHub(t)

	err := hub.Publish(context.Background(), SocialSignalRefreshed(uuid.New(), nil))

	require.NoError(t, err)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_DisconnectUnregistersObserver(t *testing.T) {
	hub, srv := newTestHub(t)
	conn := dial(t, srv)
	waitForClients(t, hub, 1)

	conn.Close()

	waitForClients(t, hub, 0)
}
