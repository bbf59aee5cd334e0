package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/shenikar/disaster_response_system/internal/observability"
	"github.com/sirupsen/logrus"
)

// Hub - in-process рассылка событий по всем подключенным наблюдателям.
// Подписка неявная: каждый наблюдатель получает все события. Доставка
// best-effort - без подтверждений и без повторов; наблюдатель,
// подключившийся после события, пропустил его навсегда.
type Hub struct {
	logger  *logrus.Logger
	metrics *observability.Metrics

	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub(logger *logrus.Logger, metrics *observability.Metrics) *Hub {
	return &Hub{
		logger:  logger,
		metrics: metrics,
		clients: make(map[*Client]struct{}),
	}
}

// Publish рассылает событие всем подключенным клиентам. Медленный клиент
// с переполненным буфером событие теряет - рассылка никогда не блокируется.
func (h *Hub) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal realtime event: %w", err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			h.logger.WithField("event", event.Type).Warn("Dropping event for slow observer")
		}
	}

	h.metrics.BroadcastSent(event.Type)
	return nil
}

// ServeConn регистрирует websocket-соединение как наблюдателя и
// запускает его циклы чтения/записи
func (h *Hub) ServeConn(conn *websocket.Conn) {
	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, clientSendBuffer),
	}

	h.register(client)

	go client.writePump()
	go client.readPump()
}

// ClientCount возвращает число подключенных наблюдателей
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.logger.WithField("clients", h.ClientCount()).Debug("Observer connected")
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
	h.logger.WithField("clients", h.ClientCount()).Debug("Observer disconnected")
}
