package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shenikar/disaster_response_system/internal/realtime"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewWSHandler возвращает обработчик апгрейда websocket-соединений.
// Подключенный клиент становится наблюдателем всех событий хаба.
func NewWSHandler(hub *realtime.Hub, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.WithError(err).Warn("Failed to upgrade websocket connection")
			return
		}
		hub.ServeConn(conn)
	}
}
