package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"eventchance/internal/engine"
	"eventchance/pkg/api"
	"eventchance/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и MapService
type Client struct {
	Engine *engine.MapService
	Conn   *websocket.Conn
	Send   chan api.ServerResponse
	ID     string
}

func NewClient(eng *engine.MapService, conn *websocket.Conn) *Client {
	return &Client{
		Engine: eng,
		Conn:   conn,
		Send:   make(chan api.ServerResponse, 256),
		ID:     uuid.NewString(),
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client := NewClient(s.Engine, conn)

	// 1. Подписка на загрузки карт
	updates := s.Engine.Hub.Register(client.ID)
	go func() {
		for msg := range updates {
			client.Send <- msg
		}
		close(client.Send)
	}()

	logger.Log.WithField("client_id", client.ID).Info("Client connected")

	// 2. Пампы
	go client.writePump()
	go client.readPump()
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.Engine.Hub.Unregister(c.ID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
		logger.Log.WithField("client_id", c.ID).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithError(err).Error("WS read error")
			}
			return
		}
		c.handleCommand(cmd)
	}
}

// handleCommand выполняет команду клиента.
// Успешный TRANSFER рассылается всем через Hub, ошибка уходит только отправителю.
func (c *Client) handleCommand(cmd api.ClientCommand) {
	log := logger.Log.WithFields(logrus.Fields{"client_id": c.ID, "action": cmd.Action})

	switch cmd.Action {
	case api.ActionInit:
		snap := c.Engine.CurrentSnapshot()
		if snap == nil {
			c.Engine.Hub.SendTo(c.ID, api.ErrorResponse(fmt.Errorf("no map loaded")))
			return
		}
		c.Engine.Hub.SendTo(c.ID, api.ServerResponse{Type: api.TypeMapLoaded, Map: snap})

	case api.ActionTransfer:
		payload, err := api.DecodePayload[api.TransferPayload](cmd.Payload)
		if err != nil {
			c.Engine.Hub.SendTo(c.ID, api.ErrorResponse(err))
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		if _, err := c.Engine.Setup(ctx, payload.MapID); err != nil {
			log.WithError(err).Warn("Transfer failed")
			c.Engine.Hub.SendTo(c.ID, api.ErrorResponse(err))
		}

	default:
		log.Warn("Unknown action")
		c.Engine.Hub.SendTo(c.ID, api.ErrorResponse(fmt.Errorf("unknown action %q", cmd.Action)))
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
