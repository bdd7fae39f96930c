package gateway

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
	sendBufferSize = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSServer struct {
	hub        *Hub
	controller StreamController
	logger     *slog.Logger
}

func NewWSServer(hub *Hub, controller StreamController, logger *slog.Logger) *WSServer {
	return &WSServer{
		hub:        hub,
		controller: controller,
		logger:     logger.With("component", "ws_server"),
	}
}

func (s *WSServer) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws", s.HandleConnection)
}

// HandleConnection upgrades the request and subscribes the client to the
// transcript broadcast. Control messages received on the same socket start
// and stop sessions.
func (s *WSServer) HandleConnection(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return err
	}

	client := newWSClient(ws, s.logger)
	s.hub.register(client)

	go client.writePump()
	client.readPump(s.hub, s.controller)

	return nil
}

type wsClient struct {
	id     string
	ws     *websocket.Conn
	logger *slog.Logger
	send   chan *ServerMessage

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

func newWSClient(ws *websocket.Conn, logger *slog.Logger) *wsClient {
	id := uuid.New().String()
	return &wsClient{
		id:     id,
		ws:     ws,
		logger: logger.With("client_id", id),
		send:   make(chan *ServerMessage, sendBufferSize),
		done:   make(chan struct{}),
	}
}

func (c *wsClient) close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.done)
	c.mu.Unlock()

	if c.ws == nil {
		return nil
	}
	return c.ws.Close()
}

func (c *wsClient) readPump(hub *Hub, controller StreamController) {
	defer func() {
		c.close()
		hub.unregister(c)
	}()

	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("read error", "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			c.logger.Error("unmarshal error", "error", err)
			continue
		}

		switch msg.Type {
		case MessageTypeStartTranscription:
			if msg.ChannelID == "" {
				c.logger.Warn("start request without channel_id")
				continue
			}
			controller.Start(msg.ChannelID, msg.APIKey, msg.PoliticalFilterOnly)
		case MessageTypeStopTranscription:
			if msg.ChannelID == "" {
				continue
			}
			controller.Stop(msg.ChannelID)
		default:
			c.logger.Warn("unknown message type", "type", msg.Type)
		}
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			c.ws.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case msg := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))

			data, err := json.Marshal(msg)
			if err != nil {
				c.logger.Error("marshal error", "error", err)
				continue
			}

			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				c.logger.Error("write error", "error", err)
				return
			}

		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
