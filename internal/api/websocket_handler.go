package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/service/pubsub"
	"github.com/acadify/acadify-api/internal/utils"
	"github.com/acadify/acadify-api/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// streamClient is one connected billing-stream consumer. scope is the
// subscription key: a tenant ID, or pubsub.AllTenants for super admins.
type streamClient struct {
	conn  *websocket.Conn
	scope string
	send  chan []byte
}

type WebSocketHandler struct {
	*BaseHandler
	clients      map[*streamClient]bool
	register     chan *streamClient
	unregister   chan *streamClient
	mutex        sync.RWMutex
	logger       *logger.Logger
	pubsub       *pubsub.RedisPubSub
	ctx          context.Context
	cancel       context.CancelFunc
	scopeClients map[string]int
}

func NewWebSocketHandler(base *BaseHandler, logger *logger.Logger, pubsub *pubsub.RedisPubSub) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		BaseHandler:  base,
		clients:      make(map[*streamClient]bool),
		register:     make(chan *streamClient),
		unregister:   make(chan *streamClient),
		logger:       logger,
		pubsub:       pubsub,
		ctx:          ctx,
		cancel:       cancel,
		scopeClients: make(map[string]int),
	}
}

// HandleWebSocket upgrades the connection and streams billing events.
// Super admins get the platform-wide stream; institution users get their
// own tenant's events.
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	scope := pubsub.AllTenants
	if utils.GetRoleFromContext(h.RequestCtx(c)) != string(domain.RoleSuperAdmin) {
		tenantID, exists := c.Get(string(utils.TenantIDKey))
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No tenant ID found"})
			return
		}
		scope, _ = tenantID.(string)
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &streamClient{
		conn:  conn,
		scope: scope,
		send:  make(chan []byte, websocketSendChannelBufferSize),
	}
	h.register <- client

	go h.writePump(client)
	go h.readPump(client)
}

func (h *WebSocketHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.scopeClients[client.scope]++

			// First client for a scope opens the Redis subscription
			if h.scopeClients[client.scope] == 1 {
				if err := h.pubsub.Subscribe(h.ctx, client.scope, h.handleEvent); err != nil {
					h.logger.Errorf("Failed to subscribe to scope %s: %v", client.scope, err)
				}
			}
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)

				h.scopeClients[client.scope]--
				if h.scopeClients[client.scope] == 0 {
					h.pubsub.Unsubscribe(client.scope)
					delete(h.scopeClients, client.scope)
				}
			}
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()
	h.pubsub.Close()
}

func (h *WebSocketHandler) handleEvent(event *dto.BillingEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		h.logger.Errorf("Error marshaling billing event: %v", err)
		return
	}

	var slow []*streamClient
	h.mutex.RLock()
	for client := range h.clients {
		if client.scope != event.TenantID && client.scope != pubsub.AllTenants {
			continue
		}
		select {
		case client.send <- message:
		default:
			slow = append(slow, client)
		}
	}
	h.mutex.RUnlock()

	// Slow consumers are dropped through the unregister channel so the
	// client maps are only ever written by Start under the write lock.
	for _, client := range slow {
		h.logger.Warnf("Dropping slow stream client for scope %s", client.scope)
		h.unregister <- client
	}
}

func (h *WebSocketHandler) writePump(client *streamClient) {
	defer func() {
		client.conn.Close()
	}()

	for message := range client.send {
		w, err := client.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}

	client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *WebSocketHandler) readPump(client *streamClient) {
	defer func() {
		h.unregister <- client
		client.conn.Close()
	}()

	for {
		messageType, message, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warnf("Unexpected close error for client %s: %v", client.scope, err)
			} else {
				h.logger.Warnf("Read error for client %s: %v", client.scope, err)
			}
			break
		}

		// Clients are not expected to send anything
		if messageType == websocket.TextMessage || messageType == websocket.BinaryMessage {
			h.logger.Infof("Received message from client %s: %s", client.scope, string(message))
		}
	}
}
