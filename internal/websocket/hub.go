package websocket

import (
	"sync"

	"github.com/SanjeevViswambharan/bridge-backend/internal/utils"
)

type HubInterface interface {
	BroadcastToPlayers(ids []string, msg OutgoingMessage)
	ClientByID(id string) (*Client, bool)
	SendToPlayer(id string, msg OutgoingMessage)
	Close()
}

// Hub owns every live connection, keyed by player id. A single Run
// goroutine services all channels, which keeps delivery per room in the
// order the triggering events were applied.
type Hub struct {
	clients      map[string]*Client
	register     chan *Client
	unregister   chan *Client
	broadcast    chan broadcastReq
	sendOne      chan sendReq
	incoming     chan IncomingMessage
	OnIncoming   func(IncomingMessage)
	OnDisconnect func(playerID string)
	quit         chan struct{}
	mu           sync.RWMutex
}

type broadcastReq struct {
	IDs     []string
	Message OutgoingMessage
}

type sendReq struct {
	ID      string
	Message OutgoingMessage
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastReq),
		sendOne:    make(chan sendReq),
		incoming:   make(chan IncomingMessage),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	utils.Log.Info("hub started")

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.PlayerID] = c
			utils.Log.Info("client registered", "player", c.PlayerID, "connected", len(h.clients))
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			_, ok := h.clients[c.PlayerID]
			if ok {
				delete(h.clients, c.PlayerID)
				utils.Log.Info("client unregistered", "player", c.PlayerID, "connected", len(h.clients))
				close(c.Send)
			}
			h.mu.Unlock()
			if ok && h.OnDisconnect != nil {
				h.OnDisconnect(c.PlayerID)
			}

		case req := <-h.broadcast:
			for _, id := range req.IDs {
				if client, ok := h.clients[id]; ok {
					select {
					case client.Send <- req.Message:
					default:
						utils.Log.Warn("client send buffer full, dropping", "player", id, "event", req.Message.Event)
					}
				}
			}

		case req := <-h.sendOne:
			if client, ok := h.clients[req.ID]; ok {
				select {
				case client.Send <- req.Message:
				default:
					utils.Log.Warn("client send buffer full, dropping", "player", req.ID, "event", req.Message.Event)
				}
			}

		case req := <-h.incoming:
			// Hand client events to the game layer.
			if h.OnIncoming != nil {
				h.OnIncoming(req)
			}

		case <-h.quit:
			for _, c := range h.clients {
				close(c.Send)
			}
			return
		}
	}
}

// BroadcastToPlayers queues msg for every listed player.
func (h *Hub) BroadcastToPlayers(ids []string, msg OutgoingMessage) {
	h.broadcast <- broadcastReq{
		IDs:     ids,
		Message: msg,
	}
}

// SendToPlayer queues msg for a single player.
func (h *Hub) SendToPlayer(id string, msg OutgoingMessage) {
	h.sendOne <- sendReq{
		ID:      id,
		Message: msg,
	}
}

// ClientByID looks up a live connection.
func (h *Hub) ClientByID(id string) (*Client, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.clients[id]
	return c, ok
}

func (h *Hub) Close() {
	close(h.quit)
}
