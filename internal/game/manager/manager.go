package manager

import (
	"encoding/json"

	"github.com/SanjeevViswambharan/bridge-backend/internal/game/engine"
	"github.com/SanjeevViswambharan/bridge-backend/internal/game/room"
	"github.com/SanjeevViswambharan/bridge-backend/internal/utils"
	"github.com/SanjeevViswambharan/bridge-backend/internal/websocket"
)

// GameManager routes client events from the hub into the engine. Events
// are queued and handled one at a time by Run, so the hub's loop never
// blocks behind game logic.
type GameManager struct {
	registry *Registry
	engine   *engine.Engine
	events   chan gameEvent
	quit     chan struct{}
}

type gameEvent struct {
	playerID   string
	event      string
	data       json.RawMessage
	disconnect bool
}

type joinPayload struct {
	RoomID string `json:"roomId"`
	Name   string `json:"name"`
}

type playPayload struct {
	RoomID string    `json:"roomId"`
	Card   room.Card `json:"card"`
}

func NewGameManager(registry *Registry, eng *engine.Engine) *GameManager {
	return &GameManager{
		registry: registry,
		engine:   eng,
		events:   make(chan gameEvent, 256),
		quit:     make(chan struct{}),
	}
}

func (m *GameManager) Run() {
	for {
		select {
		case ev := <-m.events:
			m.dispatch(ev)
		case <-m.quit:
			return
		}
	}
}

func (m *GameManager) Close() {
	close(m.quit)
}

// HandleClientMessage is the hub's OnIncoming callback. Never blocks.
func (m *GameManager) HandleClientMessage(msg websocket.IncomingMessage) {
	m.enqueue(gameEvent{playerID: msg.From, event: msg.Event, data: msg.Data})
}

// HandleDisconnect is the hub's OnDisconnect callback. Never blocks.
func (m *GameManager) HandleDisconnect(playerID string) {
	m.enqueue(gameEvent{playerID: playerID, disconnect: true})
}

func (m *GameManager) enqueue(ev gameEvent) {
	select {
	case m.events <- ev:
	default:
		utils.Log.Warn("event queue full, dropping", "player", ev.playerID, "event", ev.event)
	}
}

func (m *GameManager) dispatch(ev gameEvent) {
	if ev.disconnect {
		m.handleDisconnect(ev.playerID)
		return
	}

	switch ev.event {
	case "join_room":
		var p joinPayload
		if err := json.Unmarshal(ev.data, &p); err != nil || p.RoomID == "" {
			return
		}
		m.engine.Join(m.registry.Resolve(p.RoomID), ev.playerID, p.Name)

	case "play_card":
		var p playPayload
		if err := json.Unmarshal(ev.data, &p); err != nil || !p.Card.Valid() {
			return
		}
		// Unknown room is a silent no-op, never a room creation.
		r, ok := m.registry.Get(p.RoomID)
		if !ok {
			return
		}
		m.engine.PlayCard(r, ev.playerID, p.Card)
	}
}

// handleDisconnect sweeps every room the player sits in, abandoning any
// deal there, and reaps rooms whose last seat just emptied.
func (m *GameManager) handleDisconnect(playerID string) {
	for _, r := range m.registry.Rooms() {
		removed, empty := m.engine.Disconnect(r, playerID)
		if removed && empty {
			m.registry.Remove(r.ID)
			utils.Log.Info("room reaped", "room", r.ID)
		}
	}
}
