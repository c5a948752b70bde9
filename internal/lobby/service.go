package lobby

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SanjeevViswambharan/bridge-backend/internal/game/room"
	"github.com/SanjeevViswambharan/bridge-backend/internal/websocket"
)

// HubBroadcaster is the slice of the hub the lobby needs.
type HubBroadcaster interface {
	BroadcastToPlayers(ids []string, msg websocket.OutgoingMessage)
}

// Service queues players and mints a room id for every four of them. The
// matched players are told over the hub and then join the room over the
// websocket like any other join.
type Service struct {
	repo      Repo
	playerTTL int // seconds, keeps abandoned queue entries from lingering
	hub       HubBroadcaster
}

func NewService(repo Repo, playerTTL int, hub HubBroadcaster) *Service {
	return &Service{repo: repo, playerTTL: playerTTL, hub: hub}
}

// Join enqueues the player and tries to fill a table immediately. Returns
// the match when one formed, or queued=true.
func (s *Service) Join(ctx context.Context, playerID string) (*Match, bool, error) {
	if err := s.repo.Enqueue(ctx, playerID, s.playerTTL); err != nil {
		return nil, false, err
	}
	cnt, err := s.repo.Count(ctx)
	if err != nil {
		return nil, false, err
	}
	if cnt < int64(room.NumSeats) {
		return nil, true, nil // queued
	}
	ids, err := s.repo.PopTable(ctx, room.NumSeats)
	if err != nil {
		return nil, false, err
	}
	if len(ids) < room.NumSeats {
		// lost the race to a concurrent join; stay queued
		return nil, true, nil
	}

	match := &Match{
		RoomID:    uuid.NewString(),
		Players:   ids,
		CreatedAt: time.Now(),
	}

	s.hub.BroadcastToPlayers(ids, websocket.OutgoingMessage{
		Event: "matched",
		Data: map[string]any{
			"roomId":  match.RoomID,
			"players": match.Players,
		},
	})

	return match, false, nil
}

func (s *Service) Cancel(ctx context.Context, playerID string) error {
	return s.repo.Remove(ctx, playerID)
}
