package lobby

import "time"

// JoinResponse reports whether the caller is still queued; once four
// players are waiting they are matched and handed a room id to join over
// the websocket.
type JoinResponse struct {
	Queued  bool     `json:"queued"`
	RoomID  string   `json:"roomId,omitempty"`
	Players []string `json:"players,omitempty"`
}

// Match is a filled table: four players and the room minted for them.
type Match struct {
	RoomID    string
	Players   []string
	CreatedAt time.Time
}
