package events

import (
	"time"

	"github.com/mwhitt/launchroom/internal/models"
)

// Event payload types shared between the room core and the gateway.

// PlayerListChangedPayload is emitted whenever a room's membership, host, or
// ready flags change.
type PlayerListChangedPayload struct {
	RoomName string          `json:"room_name"`
	Players  []models.Player `json:"players"`
	HostID   string          `json:"host_id"`
}

// RoundStartedPayload is emitted when the host starts a round. Both endpoints
// are absolute timestamps so every client can derive a synchronized countdown
// independent of message latency.
type RoundStartedPayload struct {
	RoomName      string    `json:"room_name"`
	GameStartTime time.Time `json:"game_start_time"`
	GameEndTime   time.Time `json:"game_end_time"`
	DurationMs    int64     `json:"duration_ms"`
}

// RoundFinishedPayload carries the computed outcome summary, one entry per
// player still in the room when the round timer fired.
type RoundFinishedPayload struct {
	RoomName string                `json:"room_name"`
	Summary  []models.SummaryEntry `json:"summary"`
}

// RoomsListChangedPayload is emitted when a room is created or destroyed.
type RoomsListChangedPayload struct {
	Rooms []string `json:"rooms"`
}
