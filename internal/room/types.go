package room

import (
	"time"

	"github.com/mwhitt/launchroom/internal/models"
)

// JoinRequest represents a request to create or join a room.
type JoinRequest struct {
	RoomName string `json:"roomName"`
	PlayerID string `json:"playerId"`
	TeamName string `json:"teamName"`
}

// UpdateSelectionRequest replaces a player's selections and totals wholesale.
// Totals are accepted as reported; they are not re-derived from the catalog.
type UpdateSelectionRequest struct {
	RoomName   string            `json:"roomName"`
	PlayerID   string            `json:"playerId"`
	Selections models.Selections `json:"selections"`
	TotalMass  float64           `json:"totalMass"`
	TotalCost  float64           `json:"totalCost"`
}

// RoundSchedule describes a started round. Both endpoints are absolute so
// clients can derive a synchronized countdown.
type RoundSchedule struct {
	StartedAt time.Time     `json:"started_at"`
	EndsAt    time.Time     `json:"ends_at"`
	Duration  time.Duration `json:"-"`
}

// RoomState is a point-in-time snapshot of a room, safe to hand to
// transports without further locking. Players are sorted by player id.
type RoomState struct {
	Name       string          `json:"roomName"`
	Players    []models.Player `json:"players"`
	HostID     string          `json:"hostId"`
	Phase      models.Phase    `json:"phase"`
	RoundStart time.Time       `json:"roundStart"`
	RoundEnd   time.Time       `json:"roundEnd"`
}

// Running reports whether a round is currently in flight.
func (s RoomState) Running() bool {
	return s.Phase == models.PhaseRunning
}
