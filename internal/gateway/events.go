package gateway

import (
	"encoding/json"
	"time"

	"github.com/mwhitt/launchroom/internal/events"
)

// RoomEvent is the envelope for every pushed notification. RoomName is empty
// for lobby-wide events.
type RoomEvent struct {
	ID        string          `json:"id"`        // Event UUID
	RoomName  string          `json:"room_name,omitempty"`
	Type      EventType       `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// EventType represents the type of room event.
type EventType string

const (
	EventTypePlayerListChanged EventType = "PlayerListChanged"
	EventTypeRoundStarted      EventType = "RoundStarted"
	EventTypeRoundFinished     EventType = "RoundFinished"
	EventTypeRoomsListChanged  EventType = "RoomsListChanged"
)

// ParseEventPayload parses event data into the appropriate payload struct.
func ParseEventPayload(event *RoomEvent) (interface{}, error) {
	switch event.Type {
	case EventTypePlayerListChanged:
		var payload events.PlayerListChangedPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, err
		}
		return payload, nil

	case EventTypeRoundStarted:
		var payload events.RoundStartedPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, err
		}
		return payload, nil

	case EventTypeRoundFinished:
		var payload events.RoundFinishedPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, err
		}
		return payload, nil

	case EventTypeRoomsListChanged:
		var payload events.RoomsListChangedPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, err
		}
		return payload, nil

	default:
		return nil, nil // Unknown event type
	}
}
