package gateway

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mwhitt/launchroom/internal/events"
	"github.com/mwhitt/launchroom/internal/models"
	"github.com/mwhitt/launchroom/internal/room"
)

// Notifier adapts the core's outbound notifications onto the WebSocket
// connection manager. It satisfies room.Notifier and never blocks: events
// are queued on the manager's broadcast channel.
type Notifier struct {
	connectionManager *ConnectionManager
}

// NewNotifier creates a notifier pushing through the given manager.
func NewNotifier(cm *ConnectionManager) *Notifier {
	return &Notifier{connectionManager: cm}
}

// PlayerListChanged pushes the updated player list to a room's watchers.
func (n *Notifier) PlayerListChanged(roomName string, players []models.Player, hostID string) {
	n.push(roomName, EventTypePlayerListChanged, events.PlayerListChangedPayload{
		RoomName: roomName,
		Players:  players,
		HostID:   hostID,
	})
}

// RoundStarted pushes the round schedule to a room's watchers.
func (n *Notifier) RoundStarted(roomName string, sched room.RoundSchedule) {
	n.push(roomName, EventTypeRoundStarted, events.RoundStartedPayload{
		RoomName:      roomName,
		GameStartTime: sched.StartedAt,
		GameEndTime:   sched.EndsAt,
		DurationMs:    sched.Duration.Milliseconds(),
	})
}

// RoundFinished pushes the outcome summary to a room's watchers.
func (n *Notifier) RoundFinished(roomName string, summary []models.SummaryEntry) {
	n.push(roomName, EventTypeRoundFinished, events.RoundFinishedPayload{
		RoomName: roomName,
		Summary:  summary,
	})
}

// RoomsListChanged pushes the room name list to lobby watchers.
func (n *Notifier) RoomsListChanged(names []string) {
	n.push(lobbyKey, EventTypeRoomsListChanged, events.RoomsListChangedPayload{
		Rooms: names,
	})
}

func (n *Notifier) push(roomName string, eventType EventType, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("event_type", string(eventType)).Msg("failed to marshal event payload")
		return
	}

	event := &RoomEvent{
		ID:        uuid.New().String(),
		RoomName:  roomName,
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}

	if roomName == lobbyKey {
		n.connectionManager.BroadcastToLobby(event)
		return
	}
	n.connectionManager.BroadcastToRoom(roomName, event)
}
