package gateway

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitt/launchroom/internal/events"
	"github.com/mwhitt/launchroom/internal/models"
)

func TestParseEventPayload(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		desc      string
		eventType EventType
		payload   interface{}
		expected  interface{}
	}{
		{
			desc:      "player list changed",
			eventType: EventTypePlayerListChanged,
			payload: events.PlayerListChangedPayload{
				RoomName: "Alpha",
				Players:  []models.Player{{ID: "p-aaa", TeamName: "Apollo"}},
				HostID:   "p-aaa",
			},
			expected: events.PlayerListChangedPayload{
				RoomName: "Alpha",
				Players:  []models.Player{{ID: "p-aaa", TeamName: "Apollo"}},
				HostID:   "p-aaa",
			},
		},
		{
			desc:      "round started",
			eventType: EventTypeRoundStarted,
			payload: events.RoundStartedPayload{
				RoomName:      "Alpha",
				GameStartTime: start,
				GameEndTime:   start.Add(2 * time.Second),
				DurationMs:    2000,
			},
			expected: events.RoundStartedPayload{
				RoomName:      "Alpha",
				GameStartTime: start,
				GameEndTime:   start.Add(2 * time.Second),
				DurationMs:    2000,
			},
		},
		{
			desc:      "rooms list changed",
			eventType: EventTypeRoomsListChanged,
			payload:   events.RoomsListChangedPayload{Rooms: []string{"Alpha", "Bravo"}},
			expected:  events.RoomsListChangedPayload{Rooms: []string{"Alpha", "Bravo"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			data, err := json.Marshal(tc.payload)
			require.NoError(t, err)

			parsed, err := ParseEventPayload(&RoomEvent{Type: tc.eventType, Data: data})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, parsed)
		})
	}
}

func TestParseEventPayloadUnknownType(t *testing.T) {
	t.Parallel()

	parsed, err := ParseEventPayload(&RoomEvent{Type: "SomethingElse", Data: []byte("{}")})
	assert.NoError(t, err)
	assert.Nil(t, parsed)
}

func TestRoomEventEnvelopeOmitsEmptyRoomName(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(RoomEvent{
		ID:   "evt-1",
		Type: EventTypeRoomsListChanged,
		Data: []byte(`{"rooms":[]}`),
	})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "room_name")
}
