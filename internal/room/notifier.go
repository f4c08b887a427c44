package room

import "github.com/mwhitt/launchroom/internal/models"

// Notifier receives state-change notifications for delivery to room members.
// The core calls it outside any room lock; implementations must not block
// (queue and return, in the manner of a broadcast channel).
type Notifier interface {
	PlayerListChanged(roomName string, players []models.Player, hostID string)
	RoundStarted(roomName string, sched RoundSchedule)
	RoundFinished(roomName string, summary []models.SummaryEntry)
	RoomsListChanged(names []string)
}

// NopNotifier discards all notifications. Useful for tools and tests that
// exercise the core without a transport.
type NopNotifier struct{}

func (NopNotifier) PlayerListChanged(string, []models.Player, string) {}
func (NopNotifier) RoundStarted(string, RoundSchedule)                {}
func (NopNotifier) RoundFinished(string, []models.SummaryEntry)       {}
func (NopNotifier) RoomsListChanged([]string)                         {}
