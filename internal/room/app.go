package room

import (
	"github.com/mwhitt/launchroom/internal/catalog"
	"github.com/mwhitt/launchroom/internal/models"
)

// App is the boundary the transport adapter talks to. It exposes the inbound
// room operations and funnels outbound notifications through the Notifier.
// Every operation is safe to retry except StartRound.
type App struct {
	catalog  *catalog.Catalog
	registry *Registry
	notifier Notifier
}

// NewApp creates a new room App on top of a registry.
func NewApp(cat *catalog.Catalog, registry *Registry, notifier Notifier) *App {
	return &App{
		catalog:  cat,
		registry: registry,
		notifier: notifier,
	}
}

// CreateOrJoin resolves (or creates) the named room and joins the player to
// it. Creating a room also announces the updated rooms list.
func (a *App) CreateOrJoin(req JoinRequest) (RoomState, error) {
	room, created, err := a.registry.CreateOrGet(req.RoomName)
	if err != nil {
		return RoomState{}, err
	}
	if created {
		a.notifier.RoomsListChanged(a.registry.ListNames())
	}
	return room.Join(req.PlayerID, req.TeamName), nil
}

// Join adds the player to an existing room.
func (a *App) Join(req JoinRequest) (RoomState, error) {
	room, err := a.registry.Get(req.RoomName)
	if err != nil {
		return RoomState{}, err
	}
	return room.Join(req.PlayerID, req.TeamName), nil
}

// Leave removes the player from the room. When the last player leaves, the
// room is removed from the registry and the rooms list is announced.
func (a *App) Leave(roomName, playerID string) error {
	room, err := a.registry.Get(roomName)
	if err != nil {
		return err
	}
	if room.Leave(playerID) {
		if a.registry.RemoveIfEmpty(roomName) {
			a.notifier.RoomsListChanged(a.registry.ListNames())
		}
	}
	return nil
}

// ToggleReady flips the player's ready flag. Unknown players and non-lobby
// phases are silently ignored by the room.
func (a *App) ToggleReady(roomName, playerID string) error {
	room, err := a.registry.Get(roomName)
	if err != nil {
		return err
	}
	room.ToggleReady(playerID)
	return nil
}

// UpdateSelection replaces the player's selections and reported totals.
func (a *App) UpdateSelection(req UpdateSelectionRequest) error {
	room, err := a.registry.Get(req.RoomName)
	if err != nil {
		return err
	}
	return room.UpdateSelection(req.PlayerID, req.Selections, req.TotalMass, req.TotalCost)
}

// StartRound starts a round of the configured duration in the named room.
func (a *App) StartRound(roomName, playerID string) (RoundSchedule, error) {
	room, err := a.registry.Get(roomName)
	if err != nil {
		return RoundSchedule{}, err
	}
	return room.StartRound(playerID, a.catalog.RoundDuration)
}

// ListRooms returns a snapshot of the existing room names.
func (a *App) ListRooms() []string {
	return a.registry.ListNames()
}

// State returns a consistent snapshot of the named room.
func (a *App) State(roomName string) (RoomState, error) {
	room, err := a.registry.Get(roomName)
	if err != nil {
		return RoomState{}, err
	}
	return room.State(), nil
}

// Summary returns the outcome summary of the named room's last finished
// round. It is empty until the round timer has fired.
func (a *App) Summary(roomName string) ([]models.SummaryEntry, error) {
	room, err := a.registry.Get(roomName)
	if err != nil {
		return nil, err
	}
	return room.Summary(), nil
}
