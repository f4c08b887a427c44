package room

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mwhitt/launchroom/internal/catalog"
	"github.com/mwhitt/launchroom/internal/models"
	"github.com/mwhitt/launchroom/internal/outcome"
)

// Room is the session state machine. It owns its player set, host identity,
// ready flags and round timing, and drives the lobby -> running -> finished
// transition.
//
// Every mutating operation acquires the room mutex, so all operations on one
// room are linearized; operations on distinct rooms share no mutable state.
// The round-timer callback takes the same mutex and is just another
// operation, not a special unsynchronized path. Notifications are emitted
// after the lock is released, from snapshots.
type Room struct {
	name     string
	catalog  *catalog.Catalog
	clock    Clock
	notifier Notifier
	timer    *roundTimer

	mu         sync.Mutex
	players    map[string]*models.Player
	hostID     string
	phase      models.Phase
	roundStart time.Time
	roundEnd   time.Time
	roundGen   uint64
	summary    []models.SummaryEntry
}

// NewRoom creates an empty room in the lobby phase with no host.
func NewRoom(name string, cat *catalog.Catalog, clock Clock, notifier Notifier) *Room {
	return &Room{
		name:     name,
		catalog:  cat,
		clock:    clock,
		notifier: notifier,
		timer:    newRoundTimer(clock),
		players:  make(map[string]*models.Player),
		phase:    models.PhaseLobby,
	}
}

// Name returns the room's registry key.
func (r *Room) Name() string {
	return r.name
}

// Join adds or re-adds a player with empty selections and ready unset. The
// first player to join a hostless room becomes host. Joining is permitted in
// any phase; a late joiner during a running round gets no extra time.
func (r *Room) Join(playerID, teamName string) RoomState {
	if teamName == "" {
		teamName = "Team-" + uuid.NewString()[:4]
	}

	r.mu.Lock()
	r.players[playerID] = &models.Player{
		ID:         playerID,
		TeamName:   teamName,
		Selections: models.Selections{},
	}
	if r.hostID == "" {
		r.hostID = playerID
	}
	st := r.snapshotLocked()
	r.mu.Unlock()

	log.Info().
		Str("room", r.name).
		Str("player_id", playerID).
		Str("team_name", teamName).
		Msg("player joined room")

	r.notifier.PlayerListChanged(r.name, st.Players, st.HostID)
	return st
}

// Leave removes a player. If the departing player was host, the host role is
// handed to the remaining player with the smallest id, so the room has
// exactly one host whenever it is non-empty. Leaving never cancels an
// in-flight round; the departed player is simply omitted from the eventual
// summary. Returns true when the room became empty, in which case any
// pending round timer is disarmed.
func (r *Room) Leave(playerID string) bool {
	r.mu.Lock()
	if _, ok := r.players[playerID]; !ok {
		r.mu.Unlock()
		return false
	}
	delete(r.players, playerID)

	if r.hostID == playerID {
		r.hostID = ""
		for id := range r.players {
			if r.hostID == "" || id < r.hostID {
				r.hostID = id
			}
		}
	}

	empty := len(r.players) == 0
	if empty {
		// Invalidate any in-flight fire before disarming, so a callback
		// already past the timer cannot touch the emptied room.
		r.roundGen++
		r.timer.Cancel()
	}
	st := r.snapshotLocked()
	r.mu.Unlock()

	log.Info().
		Str("room", r.name).
		Str("player_id", playerID).
		Bool("room_empty", empty).
		Msg("player left room")

	if !empty {
		r.notifier.PlayerListChanged(r.name, st.Players, st.HostID)
	}
	return empty
}

// ToggleReady flips a player's ready flag. Outside the lobby phase, or for
// an identity that is not a current player, it is silently ignored.
func (r *Room) ToggleReady(playerID string) {
	r.mu.Lock()
	player, ok := r.players[playerID]
	if !ok || r.phase != models.PhaseLobby {
		r.mu.Unlock()
		return
	}
	player.Ready = !player.Ready
	st := r.snapshotLocked()
	r.mu.Unlock()

	r.notifier.PlayerListChanged(r.name, st.Players, st.HostID)
}

// UpdateSelection replaces the player's selections and totals wholesale.
// Selections are normalized against the part catalog at this trust boundary;
// the reported totals are stored as-is.
func (r *Room) UpdateSelection(playerID string, selections models.Selections, totalMass, totalCost float64) error {
	normalized := r.catalog.NormalizeSelections(selections)

	r.mu.Lock()
	defer r.mu.Unlock()

	player, ok := r.players[playerID]
	if !ok {
		return ErrUnknownPlayer
	}
	player.Selections = normalized
	player.TotalMass = totalMass
	player.TotalCost = totalCost
	return nil
}

// StartRound transitions the room into a running round of the given
// duration. Only the current host may start, and only one round may be in
// flight at a time; a finished room may be started again for a fresh round.
func (r *Room) StartRound(playerID string, duration time.Duration) (RoundSchedule, error) {
	r.mu.Lock()
	if playerID != r.hostID {
		r.mu.Unlock()
		return RoundSchedule{}, ErrNotHost
	}
	if r.phase == models.PhaseRunning {
		r.mu.Unlock()
		return RoundSchedule{}, ErrAlreadyRunning
	}

	now := r.clock.Now()
	r.phase = models.PhaseRunning
	r.roundStart = now
	r.roundEnd = now.Add(duration)
	r.summary = nil
	for _, player := range r.players {
		player.Ready = false
	}
	r.roundGen++
	gen := r.roundGen
	r.timer.Schedule(duration, func() { r.finishRound(gen) })

	sched := RoundSchedule{StartedAt: r.roundStart, EndsAt: r.roundEnd, Duration: duration}
	r.mu.Unlock()

	log.Info().
		Str("room", r.name).
		Str("host_id", playerID).
		Dur("duration", duration).
		Time("ends_at", sched.EndsAt).
		Msg("round started")

	r.notifier.RoundStarted(r.name, sched)
	return sched, nil
}

// finishRound is the round-timer callback. It is a no-op unless the round it
// was armed for is still the one in flight, so a stale fire after a re-start
// or after the room emptied can never finish the wrong round or touch a
// destroyed room. At most one round-finished notification is produced per
// started round.
func (r *Room) finishRound(gen uint64) {
	r.mu.Lock()
	if r.phase != models.PhaseRunning || gen != r.roundGen || len(r.players) == 0 {
		r.mu.Unlock()
		return
	}
	r.phase = models.PhaseFinished
	players := r.playerSnapshotsLocked()
	r.summary = outcome.BuildSummary(players, r.catalog.MassThresholdKg)
	summary := r.summary
	r.mu.Unlock()

	log.Info().
		Str("room", r.name).
		Int("players", len(summary)).
		Msg("round finished")

	r.notifier.RoundFinished(r.name, summary)
}

// State returns a consistent snapshot of the room.
func (r *Room) State() RoomState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Summary returns the outcome summary of the last finished round. It is
// empty until the round timer has fired.
func (r *Room) Summary() []models.SummaryEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != models.PhaseFinished {
		return nil
	}
	return r.summary
}

// Empty reports whether the room has no players.
func (r *Room) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players) == 0
}

func (r *Room) snapshotLocked() RoomState {
	return RoomState{
		Name:       r.name,
		Players:    r.playerSnapshotsLocked(),
		HostID:     r.hostID,
		Phase:      r.phase,
		RoundStart: r.roundStart,
		RoundEnd:   r.roundEnd,
	}
}

func (r *Room) playerSnapshotsLocked() []models.Player {
	players := make([]models.Player, 0, len(r.players))
	for _, player := range r.players {
		players = append(players, player.Clone())
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players
}
