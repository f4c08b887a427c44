package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/mwhitt/launchroom/internal/catalog"
	"github.com/mwhitt/launchroom/internal/models"
	"github.com/mwhitt/launchroom/internal/room"
)

// RoomHandler serves the REST side of the transport: the polling protocol
// the browser client speaks. Push delivery lives in the WebSocket handler.
type RoomHandler struct {
	app     *room.App
	catalog *catalog.Catalog
}

// NewRoomHandler creates a new REST handler over the room app.
func NewRoomHandler(app *room.App, cat *catalog.Catalog) *RoomHandler {
	return &RoomHandler{app: app, catalog: cat}
}

// RegisterRoutes registers the REST routes with an HTTP mux.
func (h *RoomHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /space-shuttle/rooms", h.handleCreateRoom)
	mux.HandleFunc("GET /space-shuttle/rooms", h.handleListRooms)
	mux.HandleFunc("POST /space-shuttle/rooms/{name}/join", h.handleJoinRoom)
	mux.HandleFunc("POST /space-shuttle/rooms/{name}/leave", h.handleLeaveRoom)
	mux.HandleFunc("POST /space-shuttle/rooms/{name}/toggle-ready", h.handleToggleReady)
	mux.HandleFunc("POST /space-shuttle/rooms/{name}/update-selection", h.handleUpdateSelection)
	mux.HandleFunc("POST /space-shuttle/rooms/{name}/start", h.handleStartRound)
	mux.HandleFunc("GET /space-shuttle/rooms/{name}/state", h.handleRoomState)
	mux.HandleFunc("GET /space-shuttle/rooms/{name}/summary", h.handleSummary)
	mux.HandleFunc("GET /space-shuttle/catalog", h.handleCatalog)
}

type createRoomRequest struct {
	RoomName string `json:"roomName"`
	PlayerID string `json:"playerId"`
	TeamName string `json:"teamName"`
}

type playerRequest struct {
	PlayerID string `json:"playerId"`
	TeamName string `json:"teamName"`
}

type updateSelectionRequest struct {
	PlayerID   string            `json:"playerId"`
	Selections models.Selections `json:"selections"`
	TotalMass  float64           `json:"totalMass"`
	TotalCost  float64           `json:"totalCost"`
}

type roomStateResponse struct {
	Players       []models.Player `json:"players"`
	HostID        string          `json:"hostId"`
	GameRunning   bool            `json:"gameRunning"`
	GameStartTime int64           `json:"gameStartTime,omitempty"` // epoch ms
	GameEndTime   int64           `json:"gameEndTime,omitempty"`   // epoch ms
}

type startRoundResponse struct {
	GameStarted   bool  `json:"gameStarted"`
	GameStartTime int64 `json:"gameStartTime"` // epoch ms
	GameEndTime   int64 `json:"gameEndTime"`   // epoch ms
	DurationMs    int64 `json:"durationMs"`
}

func (h *RoomHandler) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	st, err := h.app.CreateOrJoin(room.JoinRequest{
		RoomName: req.RoomName,
		PlayerID: req.PlayerID,
		TeamName: req.TeamName,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse(st))
}

func (h *RoomHandler) handleJoinRoom(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	st, err := h.app.Join(room.JoinRequest{
		RoomName: r.PathValue("name"),
		PlayerID: req.PlayerID,
		TeamName: req.TeamName,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse(st))
}

func (h *RoomHandler) handleLeaveRoom(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.app.Leave(r.PathValue("name"), req.PlayerID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *RoomHandler) handleToggleReady(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.app.ToggleReady(r.PathValue("name"), req.PlayerID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *RoomHandler) handleUpdateSelection(w http.ResponseWriter, r *http.Request) {
	var req updateSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.app.UpdateSelection(room.UpdateSelectionRequest{
		RoomName:   r.PathValue("name"),
		PlayerID:   req.PlayerID,
		Selections: req.Selections,
		TotalMass:  req.TotalMass,
		TotalCost:  req.TotalCost,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *RoomHandler) handleStartRound(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sched, err := h.app.StartRound(r.PathValue("name"), req.PlayerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, startRoundResponse{
		GameStarted:   true,
		GameStartTime: sched.StartedAt.UnixMilli(),
		GameEndTime:   sched.EndsAt.UnixMilli(),
		DurationMs:    sched.Duration.Milliseconds(),
	})
}

func (h *RoomHandler) handleListRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"rooms": h.app.ListRooms()})
}

func (h *RoomHandler) handleRoomState(w http.ResponseWriter, r *http.Request) {
	st, err := h.app.State(r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse(st))
}

func (h *RoomHandler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.app.Summary(r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}
	if summary == nil {
		summary = []models.SummaryEntry{}
	}
	writeJSON(w, http.StatusOK, map[string][]models.SummaryEntry{"summary": summary})
}

func (h *RoomHandler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"parts":           h.catalog.Parts,
		"materials":       h.catalog.Materials,
		"massThresholdKg": h.catalog.MassThresholdKg,
		"roundDurationMs": h.catalog.RoundDuration.Milliseconds(),
	})
}

// stateResponse shapes a room snapshot the way the polling client expects:
// absolute epoch-millisecond timestamps it can subtract its own clock from.
func stateResponse(st room.RoomState) roomStateResponse {
	resp := roomStateResponse{
		Players:     st.Players,
		HostID:      st.HostID,
		GameRunning: st.Running(),
	}
	if st.Running() {
		resp.GameStartTime = st.RoundStart.UnixMilli()
		resp.GameEndTime = st.RoundEnd.UnixMilli()
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, room.ErrInvalidName):
		status = http.StatusBadRequest
	case errors.Is(err, room.ErrUnknownRoom), errors.Is(err, room.ErrUnknownPlayer):
		status = http.StatusNotFound
	case errors.Is(err, room.ErrNotHost):
		status = http.StatusForbidden
	case errors.Is(err, room.ErrAlreadyRunning):
		status = http.StatusConflict
	}
	writeErrorMessage(w, status, err.Error())
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
