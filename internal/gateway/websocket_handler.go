package gateway

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// WebSocketHandler handles WebSocket upgrade requests for the push channel.
type WebSocketHandler struct {
	connectionManager *ConnectionManager
}

// NewWebSocketHandler creates a new WebSocket handler.
func NewWebSocketHandler(cm *ConnectionManager) *WebSocketHandler {
	return &WebSocketHandler{connectionManager: cm}
}

// HandleRoomConnection subscribes a client to one room's event stream.
func (h *WebSocketHandler) HandleRoomConnection(w http.ResponseWriter, r *http.Request) {
	roomName := r.URL.Query().Get("room")
	if roomName == "" {
		http.Error(w, "room is required", http.StatusBadRequest)
		return
	}

	// Identity is an opaque per-connection id; there is no authentication
	// beyond it.
	playerID := r.URL.Query().Get("player_id")
	if playerID == "" {
		playerID = "anonymous"
	}

	if err := h.connectionManager.UpgradeConnection(w, r, playerID, roomName); err != nil {
		log.Error().
			Err(err).
			Str("room", roomName).
			Str("player_id", playerID).
			Msg("failed to upgrade WebSocket connection")
		http.Error(w, "failed to upgrade connection", http.StatusInternalServerError)
		return
	}
}

// HandleLobbyConnection subscribes a client to the rooms-list event stream.
func (h *WebSocketHandler) HandleLobbyConnection(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("player_id")
	if playerID == "" {
		playerID = "anonymous"
	}

	if err := h.connectionManager.UpgradeConnection(w, r, playerID, lobbyKey); err != nil {
		log.Error().
			Err(err).
			Str("player_id", playerID).
			Msg("failed to upgrade lobby WebSocket connection")
		http.Error(w, "failed to upgrade connection", http.StatusInternalServerError)
		return
	}
}

// HandleConnectionStats returns statistics about active connections.
func (h *WebSocketHandler) HandleConnectionStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.connectionManager.Stats())
}

// RegisterRoutes registers WebSocket routes with an HTTP mux.
func (h *WebSocketHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /ws/room", h.HandleRoomConnection)
	mux.HandleFunc("GET /ws/lobby", h.HandleLobbyConnection)
	mux.HandleFunc("GET /ws/stats", h.HandleConnectionStats)
}
