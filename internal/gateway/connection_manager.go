package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// lobbyKey is the connection pool for sockets watching the rooms list rather
// than one room.
const lobbyKey = ""

// ConnectionManager manages WebSocket connections for room events. Pools are
// keyed by room name; the empty key holds lobby watchers.
type ConnectionManager struct {
	roomConnections map[string]map[*Connection]bool
	mu              sync.RWMutex

	upgrader websocket.Upgrader

	config ConnectionConfig

	broadcastCh chan BroadcastMessage
}

// Connection represents a WebSocket connection to a client.
type Connection struct {
	ID       string
	PlayerID string
	RoomName string
	Conn     *websocket.Conn
	Send     chan []byte
	Manager  *ConnectionManager

	ConnectedAt time.Time
	LastPing    time.Time
}

// ConnectionConfig holds configuration for WebSocket connections.
type ConnectionConfig struct {
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	PingInterval    time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	CheckOrigin     func(r *http.Request) bool
}

// BroadcastMessage represents an event to broadcast to a room's connections.
type BroadcastMessage struct {
	RoomName string
	Event    *RoomEvent
}

// DefaultConnectionConfig returns default WebSocket configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		WriteTimeout:    10 * time.Second,
		ReadTimeout:     60 * time.Second,
		PingInterval:    30 * time.Second,
		MaxMessageSize:  4096,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			// Allow all origins in development - restrict in production
			return true
		},
	}
}

// NewConnectionManager creates a new WebSocket connection manager.
func NewConnectionManager(config ConnectionConfig) *ConnectionManager {
	return &ConnectionManager{
		roomConnections: make(map[string]map[*Connection]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		config:      config,
		broadcastCh: make(chan BroadcastMessage, 1000),
	}
}

// Start begins processing broadcast messages until the context is cancelled.
func (cm *ConnectionManager) Start(ctx context.Context) {
	log.Info().Msg("connection manager started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("connection manager shutting down")
			return
		case message := <-cm.broadcastCh:
			cm.handleBroadcast(message)
		}
	}
}

// UpgradeConnection upgrades an HTTP request to a WebSocket subscribed to the
// given room (or to the lobby when roomName is empty).
func (cm *ConnectionManager) UpgradeConnection(w http.ResponseWriter, r *http.Request, playerID, roomName string) error {
	conn, err := cm.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade WebSocket connection")
		return fmt.Errorf("failed to upgrade connection: %w", err)
	}

	connection := &Connection{
		ID:          uuid.New().String(),
		PlayerID:    playerID,
		RoomName:    roomName,
		Conn:        conn,
		Send:        make(chan []byte, 256),
		Manager:     cm,
		ConnectedAt: time.Now(),
		LastPing:    time.Now(),
	}

	cm.registerConnection(connection)

	go connection.writePump()
	go connection.readPump()

	log.Info().
		Str("connection_id", connection.ID).
		Str("player_id", playerID).
		Str("room", roomName).
		Msg("WebSocket connection established")

	return nil
}

func (cm *ConnectionManager) registerConnection(conn *Connection) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.roomConnections[conn.RoomName] == nil {
		cm.roomConnections[conn.RoomName] = make(map[*Connection]bool)
	}
	cm.roomConnections[conn.RoomName][conn] = true

	log.Debug().
		Str("connection_id", conn.ID).
		Str("room", conn.RoomName).
		Int("total_connections", len(cm.roomConnections[conn.RoomName])).
		Msg("connection registered")
}

func (cm *ConnectionManager) unregisterConnection(conn *Connection) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if connections, exists := cm.roomConnections[conn.RoomName]; exists {
		if _, exists := connections[conn]; exists {
			delete(connections, conn)
			close(conn.Send)

			if len(connections) == 0 {
				delete(cm.roomConnections, conn.RoomName)
			}

			log.Info().
				Str("connection_id", conn.ID).
				Str("player_id", conn.PlayerID).
				Str("room", conn.RoomName).
				Msg("connection unregistered")
		}
	}
}

// BroadcastToRoom queues an event for every connection watching a room.
// Never blocks; the event is dropped when the broadcast queue is full.
func (cm *ConnectionManager) BroadcastToRoom(roomName string, event *RoomEvent) {
	select {
	case cm.broadcastCh <- BroadcastMessage{RoomName: roomName, Event: event}:
	default:
		log.Warn().Str("room", roomName).Msg("broadcast channel full, dropping message")
	}
}

// BroadcastToLobby queues an event for every lobby-watching connection.
func (cm *ConnectionManager) BroadcastToLobby(event *RoomEvent) {
	cm.BroadcastToRoom(lobbyKey, event)
}

func (cm *ConnectionManager) handleBroadcast(message BroadcastMessage) {
	cm.mu.RLock()
	connections, exists := cm.roomConnections[message.RoomName]
	if !exists {
		cm.mu.RUnlock()
		return
	}

	// Snapshot so the lock is not held while writing to send buffers.
	targets := make([]*Connection, 0, len(connections))
	for conn := range connections {
		targets = append(targets, conn)
	}
	cm.mu.RUnlock()

	eventData, err := json.Marshal(message.Event)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal event for broadcast")
		return
	}

	for _, conn := range targets {
		select {
		case conn.Send <- eventData:
		default:
			// Connection is slow/dead, close it
			log.Warn().
				Str("connection_id", conn.ID).
				Str("player_id", conn.PlayerID).
				Msg("connection send buffer full, closing connection")
			cm.unregisterConnection(conn)
			conn.Conn.Close()
		}
	}

	log.Debug().
		Str("event_type", string(message.Event.Type)).
		Str("room", message.RoomName).
		Int("connections", len(targets)).
		Msg("event broadcasted")
}

// ConnectionStats returns counts of active connections per room.
type ConnectionStats struct {
	TotalConnections int            `json:"total_connections"`
	ActiveRooms      int            `json:"active_rooms"`
	RoomConnections  map[string]int `json:"room_connections"`
}

// Stats returns statistics about active connections.
func (cm *ConnectionManager) Stats() ConnectionStats {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	stats := ConnectionStats{RoomConnections: make(map[string]int)}
	for roomName, connections := range cm.roomConnections {
		stats.TotalConnections += len(connections)
		stats.RoomConnections[roomName] = len(connections)
	}
	stats.ActiveRooms = len(cm.roomConnections)
	return stats
}

// writePump handles sending messages to the WebSocket connection.
func (c *Connection) writePump() {
	ticker := time.NewTicker(c.Manager.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
		c.Manager.unregisterConnection(c)
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.config.WriteTimeout))
			if !ok {
				// Channel was closed
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Error().
					Err(err).
					Str("connection_id", c.ID).
					Msg("failed to write message to WebSocket")
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.config.WriteTimeout))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Error().
					Err(err).
					Str("connection_id", c.ID).
					Msg("failed to send ping")
				return
			}
			c.LastPing = time.Now()
		}
	}
}

// readPump handles reading messages from the WebSocket connection. Inbound
// operations arrive over REST; client frames here are drained and logged.
func (c *Connection) readPump() {
	defer func() {
		c.Manager.unregisterConnection(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(c.Manager.config.MaxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
		c.LastPing = time.Now()
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().
					Err(err).
					Str("connection_id", c.ID).
					Msg("unexpected WebSocket close error")
			}
			break
		}

		log.Debug().
			Str("connection_id", c.ID).
			Str("player_id", c.PlayerID).
			RawJSON("message", message).
			Msg("received client message")
		c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	}
}
