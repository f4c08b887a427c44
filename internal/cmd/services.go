package main

import (
	"github.com/jonboulle/clockwork"

	"github.com/mwhitt/launchroom/internal/catalog"
	"github.com/mwhitt/launchroom/internal/gateway"
	"github.com/mwhitt/launchroom/internal/room"
)

type Services struct {
	Rooms             *room.App
	ConnectionManager *gateway.ConnectionManager
	RoomHandler       *gateway.RoomHandler
	WebSocketHandler  *gateway.WebSocketHandler
}

func setupServices(cat *catalog.Catalog) *Services {
	// Wire up dependency injection chain
	// Connection manager → notifier → registry → app → HTTP handlers

	connectionManager := gateway.NewConnectionManager(gateway.DefaultConnectionConfig())
	notifier := gateway.NewNotifier(connectionManager)

	clock := clockwork.NewRealClock()
	registry := room.NewRegistry(cat, clock, notifier)
	roomApp := room.NewApp(cat, registry, notifier)

	return &Services{
		Rooms:             roomApp,
		ConnectionManager: connectionManager,
		RoomHandler:       gateway.NewRoomHandler(roomApp, cat),
		WebSocketHandler:  gateway.NewWebSocketHandler(connectionManager),
	}
}
