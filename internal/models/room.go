package models

// Phase defines the lifecycle phase of a room's current round.
type Phase string

const (
	PhaseLobby    Phase = "LOBBY"
	PhaseRunning  Phase = "RUNNING"
	PhaseFinished Phase = "FINISHED"
)
