package main

import "tight-lines/internal/game"

const (
	// Game loop configuration
	TickRate      = 30              // Session updates per second
	BroadcastRate = 15              // State broadcasts per second
	TickInterval  = 1000 / TickRate // milliseconds

	// Pond layout, in the same pixel space as the client canvas
	WaterLeft   = 0.0
	WaterRight  = 800.0
	WaterTop    = 200.0
	WaterBottom = 600.0
	DockX       = 400.0
	DockY       = 120.0
	SandY       = 580.0

	DefaultHabitat = game.Freshwater

	// Network
	InputQueueSize   = 10000
	WriteChannelSize = 256
	PingInterval     = 2000 // milliseconds
	ReadTimeout      = 60   // seconds
	WriteTimeout     = 10   // seconds
	MaxPlayerNameLen = 20
	MaxLanesPerInput = 8

	// Leaderboard
	LeaderboardSize = 10
)

// DefaultLayout places the dock above the pond
func DefaultLayout() game.Layout {
	return game.Layout{
		Water:  game.Bounds{Left: WaterLeft, Right: WaterRight, Top: WaterTop, Bottom: WaterBottom},
		DockX:  DockX,
		StartY: DockY,
		SandY:  SandY,
	}
}
