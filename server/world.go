package main

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"tight-lines/internal/game"
)

// ErrUnknownPlayer is returned for market actions before a join
var ErrUnknownPlayer = errors.New("unknown-player")

// PlayerInput is one input message queued for the next tick
type PlayerInput struct {
	PlayerID  string
	Input     game.Input
	Seq       uint32
	Timestamp time.Time
}

// World hosts every angler's session and drives them from one tick loop
type World struct {
	Players    map[string]*Player
	InputQueue chan PlayerInput
	Config     game.Config
	Catalog    *game.Catalog
	Progress   *ProgressStore
	mu         sync.RWMutex
}

// NewWorld creates a new world
func NewWorld(cfg game.Config, catalog *game.Catalog, progress *ProgressStore) *World {
	return &World{
		Players:    make(map[string]*Player),
		InputQueue: make(chan PlayerInput, InputQueueSize),
		Config:     cfg,
		Catalog:    catalog,
		Progress:   progress,
	}
}

// Start begins the game loop
func (w *World) Start() {
	go w.GameLoop()
	go w.BroadcastLoop()
}

// GameLoop runs the session tick at TickRate
func (w *World) GameLoop() {
	ticker := time.NewTicker(time.Duration(TickInterval) * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		w.Update(float64(TickInterval) / 1000.0)
	}
}

// BroadcastLoop sends state updates to clients at BroadcastRate
func (w *World) BroadcastLoop() {
	stateTicker := time.NewTicker(time.Second / BroadcastRate)
	leaderboardTicker := time.NewTicker(time.Second) // Leaderboard at 1Hz
	defer stateTicker.Stop()
	defer leaderboardTicker.Stop()

	for {
		select {
		case <-stateTicker.C:
			w.BroadcastState()
		case <-leaderboardTicker.C:
			w.BroadcastLeaderboard()
		}
	}
}

// Update advances every session by one tick
func (w *World) Update(dt float64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	// 1. Process input queue
	w.ProcessInputs()

	// 2. Advance sessions and deliver their events
	for _, player := range w.Players {
		events := player.Session.Update(dt, player.TakeInput())
		w.dispatch(player, events)
	}
}

// ProcessInputs drains the input queue into each player's pending input
func (w *World) ProcessInputs() {
	for {
		select {
		case input := <-w.InputQueue:
			if player, exists := w.Players[input.PlayerID]; exists {
				player.Queue(input.Input, input.Seq)
			}
		default:
			return
		}
	}
}

func (w *World) dispatch(player *Player, events []game.Event) {
	for _, e := range events {
		switch e.Kind {
		case game.EventCatchSucceeded:
			log.Printf("Player %s landed %s (%s, %d points)", player.Name, e.Species, e.Tier, e.Points)
		case game.EventCatchFailed:
			log.Printf("Player %s lost %s at the %s", player.Name, e.Species, e.Stage)
		case game.EventCatchStolen:
			log.Printf("Player %s had %s stolen", player.Name, e.Species)
		case game.EventDayComplete:
			log.Printf("Player %s finished day %d", player.Name, e.Day)
		case game.EventSellCompleted:
			log.Printf("Player %s sold %d points for %d", player.Name, e.Points, e.Amount)
		case game.EventUpgradePurchased:
			log.Printf("Player %s bought %s level %d for %d", player.Name, e.Upgrade, e.Level, e.Amount)
		}
		player.Send(ServerMessage{Type: "event", Payload: e})
	}
}

// Join creates a session for a new player, restoring saved progress by name
func (w *World) Join(id, name string, habitat game.Habitat, client *Client) (*Player, error) {
	progress, err := w.Progress.Load(name)
	if err != nil {
		return nil, fmt.Errorf("load progress for %s: %w", name, err)
	}
	session, err := game.NewSession(w.Config, w.Catalog, habitat, DefaultLayout(), progress, game.NewRNG(0))
	if err != nil {
		return nil, err
	}

	player := NewPlayer(id, name, session, client)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.Players[id] = player
	log.Printf("Added player %s (%s) to world. Total players: %d", name, id, len(w.Players))
	return player, nil
}

// Act runs a market or layout action against a player's session under the
// world lock, delivers the resulting events and saves progress.
func (w *World) Act(playerID string, fn func(*game.Session) ([]game.Event, error)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	player, ok := w.Players[playerID]
	if !ok {
		return ErrUnknownPlayer
	}
	events, err := fn(player.Session)
	if err != nil {
		return err
	}
	w.dispatch(player, events)
	w.Progress.Save(player.Name, player.Session.Progress())
	return nil
}

// BroadcastState sends every connected player their own snapshot
func (w *World) BroadcastState() {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, player := range w.Players {
		if player.Client == nil {
			continue
		}
		player.Send(ServerMessage{
			Type: "state",
			Payload: StatePayload{
				Seq:      player.LastSeq,
				Snapshot: player.Session.Snapshot(),
			},
		})
	}
}

// BroadcastLeaderboard sends the leaderboard to everyone
func (w *World) BroadcastLeaderboard() {
	w.mu.RLock()
	defer w.mu.RUnlock()

	leaderboard := w.leaderboard()
	for _, player := range w.Players {
		player.Send(ServerMessage{
			Type:    "leaderboard",
			Payload: leaderboard,
		})
	}
}

// GetLeaderboard returns the top players by money, then unsold score
func (w *World) GetLeaderboard() []LeaderboardEntry {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.leaderboard()
}

func (w *World) leaderboard() []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(w.Players))
	for _, p := range w.Players {
		progress := p.Session.Progress()
		entries = append(entries, LeaderboardEntry{
			Name:  p.Name,
			Money: progress.Money,
			Score: progress.Score,
			Day:   p.Session.Day().Day(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Money != entries[j].Money {
			return entries[i].Money > entries[j].Money
		}
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Name < entries[j].Name
	})

	if len(entries) > LeaderboardSize {
		entries = entries[:LeaderboardSize]
	}
	return entries
}

// Disconnect removes a player and saves their progress
func (w *World) Disconnect(client *Client) {
	w.mu.Lock()
	if client.Player != nil {
		w.Progress.Save(client.Player.Name, client.Player.Session.Progress())
		delete(w.Players, client.Player.ID)
		log.Printf("Player %s disconnected. Total players: %d", client.Player.Name, len(w.Players))
	}
	w.mu.Unlock()

	client.closeSend()
}
