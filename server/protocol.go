package main

import (
	"math"

	"tight-lines/internal/game"
)

// ClientMessage represents incoming messages from clients
type ClientMessage struct {
	Type    string       `json:"type"`
	Name    string       `json:"name,omitempty"`
	Habitat string       `json:"habitat,omitempty"`
	Action  bool         `json:"action,omitempty"`
	Lanes   []string     `json:"lanes,omitempty"`
	Open    bool         `json:"open,omitempty"`
	Upgrade string       `json:"upgrade,omitempty"`
	Water   *game.Bounds `json:"water,omitempty"`
	Seq     uint32       `json:"seq,omitempty"`
}

// ServerMessage represents outgoing messages to clients
type ServerMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// WelcomePayload is sent after a player joins
type WelcomePayload struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Habitat game.Habitat `json:"habitat"`
	Water   game.Bounds  `json:"water"`
	DockX   float64      `json:"dockX"`
	DockY   float64      `json:"dockY"`
	SandY   float64      `json:"sandY"`
}

// StatePayload is a player's snapshot plus the last input seq applied
type StatePayload struct {
	Seq      uint32
	Snapshot game.Snapshot
}

// ErrorPayload carries a rejection reason code
type ErrorPayload struct {
	Reason string `json:"reason"`
}

// LeaderboardEntry represents a leaderboard entry
type LeaderboardEntry struct {
	Name  string `json:"name"`
	Money int    `json:"money"`
	Score int    `json:"score"`
	Day   int    `json:"day"`
}

// Binary Protocol Implementation
// Message Types
const (
	MsgTypeWelcome byte = 1
	MsgTypeState   byte = 2
	MsgTypePong    byte = 3
)

// State flags
const (
	flagHasCaught byte = 1 << iota
	flagHook
	flagReel
)

// EncodeBinaryMessage encodes a server message into binary format. It
// returns nil for message types that travel as JSON.
func EncodeBinaryMessage(msg ServerMessage) ([]byte, error) {
	switch msg.Type {
	case "welcome":
		return encodeWelcome(msg.Payload.(WelcomePayload)), nil
	case "state":
		return encodeState(msg.Payload.(StatePayload)), nil
	case "pong":
		return []byte{MsgTypePong}, nil
	default:
		return nil, nil
	}
}

func encodeWelcome(payload WelcomePayload) []byte {
	buf := make([]byte, 0, 1+2+len(payload.ID)+2+len(payload.Name)+2+len(payload.Habitat)+7*8)
	buf = append(buf, MsgTypeWelcome)
	buf = appendString(buf, payload.ID)
	buf = appendString(buf, payload.Name)
	buf = appendString(buf, string(payload.Habitat))
	for _, v := range []float64{
		payload.Water.Left, payload.Water.Right, payload.Water.Top, payload.Water.Bottom,
		payload.DockX, payload.DockY, payload.SandY,
	} {
		buf = appendFloat64(buf, v)
	}
	return buf
}

func encodeState(state StatePayload) []byte {
	snap := state.Snapshot

	// Estimate size
	capacity := 64 + len(snap.Swimmers)*32
	if snap.Reel != nil {
		capacity += len(snap.Reel.Tokens) * 10
	}
	buf := make([]byte, 0, capacity)

	buf = append(buf, MsgTypeState)
	buf = appendUint32(buf, state.Seq)
	buf = append(buf, byte(snap.Phase))

	flags := byte(0)
	if snap.Bobber.HasCaught {
		flags |= flagHasCaught
	}
	if snap.Hook != nil {
		flags |= flagHook
	}
	if snap.Reel != nil {
		flags |= flagReel
	}
	buf = append(buf, flags)

	// Bobber (float32 for bandwidth)
	buf = append(buf, byte(snap.Bobber.State))
	buf = appendFloat32(buf, float32(snap.Bobber.X))
	buf = appendFloat32(buf, float32(snap.Bobber.Y))

	// Economy and day
	buf = appendUint32(buf, uint32(snap.Score))
	buf = appendUint32(buf, uint32(snap.Money))
	for _, kind := range game.UpgradeKinds {
		buf = append(buf, byte(snap.Levels[kind]))
	}
	buf = appendUint16(buf, uint16(snap.Day))
	buf = append(buf, byte(snap.CastsInDay))
	buf = appendString(buf, string(snap.TimeOfDay))

	// Swimmers count + data
	buf = appendUint16(buf, uint16(len(snap.Swimmers)))
	for _, s := range snap.Swimmers {
		buf = encodeSwimmer(buf, s)
	}

	if snap.Hook != nil {
		buf = appendFloat32(buf, float32(snap.Hook.Marker))
		buf = appendFloat32(buf, float32(snap.Hook.Zone.Left))
		buf = appendFloat32(buf, float32(snap.Hook.Zone.Right))
		buf = appendFloat32(buf, float32(snap.Hook.BarWidth))
	}

	if snap.Reel != nil {
		buf = appendUint16(buf, uint16(snap.Reel.Hits))
		buf = appendUint16(buf, uint16(snap.Reel.Required))
		buf = appendFloat32(buf, float32(snap.Reel.TimeLeft))
		buf = appendFloat32(buf, float32(snap.Reel.PreRoll))
		buf = appendFloat32(buf, float32(snap.Reel.HitZoneY))
		buf = appendUint16(buf, uint16(len(snap.Reel.Tokens)))
		for _, t := range snap.Reel.Tokens {
			buf = appendUint32(buf, uint32(t.ID))
			buf = append(buf, byte(t.Lane), byte(t.Status))
			buf = appendFloat32(buf, float32(t.Y))
		}
	}

	return buf
}

func encodeSwimmer(buf []byte, s game.Swimmer) []byte {
	buf = appendUint64(buf, s.ID)
	buf = appendString(buf, s.Species.Name)
	buf = appendFloat32(buf, float32(s.Position.X))
	buf = appendFloat32(buf, float32(s.Position.Y))
	buf = appendFloat32(buf, float32(s.Species.Size))
	dir := byte(0)
	if s.Direction < 0 {
		dir = 1
	}
	return append(buf, dir)
}

// Helper functions
func appendString(buf []byte, s string) []byte {
	buf = appendUint16(buf, uint16(len(s)))
	return append(buf, s...)
}

func appendFloat32(buf []byte, f float32) []byte {
	return appendUint32(buf, math.Float32bits(f))
}

func appendFloat64(buf []byte, f float64) []byte {
	return appendUint64(buf, math.Float64bits(f))
}

func appendUint16(buf []byte, u uint16) []byte {
	return append(buf, byte(u>>8), byte(u))
}

func appendUint32(buf []byte, u uint32) []byte {
	return append(buf, byte(u>>24), byte(u>>16), byte(u>>8), byte(u))
}

func appendUint64(buf []byte, u uint64) []byte {
	return append(buf, byte(u>>56), byte(u>>48), byte(u>>40), byte(u>>32),
		byte(u>>24), byte(u>>16), byte(u>>8), byte(u))
}
