package game

import "github.com/google/uuid"

// EventKind identifies what happened during a tick or market action
type EventKind string

const (
	EventCast             EventKind = "cast"
	EventBobberReturned   EventKind = "bobber-returned"
	EventBite             EventKind = "bite"
	EventHooked           EventKind = "hooked"
	EventCatchSucceeded   EventKind = "catch-succeeded"
	EventCatchFailed      EventKind = "catch-failed"
	EventCatchStolen      EventKind = "catch-stolen"
	EventDayComplete      EventKind = "day-complete"
	EventSellCompleted    EventKind = "sell-completed"
	EventUpgradePurchased EventKind = "upgrade-purchased"
	EventReelHit          EventKind = "reel-hit"
	EventReelMiss         EventKind = "reel-miss"
)

// Failure stages carried by EventCatchFailed
const (
	FailedHook = "hook"
	FailedReel = "reel"
)

// Event is a terminal or notable outcome reported to collaborators. Only the
// fields relevant to Kind are set.
type Event struct {
	Kind EventKind `json:"kind"`

	Species string `json:"species,omitempty"`
	Tier    Tier   `json:"tier,omitempty"`
	Points  int    `json:"points,omitempty"`
	Stage   string `json:"stage,omitempty"`
	CreelID string `json:"creelId,omitempty"`

	Day       int       `json:"day,omitempty"`
	TimeOfDay TimeOfDay `json:"timeOfDay,omitempty"`

	Amount  int         `json:"amount,omitempty"`
	Upgrade UpgradeKind `json:"upgrade,omitempty"`
	Level   int         `json:"level,omitempty"`
	Lane    string      `json:"lane,omitempty"`
}

// CreelEntry is one landed, unsold catch
type CreelEntry struct {
	ID        uuid.UUID `json:"id"`
	Species   string    `json:"species"`
	Title     string    `json:"title"`
	Tier      Tier      `json:"tier"`
	Points    int       `json:"points"`
	Day       int       `json:"day"`
	TimeOfDay TimeOfDay `json:"timeOfDay"`
}
