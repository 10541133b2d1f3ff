package game

import "math"

// HookState is the state of the hook timing game
type HookState int

const (
	HookInactive HookState = iota
	HookActive
	HookResolved
)

func (s HookState) String() string {
	switch s {
	case HookActive:
		return "active"
	case HookResolved:
		return "resolved"
	default:
		return "inactive"
	}
}

// Zone is an inclusive horizontal interval on the timing bar
type Zone struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

// CenteredZone returns the zone of width w centered on c
func CenteredZone(c, w float64) Zone {
	return Zone{Left: c - w/2, Right: c + w/2}
}

// Contains reports whether x lies in the zone, edges included
func (z Zone) Contains(x float64) bool {
	return x >= z.Left && x <= z.Right
}

// HookGame is the single-press timing check between a bite and the reel.
// A marker sweeps back and forth across the bar; pressing while it is inside
// the centered success zone hooks the catch.
type HookGame struct {
	cfg HookConfig

	state     HookState
	success   bool
	catch     CatchSnapshot
	marker    float64
	direction float64
	speed     float64
	zone      Zone
}

// NewHookGame creates an inactive hook game
func NewHookGame(cfg HookConfig) *HookGame {
	return &HookGame{cfg: cfg}
}

// MarkerSpeed returns the sweep speed for a swimmer moving at entitySpeed
func (h *HookGame) MarkerSpeed(entitySpeed float64) float64 {
	return h.cfg.BaseSpeed + entitySpeed*h.cfg.SpeedMultiplier
}

// Start activates a round for catch. zoneWidth is clamped to the bar.
func (h *HookGame) Start(catch CatchSnapshot, zoneWidth float64) {
	zoneWidth = Clamp(zoneWidth, 0, h.cfg.BarWidth)
	h.state = HookActive
	h.success = false
	h.catch = catch
	h.marker = 0
	h.direction = 1
	h.speed = h.MarkerSpeed(catch.Species.Speed)
	h.zone = CenteredZone(h.cfg.BarWidth/2, zoneWidth)
}

// State returns the current hook state
func (h *HookGame) State() HookState { return h.state }

// Succeeded reports the outcome of a resolved round
func (h *HookGame) Succeeded() bool { return h.state == HookResolved && h.success }

// Catch returns the snapshot the round was started with
func (h *HookGame) Catch() CatchSnapshot { return h.catch }

// Marker returns the marker position measured from the bar's left edge
func (h *HookGame) Marker() float64 { return h.marker }

// Speed returns the marker sweep speed of the current round
func (h *HookGame) Speed() float64 { return h.speed }

// Zone returns the success zone of the current round
func (h *HookGame) Zone() Zone { return h.zone }

// BarWidth returns the width of the timing bar
func (h *HookGame) BarWidth() float64 { return h.cfg.BarWidth }

// Update sweeps the marker, reflecting it exactly at both bar edges
func (h *HookGame) Update(dt float64) {
	if h.state != HookActive {
		return
	}
	w := h.cfg.BarWidth

	// Unfold the bounce into a sawtooth of period 2w
	u := h.marker
	if h.direction < 0 {
		u = 2*w - h.marker
	}
	u = math.Mod(u+h.speed*dt, 2*w)
	if u < w {
		h.marker, h.direction = u, 1
	} else {
		h.marker, h.direction = 2*w-u, -1
	}
}

// Press resolves the round against the current marker position. The second
// result is false when no round is active.
func (h *HookGame) Press() (success bool, ok bool) {
	if h.state != HookActive {
		return false, false
	}
	h.success = h.zone.Contains(h.marker)
	h.state = HookResolved
	return h.success, true
}

// Reset returns the game to inactive
func (h *HookGame) Reset() {
	*h = HookGame{cfg: h.cfg}
}
