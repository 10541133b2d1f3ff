package game

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// Lane is one of the four arrow directions
type Lane int

const (
	LaneLeft Lane = iota
	LaneUp
	LaneDown
	LaneRight
)

// Lanes lists the lanes in screen order
var Lanes = []Lane{LaneLeft, LaneUp, LaneDown, LaneRight}

func (l Lane) String() string {
	switch l {
	case LaneLeft:
		return "left"
	case LaneUp:
		return "up"
	case LaneDown:
		return "down"
	case LaneRight:
		return "right"
	default:
		return fmt.Sprintf("lane(%d)", int(l))
	}
}

// ParseLane accepts a lane name or its WASD key
func ParseLane(s string) (Lane, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "a":
		return LaneLeft, nil
	case "up", "w":
		return LaneUp, nil
	case "down", "s":
		return LaneDown, nil
	case "right", "d":
		return LaneRight, nil
	}
	return 0, fmt.Errorf("unknown lane %q", s)
}

// TokenStatus tracks a falling arrow
type TokenStatus int

const (
	TokenActive TokenStatus = iota
	TokenHit
	TokenMissed
)

func (s TokenStatus) String() string {
	switch s {
	case TokenHit:
		return "hit"
	case TokenMissed:
		return "missed"
	default:
		return "active"
	}
}

// Token is one arrow falling toward the hit zone
type Token struct {
	ID     int
	Lane   Lane
	Y      float64
	Status TokenStatus
}

// ReelState is the state of the reel round
type ReelState int

const (
	ReelInactive ReelState = iota
	ReelActive
	ReelSuccess
	ReelFailure
)

func (s ReelState) String() string {
	switch s {
	case ReelActive:
		return "active"
	case ReelSuccess:
		return "success"
	case ReelFailure:
		return "failure"
	default:
		return "inactive"
	}
}

// ReelGame is the arrow-matching round that lands a hooked catch. The
// player must match as many arrows as the catch has health before the
// countdown runs out.
type ReelGame struct {
	cfg ReelConfig
	rng *rand.Rand

	state    ReelState
	catch    CatchSnapshot
	required int
	hits     int
	misses   int
	timeLeft float64
	preRoll  float64

	tokens     []Token
	resolved   []Token // missed during the last Update, or hit before it
	pressed    []Token // hit since the last Update
	nextID     int
	sinceSpawn float64
}

// NewReelGame creates an inactive reel game
func NewReelGame(cfg ReelConfig, rng *rand.Rand) *ReelGame {
	return &ReelGame{cfg: cfg, rng: rng}
}

// Start begins a round for catch with the given countdown in seconds
func (r *ReelGame) Start(catch CatchSnapshot, duration float64) {
	r.state = ReelActive
	r.catch = catch
	r.required = catch.Species.Health
	r.hits = 0
	r.misses = 0
	r.timeLeft = duration
	r.preRoll = r.cfg.PreRoll
	r.tokens = r.tokens[:0]
	r.resolved = nil
	r.pressed = nil
	r.nextID = 1
	r.sinceSpawn = 0

	switch r.cfg.Strategy {
	case ReelFixed:
		for i := 0; i < r.required; i++ {
			r.spawn(r.cfg.SpawnY - float64(i)*r.cfg.TokenSpacing)
		}
	default:
		r.spawn(r.cfg.SpawnY)
	}
}

func (r *ReelGame) spawn(y float64) {
	r.tokens = append(r.tokens, Token{
		ID:   r.nextID,
		Lane: Lanes[r.rng.IntN(len(Lanes))],
		Y:    y,
	})
	r.nextID++
}

// State returns the current reel state
func (r *ReelGame) State() ReelState { return r.state }

// Done reports whether the round reached a terminal state
func (r *ReelGame) Done() bool { return r.state == ReelSuccess || r.state == ReelFailure }

// Catch returns the snapshot the round was started with
func (r *ReelGame) Catch() CatchSnapshot { return r.catch }

// Hits returns the matched token count
func (r *ReelGame) Hits() int { return r.hits }

// Misses returns the number of tokens that fell past the hit zone
func (r *ReelGame) Misses() int { return r.misses }

// Required returns the number of matches needed to land the catch
func (r *ReelGame) Required() int { return r.required }

// TimeLeft returns the remaining countdown in seconds
func (r *ReelGame) TimeLeft() float64 { return r.timeLeft }

// PreRoll returns the seconds left before tokens start falling
func (r *ReelGame) PreRoll() float64 { return r.preRoll }

// Tokens returns the in-flight tokens followed by the ones resolved during
// the latest tick, so a renderer can flash hits and misses once.
func (r *ReelGame) Tokens() []Token {
	out := make([]Token, 0, len(r.tokens)+len(r.resolved)+len(r.pressed))
	out = append(out, r.tokens...)
	out = append(out, r.resolved...)
	return append(out, r.pressed...)
}

// InWindow reports whether a token at y can be matched. The window is
// asymmetric: EarlyTolerance above the hit zone, LateTolerance below it.
func (r *ReelGame) InWindow(y float64) bool {
	d := y - r.cfg.HitZoneY
	return d >= -r.cfg.EarlyTolerance && d <= r.cfg.LateTolerance
}

// Press tries to match the closest in-window token of lane. It returns
// true on a hit; a press with nothing to match is a no-op.
func (r *ReelGame) Press(lane Lane) bool {
	if r.state != ReelActive || r.preRoll > 0 {
		return false
	}

	best := -1
	bestDist := math.Inf(1)
	for i, t := range r.tokens {
		if t.Lane != lane || !r.InWindow(t.Y) {
			continue
		}
		if d := math.Abs(t.Y - r.cfg.HitZoneY); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return false
	}

	r.resolve(best, TokenHit)
	r.hits++
	if r.hits >= r.required {
		r.state = ReelSuccess
	}
	return true
}

func (r *ReelGame) resolve(i int, status TokenStatus) {
	t := r.tokens[i]
	t.Status = status
	if status == TokenHit {
		r.pressed = append(r.pressed, t)
	} else {
		r.resolved = append(r.resolved, t)
	}
	r.tokens = append(r.tokens[:i], r.tokens[i+1:]...)
}

// Update runs the countdown, spawns and moves tokens, and marks tokens
// that fell past the late tolerance as missed.
func (r *ReelGame) Update(dt float64) {
	if r.state != ReelActive {
		return
	}
	r.resolved = append(r.resolved[:0], r.pressed...)
	r.pressed = r.pressed[:0]

	if r.preRoll > 0 {
		r.preRoll -= dt
		if r.preRoll > 0 {
			return
		}
		dt = -r.preRoll
		r.preRoll = 0
	}

	r.timeLeft -= dt
	if r.timeLeft <= 0 {
		r.timeLeft = 0
		r.state = ReelFailure
		return
	}

	if r.cfg.Strategy == ReelContinuous {
		r.sinceSpawn += dt
		if r.sinceSpawn >= r.cfg.SpawnInterval {
			r.spawn(r.cfg.SpawnY)
			r.sinceSpawn = 0
		}
	}

	limit := r.cfg.HitZoneY + r.cfg.LateTolerance
	for i := 0; i < len(r.tokens); {
		r.tokens[i].Y += r.cfg.TokenSpeed * dt
		if r.tokens[i].Y <= limit {
			i++
			continue
		}
		r.resolve(i, TokenMissed)
		r.misses++
		if r.cfg.MissPenalty > 0 {
			r.timeLeft -= r.cfg.MissPenalty
		}
	}

	if r.timeLeft <= 0 {
		r.timeLeft = 0
		r.state = ReelFailure
	}
}

// Reset returns the game to inactive
func (r *ReelGame) Reset() {
	r.state = ReelInactive
	r.tokens = r.tokens[:0]
	r.resolved = nil
	r.pressed = nil
	r.hits, r.misses, r.required = 0, 0, 0
	r.timeLeft, r.preRoll = 0, 0
}
