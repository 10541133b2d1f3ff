package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// ErrNotInMarket is returned by Sell and Buy outside the market phase
var ErrNotInMarket = errors.New("not-in-market")

// ErrBusy is returned by EnterMarket while a cast or mini-game is running
var ErrBusy = errors.New("busy")

// Phase is the state of the fishing loop
type Phase int

const (
	PhaseFishing Phase = iota
	PhaseHooking
	PhaseReeling
	PhaseMarket
)

func (p Phase) String() string {
	switch p {
	case PhaseHooking:
		return "hooking"
	case PhaseReeling:
		return "reeling"
	case PhaseMarket:
		return "market"
	default:
		return "fishing"
	}
}

// Input is the pre-debounced player input for one tick
type Input struct {
	Action bool   // cast or hook
	Lanes  []Lane // reel presses, in order
}

// Layout places the dock and the water. It is owned by the host and may
// change on resize.
type Layout struct {
	Water  Bounds
	DockX  float64
	StartY float64
	SandY  float64
}

// Session composes the catch pipeline for one player: cast, detect, hook,
// reel, and the market between days.
type Session struct {
	cfg     Config
	habitat Habitat
	layout  Layout

	bobber   *Bobber
	pool     *SwimmerPool
	table    *EncounterTable
	detector *CatchDetector
	hook     *HookGame
	reel     *ReelGame
	day      *DayCycle
	ledger   *Ledger

	phase Phase
	creel []CreelEntry
}

// NewSession builds a session and stocks the water. progress is shared with
// the caller, who persists it.
func NewSession(cfg Config, catalog *Catalog, habitat Habitat, layout Layout, progress *Progress, rng *rand.Rand) (*Session, error) {
	if !habitat.Valid() {
		return nil, fmt.Errorf("unknown habitat %q", habitat)
	}
	if layout.SandY <= layout.StartY {
		return nil, fmt.Errorf("sand line %v must be below dock %v", layout.SandY, layout.StartY)
	}
	if progress == nil {
		progress = NewProgress()
	}

	s := &Session{
		cfg:      cfg,
		habitat:  habitat,
		layout:   layout,
		bobber:   NewBobber(cfg.Bobber, layout.DockX, layout.StartY, layout.SandY),
		table:    NewEncounterTable(catalog, cfg.Encounter, cfg.Economy.Upgrades[UpgradeBait], rng),
		detector: NewCatchDetector(cfg.Fish),
		hook:     NewHookGame(cfg.Hook),
		reel:     NewReelGame(cfg.Reel, rng),
		day:      NewDayCycle(cfg.Day),
		ledger:   NewLedger(cfg.Economy, progress),
	}
	s.pool = NewSwimmerPool(cfg.Pool, cfg.Fish, s.table, habitat, layout.Water, rng)
	s.pool.SetModifiers(s.modifiers())
	s.pool.SpawnInitial(cfg.Pool.InitialMin, cfg.Pool.InitialMax)
	return s, nil
}

func (s *Session) modifiers() Modifiers {
	return Modifiers{
		BaitLevel: s.ledger.Progress().Level(UpgradeBait),
		TimeOfDay: s.day.TimeOfDay(),
	}
}

// Phase returns the current loop phase
func (s *Session) Phase() Phase { return s.phase }

// Habitat returns the session's water type
func (s *Session) Habitat() Habitat { return s.habitat }

// Progress returns the player state the session writes to
func (s *Session) Progress() *Progress { return s.ledger.Progress() }

// Ledger exposes the market ledger
func (s *Session) Ledger() *Ledger { return s.ledger }

// Day exposes the cast counter
func (s *Session) Day() *DayCycle { return s.day }

// Bobber exposes the cast controller
func (s *Session) Bobber() *Bobber { return s.bobber }

// Pool exposes the live swimmers
func (s *Session) Pool() *SwimmerPool { return s.pool }

// Creel returns the landed catches not yet sold
func (s *Session) Creel() []CreelEntry {
	out := make([]CreelEntry, len(s.creel))
	copy(out, s.creel)
	return out
}

// SetWater applies a new water interior, e.g. after a resize
func (s *Session) SetWater(water Bounds) {
	s.layout.Water = water
	s.pool.SetWater(water)
}

// Layout returns the current dock and water placement
func (s *Session) Layout() Layout { return s.layout }

// HookZoneWidth returns the success zone width for the current rod level
func (s *Session) HookZoneWidth() float64 {
	return s.cfg.Hook.ZoneWidth * (0.5 + s.ledger.Value(UpgradeRod))
}

// ReelDuration returns the reel countdown for the current line level
func (s *Session) ReelDuration() float64 {
	return s.ledger.Value(UpgradeLine)
}

// Update advances the session by dt seconds. Input is applied before any
// position moves. While a mini-game runs the bobber and swimmers are frozen.
func (s *Session) Update(dt float64, in Input) []Event {
	var events []Event
	switch s.phase {
	case PhaseFishing:
		events = s.updateFishing(dt, in, events)
	case PhaseHooking:
		events = s.updateHooking(dt, in, events)
	case PhaseReeling:
		events = s.updateReeling(dt, in, events)
	}
	return events
}

func (s *Session) updateFishing(dt float64, in Input, events []Event) []Event {
	if in.Action && s.bobber.Cast() {
		events = append(events, Event{Kind: EventCast, Day: s.day.Day(), TimeOfDay: s.day.TimeOfDay()})
		if done, day := s.day.RecordCast(); done {
			events = append(events, Event{Kind: EventDayComplete, Day: day})
		}
		s.pool.SetModifiers(s.modifiers())
	}

	if s.bobber.Update(dt) {
		events = append(events, Event{Kind: EventBobberReturned})
	}
	s.pool.Update(dt)

	if snap, ok := s.detector.Check(s.bobber, s.pool); ok {
		s.hook.Start(snap, s.HookZoneWidth())
		s.phase = PhaseHooking
		events = append(events, Event{
			Kind:    EventBite,
			Species: snap.Species.Name,
			Tier:    snap.Species.Tier,
		})
	}
	return events
}

func (s *Session) updateHooking(dt float64, in Input, events []Event) []Event {
	if !in.Action {
		s.hook.Update(dt)
		return events
	}

	success, _ := s.hook.Press()
	snap := s.hook.Catch()
	s.hook.Reset()
	if !success {
		return s.finishRound(events, Event{
			Kind:    EventCatchFailed,
			Species: snap.Species.Name,
			Tier:    snap.Species.Tier,
			Stage:   FailedHook,
		})
	}

	s.reel.Start(snap, s.ReelDuration())
	s.phase = PhaseReeling
	return append(events, Event{Kind: EventHooked, Species: snap.Species.Name, Tier: snap.Species.Tier})
}

func (s *Session) updateReeling(dt float64, in Input, events []Event) []Event {
	for _, lane := range in.Lanes {
		if s.reel.Done() {
			break
		}
		if s.reel.Press(lane) {
			events = append(events, Event{Kind: EventReelHit, Lane: lane.String()})
		}
	}

	if !s.reel.Done() {
		missed := s.reel.Misses()
		s.reel.Update(dt)
		for i := missed; i < s.reel.Misses(); i++ {
			events = append(events, Event{Kind: EventReelMiss})
		}
	}
	if !s.reel.Done() {
		return events
	}

	snap := s.reel.Catch()
	succeeded := s.reel.State() == ReelSuccess
	s.reel.Reset()
	if !succeeded {
		return s.finishRound(events, Event{
			Kind:    EventCatchFailed,
			Species: snap.Species.Name,
			Tier:    snap.Species.Tier,
			Stage:   FailedReel,
		})
	}
	return s.land(snap, events)
}

// land records a reeled-in catch. A hazard first takes the previous catch
// out of the creel along with its points.
func (s *Session) land(snap CatchSnapshot, events []Event) []Event {
	p := s.ledger.Progress()
	if snap.Species.IsHazard() && len(s.creel) > 0 {
		stolen := s.creel[len(s.creel)-1]
		s.creel = s.creel[:len(s.creel)-1]
		p.Score = max(p.Score-stolen.Points, 0)
		events = append(events, Event{
			Kind:    EventCatchStolen,
			Species: stolen.Species,
			Tier:    stolen.Tier,
			Points:  stolen.Points,
			CreelID: stolen.ID.String(),
		})
	}

	entry := CreelEntry{
		ID:        uuid.New(),
		Species:   snap.Species.Name,
		Title:     snap.Species.Title,
		Tier:      snap.Species.Tier,
		Points:    snap.Species.Points,
		Day:       s.day.Day(),
		TimeOfDay: s.day.TimeOfDay(),
	}
	s.creel = append(s.creel, entry)
	p.Score += entry.Points

	return s.finishRound(events, Event{
		Kind:      EventCatchSucceeded,
		Species:   entry.Species,
		Tier:      entry.Tier,
		Points:    entry.Points,
		CreelID:   entry.ID.String(),
		Day:       entry.Day,
		TimeOfDay: entry.TimeOfDay,
	})
}

func (s *Session) finishRound(events []Event, result Event) []Event {
	s.bobber.Resume()
	s.phase = PhaseFishing
	return append(events, result)
}

// EnterMarket switches to the market. It is refused while the bobber is out
// or a mini-game runs.
func (s *Session) EnterMarket() error {
	if s.phase == PhaseMarket {
		return nil
	}
	if s.phase != PhaseFishing || s.bobber.InMotion() {
		return ErrBusy
	}
	s.phase = PhaseMarket
	return nil
}

// LeaveMarket returns to fishing
func (s *Session) LeaveMarket() {
	if s.phase == PhaseMarket {
		s.phase = PhaseFishing
	}
}

// Sell converts the whole score into money and empties the creel. With a
// zero score it returns no events.
func (s *Session) Sell() ([]Event, error) {
	if s.phase != PhaseMarket {
		return nil, ErrNotInMarket
	}
	tx, ok := s.ledger.SellAll()
	if !ok {
		return nil, nil
	}
	s.creel = s.creel[:0]
	return []Event{{Kind: EventSellCompleted, Amount: tx.Amount, Points: tx.Points}}, nil
}

// Buy purchases the next level of an upgrade
func (s *Session) Buy(kind UpgradeKind) ([]Event, error) {
	if s.phase != PhaseMarket {
		return nil, ErrNotInMarket
	}
	tx, err := s.ledger.Purchase(kind)
	if err != nil {
		return nil, err
	}
	s.pool.SetModifiers(s.modifiers())
	return []Event{{Kind: EventUpgradePurchased, Upgrade: tx.Upgrade, Level: tx.Level, Amount: tx.Amount}}, nil
}
