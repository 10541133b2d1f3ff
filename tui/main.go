package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"tight-lines/internal/game"
)

const (
	tickRate     = 30
	messageTTL   = 4 * time.Second
	maxFrameStep = 0.1 // seconds; longer stalls are not simulated
)

// pondLayout is the pond in the same pixel space the web client uses
var pondLayout = game.Layout{
	Water:  game.Bounds{Left: 0, Right: 800, Top: 200, Bottom: 600},
	DockX:  400,
	StartY: 120,
	SandY:  580,
}

// pondSpace is everything drawn, sky included
var pondSpace = game.Bounds{Left: 0, Right: 800, Top: 0, Bottom: 600}

// Game runs one local session in the terminal
type Game struct {
	screen  tcell.Screen
	view    viewport
	cfg     game.Config
	catalog *game.Catalog
	session *game.Session
	sound   *Sound
	input   inputBuffer

	savePath  string
	message   string
	messageAt time.Time
}

// NewGame builds the session and opens the terminal
func NewGame(cfg game.Config, catalog *game.Catalog, habitat game.Habitat, seed int64, progress *game.Progress, screen tcell.Screen) (*Game, error) {
	session, err := game.NewSession(cfg, catalog, habitat, pondLayout, progress, game.NewRNG(seed))
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen:  screen,
		cfg:     cfg,
		catalog: catalog,
		session: session,
		sound:   &Sound{},
	}
	g.resize()
	g.say("Welcome to the %s. Press space to cast.", habitat)
	return g, nil
}

func (g *Game) resize() {
	w, h := g.screen.Size()
	g.view = viewport{width: w, height: h, world: pondSpace}
}

func (g *Game) say(format string, args ...any) {
	g.message = fmt.Sprintf(format, args...)
	g.messageAt = time.Now()
}

func (g *Game) title(name string) string {
	if sp, ok := g.catalog.Get(name); ok && sp.Title != "" {
		return sp.Title
	}
	return name
}

// describe turns an event into the status message, or "" when it has none
func (g *Game) describe(ev game.Event) string {
	switch ev.Kind {
	case game.EventBite:
		return fmt.Sprintf("Something bit! Hook the %s.", g.title(ev.Species))
	case game.EventHooked:
		return fmt.Sprintf("Hooked a %s. Reel it in!", g.title(ev.Species))
	case game.EventCatchSucceeded:
		if ev.Tier == game.TierTrash {
			return fmt.Sprintf("Reeled in a %s. Not much of a catch.", g.title(ev.Species))
		}
		return fmt.Sprintf("Landed a %s (+%d)", g.title(ev.Species), ev.Points)
	case game.EventCatchFailed:
		if ev.Stage == game.FailedHook {
			return fmt.Sprintf("The %s slipped the hook.", g.title(ev.Species))
		}
		return fmt.Sprintf("The line went slack. The %s got away.", g.title(ev.Species))
	case game.EventCatchStolen:
		return fmt.Sprintf("Something took your %s (-%d)!", g.title(ev.Species), ev.Points)
	case game.EventDayComplete:
		return fmt.Sprintf("Day %d is over.", ev.Day)
	case game.EventSellCompleted:
		return fmt.Sprintf("Sold %d points for $%d.", ev.Points, ev.Amount)
	case game.EventUpgradePurchased:
		return fmt.Sprintf("%s upgraded to level %d for $%d.", ev.Upgrade, ev.Level, ev.Amount)
	}
	return ""
}

func (g *Game) apply(events []game.Event) {
	for _, ev := range events {
		g.sound.Play(ev)
		if msg := g.describe(ev); msg != "" {
			g.say("%s", msg)
		}
	}
}

// marketError explains a refused market action
func marketError(err error) string {
	switch {
	case errors.Is(err, game.ErrBusy):
		return "Reel in before heading to the market."
	case errors.Is(err, game.ErrInsufficientFunds):
		return "Not enough money for that."
	case errors.Is(err, game.ErrMaxLevel):
		return "That upgrade is already maxed out."
	case errors.Is(err, game.ErrNotInMarket):
		return "Open the market first (m)."
	}
	return err.Error()
}

// handleKey applies one key press. It returns false when the game should quit.
func (g *Game) handleKey(ev *tcell.EventKey) bool {
	kc := translateKey(ev, g.session.Phase())
	switch kc.cmd {
	case cmdQuit:
		return false
	case cmdAction, cmdLane:
		g.input.add(kc)
	case cmdMarket:
		if err := g.session.EnterMarket(); err != nil {
			g.say("%s", marketError(err))
		} else {
			g.say("Welcome to the market.")
		}
	case cmdLeaveMarket:
		g.session.LeaveMarket()
		g.say("Back to the water.")
	case cmdSell:
		events, err := g.session.Sell()
		if err != nil {
			g.say("%s", marketError(err))
		} else if len(events) == 0 {
			g.say("Nothing to sell.")
		}
		g.apply(events)
		g.save()
	case cmdBuy:
		events, err := g.session.Buy(kc.upgrade)
		if err != nil {
			g.say("%s", marketError(err))
		}
		g.apply(events)
		g.save()
	}
	return true
}

func (g *Game) save() {
	if err := saveProgress(g.savePath, g.session.Progress()); err != nil {
		g.say("Could not save progress: %v", err)
	}
}

// tick advances the session by dt seconds
func (g *Game) tick(dt float64) {
	g.apply(g.session.Update(min(dt, maxFrameStep), g.input.take()))
	if g.message != "" && time.Since(g.messageAt) > messageTTL {
		g.message = ""
	}
}

func (g *Game) frame() frame {
	snap := g.session.Snapshot()
	ledger := g.session.Ledger()

	rows := make([]marketRow, 0, len(game.UpgradeKinds))
	for i, kind := range game.UpgradeKinds {
		cost, ok := ledger.NextCost(kind)
		rows = append(rows, marketRow{
			key:   rune('1' + i),
			name:  g.cfg.Economy.Upgrades[kind].Name,
			level: snap.Levels[kind],
			cost:  cost,
			maxed: !ok,
		})
	}

	return frame{
		snap:    snap,
		layout:  g.session.Layout(),
		reelTop: g.cfg.Reel.SpawnY,
		market:  rows,
		sellFor: int(float64(snap.Score) * g.cfg.Economy.ExchangeRate),
		message: g.message,
		titles:  g.title,
	}
}

func (g *Game) run() {
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !g.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				g.resize()
				g.screen.Sync()
			}

		case now := <-ticker.C:
			g.tick(now.Sub(last).Seconds())
			last = now
			draw(g.screen, g.view, g.frame())
		}
	}
}

func (g *Game) cleanup() {
	g.save()
	g.sound.Close()
	g.screen.Fini()
}

func main() {
	habitat := flag.String("habitat", string(game.Freshwater), "water type: freshwater or saltwater")
	seed := flag.Int64("seed", 0, "random seed, 0 uses the clock")
	mute := flag.Bool("mute", false, "disable sound")
	savePath := flag.String("save", "", "file to keep progress in between runs")
	flag.Parse()

	cfg := game.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	catalog, err := game.DefaultCatalog()
	if err != nil {
		log.Fatalf("Failed to load species catalog: %v", err)
	}
	progress, err := loadProgress(*savePath)
	if err != nil {
		log.Fatalf("Failed to load progress: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	g, err := NewGame(cfg, catalog, game.Habitat(*habitat), *seed, progress, screen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	g.savePath = *savePath

	sound, err := NewSound(*mute)
	if err != nil {
		// Non-fatal, the game runs silent
		log.Printf("Audio initialization failed: %v", err)
	}
	g.sound = sound

	g.run()
	g.cleanup()
}
