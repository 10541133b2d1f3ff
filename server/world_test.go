package main

import (
	"encoding/json"
	"errors"
	"testing"

	"tight-lines/internal/game"
)

func newTestClient(w *World, id string) *Client {
	return &Client{ID: id, Send: make(chan []byte, WriteChannelSize), World: w}
}

func TestJoinRestoresProgressByName(t *testing.T) {
	w := newTestWorld(t)
	saved := game.NewProgress()
	saved.Money = 90
	saved.Levels[game.UpgradeLine] = 2
	w.Progress.Save("Ada", saved)

	p, err := w.Join("c1", "ada", game.Freshwater, nil)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	progress := p.Session.Progress()
	if progress.Money != 90 || progress.Level(game.UpgradeLine) != 2 {
		t.Fatalf("progress not restored: %+v", progress)
	}
	if p.Session.ReelDuration() != 11 {
		t.Fatalf("reel duration=%v want 11", p.Session.ReelDuration())
	}
}

func TestJoinRejectsUnknownHabitat(t *testing.T) {
	w := newTestWorld(t)
	if _, err := w.Join("c1", "ada", game.Habitat("lava"), nil); err == nil {
		t.Fatalf("expected error")
	}
	if len(w.Players) != 0 {
		t.Fatalf("player added despite error")
	}
}

func TestUpdateAppliesQueuedInput(t *testing.T) {
	w := newTestWorld(t)
	client := newTestClient(w, "c1")
	p, err := w.Join("c1", "ada", game.Saltwater, client)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}

	w.InputQueue <- PlayerInput{PlayerID: "c1", Input: game.Input{Action: true}, Seq: 4}
	w.InputQueue <- PlayerInput{PlayerID: "ghost", Input: game.Input{Action: true}}
	w.Update(1.0 / TickRate)

	if !p.Session.Bobber().InMotion() {
		t.Fatalf("cast not applied")
	}
	if p.LastSeq != 4 {
		t.Fatalf("LastSeq=%d", p.LastSeq)
	}
	if p.Pending.Action {
		t.Fatalf("pending input not cleared")
	}

	var sawCast bool
	for len(client.Send) > 0 {
		var msg struct {
			Type    string     `json:"type"`
			Payload game.Event `json:"payload"`
		}
		if err := json.Unmarshal(<-client.Send, &msg); err != nil {
			t.Fatalf("event is not JSON: %v", err)
		}
		if msg.Type == "event" && msg.Payload.Kind == game.EventCast {
			sawCast = true
		}
	}
	if !sawCast {
		t.Fatalf("cast event not delivered")
	}
}

func TestActMarketRules(t *testing.T) {
	w := newTestWorld(t)
	p, err := w.Join("c1", "ada", game.Freshwater, nil)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	p.Session.Progress().Score = 400

	sell := func(s *game.Session) ([]game.Event, error) { return s.Sell() }
	if err := w.Act("c1", sell); !errors.Is(err, game.ErrNotInMarket) {
		t.Fatalf("err=%v want not-in-market", err)
	}
	if err := w.Act("nobody", sell); !errors.Is(err, ErrUnknownPlayer) {
		t.Fatalf("err=%v want unknown player", err)
	}

	open := func(s *game.Session) ([]game.Event, error) { return nil, s.EnterMarket() }
	if err := w.Act("c1", open); err != nil {
		t.Fatalf("open market: %v", err)
	}
	if err := w.Act("c1", sell); err != nil {
		t.Fatalf("sell: %v", err)
	}

	saved, ok := w.Progress.Get("ada")
	if !ok || saved[game.KeyMoney] != 20 || saved[game.KeyScore] != 0 {
		t.Fatalf("progress not saved after sale: %v", saved)
	}
}

func TestDisconnectSavesProgress(t *testing.T) {
	w := newTestWorld(t)
	client := newTestClient(w, "c1")
	p, err := w.Join("c1", "Bo", game.Freshwater, client)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	client.Player = p
	p.Session.Progress().Score = 33

	w.Disconnect(client)
	if len(w.Players) != 0 {
		t.Fatalf("player still in world")
	}
	saved, ok := w.Progress.Get("bo")
	if !ok || saved[game.KeyScore] != 33 {
		t.Fatalf("saved=%v", saved)
	}
	if _, open := <-client.Send; open {
		t.Fatalf("send channel left open")
	}
	// A second disconnect must not panic on the closed channel
	w.Disconnect(client)
}

func TestLeaderboardOrder(t *testing.T) {
	w := newTestWorld(t)
	for _, tc := range []struct {
		id, name     string
		money, score int
	}{
		{"1", "cy", 10, 0},
		{"2", "al", 50, 5},
		{"3", "bo", 50, 9},
	} {
		p, err := w.Join(tc.id, tc.name, game.Freshwater, nil)
		if err != nil {
			t.Fatalf("Join: %v", err)
		}
		p.Session.Progress().Money = tc.money
		p.Session.Progress().Score = tc.score
	}

	got := w.GetLeaderboard()
	want := []string{"bo", "al", "cy"}
	if len(got) != len(want) {
		t.Fatalf("leaderboard=%+v", got)
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d is %s want %s", i, got[i].Name, name)
		}
	}
}
