package game

import "testing"

func testReelConfig() ReelConfig {
	return DefaultConfig().Reel
}

// matchAll presses lanes until no token is left in the window
func matchAll(r *ReelGame) {
	for !r.Done() {
		pressed := false
		for _, tok := range r.tokens {
			if r.InWindow(tok.Y) {
				r.Press(tok.Lane)
				pressed = true
				break
			}
		}
		if !pressed {
			return
		}
	}
}

func TestReelSucceedsAfterRequiredHits(t *testing.T) {
	for _, strategy := range []ReelStrategy{ReelContinuous, ReelFixed} {
		cfg := testReelConfig()
		cfg.Strategy = strategy
		r := NewReelGame(cfg, NewRNG(31))
		r.Start(CatchSnapshot{Species: testSpecies("bass", TierCommon, 5, 35)}, 60)

		for i := 0; i < 10000 && !r.Done(); i++ {
			matchAll(r)
			r.Update(1.0 / 60)
		}
		if r.State() != ReelSuccess {
			t.Fatalf("strategy %d: state=%s hits=%d", strategy, r.State(), r.Hits())
		}
		if r.Hits() != 5 {
			t.Fatalf("strategy %d: hits=%d want 5", strategy, r.Hits())
		}
	}
}

func TestScenarioDFailureAtZero(t *testing.T) {
	r := NewReelGame(testReelConfig(), NewRNG(32))
	r.Start(CatchSnapshot{Species: testSpecies("bass", TierCommon, 5, 35)}, 7)
	r.hits = 4

	r.Update(6.9)
	if r.State() != ReelActive {
		t.Fatalf("state=%s before timeout", r.State())
	}
	r.Update(0.2)
	if r.State() != ReelFailure {
		t.Fatalf("state=%s want failure", r.State())
	}
	if r.TimeLeft() != 0 {
		t.Fatalf("TimeLeft=%v want 0", r.TimeLeft())
	}
	// Terminal: more presses or ticks do nothing
	for _, lane := range Lanes {
		if r.Press(lane) {
			t.Fatalf("press accepted after failure")
		}
	}
	r.Update(1)
	if r.State() != ReelFailure || r.Hits() != 4 {
		t.Fatalf("terminal state changed: %s hits=%d", r.State(), r.Hits())
	}
}

func TestReelWindowIsAsymmetric(t *testing.T) {
	r := NewReelGame(testReelConfig(), NewRNG(33))
	tests := []struct {
		y    float64
		want bool
	}{
		{400, true},
		{349, true},
		{348.9, false},
		{426, true},
		{426.1, false},
	}
	for _, tc := range tests {
		if got := r.InWindow(tc.y); got != tc.want {
			t.Fatalf("InWindow(%v)=%v want %v", tc.y, got, tc.want)
		}
	}
}

func TestReelPressMatchesClosestTokenOfLane(t *testing.T) {
	cfg := testReelConfig()
	cfg.Strategy = ReelFixed
	r := NewReelGame(cfg, NewRNG(34))
	r.Start(CatchSnapshot{Species: testSpecies("bass", TierCommon, 3, 35)}, 7)
	r.tokens = []Token{
		{ID: 1, Lane: LaneUp, Y: 360},
		{ID: 2, Lane: LaneUp, Y: 405},
		{ID: 3, Lane: LaneLeft, Y: 400},
		{ID: 4, Lane: LaneUp, Y: 100},
	}

	if r.Press(LaneDown) {
		t.Fatalf("matched a lane with no token")
	}
	if !r.Press(LaneUp) {
		t.Fatalf("expected a hit")
	}
	ids := map[int]bool{}
	for _, tok := range r.tokens {
		ids[tok.ID] = true
	}
	if ids[2] || !ids[1] || !ids[3] || !ids[4] {
		t.Fatalf("wrong token removed, remaining %+v", r.tokens)
	}
	if !r.Press(LaneUp) {
		t.Fatalf("expected second up hit on token 1")
	}
	if r.Press(LaneUp) {
		t.Fatalf("token 4 is outside the window")
	}
	if r.Hits() != 2 || r.State() != ReelActive {
		t.Fatalf("hits=%d state=%s", r.Hits(), r.State())
	}
}

func TestReelMissedTokens(t *testing.T) {
	cfg := testReelConfig()
	cfg.Strategy = ReelFixed
	cfg.MissPenalty = 1
	r := NewReelGame(cfg, NewRNG(35))
	r.Start(CatchSnapshot{Species: testSpecies("bass", TierCommon, 1, 35)}, 10)
	r.tokens = []Token{{ID: 1, Lane: LaneDown, Y: 420}}

	r.Update(0.1) // 420 + 19.2 is past the late tolerance
	if r.Misses() != 1 || len(r.tokens) != 0 {
		t.Fatalf("misses=%d tokens=%d", r.Misses(), len(r.tokens))
	}
	if !approx(r.TimeLeft(), 8.9) {
		t.Fatalf("TimeLeft=%v want 8.9 after penalty", r.TimeLeft())
	}
	var missed bool
	for _, tok := range r.Tokens() {
		if tok.ID == 1 && tok.Status == TokenMissed {
			missed = true
		}
	}
	if !missed {
		t.Fatalf("missed token not reported for feedback")
	}
	r.Update(0.1)
	if len(r.Tokens()) != 0 {
		t.Fatalf("feedback should clear after one tick, got %+v", r.Tokens())
	}
}

func TestReelFixedGeneratesExactlyRequired(t *testing.T) {
	cfg := testReelConfig()
	cfg.Strategy = ReelFixed
	r := NewReelGame(cfg, NewRNG(36))
	r.Start(CatchSnapshot{Species: testSpecies("catfish", TierCommon, 6, 40)}, 7)
	if len(r.tokens) != 6 {
		t.Fatalf("tokens=%d want 6", len(r.tokens))
	}
	for i, tok := range r.tokens {
		want := cfg.SpawnY - float64(i)*cfg.TokenSpacing
		if tok.Y != want {
			t.Fatalf("token %d at %v want %v", i, tok.Y, want)
		}
	}
	r.Update(1)
	if len(r.tokens) != 6 {
		t.Fatalf("fixed strategy spawned more tokens")
	}
}

func TestReelPreRollHoldsTokens(t *testing.T) {
	cfg := testReelConfig()
	cfg.PreRoll = 3
	r := NewReelGame(cfg, NewRNG(37))
	r.Start(CatchSnapshot{Species: testSpecies("bass", TierCommon, 5, 35)}, 7)
	r.Update(2)
	if r.TimeLeft() != 7 || r.tokens[0].Y != cfg.SpawnY {
		t.Fatalf("round advanced during pre-roll: time=%v y=%v", r.TimeLeft(), r.tokens[0].Y)
	}
	r.Update(1.5)
	if !approx(r.TimeLeft(), 6.5) || r.PreRoll() != 0 {
		t.Fatalf("time=%v preRoll=%v after pre-roll", r.TimeLeft(), r.PreRoll())
	}
}

func TestParseLane(t *testing.T) {
	tests := map[string]Lane{"left": LaneLeft, "W": LaneUp, " s ": LaneDown, "right": LaneRight}
	for in, want := range tests {
		got, err := ParseLane(in)
		if err != nil || got != want {
			t.Fatalf("ParseLane(%q)=%v,%v want %v", in, got, err, want)
		}
	}
	if _, err := ParseLane("north"); err == nil {
		t.Fatalf("expected error for unknown lane")
	}
}
