package game

import "testing"

func newTestHook() *HookGame {
	return NewHookGame(HookConfig{BarWidth: 200, ZoneWidth: 40, BaseSpeed: 120, SpeedMultiplier: 1})
}

func TestScenarioCInclusiveZone(t *testing.T) {
	tests := []struct {
		marker float64
		want   bool
	}{
		{119, true},
		{121, false},
		{80, true},
		{120, true},
		{79.9, false},
		{100, true},
	}
	for _, tc := range tests {
		h := newTestHook()
		h.Start(CatchSnapshot{Species: testSpecies("perch", TierCommon, 2, 5)}, 40)
		h.marker = tc.marker
		got, ok := h.Press()
		if !ok {
			t.Fatalf("marker %v: press not accepted", tc.marker)
		}
		if got != tc.want {
			t.Fatalf("marker %v: success=%v want %v (zone %+v)", tc.marker, got, tc.want, h.Zone())
		}
	}
}

func TestHookSingleAction(t *testing.T) {
	h := newTestHook()
	if _, ok := h.Press(); ok {
		t.Fatalf("press accepted while inactive")
	}
	h.Start(CatchSnapshot{Species: testSpecies("perch", TierCommon, 2, 5)}, 40)
	h.Press()
	if h.State() != HookResolved {
		t.Fatalf("state=%s want resolved", h.State())
	}
	if _, ok := h.Press(); ok {
		t.Fatalf("second press accepted")
	}
	marker := h.Marker()
	h.Update(1)
	if h.Marker() != marker {
		t.Fatalf("marker moved after resolution")
	}
}

func TestHookMarkerBounces(t *testing.T) {
	h := newTestHook()
	h.Start(CatchSnapshot{Species: testSpecies("perch", TierCommon, 2, 5)}, 40)
	if h.Marker() != 0 || h.Speed() != 120 {
		t.Fatalf("marker=%v speed=%v", h.Marker(), h.Speed())
	}

	h.Update(2) // 240px: bounce off the right edge at 200
	if !approx(h.Marker(), 160) || h.direction != -1 {
		t.Fatalf("after 2s marker=%v dir=%v want 160,-1", h.Marker(), h.direction)
	}
	h.Update(1.5) // 180px back: 160 -> 0 -> 20
	if !approx(h.Marker(), 20) || h.direction != 1 {
		t.Fatalf("after 3.5s marker=%v dir=%v want 20,+1", h.Marker(), h.direction)
	}

	for i := 0; i < 1000; i++ {
		h.Update(0.0173)
		if h.Marker() < 0 || h.Marker() > h.BarWidth() {
			t.Fatalf("marker %v left the bar", h.Marker())
		}
	}
}

func TestHookSpeedScalesWithSwimmer(t *testing.T) {
	h := newTestHook()
	fast := testSpecies("gar", TierHazard, 20, 10)
	fast.Speed = 210
	h.Start(CatchSnapshot{Species: fast}, 40)
	if h.Speed() != 330 {
		t.Fatalf("speed=%v want 330", h.Speed())
	}
}

func TestHookZoneClampedToBar(t *testing.T) {
	h := newTestHook()
	h.Start(CatchSnapshot{Species: testSpecies("perch", TierCommon, 2, 5)}, 500)
	if z := h.Zone(); z.Left != 0 || z.Right != 200 {
		t.Fatalf("zone %+v want [0,200]", z)
	}
}
