package game

// BobberView is the render state of the bobber
type BobberView struct {
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	State     CastState `json:"state"`
	HasCaught bool      `json:"hasCaught"`
	Line      [2]Vec2   `json:"line"`
}

// HookView is the render state of an active hook round
type HookView struct {
	Marker   float64 `json:"marker"`
	Zone     Zone    `json:"zone"`
	BarWidth float64 `json:"barWidth"`
	Species  string  `json:"species"`
}

// ReelView is the render state of an active reel round
type ReelView struct {
	Tokens   []Token `json:"tokens"`
	Hits     int     `json:"hits"`
	Required int     `json:"required"`
	TimeLeft float64 `json:"timeLeft"`
	PreRoll  float64 `json:"preRoll"`
	HitZoneY float64 `json:"hitZoneY"`
	Species  string  `json:"species"`
}

// Snapshot is everything a presentation layer needs to draw one frame
type Snapshot struct {
	Phase      Phase               `json:"phase"`
	Bobber     BobberView          `json:"bobber"`
	Swimmers   []Swimmer           `json:"swimmers"`
	Score      int                 `json:"score"`
	Money      int                 `json:"money"`
	Levels     map[UpgradeKind]int `json:"levels"`
	Day        int                 `json:"day"`
	CastsInDay int                 `json:"castsInDay"`
	TimeOfDay  TimeOfDay           `json:"timeOfDay"`
	DayLabel   string              `json:"dayLabel"`
	Hook       *HookView           `json:"hook,omitempty"`
	Reel       *ReelView           `json:"reel,omitempty"`
	Creel      []CreelEntry        `json:"creel"`
}

// Snapshot captures the current session state
func (s *Session) Snapshot() Snapshot {
	from, to := s.bobber.Line()
	p := s.ledger.Progress()

	levels := make(map[UpgradeKind]int, len(UpgradeKinds))
	for _, k := range UpgradeKinds {
		levels[k] = p.Level(k)
	}

	snap := Snapshot{
		Phase: s.phase,
		Bobber: BobberView{
			X:         s.bobber.X,
			Y:         s.bobber.Y,
			State:     s.bobber.State(),
			HasCaught: s.bobber.HasCaught(),
			Line:      [2]Vec2{from, to},
		},
		Swimmers:   s.pool.Swimmers(),
		Score:      p.Score,
		Money:      p.Money,
		Levels:     levels,
		Day:        s.day.Day(),
		CastsInDay: s.day.CastsInDay(),
		TimeOfDay:  s.day.TimeOfDay(),
		DayLabel:   s.day.String(),
		Creel:      s.Creel(),
	}

	switch s.phase {
	case PhaseHooking:
		snap.Hook = &HookView{
			Marker:   s.hook.Marker(),
			Zone:     s.hook.Zone(),
			BarWidth: s.hook.BarWidth(),
			Species:  s.hook.Catch().Species.Name,
		}
	case PhaseReeling:
		snap.Reel = &ReelView{
			Tokens:   s.reel.Tokens(),
			Hits:     s.reel.Hits(),
			Required: s.reel.Required(),
			TimeLeft: s.reel.TimeLeft(),
			PreRoll:  s.reel.PreRoll(),
			HitZoneY: s.cfg.Reel.HitZoneY,
			Species:  s.reel.Catch().Species.Name,
		}
	}
	return snap
}
