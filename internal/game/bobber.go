package game

// CastState is the state of the bobber cast machine
type CastState int

const (
	CastIdle CastState = iota
	CastCasting
	CastReturning
)

func (s CastState) String() string {
	switch s {
	case CastCasting:
		return "casting"
	case CastReturning:
		return "returning"
	default:
		return "idle"
	}
}

// lineLength is how far above the bobber the drawn line starts
const lineLength = 20

// Bobber is the cast controller: it drops from the dock to the sand and
// reels back up at a fixed speed, at most one catch per cast.
type Bobber struct {
	X      float64
	Y      float64
	StartY float64
	SandY  float64
	Speed  float64
	Radius float64

	state     CastState
	hasCaught bool
}

// NewBobber creates an idle bobber resting at (x, startY)
func NewBobber(cfg BobberConfig, x, startY, sandY float64) *Bobber {
	return &Bobber{
		X:      x,
		Y:      startY,
		StartY: startY,
		SandY:  sandY,
		Speed:  cfg.Speed,
		Radius: cfg.Radius,
	}
}

// State returns the current cast state
func (b *Bobber) State() CastState { return b.state }

// IsCasting reports whether the bobber is dropping
func (b *Bobber) IsCasting() bool { return b.state == CastCasting }

// IsReturning reports whether the bobber is reeling back up
func (b *Bobber) IsReturning() bool { return b.state == CastReturning }

// HasCaught reports whether this cast already produced a catch
func (b *Bobber) HasCaught() bool { return b.hasCaught }

// InMotion reports whether the bobber is casting or returning
func (b *Bobber) InMotion() bool { return b.state != CastIdle }

// Cast starts a new cast. It returns false when a cast is already running.
func (b *Bobber) Cast() bool {
	if b.state != CastIdle {
		return false
	}
	b.state = CastCasting
	b.hasCaught = false
	return true
}

// Latch marks the current cast as having caught something
func (b *Bobber) Latch() {
	b.hasCaught = true
}

// Resume sends the bobber back up after a mini-game resolved
func (b *Bobber) Resume() {
	if b.state == CastIdle && b.Y <= b.StartY {
		return
	}
	b.state = CastReturning
}

// Update advances the bobber by dt seconds. It returns true on the tick the
// bobber comes back to rest.
func (b *Bobber) Update(dt float64) bool {
	switch b.state {
	case CastCasting:
		b.Y += b.Speed * dt
		if b.Y >= b.SandY {
			b.Y = b.SandY
			b.state = CastReturning
		}
	case CastReturning:
		b.Y -= b.Speed * dt
		if b.Y <= b.StartY {
			b.Y = b.StartY
			b.state = CastIdle
			b.hasCaught = false
			return true
		}
	}
	return false
}

// Bounds returns the bobber hit square
func (b *Bobber) Bounds() Rect {
	return Rect{
		X:      b.X - b.Radius,
		Y:      b.Y - b.Radius,
		Width:  b.Radius * 2,
		Height: b.Radius * 2,
	}
}

// Line returns the endpoints of the fishing line drawn above the bobber
func (b *Bobber) Line() (Vec2, Vec2) {
	return Vec2{X: b.X, Y: b.Y - lineLength}, Vec2{X: b.X, Y: b.Y}
}
