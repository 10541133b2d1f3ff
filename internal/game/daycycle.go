package game

import "fmt"

// TimeOfDay is the band of the day a cast falls into
type TimeOfDay string

const (
	Morning   TimeOfDay = "Morning"
	Afternoon TimeOfDay = "Afternoon"
	Evening   TimeOfDay = "Evening"
	Night     TimeOfDay = "Night"
)

// DeriveTimeOfDay maps a casts-in-day count onto the configured bands. The
// count is reduced modulo CastsPerDay first, so any total works.
func DeriveTimeOfDay(cfg DayConfig, castsInDay int) TimeOfDay {
	n := castsInDay % cfg.CastsPerDay
	if n < 0 {
		n += cfg.CastsPerDay
	}
	for _, b := range cfg.Bands {
		if n < b.Until {
			return b.Time
		}
	}
	return cfg.Bands[len(cfg.Bands)-1].Time
}

// DayCycle counts successful casts and derives the day and time of day
type DayCycle struct {
	cfg   DayConfig
	total int
}

// NewDayCycle creates a tracker at day 1, zero casts
func NewDayCycle(cfg DayConfig) *DayCycle {
	return &DayCycle{cfg: cfg}
}

// RestoreDayCycle creates a tracker that already counted total casts
func RestoreDayCycle(cfg DayConfig, total int) *DayCycle {
	return &DayCycle{cfg: cfg, total: max(total, 0)}
}

// RecordCast counts one cast. When the cast completes a day it returns true
// along with the number of the day that just ended.
func (d *DayCycle) RecordCast() (dayComplete bool, completedDay int) {
	d.total++
	if d.CastsInDay() == 0 {
		return true, d.total / d.cfg.CastsPerDay
	}
	return false, 0
}

// Total returns the monotonic cast count
func (d *DayCycle) Total() int { return d.total }

// Day returns the current 1-based day number
func (d *DayCycle) Day() int { return d.total/d.cfg.CastsPerDay + 1 }

// CastsInDay returns the casts made since the current day started
func (d *DayCycle) CastsInDay() int { return d.total % d.cfg.CastsPerDay }

// TimeOfDay returns the current band
func (d *DayCycle) TimeOfDay() TimeOfDay { return DeriveTimeOfDay(d.cfg, d.CastsInDay()) }

// String formats the cycle for display, e.g. "Day 3 - Afternoon"
func (d *DayCycle) String() string {
	return fmt.Sprintf("Day %d - %s", d.Day(), d.TimeOfDay())
}
