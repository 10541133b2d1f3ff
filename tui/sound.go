package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"tight-lines/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// tone is one beep in a cue
type tone struct {
	freq     float64
	duration time.Duration
}

// cues maps game events onto short tone sequences
var cues = map[game.EventKind][]tone{
	game.EventCast:           {{440, 30 * time.Millisecond}},
	game.EventBite:           {{660, 60 * time.Millisecond}, {990, 60 * time.Millisecond}},
	game.EventHooked:         {{880, 80 * time.Millisecond}},
	game.EventReelHit:        {{880, 50 * time.Millisecond}},
	game.EventReelMiss:       {{220, 120 * time.Millisecond}},
	game.EventCatchSucceeded: {{660, 80 * time.Millisecond}, {880, 80 * time.Millisecond}, {1320, 120 * time.Millisecond}},
	game.EventCatchFailed:    {{330, 100 * time.Millisecond}, {165, 200 * time.Millisecond}},
	game.EventCatchStolen:    {{200, 250 * time.Millisecond}},
	game.EventDayComplete:    {{523, 100 * time.Millisecond}, {659, 100 * time.Millisecond}, {784, 160 * time.Millisecond}},
	game.EventSellCompleted:  {{1047, 60 * time.Millisecond}, {1319, 90 * time.Millisecond}},
}

// Sound plays event cues through the speaker. A Sound that failed to
// initialise stays silent.
type Sound struct {
	enabled bool
}

// NewSound opens the speaker unless muted
func NewSound(muted bool) (*Sound, error) {
	if muted {
		return &Sound{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Sound{}, err
	}
	return &Sound{enabled: true}, nil
}

// Play queues the cue for an event, if it has one
func (s *Sound) Play(ev game.Event) {
	if !s.enabled {
		return
	}
	seq := cueStreamer(cues[ev.Kind])
	if seq == nil {
		return
	}
	speaker.Play(seq)
}

func cueStreamer(tones []tone) beep.Streamer {
	if len(tones) == 0 {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(sampleRate.N(t.duration), sine))
	}
	if len(parts) == 0 {
		return nil
	}
	return beep.Seq(parts...)
}

// Close releases the speaker
func (s *Sound) Close() {
	if s.enabled {
		speaker.Close()
	}
}
