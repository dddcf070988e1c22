// Package sound plays short tones for game events through the system speaker.
package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq float64
	dur  time.Duration
}

var (
	eatNotes      = []note{{880, 50 * time.Millisecond}}
	crashNotes    = []note{{220, 120 * time.Millisecond}, {165, 180 * time.Millisecond}}
	completeNotes = []note{{660, 80 * time.Millisecond}, {880, 80 * time.Millisecond}, {1320, 160 * time.Millisecond}}
)

// Player implements runner.Sound on top of the beep speaker.
type Player struct {
	rate beep.SampleRate
}

// NewPlayer checks the event melodies and opens the speaker. Only one Player
// may exist at a time.
func NewPlayer() (*Player, error) {
	if err := checkMelodies(sampleRate, eatNotes, crashNotes, completeNotes); err != nil {
		return nil, err
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Player{rate: sampleRate}, nil
}

func (p *Player) Eat()      { p.play(eatNotes) }
func (p *Player) Crash()    { p.play(crashNotes) }
func (p *Player) Complete() { p.play(completeNotes) }

func (p *Player) Close() error {
	speaker.Close()
	return nil
}

// play builds a fresh streamer per call since streamers are consumed by
// playback. The notes were checked by NewPlayer, so melody cannot fail here.
func (p *Player) play(notes []note) {
	s, err := melody(p.rate, notes)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// checkMelodies reports the first melody that cannot be played at rate.
func checkMelodies(rate beep.SampleRate, melodies ...[]note) error {
	for _, notes := range melodies {
		if _, err := melody(rate, notes); err != nil {
			return err
		}
	}
	return nil
}

// melody chains sine tones into one streamer.
func melody(rate beep.SampleRate, notes []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("sine tone %.0fHz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(rate.N(n.dur), sine))
	}
	return beep.Seq(parts...), nil
}
