// Package audio synthesizes and plays the game's sound effects and music.
// Everything degrades to silence when no audio device is available.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const sampleRate = beep.SampleRate(44100)

// placeholderFormat is 16-bit mono, the format of the generated WAV files.
var placeholderFormat = beep.Format{SampleRate: sampleRate, NumChannels: 1, Precision: 2}

// Sound names a short effect.
type Sound string

const (
	SoundHit    Sound = "hit"
	SoundClick  Sound = "click"
	SoundHover  Sound = "hover"
	SoundScore  Sound = "score"
	SoundPickup Sound = "pickup"
)

// Track names a looping music file.
type Track string

const (
	TrackMenu Track = "menu_music"
	TrackGame Track = "game_music"
)

type tone struct {
	freq     float64
	duration time.Duration
	volume   float64
}

var sfxTones = map[Sound]tone{
	SoundHit:    {120, 450 * time.Millisecond, 0.6},
	SoundClick:  {800, 80 * time.Millisecond, 0.5},
	SoundHover:  {600, 60 * time.Millisecond, 0.35},
	SoundScore:  {1200, 100 * time.Millisecond, 0.45},
	SoundPickup: {1000, 90 * time.Millisecond, 0.45},
}

var trackDurations = map[Track]time.Duration{
	TrackMenu: 8 * time.Second,
	TrackGame: 12 * time.Second,
}

// Sounds lists every effect in a stable order.
func Sounds() []Sound {
	return []Sound{SoundHit, SoundClick, SoundHover, SoundScore, SoundPickup}
}

// Tracks lists every music track.
func Tracks() []Track {
	return []Track{TrackMenu, TrackGame}
}

// wave renders fn(t) for a fixed number of samples.
type wave struct {
	fn  func(t float64) float64
	pos int
	n   int
}

func newWave(d time.Duration, fn func(t float64) float64) *wave {
	return &wave{fn: fn, n: sampleRate.N(d)}
}

func (w *wave) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if w.pos >= w.n {
			return i, i > 0
		}
		t := float64(w.pos) / float64(sampleRate)
		v := clampSample(w.fn(t))
		samples[i][0] = v
		samples[i][1] = v
		w.pos++
	}
	return len(samples), true
}

func (w *wave) Err() error { return nil }

func clampSample(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// SoundStreamer returns a fresh sine tone for s, or nil for an unknown name.
func SoundStreamer(s Sound) beep.Streamer {
	sfx, ok := sfxTones[s]
	if !ok {
		return nil
	}
	return newWave(sfx.duration, func(t float64) float64 {
		return sfx.volume * math.Sin(2*math.Pi*sfx.freq*t)
	})
}

// TrackStreamer returns one pass of the music track, or nil for an unknown name.
func TrackStreamer(tr Track) beep.Streamer {
	d, ok := trackDurations[tr]
	if !ok {
		return nil
	}
	switch tr {
	case TrackMenu:
		return newWave(d, menuPad)
	default:
		return newWave(d, gameAmbient)
	}
}

// menuChords cycle every two seconds.
var menuChords = [4][3]float64{
	{220.0, 261.63, 329.63},
	{196.0, 246.94, 293.66},
	{165.0, 220.0, 261.63},
	{196.0, 247.0, 294.0},
}

// menuPad is a soft chord pad with a slow swell per chord.
func menuPad(t float64) float64 {
	f := menuChords[int(t/2)%len(menuChords)]
	s := 0.5*math.Sin(2*math.Pi*f[0]*t) +
		0.25*math.Sin(2*math.Pi*f[0]*2*t) +
		0.35*math.Sin(2*math.Pi*f[1]*t) +
		0.15*math.Sin(2*math.Pi*f[2]*t)
	s += 0.12 * math.Sin(2*math.Pi*(f[0]*2+(f[2]-f[1])*0.5)*(t*1.5))
	env := 0.5 * (1 - math.Cos(math.Pi*(math.Mod(t, 2)/2)))
	return 0.12 * s * env * 0.8
}

// gameAmbient layers slowly drifting low pads.
func gameAmbient(t float64) float64 {
	low := 0.25 * math.Sin(2*math.Pi*55*t)
	mid := 0.35 * math.Sin(2*math.Pi*110*t+0.5*math.Sin(0.05*math.Pi*t))
	high := 0.20 * math.Sin(2*math.Pi*220*t+0.25*math.Sin(0.08*math.Pi*t))
	texture := 0.12 * math.Sin(2*math.Pi*0.5*t) * math.Sin(2*math.Pi*440*t)
	return 0.08 * (low + mid + high + texture)
}
