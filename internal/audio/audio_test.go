package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/avoid-the-block/internal/core"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d out of range or not mono: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
}

func TestSoundStreamerLength(t *testing.T) {
	tests := []struct {
		name Sound
		dur  time.Duration
	}{
		{SoundHit, 450 * time.Millisecond},
		{SoundClick, 80 * time.Millisecond},
		{SoundHover, 60 * time.Millisecond},
		{SoundScore, 100 * time.Millisecond},
		{SoundPickup, 90 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			s := SoundStreamer(tt.name)
			if s == nil {
				t.Fatal("SoundStreamer returned nil")
			}
			if got, want := drain(t, s), sampleRate.N(tt.dur); got != want {
				t.Errorf("streamed %d samples, want %d", got, want)
			}
		})
	}
}

func TestUnknownNames(t *testing.T) {
	if SoundStreamer("boom") != nil {
		t.Error("unknown sound should yield nil")
	}
	if TrackStreamer("radio") != nil {
		t.Error("unknown track should yield nil")
	}
}

func TestTrackStreamersStayInRange(t *testing.T) {
	for _, tr := range Tracks() {
		t.Run(string(tr), func(t *testing.T) {
			if got, want := drain(t, TrackStreamer(tr)), sampleRate.N(trackDurations[tr]); got != want {
				t.Errorf("streamed %d samples, want %d", got, want)
			}
		})
	}
}

func TestMenuPadSilentAtChordStart(t *testing.T) {
	for _, ts := range []float64{0, 2, 4, 6} {
		if v := menuPad(ts); math.Abs(v) > 1e-9 {
			t.Errorf("menuPad(%v) = %v, want 0 at chord boundary", ts, v)
		}
	}
}

func TestEnsurePlaceholders(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, nil)

	if err := s.EnsurePlaceholders(); err != nil {
		t.Fatalf("EnsurePlaceholders() failed: %v", err)
	}

	for _, name := range Sounds() {
		if _, err := os.Stat(filepath.Join(dir, "sfx", string(name)+".wav")); err != nil {
			t.Errorf("missing sfx %s: %v", name, err)
		}
	}
	for _, tr := range Tracks() {
		if _, err := os.Stat(filepath.Join(dir, "music", string(tr)+".wav")); err != nil {
			t.Errorf("missing track %s: %v", tr, err)
		}
	}

	f, err := os.Open(filepath.Join(dir, "sfx", "hit.wav"))
	if err != nil {
		t.Fatal(err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		t.Fatalf("wav.Decode() failed: %v", err)
	}
	defer streamer.Close()
	if format.SampleRate != sampleRate || format.NumChannels != 1 {
		t.Errorf("format = %+v, want 44100 Hz mono", format)
	}
	if got, want := streamer.Len(), sampleRate.N(450*time.Millisecond); got != want {
		t.Errorf("hit.wav has %d samples, want %d", got, want)
	}
}

func TestEnsurePlaceholdersKeepsCustomAssets(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "sfx", "score.wav")
	if err := os.MkdirAll(filepath.Dir(custom), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(custom, []byte("custom"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := New(dir, nil).EnsurePlaceholders(); err != nil {
		t.Fatalf("EnsurePlaceholders() failed: %v", err)
	}
	data, err := os.ReadFile(custom)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "custom" {
		t.Error("existing asset was overwritten")
	}
}

func TestLoadBuffer(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, nil)
	if err := s.EnsurePlaceholders(); err != nil {
		t.Fatal(err)
	}

	buf, err := loadBuffer(s.sfxPath(SoundClick))
	if err != nil {
		t.Fatalf("loadBuffer() failed: %v", err)
	}
	if got, want := buf.Len(), sampleRate.N(80*time.Millisecond); got != want {
		t.Errorf("buffer has %d samples, want %d", got, want)
	}

	if _, err := loadBuffer(filepath.Join(dir, "nope.wav")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSoundForEvent(t *testing.T) {
	tests := []struct {
		event core.EventType
		want  Sound
	}{
		{core.EventScore, SoundScore},
		{core.EventPickup, SoundPickup},
		{core.EventShieldBreak, SoundHit},
		{core.EventHit, SoundHit},
		{core.EventDash, SoundClick},
	}
	for _, tt := range tests {
		got, ok := SoundForEvent(core.Event{Type: tt.event})
		if !ok || got != tt.want {
			t.Errorf("SoundForEvent(%v) = %q, %v; want %q", tt.event, got, ok, tt.want)
		}
	}
}

func TestSilentServiceIsNoop(t *testing.T) {
	s := New(t.TempDir(), nil)

	s.Play(SoundHit)
	s.PlayMusic(TrackMenu)
	s.HandleEvents([]core.Event{{Type: core.EventScore}, {Type: core.EventHit}})
	s.StopMusic()
	s.SetMuted(true)
	s.Close()

	if s.Ready() {
		t.Error("service should not be ready without Init")
	}
	if !s.Muted() {
		t.Error("mute flag should be kept while silent")
	}
}
