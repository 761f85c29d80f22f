package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/avoid-the-block/internal/core"
)

// Service plays effects and music through a single mixer.
// The zero state is silent; Init enables output.
type Service struct {
	mu     sync.Mutex
	dir    string
	logger *log.Logger

	ready bool
	muted bool
	mixer *beep.Mixer

	sfx   map[Sound]*beep.Buffer
	music map[Track]*beep.Buffer

	current      *beep.Ctrl
	currentTrack Track
}

// New creates a silent service that keeps its assets under dir.
// A nil logger uses the package default.
func New(dir string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		dir:    dir,
		logger: logger,
		mixer:  &beep.Mixer{},
		sfx:    make(map[Sound]*beep.Buffer),
		music:  make(map[Track]*beep.Buffer),
	}
}

func (s *Service) sfxPath(name Sound) string {
	return filepath.Join(s.dir, "sfx", string(name)+".wav")
}

func (s *Service) musicPath(tr Track) string {
	return filepath.Join(s.dir, "music", string(tr)+".wav")
}

// EnsurePlaceholders writes the synthesized WAVs that are missing.
// Existing files are left alone so custom assets win.
func (s *Service) EnsurePlaceholders() error {
	var errs []error
	for _, name := range Sounds() {
		errs = append(errs, writeIfMissing(s.sfxPath(name), SoundStreamer(name)))
	}
	for _, tr := range Tracks() {
		errs = append(errs, writeIfMissing(s.musicPath(tr), TrackStreamer(tr)))
	}
	return errors.Join(errs...)
}

func writeIfMissing(path string, src beep.Streamer) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("audio: cannot create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audio: cannot create %s: %w", path, err)
	}
	if err := wav.Encode(f, src, placeholderFormat); err != nil {
		f.Close()
		return fmt.Errorf("audio: cannot encode %s: %w", path, err)
	}
	return f.Close()
}

// Init writes placeholders, loads every asset and opens the speaker.
// On error the service stays silent and every call is a no-op.
func (s *Service) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return nil
	}
	if err := s.EnsurePlaceholders(); err != nil {
		s.logger.Warn("audio placeholders incomplete", "err", err)
	}

	for _, name := range Sounds() {
		s.sfx[name] = s.loadOrSynth(s.sfxPath(name), SoundStreamer(name))
	}
	for _, tr := range Tracks() {
		s.music[tr] = s.loadOrSynth(s.musicPath(tr), TrackStreamer(tr))
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.ready = true
	s.logger.Debug("audio ready", "dir", s.dir)
	return nil
}

// loadOrSynth decodes path, falling back to the in-memory generator.
func (s *Service) loadOrSynth(path string, fallback beep.Streamer) *beep.Buffer {
	buf, err := loadBuffer(path)
	if err == nil {
		return buf
	}
	s.logger.Warn("audio asset unreadable, using built-in tone", "path", path, "err", err)
	buf = beep.NewBuffer(placeholderFormat)
	buf.Append(fallback)
	return buf
}

func loadBuffer(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}
	format.SampleRate = sampleRate
	buf := beep.NewBuffer(format)
	buf.Append(src)
	return buf, nil
}

// Play starts a one-shot effect.
func (s *Service) Play(name Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, ok := s.sfx[name]
	if !s.ready || s.muted || !ok {
		return
	}
	speaker.Lock()
	s.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// PlayMusic loops tr, replacing whatever track is playing.
func (s *Service) PlayMusic(tr Track) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, ok := s.music[tr]
	if !s.ready || !ok {
		return
	}
	if s.current != nil && s.currentTrack == tr {
		return
	}
	speaker.Lock()
	if s.current != nil {
		s.current.Paused = true
		s.current.Streamer = nil
	}
	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len())), Paused: s.muted}
	s.mixer.Add(ctrl)
	speaker.Unlock()

	s.current = ctrl
	s.currentTrack = tr
}

// StopMusic silences the current track.
func (s *Service) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return
	}
	speaker.Lock()
	s.current.Paused = true
	// a nil streamer makes the mixer drop the ctrl
	s.current.Streamer = nil
	speaker.Unlock()
	s.current = nil
	s.currentTrack = ""
}

// SetMuted pauses music and suppresses effects while muted.
func (s *Service) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.muted = muted
	if s.current == nil || !s.ready {
		return
	}
	speaker.Lock()
	s.current.Paused = muted
	speaker.Unlock()
}

// Muted reports the mute flag.
func (s *Service) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Ready reports whether the speaker is open.
func (s *Service) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// SoundForEvent maps a simulation event to its effect.
func SoundForEvent(e core.Event) (Sound, bool) {
	switch e.Type {
	case core.EventScore:
		return SoundScore, true
	case core.EventPickup:
		return SoundPickup, true
	case core.EventShieldBreak, core.EventHit:
		return SoundHit, true
	case core.EventDash:
		return SoundClick, true
	}
	return "", false
}

// HandleEvents plays each distinct effect raised in one tick once.
func (s *Service) HandleEvents(events []core.Event) {
	var played []Sound
	for _, e := range events {
		name, ok := SoundForEvent(e)
		if !ok || slices.Contains(played, name) {
			continue
		}
		played = append(played, name)
		s.Play(name)
	}
}

// Close stops playback and releases the speaker.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.current = nil
	s.ready = false
}
