// Package audio plays the game's sound cues. Cues are fire-and-forget: a
// missing asset or an unavailable sound device leaves the cue silent and
// never affects the game.
package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/pingpong/internal/config"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Cue identifies a sound effect.
type Cue int

const (
	CueWallBounce Cue = iota
	CuePaddleHit
	CueScore
)

// String returns a lowercase name for the cue.
func (c Cue) String() string {
	switch c {
	case CueWallBounce:
		return "wall_bounce"
	case CuePaddleHit:
		return "paddle_hit"
	case CueScore:
		return "score"
	default:
		return "unknown"
	}
}

// Player plays sound cues.
type Player interface {
	Play(c Cue)
}

// Silent is a Player that does nothing. Used for --mute and SSH sessions,
// where the server's speaker is not the player's.
type Silent struct{}

// Play implements Player.
func (Silent) Play(Cue) {}

// SoundBank holds decoded cues and plays them on the speaker.
type SoundBank struct {
	mu      sync.Mutex
	buffers map[Cue]*beep.Buffer
	sink    func(beep.Streamer) // nil until Start succeeds
	logger  *log.Logger
}

// NewSoundBank decodes the configured wav files. Files that cannot be read
// or decoded are logged and their cue stays silent.
func NewSoundBank(cfg config.AudioConfig, logger *log.Logger) *SoundBank {
	b := &SoundBank{
		buffers: make(map[Cue]*beep.Buffer),
		logger:  logger,
	}

	paths := map[Cue]string{
		CueWallBounce: cfg.WallBounce,
		CuePaddleHit:  cfg.PaddleHit,
		CueScore:      cfg.Score,
	}
	for cue, path := range paths {
		if path == "" {
			continue
		}
		buf, err := loadWAV(path)
		if err != nil {
			logger.Warn("sound cue disabled", "cue", cue, "error", err)
			continue
		}
		b.buffers[cue] = buf
	}

	return b
}

// loadWAV decodes a wav file into a buffer at the speaker sample rate.
func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: cannot read %s: %w", path, err)
	}
	return buf, nil
}

// Start opens the sound device. On failure the bank stays silent.
func (b *SoundBank) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sink != nil {
		return nil
	}
	if len(b.buffers) == 0 {
		return nil // Nothing to play, don't grab the device
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return fmt.Errorf("audio: cannot open sound device: %w", err)
	}
	b.sink = func(s beep.Streamer) { speaker.Play(s) }
	return nil
}

// Play starts a cue without waiting for it to finish.
func (b *SoundBank) Play(c Cue) {
	b.mu.Lock()
	defer b.mu.Unlock()

	buf, ok := b.buffers[c]
	if !ok || b.sink == nil {
		return
	}
	b.sink(buf.Streamer(0, buf.Len()))
}

// Loaded reports whether the cue has a decoded sound.
func (b *SoundBank) Loaded(c Cue) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, ok := b.buffers[c]
	return ok
}

// Close stops playback and releases the sound device.
func (b *SoundBank) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sink == nil {
		return
	}
	speaker.Clear()
	speaker.Close()
	b.sink = nil
}
