package audio

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pingpong/internal/config"
)

// writeWAV writes a short silent wav file and returns its path.
func writeWAV(t *testing.T, rate beep.SampleRate) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cue.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Silence(rate.N(50*time.Millisecond)), format))
	return path
}

func TestSoundBankMissingAssetsAreSilent(t *testing.T) {
	dir := t.TempDir()
	bank := NewSoundBank(config.AudioConfig{
		Enabled:    true,
		WallBounce: filepath.Join(dir, "missing.wav"),
		PaddleHit:  filepath.Join(dir, "also-missing.wav"),
	}, log.New(io.Discard))

	assert.False(t, bank.Loaded(CueWallBounce))
	assert.False(t, bank.Loaded(CuePaddleHit))
	assert.False(t, bank.Loaded(CueScore))

	// Nothing loaded: Start does not touch the device and Play is a no-op
	require.NoError(t, bank.Start())
	assert.NotPanics(t, func() {
		bank.Play(CueWallBounce)
		bank.Play(CueScore)
	})
	bank.Close()
}

func TestSoundBankCorruptAssetIsSilent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o600))

	bank := NewSoundBank(config.AudioConfig{Score: path}, log.New(io.Discard))
	assert.False(t, bank.Loaded(CueScore))
}

func TestSoundBankPlaysLoadedCues(t *testing.T) {
	tests := []struct {
		name string
		rate beep.SampleRate
	}{
		{"native rate", sampleRate},
		{"resampled", beep.SampleRate(44100)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeWAV(t, tc.rate)
			bank := NewSoundBank(config.AudioConfig{PaddleHit: path}, log.New(io.Discard))
			require.True(t, bank.Loaded(CuePaddleHit))

			var played []beep.Streamer
			bank.sink = func(s beep.Streamer) { played = append(played, s) }

			bank.Play(CuePaddleHit)
			bank.Play(CueWallBounce) // not loaded
			bank.Play(CuePaddleHit)

			assert.Len(t, played, 2)
		})
	}
}

func TestCueString(t *testing.T) {
	assert.Equal(t, "wall_bounce", CueWallBounce.String())
	assert.Equal(t, "paddle_hit", CuePaddleHit.String())
	assert.Equal(t, "score", CueScore.String())
	assert.Equal(t, "unknown", Cue(42).String())
}
