package game

import (
	"errors"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/heartcard/internal/config"
)

// levelTap wraps a beep.Streamer and keeps a smoothed RMS level of the
// samples flowing through it so the renderer can pulse heart glow with the
// music. The speaker goroutine writes, the render loop reads.
type levelTap struct {
	Source beep.Streamer

	mu    sync.RWMutex
	level float64
}

func newLevelTap(src beep.Streamer) *levelTap {
	return &levelTap{Source: src}
}

func (t *levelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		var sumSquares float64
		for i := 0; i < n; i++ {
			mono := (samples[i][0] + samples[i][1]) * 0.5
			sumSquares += mono * mono
		}
		rms := math.Sqrt(sumSquares / float64(n))
		// Compress toward 1 so quiet passages still read visually.
		mag := clamp01(math.Pow(rms, 0.3))

		t.mu.Lock()
		t.level = config.SmoothingFactor*t.level + (1-config.SmoothingFactor)*mag
		t.mu.Unlock()
	}
	return n, ok
}

func (t *levelTap) Err() error { return t.Source.Err() }

func (t *levelTap) Level() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.level
}

// Music is the looping background track. All methods are safe on a nil
// receiver so a failed load degrades to a silent card.
type Music struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *levelTap

	started  bool
	deferred bool // speaker refused to start; retry on first interaction
	muted    bool
}

// OpenMusic decodes the track and builds the playback chain:
// decoder -> loop -> level tap -> fixed gain -> pause control.
func OpenMusic(path string) (*Music, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, errors.New("unsupported file type: " + filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	tap := newLevelTap(beep.Loop(-1, streamer))
	vol := &effects.Volume{
		Streamer: tap,
		Base:     2,
		Volume:   math.Log2(config.TrackGain),
	}

	return &Music{
		file:     f,
		streamer: streamer,
		format:   format,
		ctrl:     &beep.Ctrl{Streamer: vol},
		tap:      tap,
	}, nil
}

// Start initializes the speaker and begins playback. A refused speaker is
// the desktop analogue of blocked autoplay: the error is swallowed, the
// track stays deferred and RetryDeferred picks it up on the first
// interaction.
func (m *Music) Start() {
	if m == nil || m.started {
		return
	}
	bufferSize := m.format.SampleRate.N(time.Second / 20)
	if err := speaker.Init(m.format.SampleRate, bufferSize); err != nil {
		log.Printf("audio: speaker unavailable, deferring playback: %v", err)
		m.deferred = true
		return
	}
	m.beginPlayback()
}

// beginPlayback applies any mute accumulated while deferred and hands the
// chain to the speaker.
func (m *Music) beginPlayback() {
	m.ctrl.Paused = m.muted
	speaker.Play(m.ctrl)
	m.started = true
	m.deferred = false
}

// RetryDeferred reattempts a deferred start. No-op otherwise.
func (m *Music) RetryDeferred() {
	if m == nil || !m.deferred {
		return
	}
	m.deferred = false
	m.Start()
	if !m.started {
		m.deferred = true
	}
}

func (m *Music) Deferred() bool {
	return m != nil && m.deferred
}

// ToggleMute pauses or resumes playback in place; position and loop are
// preserved by the pause control.
func (m *Music) ToggleMute() {
	if m == nil {
		return
	}
	m.muted = !m.muted
	if !m.started {
		return
	}
	speaker.Lock()
	m.ctrl.Paused = m.muted
	speaker.Unlock()
}

// Muted reports the indicator state; a deferred track reads as muted until
// the first interaction starts it.
func (m *Music) Muted() bool {
	if m == nil {
		return true
	}
	return m.muted || m.deferred
}

// Level is the current smoothed music level in [0,1].
func (m *Music) Level() float64 {
	if m == nil || !m.started || m.muted {
		return 0
	}
	return m.tap.Level()
}

func (m *Music) Close() {
	if m == nil {
		return
	}
	if m.streamer != nil {
		_ = m.streamer.Close()
	}
	if m.file != nil {
		_ = m.file.Close()
	}
}
