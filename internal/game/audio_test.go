package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
)

type constStreamer struct {
	v   float64
	err error
}

func (s constStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i][0], samples[i][1] = s.v, s.v
	}
	return len(samples), true
}

func (s constStreamer) Err() error { return s.err }

func TestLevelTapSilenceReadsZero(t *testing.T) {
	tap := newLevelTap(constStreamer{v: 0})
	buf := make([][2]float64, 512)
	for i := 0; i < 10; i++ {
		tap.Stream(buf)
	}
	if got := tap.Level(); got != 0 {
		t.Fatalf("expected zero level for silence, got %v", got)
	}
}

func TestLevelTapStaysWithinUnitRange(t *testing.T) {
	tap := newLevelTap(constStreamer{v: 0.9})
	buf := make([][2]float64, 512)
	for i := 0; i < 50; i++ {
		tap.Stream(buf)
		if got := tap.Level(); got < 0 || got > 1 {
			t.Fatalf("expected level in [0,1], got %v", got)
		}
	}
	if got := tap.Level(); got == 0 {
		t.Fatal("expected a nonzero level for a loud signal")
	}
}

func TestLevelTapSmoothsUpward(t *testing.T) {
	tap := newLevelTap(constStreamer{v: 0.5})
	buf := make([][2]float64, 256)

	tap.Stream(buf)
	first := tap.Level()
	tap.Stream(buf)
	second := tap.Level()

	if first <= 0 {
		t.Fatalf("expected the first block to register, got %v", first)
	}
	if second <= first {
		t.Fatalf("expected the level to keep rising toward the signal, got %v then %v", first, second)
	}
}

func TestLevelTapPropagatesSourceError(t *testing.T) {
	wantErr := errors.New("decode failed")
	tap := newLevelTap(constStreamer{err: wantErr})
	if got := tap.Err(); !errors.Is(got, wantErr) {
		t.Fatalf("expected source error, got %v", got)
	}
}

func TestToggleMuteFlipsPauseAndKeepsChain(t *testing.T) {
	tap := newLevelTap(constStreamer{v: 0.5})
	m := &Music{ctrl: &beep.Ctrl{Streamer: tap}, started: true}

	m.ToggleMute()
	if !m.ctrl.Paused {
		t.Fatal("expected playback paused after muting")
	}
	if !m.Muted() {
		t.Fatal("expected mute indicator on")
	}
	if m.ctrl.Streamer != beep.Streamer(tap) {
		t.Fatal("expected the streamer chain untouched by muting")
	}

	m.ToggleMute()
	if m.ctrl.Paused {
		t.Fatal("expected playback resumed after unmuting")
	}
	if m.Muted() {
		t.Fatal("expected mute indicator off")
	}
	if m.ctrl.Streamer != beep.Streamer(tap) {
		t.Fatal("expected the streamer chain untouched by unmuting")
	}
}

func TestDeferredTrackReadsMuted(t *testing.T) {
	m := &Music{ctrl: &beep.Ctrl{Streamer: constStreamer{}}, deferred: true}
	if !m.Muted() {
		t.Fatal("expected a deferred track to read as muted")
	}
	m.beginPlayback()
	if m.Deferred() {
		t.Fatal("expected the deferred flag cleared once playback begins")
	}
	if m.Muted() {
		t.Fatal("expected the indicator cleared once playback begins")
	}
}

func TestMuteWhileDeferredAppliesOnStart(t *testing.T) {
	m := &Music{ctrl: &beep.Ctrl{Streamer: constStreamer{}}, deferred: true}
	m.ToggleMute()
	if !m.Muted() {
		t.Fatal("expected mute indicator on while deferred")
	}

	m.beginPlayback()
	if !m.started {
		t.Fatal("expected playback to start")
	}
	if !m.ctrl.Paused {
		t.Fatal("expected playback to begin paused after muting while deferred")
	}
	if !m.Muted() {
		t.Fatal("expected mute indicator still on after the deferred start")
	}
}

func TestNilMusicIsInert(t *testing.T) {
	var m *Music
	if got := m.Level(); got != 0 {
		t.Fatalf("expected zero level without a track, got %v", got)
	}
	if !m.Muted() {
		t.Fatal("expected a missing track to read as muted")
	}
	if m.Deferred() {
		t.Fatal("expected no deferred start without a track")
	}
	// None of these may panic on a silent card.
	m.Start()
	m.RetryDeferred()
	m.ToggleMute()
	m.Close()
}

func TestOpenMusicRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.ogg")
	if err := os.WriteFile(path, []byte("not audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenMusic(path); err == nil {
		t.Fatal("expected an error for an unsupported extension")
	}
}

func TestOpenMusicMissingFile(t *testing.T) {
	if _, err := OpenMusic(filepath.Join(t.TempDir(), "missing.mp3")); err == nil {
		t.Fatal("expected an error for a missing track")
	}
}
