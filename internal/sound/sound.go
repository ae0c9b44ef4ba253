// Package sound plays tones through the backend's audio device.
package sound

import (
	"github.com/notcha/notcha/internal/logging"
	"github.com/notcha/notcha/internal/native"
)

// DefaultVolume is used by callers that have no preference.
const DefaultVolume = 0.5

// Sound guards every playback call behind a successful Init.
type Sound struct {
	audio       native.Audio
	initialized bool
}

func New(a native.Audio) *Sound {
	return &Sound{audio: a}
}

// Init opens the audio device. It is safe to call repeatedly.
func (s *Sound) Init() bool {
	if s.initialized {
		return true
	}
	s.initialized = s.audio.InitAudio()
	if !s.initialized {
		logging.Warn("audio initialisation failed")
	}
	return s.initialized
}

// Close releases the audio device if it was opened.
func (s *Sound) Close() {
	if !s.initialized {
		return
	}
	s.audio.CloseAudio()
	s.initialized = false
}

func (s *Sound) Initialized() bool { return s.initialized }

// PlayTone plays frequency Hz for durationMs. Volume is clamped to [0, 1].
func (s *Sound) PlayTone(frequency, durationMs int, volume float32) bool {
	if !s.ready() {
		return false
	}
	if frequency <= 0 || durationMs <= 0 {
		logging.Warn("ignoring tone %d Hz for %d ms", frequency, durationMs)
		return false
	}
	return s.audio.PlayTone(frequency, durationMs, min(max(volume, 0), 1))
}

// Beep is 440 Hz for 200 ms.
func (s *Sound) Beep() bool { return s.ready() && s.audio.PlayBeep() }

// Click is 1000 Hz for 50 ms.
func (s *Sound) Click() bool { return s.ready() && s.audio.PlayClick() }

// Success is 600 Hz for 150 ms.
func (s *Sound) Success() bool { return s.ready() && s.audio.PlaySuccess() }

// Error is 200 Hz for 300 ms.
func (s *Sound) Error() bool { return s.ready() && s.audio.PlayError() }

func (s *Sound) ready() bool {
	if s.initialized {
		return true
	}
	logging.Warn("audio not initialised; call Init first")
	return false
}
