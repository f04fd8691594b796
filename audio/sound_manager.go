package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// DefaultVolume is the linear gain applied to cues
const DefaultVolume = 0.6

// SoundManager plays editor cues through the system speaker.
// All methods are no-ops until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: DefaultVolume,
	}
}

// Initialize opens the speaker with a 100ms buffer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlaySaved plays the export success chime
func (sm *SoundManager) PlaySaved() {
	sm.play(func() beep.Streamer { return CreateSavedSound(sm.volume) })
}

// PlayError plays the export failure buzz
func (sm *SoundManager) PlayError() {
	sm.play(func() beep.Streamer { return CreateErrorSound(sm.volume) })
}

func (sm *SoundManager) play(build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := build()
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
