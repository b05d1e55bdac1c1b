// Package sound plays short synthesized cues for the board viewer. Audio is
// optional: every call is a no-op until Initialize succeeds.
package sound

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/snakeboard/core"
	"github.com/lixenwraith/snakeboard/logging"
	"github.com/lixenwraith/snakeboard/parameter"
)

// Manager owns the speaker and a mixer that cues are queued on
type Manager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	played      int
}

// NewManager creates a manager with cfg, or environment config when nil
func NewManager(cfg *Config) *Manager {
	if cfg == nil {
		cfg = LoadConfig()
	}
	return &Manager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; disabled config skips it without error
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || !m.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(m.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		logging.Log.WithError(err).Warn("audio unavailable")
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup stops all sounds
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	m.initialized = false
}

// Play queues the cue for st, returning false when nothing was queued
func (m *Manager) Play(st core.SoundType) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return false
	}
	s := GetSoundEffect(st, m.cfg)
	if s == nil {
		return false
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
	m.played++
	return true
}

// PlayRegenerate plays the new-board chime
func (m *Manager) PlayRegenerate() {
	m.Play(core.SoundRegenerate)
}

// PlaySnake plays the falling slide
func (m *Manager) PlaySnake() {
	m.Play(core.SoundSnake)
}

// PlayLadder plays the rising slide
func (m *Manager) PlayLadder() {
	m.Play(core.SoundLadder)
}

// Played returns the number of cues queued since creation
func (m *Manager) Played() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.played
}
