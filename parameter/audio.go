package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
)

// Regenerate chime: rising three-note arpeggio
const (
	ChimeNoteDuration = 90 * time.Millisecond
	ChimeAttack       = 5 * time.Millisecond
	ChimeRelease      = 60 * time.Millisecond
)

// Snake and ladder slides
const (
	SlideDuration = 350 * time.Millisecond
	SlideAttack   = 10 * time.Millisecond
	SlideRelease  = 120 * time.Millisecond
	SlideLowFreq  = 220.0
	SlideHighFreq = 880.0
)
