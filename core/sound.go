package core

// SoundType represents the board cues the viewer can play
type SoundType int

const (
	SoundRegenerate SoundType = iota // New board dealt
	SoundSnake                       // Landed on a snake head
	SoundLadder                      // Landed on a ladder foot
	SoundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundRegenerate:
		return "regenerate"
	case SoundSnake:
		return "snake"
	case SoundLadder:
		return "ladder"
	}
	return "unknown"
}
