package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame driver interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// ReferenceFrame is the frame duration all per-frame tuning values are expressed in
	ReferenceFrame = time.Second / 60

	// MaxTimeScale caps the per-frame scale factor after stalls (debugger, suspended terminal)
	MaxTimeScale = 3.0

	// EventQueueInitialCapacity is the pre-allocated size of the per-frame event queue
	EventQueueInitialCapacity = 64
)

// Session lifecycle
const (
	// RestartDelayFall is the delay between falling off the rooftops and session restart
	RestartDelayFall = 2 * time.Second

	// RestartDelayDeath is the delay between health reaching zero and session restart
	RestartDelayDeath = 3 * time.Second

	// IntroQuizDelay is the pause before the opening quiz is presented
	IntroQuizDelay = 2 * time.Second
)

// Input
const (
	// InputHoldWindow is how long a key press keeps its action held
	// Terminals report no key release; auto-repeat refreshes the window while a key stays down
	InputHoldWindow = 150 * time.Millisecond
)
