package parameter

import "time"

// Progression timing
const (
	// WaveDelay is the pause between a level or stage transition and the next wave
	WaveDelay = 2 * time.Second

	// FinalWaveDelay is the pause between the stage 2 backdrop swap and the closing rifle wave
	FinalWaveDelay = 4 * time.Second

	// StairsRevealDuration is the fade-in time of a revealed staircase before it becomes solid
	StairsRevealDuration = 1500 * time.Millisecond

	// TransitionLockDuration is how long movement stays locked during the stage 2 transition
	TransitionLockDuration = 1 * time.Second
)

// Progression quotas, mirrored by the default level script wave sizes
const (
	QuotaLevel1 = 3
	QuotaLevel2 = 3
	QuotaStage1 = 4
	QuotaStage2 = 3
	QuotaStage3 = 2
)
