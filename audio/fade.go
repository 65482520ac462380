package audio

import (
	"time"

	"github.com/lixenwraith/rooftop-fighter/parameter"
)

// FadeStep is the per-tick volume change that moves volume to silence (or back) over d
// The step is floored at MinFadeStep so every fade terminates
func FadeStep(volume float64, d time.Duration) float64 {
	ticks := float64(d) / float64(parameter.FadeTick)
	if ticks <= 0 {
		return max(volume, parameter.MinFadeStep)
	}
	return max(volume/ticks, parameter.MinFadeStep)
}
