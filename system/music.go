package system

import (
	"time"

	"github.com/lixenwraith/rooftop-fighter/audio"
	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/parameter"
)

// PlayTrack switches the music without a fade; empty or current tracks are ignored
func PlayTrack(ctx *engine.GameContext, track string) {
	if track == "" || track == ctx.State.Track {
		return
	}
	ctx.State.Track = track
	ctx.Audio.Play(track)
}

// Crossfade fades the current track out, switches to track and fades back in
// Volume moves in FadeTick steps; the task belongs to the session so level changes do not cut it
func Crossfade(ctx *engine.GameContext, track string) {
	if track == "" {
		return
	}
	target := ctx.Audio.Volume()
	if target <= 0 {
		target = parameter.MusicVolume
	}
	stepOut := audio.FadeStep(ctx.Audio.Volume(), parameter.FadeOutDuration)
	stepIn := audio.FadeStep(target, parameter.FadeInDuration)

	fadingIn := false
	var acc time.Duration
	ctx.Scheduler.Every(ctx.Session, func(now time.Time, dt time.Duration) bool {
		acc += dt
		for acc >= parameter.FadeTick {
			acc -= parameter.FadeTick
			if !fadingIn {
				v := ctx.Audio.Volume() - stepOut
				if v > 0 {
					ctx.Audio.SetVolume(v)
					continue
				}
				ctx.Audio.SetVolume(0)
				ctx.State.Track = track
				ctx.Audio.Play(track)
				fadingIn = true
				continue
			}
			v := ctx.Audio.Volume() + stepIn
			if v < target {
				ctx.Audio.SetVolume(v)
				continue
			}
			ctx.Audio.SetVolume(target)
			return true
		}
		return false
	})
}
