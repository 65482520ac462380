package parameter

import "time"

// Music crossfade
const (
	// FadeOutDuration is the time to fade the current track to silence
	FadeOutDuration = 2 * time.Second

	// FadeInDuration is the time to fade the next track to full volume
	FadeInDuration = 2 * time.Second

	// FadeTick is the interval between two volume steps
	FadeTick = 50 * time.Millisecond

	// MinFadeStep floors the volume step so a fade always terminates
	MinFadeStep = 0.01

	// MusicVolume is the target music volume (0.0 to 1.0)
	MusicVolume = 0.5
)

// Audio device
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// EffectVolume is the base volume of one-shot effects (0.0 to 1.0)
	EffectVolume = 0.4
)

// Sound effect names
const (
	SoundJump    = "jump"
	SoundBoost   = "boost"
	SoundDodge   = "dodge"
	SoundBolt    = "bolt"
	SoundEmpty   = "empty"
	SoundHit     = "hit"
	SoundShield  = "shield"
	SoundShot    = "shot"
	SoundDefeat  = "defeat"
	SoundPickup  = "pickup"
	SoundCorrect = "correct"
	SoundWrong   = "wrong"
	SoundReveal  = "reveal"
	SoundFall    = "fall"
	SoundDeath   = "death"
)
