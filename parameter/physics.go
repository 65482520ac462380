package parameter

import "time"

// Hero movement, expressed per ReferenceFrame and scaled by the frame time scale
const (
	// HeroBaseSpeed is the horizontal velocity while a direction is held (units/frame)
	HeroBaseSpeed = 0.18

	// HeroHorizontalDamping is the multiplicative velocity decay with no direction held
	HeroHorizontalDamping = 0.85

	// Gravity is the downward acceleration applied every airborne frame (units/frame²)
	Gravity = 0.022

	// JumpVelocity is the upward impulse of a regular jump (units/frame)
	JumpVelocity = 0.42

	// BoostJumpVelocity is the upward impulse inside the boost zone (units/frame)
	BoostJumpVelocity = 0.6

	// BoostJumpPush is the horizontal impulse added by a boosted jump, in facing direction (units/frame)
	BoostJumpPush = 0.5

	// BoostZoneX is the x coordinate past which the first platform acts as a launch pad
	BoostZoneX = 7.0
)

// Dodge ("smoke dash")
const (
	// DodgeSpeed is the forced horizontal velocity while dodging (units/frame)
	DodgeSpeed = 0.5

	// DodgeDuration is how long a dodge lasts, the hero is invulnerable for the whole window
	DodgeDuration = 250 * time.Millisecond

	// DodgeCooldown is measured from the start of the previous dodge
	DodgeCooldown = 900 * time.Millisecond
)

// Hero body and platform collision
const (
	// HeroHalfWidth is half of the hero's horizontal extent (units)
	HeroHalfWidth = 0.4

	// HeroFootOffset is the distance from the hero's origin down to its feet (units)
	HeroFootOffset = 1.0

	// LandTolerance is how far below a platform top the feet may be and still snap onto it
	LandTolerance = 0.6

	// SnapTolerance is how far above a platform top the feet may hover and still count as standing
	SnapTolerance = 0.05

	// FallThresholdY is the hero y below which an unsupported hero has fallen off the world
	FallThresholdY = 1.5
)
