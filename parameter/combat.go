package parameter

import "time"

// Hero bolt attack
const (
	// AttackRange is the maximum hero-to-minion distance for target selection (units)
	AttackRange = 10.0

	// AttackCooldown is the minimum interval between two fired bolts
	AttackCooldown = 400 * time.Millisecond

	// BoltDamage is the hit point damage of one bolt
	BoltDamage = 60

	// BoltShotSpeed is the travel speed of the bolt visual (units/sec)
	BoltShotSpeed = 40.0
)

// Hero damage intake
const (
	// HeroMaxHealth is the full health value
	HeroMaxHealth = 100

	// HeroMaxShield is the full shield value
	HeroMaxShield = 100

	// HitInvulnerability is the flicker window granted after taking damage
	HitInvulnerability = 1 * time.Second

	// FlickerInterval is the on/off period of the damage flicker
	FlickerInterval = 100 * time.Millisecond
)

// Minion melee and projectiles
const (
	// MinionMaxHealth is the starting hit points of every minion
	MinionMaxHealth = 100

	// MeleeRange is the horizontal distance below which a minion strikes (units)
	MeleeRange = 1.5

	// MeleeVerticalReach is the vertical distance within which a melee strike connects (units)
	MeleeVerticalReach = 2.5

	// ProjectileSpeed is the constant speed of minion projectiles (units/sec)
	ProjectileSpeed = 12.0

	// ProjectileHitRadius is the proximity radius of a projectile hit (units)
	ProjectileHitRadius = 0.8

	// ProjectileMaxRange is the travel distance after which a projectile despawns unhit (units)
	ProjectileMaxRange = 22.0
)

// Minion hover animation
const (
	// BobAmplitude is the vertical amplitude of the hover bob (units)
	BobAmplitude = 0.3

	// BobFrequency is the angular frequency of the hover bob (rad/sec)
	BobFrequency = 3.0

	// BobPhasePerUnit desynchronizes minions by their x position (rad/unit)
	BobPhasePerUnit = 0.5

	// MinionHoverHeight is how far above its spawn platform a minion floats (units)
	MinionHoverHeight = 1.5
)
