package parameter

import "time"

// Bolt pickups
const (
	// PickupRadius is the hero distance below which a bolt pickup is collected (units)
	PickupRadius = 1.0

	// PickupBolts is the ammunition granted per pickup
	PickupBolts = 1

	// BoltRespawnCooldown is the delay before a collected pickup reappears
	BoltRespawnCooldown = 10 * time.Second
)
