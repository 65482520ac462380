package parameter

import "time"

// MinionProfile is the attribute row of one minion type
type MinionProfile struct {
	// Name is the script identifier of the type
	Name string

	// Glyph is the terminal rune drawn for the minion
	Glyph rune

	// Color is the 0xRRGGBB body color
	Color uint32

	// Damage is the health damage of one hit on an unshielded hero
	Damage int

	// ShieldPercent is the share of the full shield one hit removes
	ShieldPercent int

	// MeleeCooldown is the minimum interval between two melee strikes
	MeleeCooldown time.Duration

	// RangedCooldown is the minimum interval between two projectiles
	RangedCooldown time.Duration

	// RangedRange is the maximum hero distance at which the minion fires (units)
	RangedRange float64

	// ShootsByType is true for types that fire regardless of minion level
	ShootsByType bool

	// ProjectileColor is the 0xRRGGBB projectile color
	ProjectileColor uint32

	// ProjectileGlyph is the terminal rune of the projectile
	ProjectileGlyph rune
}

// MinionProfiles is indexed by minion type ordinal: plain, gun-man, rifle-man
var MinionProfiles = [3]MinionProfile{
	{
		Name:            "plain",
		Glyph:           'm',
		Color:           0xB45AE6,
		Damage:          10,
		ShieldPercent:   33,
		MeleeCooldown:   1500 * time.Millisecond,
		RangedCooldown:  8 * time.Second,
		RangedRange:     16,
		ShootsByType:    false,
		ProjectileColor: 0xD28CFF,
		ProjectileGlyph: '•',
	},
	{
		Name:            "gun",
		Glyph:           'g',
		Color:           0xE6A03C,
		Damage:          15,
		ShieldPercent:   50,
		MeleeCooldown:   1800 * time.Millisecond,
		RangedCooldown:  7 * time.Second,
		RangedRange:     18,
		ShootsByType:    true,
		ProjectileColor: 0xFFD250,
		ProjectileGlyph: '-',
	},
	{
		Name:            "rifle",
		Glyph:           'r',
		Color:           0xE64646,
		Damage:          20,
		ShieldPercent:   100,
		MeleeCooldown:   2 * time.Second,
		RangedCooldown:  9 * time.Second,
		RangedRange:     20,
		ShootsByType:    true,
		ProjectileColor: 0xFF6E6E,
		ProjectileGlyph: '=',
	},
}

// ShootingLevel is the minion level from which every type can fire projectiles
const ShootingLevel = 2
