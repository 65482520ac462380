package parameter

import "time"

// Notifications
const (
	// NotifyShort is the display time of combat feedback
	NotifyShort = 1200 * time.Millisecond

	// NotifyLong is the display time of level and stage banners
	NotifyLong = 3 * time.Second

	// NotifyMax is the number of notifications shown at once
	NotifyMax = 3
)

// Notification and tint colors (0xRRGGBB)
const (
	ColorInfo    = 0xDCDCDC
	ColorGood    = 0x64DC78
	ColorWarn    = 0xF0C850
	ColorDanger  = 0xF05050
	ColorLevel   = 0x50B4F0
	ColorQuiz    = 0x8C78FF
	ColorHero    = 0xF0F0F0
	ColorHit     = 0xFF8C8C
	ColorShot    = 0x78DCFF
	ColorPickup  = 0x78DCFF
	ColorStairs  = 0xA0A0B4
	ColorRooftop = 0x5A5A6E
)

// Camera, terminal cells per world unit
const (
	CellsPerUnitX = 2.0
	CellsPerUnitY = 1.0

	// CameraLeadFraction is the share of the view kept behind the hero
	CameraLeadFraction = 0.35
)
