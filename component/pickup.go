package component

import "time"

// Bolt is a collectible ammunition pickup
type Bolt struct {
	X, Y      float64
	Collected bool

	// CollectedAt is when the pickup was taken, zero while available
	CollectedAt time.Time

	Node *Node
}
