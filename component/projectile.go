package component

// Projectile is a minion shot in flight
type Projectile struct {
	Owner *Minion

	X, Y   float64
	VX, VY float64

	// Traveled is the distance covered since launch
	Traveled float64
	Done     bool

	Node *Node
}
