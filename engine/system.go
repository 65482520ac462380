package engine

// System is a per-frame gameplay stage
// Systems run in a fixed order on the frame loop goroutine
type System interface {
	Name() string
	Update(ctx *GameContext)
}
