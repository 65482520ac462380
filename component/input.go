package component

// Input is the level-triggered input snapshot sampled once per frame
type Input struct {
	Left   bool
	Right  bool
	Jump   bool
	Dodge  bool
	Attack bool
}
