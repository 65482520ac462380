package input

// actionRegistry maps canonical action names to actions
// Used by the keymap config loader to resolve action strings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"left":   ActionLeft,
	"right":  ActionRight,
	"jump":   ActionJump,
	"dodge":  ActionDodge,
	"attack": ActionAttack,

	"answer_1": ActionAnswer1,
	"answer_2": ActionAnswer2,
	"answer_3": ActionAnswer3,
	"answer_4": ActionAnswer4,

	"quit":         ActionQuit,
	"pause":        ActionPause,
	"toggle_mute":  ActionToggleMute,
	"toggle_debug": ActionToggleDebug,
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// ActionName returns the canonical name of an action, "none" if unnamed
func ActionName(a Action) string {
	for name, v := range actionRegistry {
		if v == a && name != "none" {
			return name
		}
	}
	return "none"
}
