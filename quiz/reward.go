package quiz

import "github.com/lixenwraith/rooftop-fighter/parameter"

// Points is the reward earned for a number of correct answers
func Points(correct int) int {
	if correct < 0 {
		return 0
	}
	return parameter.QuizPointsPerCorrect * correct
}

// RestoredShield returns the shield after a shield quiz worth points, capped at the full shield
func RestoredShield(current, points int) int {
	return max(0, min(parameter.HeroMaxShield, current+parameter.QuizShieldPerPoint*points))
}
