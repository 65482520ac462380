package parameter

import "time"

// Quiz gate
const (
	// QuizQuestionCount is the number of questions per quiz
	QuizQuestionCount = 3

	// QuizFactorMin and QuizFactorMax bound both multiplication factors (inclusive)
	QuizFactorMin = 3
	QuizFactorMax = 9

	// QuizDecoySpread is the maximum distance of a wrong answer from the product
	QuizDecoySpread = 5

	// QuizChoiceCount is the number of answer choices per question
	QuizChoiceCount = 4

	// QuizPointsPerCorrect is the reward multiplier per correct answer
	QuizPointsPerCorrect = 2

	// QuizShieldPerPoint is the shield percentage restored per earned point
	QuizShieldPerPoint = 25

	// QuizInvulnerability bounds the quiz tint window, in practice it is cleared on completion
	QuizInvulnerability = 10 * time.Minute

	// QuizFeedbackDelay is the pause between an answer and the next question
	QuizFeedbackDelay = 800 * time.Millisecond

	// QuizGraceInvulnerability replaces the quiz window on completion
	QuizGraceInvulnerability = 1500 * time.Millisecond

	// QuizRequeueDelay separates two back-to-back quizzes
	QuizRequeueDelay = 500 * time.Millisecond
)
