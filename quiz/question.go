// Package quiz generates the arithmetic questions of the quiz gate and scores them
package quiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/rooftop-fighter/parameter"
)

// Kind selects the reward a completed quiz grants
type Kind uint8

const (
	// KindBolt adds attack charges
	KindBolt Kind = iota
	// KindShield restores shield
	KindShield
)

func (k Kind) String() string {
	if k == KindShield {
		return "shield"
	}
	return "bolt"
}

// Question is one multiplication with shuffled answer choices
type Question struct {
	A, B    int
	Answer  int
	Choices [parameter.QuizChoiceCount]int
}

// Prompt returns the question text
func (q Question) Prompt() string {
	return fmt.Sprintf("%d × %d = ?", q.A, q.B)
}

// Correct reports whether the choice at index is the product
func (q Question) Correct(index int) bool {
	return index >= 0 && index < len(q.Choices) && q.Choices[index] == q.Answer
}

// Generate draws factors in [QuizFactorMin, QuizFactorMax] and builds three distinct decoys within ±QuizDecoySpread
func Generate(rng *rand.Rand) Question {
	span := parameter.QuizFactorMax - parameter.QuizFactorMin + 1
	a := parameter.QuizFactorMin + rng.IntN(span)
	b := parameter.QuizFactorMin + rng.IntN(span)
	q := Question{A: a, B: b, Answer: a * b}

	seen := map[int]bool{q.Answer: true}
	choices := []int{q.Answer}
	for len(choices) < parameter.QuizChoiceCount {
		// Offset in [-spread, spread] excluding 0
		offset := rng.IntN(parameter.QuizDecoySpread) + 1
		if rng.IntN(2) == 0 {
			offset = -offset
		}
		decoy := q.Answer + offset
		if decoy <= 0 || seen[decoy] {
			continue
		}
		seen[decoy] = true
		choices = append(choices, decoy)
	}

	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	copy(q.Choices[:], choices)
	return q
}

// GenerateSet draws a full quiz
func GenerateSet(rng *rand.Rand) []Question {
	qs := make([]Question, parameter.QuizQuestionCount)
	for i := range qs {
		qs[i] = Generate(rng)
	}
	return qs
}
