package quiz

import (
	"math/rand/v2"
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/lixenwraith/rooftop-fighter/parameter"
)

func TestGenerateProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		q := Generate(rand.New(rand.NewPCG(seed, seed)))

		if q.A < parameter.QuizFactorMin || q.A > parameter.QuizFactorMax ||
			q.B < parameter.QuizFactorMin || q.B > parameter.QuizFactorMax {
			t.Fatalf("factors out of range: %d × %d", q.A, q.B)
		}
		if q.Answer != q.A*q.B {
			t.Fatalf("answer %d != %d × %d", q.Answer, q.A, q.B)
		}

		correct := 0
		seen := map[int]bool{}
		for i, c := range q.Choices {
			if seen[c] {
				t.Fatalf("duplicate choice %d in %v", c, q.Choices)
			}
			seen[c] = true
			if c <= 0 {
				t.Fatalf("non-positive choice %d", c)
			}
			if d := c - q.Answer; d < -parameter.QuizDecoySpread || d > parameter.QuizDecoySpread {
				t.Fatalf("decoy %d too far from %d", c, q.Answer)
			}
			if q.Correct(i) {
				correct++
			}
		}
		if correct != 1 {
			t.Fatalf("%d correct choices in %v", correct, q.Choices)
		}
	})
}

func TestCorrectRejectsOutOfRange(t *testing.T) {
	q := Generate(rand.New(rand.NewPCG(1, 2)))
	for _, idx := range []int{-1, len(q.Choices), 99} {
		if q.Correct(idx) {
			t.Errorf("Correct(%d) = true", idx)
		}
	}
	if !q.Correct(slices.Index(q.Choices[:], q.Answer)) {
		t.Error("product not accepted")
	}
}

func TestGenerateSetSize(t *testing.T) {
	qs := GenerateSet(rand.New(rand.NewPCG(3, 4)))
	if len(qs) != parameter.QuizQuestionCount {
		t.Fatalf("len = %d, want %d", len(qs), parameter.QuizQuestionCount)
	}
}

func TestRewards(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		shield  int
		points  int
		restore int
	}{
		{"none correct", 0, 40, 0, 40},
		{"two of three", 2, 0, 4, 100},
		{"two of three from full", 2, 100, 4, 100},
		{"one correct", 1, 10, 2, 60},
		{"negative", -1, 30, 0, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Points(tt.correct)
			if p != tt.points {
				t.Errorf("Points(%d) = %d, want %d", tt.correct, p, tt.points)
			}
			if got := RestoredShield(tt.shield, p); got != tt.restore {
				t.Errorf("RestoredShield(%d, %d) = %d, want %d", tt.shield, p, got, tt.restore)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if KindBolt.String() != "bolt" || KindShield.String() != "shield" {
		t.Errorf("kinds = %s, %s", KindBolt, KindShield)
	}
}
