package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lixenwraith/rooftop-fighter/parameter"
	"github.com/lixenwraith/rooftop-fighter/quiz"
)

// QuizModal presents the current question as a tview modal drawn over the game
// No tview.Application is involved; focus and key routing are driven by the caller
type QuizModal struct {
	modal   *tview.Modal
	visible bool
	choices int

	// onAnswer receives the chosen answer index
	onAnswer func(choice int)
}

// NewQuizModal creates a hidden modal that reports selections to onAnswer
func NewQuizModal(onAnswer func(choice int)) *QuizModal {
	m := &QuizModal{onAnswer: onAnswer}
	m.modal = tview.NewModal().
		SetBackgroundColor(TcellColor(0x1A1430)).
		SetTextColor(TcellColor(parameter.ColorInfo)).
		SetButtonBackgroundColor(TcellColor(parameter.ColorQuiz)).
		SetButtonTextColor(tcell.ColorBlack).
		SetDoneFunc(func(index int, _ string) {
			if index >= 0 {
				m.Choose(index)
			}
		})
	return m
}

// SetAnswerFunc replaces the selection callback
func (m *QuizModal) SetAnswerFunc(fn func(choice int)) {
	m.onAnswer = fn
}

// Show replaces the modal content with question index of total and focuses the first choice
func (m *QuizModal) Show(q quiz.Question, index, total int) {
	labels := make([]string, len(q.Choices))
	for i, c := range q.Choices {
		labels[i] = fmt.Sprintf("%d) %d", i+1, c)
	}
	m.modal.SetText(fmt.Sprintf("Question %d of %d\n\n%s", index+1, total, q.Prompt())).
		ClearButtons().
		AddButtons(labels).
		SetFocus(0)
	m.choices = len(labels)
	m.visible = true
	m.focus(m.modal)
}

// Hide removes the modal from screen
func (m *QuizModal) Hide() {
	m.visible = false
}

func (m *QuizModal) IsVisible() bool {
	return m.visible
}

// Choose submits the answer at index; ignored while hidden or out of range
func (m *QuizModal) Choose(index int) bool {
	if !m.visible || index < 0 || index >= m.choices || m.onAnswer == nil {
		return false
	}
	m.onAnswer(index)
	return true
}

// HandleKey routes a key to the modal, number keys select directly
// Returns false when the modal is hidden so the caller can use the key
func (m *QuizModal) HandleKey(ev *tcell.EventKey) bool {
	if !m.visible {
		return false
	}
	if ev.Key() == tcell.KeyRune {
		if r := ev.Rune(); r >= '1' && r <= '9' {
			m.Choose(int(r - '1'))
			return true
		}
	}
	if handler := m.modal.InputHandler(); handler != nil {
		handler(ev, m.focus)
	}
	return true
}

func (m *QuizModal) focus(p tview.Primitive) {
	p.Focus(m.focus)
}

func (m *QuizModal) Render(_ Context, screen tcell.Screen) {
	m.modal.Draw(screen)
}
