package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/engine"
	"github.com/lixenwraith/rooftop-fighter/parameter"
	"github.com/lixenwraith/rooftop-fighter/quiz"
)

// gaugeWidth is the cell width of the health and shield gauges
const gaugeWidth = 10

type notification struct {
	text    string
	color   component.Color
	expires time.Time
}

// HUD is the UI sink: it keeps the values pushed by the session and draws the top rows and notifications
// Notification expiry follows clock, so a paused clock freezes them on screen
type HUD struct {
	clock engine.TimeProvider
	quiz  *QuizModal

	health float64
	shield float64
	bolts  int
	level  int
	stage  int

	notes      []notification
	background string
	tint       engine.Tint
}

// NewHUD creates a HUD that shows questions through modal
func NewHUD(clock engine.TimeProvider, modal *QuizModal) *HUD {
	return &HUD{
		clock:  clock,
		quiz:   modal,
		health: 1,
		shield: 1,
		level:  1,
	}
}

func (h *HUD) SetHealth(pct float64) { h.health = pct }

func (h *HUD) SetShield(pct float64) { h.shield = pct }

func (h *HUD) SetBolts(n int) { h.bolts = n }

func (h *HUD) SetProgress(level, stage int) {
	h.level = level
	h.stage = stage
}

// Notify queues a message for d; the oldest message is dropped past NotifyMax
func (h *HUD) Notify(text string, color component.Color, d time.Duration) {
	h.prune(h.clock.Now())
	h.notes = append(h.notes, notification{text: text, color: color, expires: h.clock.Now().Add(d)})
	if len(h.notes) > parameter.NotifyMax {
		h.notes = h.notes[len(h.notes)-parameter.NotifyMax:]
	}
}

func (h *HUD) ShowQuestion(q quiz.Question, index, total int) {
	h.quiz.Show(q, index, total)
}

func (h *HUD) HideQuiz() {
	h.quiz.Hide()
}

func (h *HUD) SetBackground(name string) { h.background = name }

func (h *HUD) SetTint(t engine.Tint) { h.tint = t }

// Background returns the current backdrop name
func (h *HUD) Background() string { return h.background }

// Tint returns the current full-screen tint
func (h *HUD) Tint() engine.Tint { return h.tint }

// Notifications returns the texts still showing at now, oldest first
func (h *HUD) Notifications(now time.Time) []string {
	h.prune(now)
	out := make([]string, len(h.notes))
	for i, n := range h.notes {
		out[i] = n.text
	}
	return out
}

// Reset clears session-scoped values before a restart
func (h *HUD) Reset() {
	h.health, h.shield, h.bolts = 1, 1, 0
	h.level, h.stage = 1, 0
	h.notes = nil
	h.tint = engine.Tint{}
	h.quiz.Hide()
}

func (h *HUD) prune(now time.Time) {
	kept := h.notes[:0]
	for _, n := range h.notes {
		if now.Before(n.expires) {
			kept = append(kept, n)
		}
	}
	h.notes = kept
}

// Render draws the gauges, the progress line and the notification stack
func (h *HUD) Render(rc Context, screen tcell.Screen) {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	for col := 0; col < rc.Width; col++ {
		for row := 0; row < hudRows; row++ {
			screen.SetContent(col, row, ' ', nil, base)
		}
	}

	col := drawText(screen, 1, 0, "HP ", base.Foreground(tcell.ColorWhite))
	col = drawText(screen, col, 0, bar(h.health, gaugeWidth), base.Foreground(TcellColor(parameter.ColorDanger)))
	col = drawText(screen, col+2, 0, "SH ", base.Foreground(tcell.ColorWhite))
	col = drawText(screen, col, 0, bar(h.shield, gaugeWidth), base.Foreground(TcellColor(parameter.ColorLevel)))
	drawText(screen, col+2, 0, fmt.Sprintf("Bolts %d", h.bolts), base.Foreground(TcellColor(parameter.ColorPickup)))

	progress := fmt.Sprintf("Level %d", h.level)
	if h.level == 3 && h.stage > 0 {
		progress += fmt.Sprintf(" - Stage %d", h.stage)
	}
	drawText(screen, 1, 1, progress, base.Foreground(TcellColor(parameter.ColorInfo)))

	h.prune(rc.Now)
	for i, n := range h.notes {
		style := tcell.StyleDefault.Foreground(TcellColor(n.color)).Bold(true)
		drawCentered(screen, hudRows+1+i, n.text, style)
	}
}
