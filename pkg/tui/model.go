package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-renewal/renewal/pkg/animation"
	"github.com/go-renewal/renewal/pkg/carousel"
)

// DefaultFrame is the interval between animation frames.
const DefaultFrame = animation.FrameInterval

// FrameMsg asks the model to step its scheduler.
type FrameMsg time.Time

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	viewportStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// eventLog keeps the most recent lifecycle events for the status line.
type eventLog struct {
	names []string
	limit int
}

func (l *eventLog) add(name string) {
	l.names = append(l.names, name)
	if len(l.names) > l.limit {
		l.names = l.names[len(l.names)-l.limit:]
	}
}

// Model is a bubbletea model that moves a carousel with the keyboard.
//
//	left, h      reverse
//	right, l     advance
//	home, g      first resident
//	end, G       last resident
//	q, ctrl+c    quit
type Model struct {
	Title string

	carousel  *carousel.Carousel
	strip     *Strip
	scheduler *animation.Scheduler
	frame     time.Duration
	log       *eventLog
	quitting  bool
}

// NewModel returns a model for c drawn on strip. Offset animations run on
// sched, which the model steps every frame.
func NewModel(c *carousel.Carousel, strip *Strip, sched *animation.Scheduler) Model {
	residents := make([]carousel.Resident, c.Size())
	for i := range residents {
		residents[i] = c.Resident(i)
	}
	strip.Bind(residents)

	log := &eventLog{limit: 3}
	cfg := c.Config()
	for _, name := range []string{cfg.EventBeforeMove, cfg.EventMove, cfg.EventAfterMove} {
		c.On(name, func(ev carousel.Event) { log.add(ev.Name) })
	}

	return Model{
		carousel:  c,
		strip:     strip,
		scheduler: sched,
		frame:     DefaultFrame,
		log:       log,
	}
}

// WithFrame returns a copy of m stepping its scheduler every d.
func (m Model) WithFrame(d time.Duration) Model {
	if d > 0 {
		m.frame = d
	}
	return m
}

// Carousel returns the carousel driven by the model.
func (m Model) Carousel() *carousel.Carousel { return m.carousel }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "left", "h":
			m.carousel.Reverse()
		case "right", "l", " ":
			m.carousel.Advance()
		case "home", "g":
			m.carousel.MoveTo(0)
		case "end", "G":
			m.carousel.MoveTo(m.carousel.Size() - 1)
		}
	case FrameMsg:
		m.scheduler.Step()
		return m, m.tick()
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	if m.Title != "" {
		b.WriteString(titleStyle.Render(m.Title))
		b.WriteString("\n")
	}
	b.WriteString(viewportStyle.Render(m.strip.Render()))
	b.WriteString("\n")

	state := "idle"
	if m.carousel.Moving() {
		state = "moving"
	}
	status := fmt.Sprintf("%d/%d  offset %g  %s", m.carousel.Position()+1, m.carousel.Size(), m.carousel.Offset(), state)
	if len(m.log.names) > 0 {
		status += "  " + strings.Join(m.log.names, " › ")
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/h reverse · →/l advance · g/G ends · q quit"))
	return b.String()
}
