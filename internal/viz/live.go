package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kdraman/dotgrid/internal/braille"
	"github.com/kdraman/dotgrid/internal/config"
	"github.com/kdraman/dotgrid/internal/scene"
	"github.com/kdraman/dotgrid/internal/turtle"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model plays a scene by advancing its turtle a few steps per frame.
type Model struct {
	scene    *scene.Scene
	cfg      *config.Config
	t        *turtle.Turtle
	step     int
	running  bool
	showHelp bool
}

// NewModel prepares a fresh turtle for the scene.
func NewModel(sc *scene.Scene, cfg *config.Config) Model {
	return Model{
		scene:   sc,
		cfg:     cfg,
		t:       turtle.OnCanvas(0, 0, braille.New(cfg.Width, cfg.Height)),
		running: true,
	}
}

func (m Model) tick() tea.Cmd {
	fps := m.cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input and advances the drawing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.t = turtle.OnCanvas(0, 0, braille.New(m.cfg.Width, m.cfg.Height))
			m.step = 0
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			steps := m.cfg.Speed
			if steps <= 0 {
				steps = 1
			}
			for i := 0; i < steps && m.step < m.scene.Steps; i++ {
				m.scene.Step(m.t, m.step)
				m.step++
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// View renders the canvas inside the themed chrome.
func (m Model) View() string {
	theme := CurrentTheme

	header := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(strings.ToUpper(m.scene.Name))

	status := "DRAWING"
	switch {
	case m.step >= m.scene.Steps:
		status = "DONE"
	case !m.running:
		status = "PAUSED"
	}
	statusLine := lipgloss.NewStyle().Foreground(theme.Muted).
		Render(fmt.Sprintf("%s  step %d/%d", status, m.step, m.scene.Steps))

	canvasView := canvasStyle.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(m.t.Frame())

	help := helpStyle.Render("SP:Pause R:Restart T:Theme ?:Help Q:Quit")
	if m.showHelp {
		help = helpStyle.Render(strings.Join([]string{
			"Space - pause/resume drawing",
			"R     - restart the scene",
			"T     - cycle chrome themes",
			"?     - toggle this help",
			"Q     - quit",
		}, "\n"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, statusLine, canvasView, help)
}

// Run plays the scene until the user quits.
func Run(sc *scene.Scene, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(sc, cfg))
	_, err := p.Run()
	return err
}
