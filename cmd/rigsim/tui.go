package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/phanxgames/camrig"
	"github.com/phanxgames/camrig/preset"
)

// nudge is how far one key press moves the anchor.
const nudge = 0.5

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(9)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pauseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// nudges maps keys to world-space anchor motion.
var nudges = map[string]mgl64.Vec3{
	"w": {0, 0, -nudge},
	"s": {0, 0, nudge},
	"a": {-nudge, 0, 0},
	"d": {nudge, 0, 0},
	"r": {0, nudge, 0},
	"f": {0, -nudge, 0},
}

type tickMsg time.Time

// simModel steps a rig on a timer and renders its transform.
type simModel[H camrig.Handedness] struct {
	name   string
	rig    *camrig.Rig[H]
	move   func(mgl64.Vec3)
	anchor mgl64.Vec3
	dt     float64

	frame  int
	paused bool
}

func newSimModel[H camrig.Handedness](p preset.Preset, dt float64) (*simModel[H], error) {
	rig, err := preset.Build[H](p)
	if err != nil {
		return nil, err
	}
	name := p.Name
	if name == "" {
		name = "rig"
	}
	return &simModel[H]{name: name, rig: rig, move: mover(rig), dt: dt}, nil
}

func (m *simModel[H]) Init() tea.Cmd {
	return m.tick()
}

func (m *simModel[H]) tick() tea.Cmd {
	return tea.Tick(time.Duration(m.dt*float64(time.Second)), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *simModel[H]) step() {
	m.rig.Update(m.dt)
	m.frame++
}

func (m *simModel[H]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.paused {
			m.step()
		}
		return m, m.tick()
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "n":
			if m.paused {
				m.step()
			}
		default:
			if delta, ok := nudges[key]; ok && m.move != nil {
				m.move(delta)
				m.anchor = m.anchor.Add(delta)
			}
		}
	}
	return m, nil
}

func (m *simModel[H]) View() string {
	xf := m.rig.FinalTransform
	row := func(label string, v mgl64.Vec3) string {
		return labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf("%8.3f %8.3f %8.3f", v[0], v[1], v[2]))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("rigsim: " + m.name))
	if m.paused {
		b.WriteString("  " + pauseStyle.Render("paused"))
	}
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("frame") + valueStyle.Render(fmt.Sprintf("%d (t=%.2fs)", m.frame, float64(m.frame)*m.dt)))
	b.WriteString("\n")
	b.WriteString(row("position", xf.Position) + "\n")
	b.WriteString(row("forward", xf.Forward()) + "\n")
	b.WriteString(row("up", xf.Up()) + "\n")
	if m.move != nil {
		b.WriteString(row("moved", m.anchor) + "\n")
	}
	b.WriteString("\n")
	help := "space pause · n step · q quit"
	if m.move != nil {
		help = "wasd/rf move · " + help
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

func newTUICmd() *cobra.Command {
	var (
		presetPath string
		dt         float64
		handedness string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Step a preset rig interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dt <= 0 {
				return fmt.Errorf("--dt must be > 0, got %v", dt)
			}
			p := preset.Example()
			if presetPath != "" {
				var err error
				if p, err = preset.Load(presetPath); err != nil {
					return err
				}
			}
			if handedness != "" {
				p.Handedness = handedness
			}
			left, err := p.LeftHanded()
			if err != nil {
				return err
			}

			var model tea.Model
			if left {
				model, err = newSimModel[camrig.LeftHanded](p, dt)
			} else {
				model, err = newSimModel[camrig.RightHanded](p, dt)
			}
			if err != nil {
				return err
			}
			prog := tea.NewProgram(model,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen())
			_, err = prog.Run()
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&presetPath, "preset", "p", "", "preset TOML file")
	f.Float64Var(&dt, "dt", 1.0/30, "frame time in seconds")
	f.StringVar(&handedness, "handedness", "", "override the preset handedness: right or left")
	return cmd
}
