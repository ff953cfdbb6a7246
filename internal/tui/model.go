// Package tui provides an interactive terminal browser for curated outfits.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glamstack/attire/internal/cli"
	"github.com/glamstack/attire/internal/model"
)

// Model is the bubbletea model for browsing curated outfits. Each outfit is
// rendered into a scrollable viewport; left/right move between outfits.
type Model struct {
	outfits  []model.Outfit
	keys     KeyMap
	viewport viewport.Model
	index    int
	width    int
	height   int
	ready    bool
}

// NewModel creates a browser over the given outfits.
func NewModel(outfits []model.Outfit) Model {
	return Model{
		outfits: outfits,
		keys:    DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if m.index < len(m.outfits)-1 {
				m.index++
				m.viewport.SetContent(m.content())
				m.viewport.GotoTop()
			}
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			if m.index > 0 {
				m.index--
				m.viewport.SetContent(m.content())
				m.viewport.GotoTop()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-3)
			m.viewport.SetContent(m.content())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 3
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewport.View(),
		m.statusBar(),
	)
}

func (m Model) content() string {
	if len(m.outfits) == 0 {
		return cli.FormatWarning("No outfits could be assembled from this catalog.")
	}
	return cli.RenderOutfit(m.outfits[m.index])
}

func (m Model) statusBar() string {
	position := fmt.Sprintf("outfit %d of %d", m.index+1, len(m.outfits))
	if len(m.outfits) == 0 {
		position = "no outfits"
	}

	help := "←/→ switch · ↑/↓ scroll · q quit"
	return cli.SubtleStyle.Render(fmt.Sprintf(" %s  %s", position, help))
}

// Run starts the browser and blocks until the user quits.
func Run(outfits []model.Outfit) error {
	program := tea.NewProgram(NewModel(outfits), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run outfit browser: %w", err)
	}
	return nil
}
