package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kong-arcade/internal/config"
	"github.com/vovakirdan/kong-arcade/internal/core"
	"github.com/vovakirdan/kong-arcade/internal/storage"
)

// MenuItem is a selectable difficulty in the menu.
type MenuItem struct {
	Preset config.DifficultyPreset
	Title  string
	Hint   string
}

// menuItems lists the difficulty presets in menu order.
var menuItems = []MenuItem{
	{Preset: config.DifficultyEasy, Title: "Easy", Hint: "5 lives, slow barrels"},
	{Preset: config.DifficultyNormal, Title: "Normal", Hint: "3 lives, speeds up over time"},
	{Preset: config.DifficultyHard, Title: "Hard", Hint: "2 lives, fast barrels"},
	{Preset: config.DifficultyFixed, Title: "Fixed", Hint: "no escalation"},
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	menuPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("211"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	highScore      int
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user picks a difficulty
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model with the cursor on the given preset.
func NewMenuModel(store *storage.Store, gameID string, cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	cursor := 0
	for i, item := range menuItems {
		if item.Preset == preset {
			cursor = i
		}
	}
	if preset == "" {
		cursor = 1
	}

	high := 0
	if store != nil {
		// Header shows 0 when scores are unavailable
		high, _ = store.HighScore(gameID)
	}

	return MenuModel{
		items:     menuItems,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		highScore: high,
		keyMapper: NewKeyMapper(cfg.TickRate),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B A R R E L   K O N G"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("High score: %d", m.highScore), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a difficulty", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-7s %s", item.Title, menuHintStyle.Render(item.Hint))
		if i == m.cursor {
			line = menuPickStyle.Render(fmt.Sprintf("> %-7s", item.Title)) + " " + menuHintStyle.Render(item.Hint)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("In game: arrows move, space jumps, p pauses"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within given width, ignoring styling escapes.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
