package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rafaelantao/tui-archery/internal/bows"
	"github.com/rafaelantao/tui-archery/internal/config"
	"github.com/rafaelantao/tui-archery/internal/core"
	"github.com/rafaelantao/tui-archery/internal/settings"
	"github.com/rafaelantao/tui-archery/internal/storage"
)

// Menu rows, top to bottom.
const (
	menuRowStart = iota
	menuRowDifficulty
	menuRowBow
	menuRowMusic
	menuRowSfx
	menuRowScores
	menuRowQuit
	menuRowCount
)

var difficultyOrder = []config.Difficulty{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))
	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))
	menuDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor       int
	settings     settings.Settings
	settingsPath string
	difficulty   config.Difficulty
	store        *storage.Store
	keyMapper    *KeyMapper
	width        int
	height       int

	started        bool
	openScoreboard bool
	quitting       bool
}

// NewMenuModel creates the start menu. Settings are loaded from
// settingsPath; a missing file falls back to defaults.
func NewMenuModel(store *storage.Store, defaultDifficulty config.Difficulty, settingsPath string, width, height int) MenuModel {
	prefs, _ := settings.Load(settingsPath)
	return MenuModel{
		settings:     prefs,
		settingsPath: settingsPath,
		difficulty:   defaultDifficulty,
		store:        store,
		keyMapper:    NewKeyMapper(),
		width:        width,
		height:       height,
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

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < menuRowCount-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.cycleValue(-1)

	case MenuActionRight:
		m.cycleValue(1)

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		return m.handleSelect()
	}

	return m, nil
}

// cycleValue adjusts the value on the current row.
func (m *MenuModel) cycleValue(dir int) {
	switch m.cursor {
	case menuRowDifficulty:
		for i, d := range difficultyOrder {
			if d == m.difficulty {
				n := (i + dir + len(difficultyOrder)) % len(difficultyOrder)
				m.difficulty = difficultyOrder[n]
				return
			}
		}
		m.difficulty = difficultyOrder[0]
	case menuRowBow:
		if dir < 0 {
			m.settings.BowType = bows.Prev(m.settings.BowType).Key
		} else {
			m.settings.BowType = bows.Next(m.settings.BowType).Key
		}
	case menuRowMusic:
		m.settings.MusicEnabled = !m.settings.MusicEnabled
	case menuRowSfx:
		m.settings.SfxEnabled = !m.settings.SfxEnabled
	}
}

func (m MenuModel) handleSelect() (tea.Model, tea.Cmd) {
	switch m.cursor {
	case menuRowStart:
		//nolint:errcheck // Preference saving is best effort
		m.saveSettings()
		m.started = true
		return m, tea.Quit
	case menuRowScores:
		m.openScoreboard = true
		return m, tea.Quit
	case menuRowQuit:
		m.quitting = true
		return m, tea.Quit
	case menuRowMusic, menuRowSfx, menuRowBow, menuRowDifficulty:
		m.cycleValue(1)
	}
	return m, nil
}

func (m MenuModel) saveSettings() error {
	if m.settingsPath == "" {
		return nil
	}
	return settings.Save(m.settingsPath, m.settings)
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T U I   A R C H E R Y"), m.width))
	b.WriteString("\n\n")

	bow := bows.Get(m.settings.BowType)
	rows := []string{
		"Start Round",
		fmt.Sprintf("Difficulty   < %s >", m.difficulty),
		fmt.Sprintf("Bow          < %s >", bow.Label),
		fmt.Sprintf("Music        %s", onOff(m.settings.MusicEnabled)),
		fmt.Sprintf("Sound FX     %s", onOff(m.settings.SfxEnabled)),
		"High Scores",
		"Quit",
	}

	for i, row := range rows {
		cursor := "  "
		line := row
		if i == m.cursor {
			cursor = "> "
			line = menuSelectedStyle.Render(row)
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	desc := fmt.Sprintf("%s  (damage %d, fire rate %.2fx)", bow.Description, bow.Damage, bow.FireRate)
	b.WriteString(centerText(menuDimStyle.Render(desc), m.width))
	b.WriteString("\n")

	if m.store != nil {
		if high, err := m.store.HighScore(string(m.difficulty)); err == nil && high > 0 {
			b.WriteString(centerText(menuDimStyle.Render(fmt.Sprintf("Best %s round: %d", m.difficulty, high)), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Started returns true once the player chose to start a round.
func (m MenuModel) Started() bool { return m.started }

// Difficulty returns the chosen difficulty tier.
func (m MenuModel) Difficulty() config.Difficulty { return m.difficulty }

// Settings returns the edited preferences.
func (m MenuModel) Settings() settings.Settings { return m.settings }

// WantsScoreboard returns true if the player requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool { return m.openScoreboard }

// IsQuitting returns true if the player requested to quit.
func (m MenuModel) IsQuitting() bool { return m.quitting }

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

// centerText centers text within the given width, ignoring style codes
// via lipgloss width measurement.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the outcome of running the standalone menu.
type MenuResult struct {
	Start           bool
	Difficulty      config.Difficulty
	Settings        settings.Settings
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, defaultDifficulty config.Difficulty, settingsPath string, rt core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, defaultDifficulty, settingsPath, rt.ScreenW, rt.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	result := MenuResult{
		Difficulty: m.Difficulty(),
		Settings:   m.Settings(),
	}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Started():
		result.Start = true
	default:
		result.Quit = true
	}
	return result, nil
}
