package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/rafaelantao/tui-archery/internal/config"
	"github.com/rafaelantao/tui-archery/internal/core"
	"github.com/rafaelantao/tui-archery/internal/game"
	"github.com/rafaelantao/tui-archery/internal/storage"
)

// maxFrameSeconds caps the simulation step after a stall (suspended
// terminal, long GC pause) so the arrow does not tunnel through a whole
// flight in one tick.
const maxFrameSeconds = 0.25

// GameModel is the Bubble Tea model for one archery session.
type GameModel struct {
	cfg        config.ArcheryConfig
	runtime    core.RuntimeConfig
	session    *game.Session
	screen     *core.Screen
	store      *storage.Store
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	palette    palette

	roundID    string
	savedShots int
	roundSaved bool
	lastTick   time.Time

	standalone bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given configuration and difficulty.
func NewGameModel(cfg config.ArcheryConfig, store *storage.Store, rt core.RuntimeConfig, difficulty config.Difficulty) GameModel {
	return GameModel{
		cfg:        cfg,
		runtime:    rt,
		session:    game.NewSession(cfg, difficulty),
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:      store,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		palette:    newPalette(&cfg),
		roundID:    uuid.NewString(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and advances the model.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if action := m.keyMapper.MapKeyToMenuAction(msg); action == MenuActionBack {
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick steps the simulation with the real elapsed time.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	now := time.Now()
	dt := 1.0 / float64(m.runtime.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
		if dt > maxFrameSeconds {
			dt = maxFrameSeconds
		}
	}
	m.lastTick = now

	m.session.Step(m.inputFrame, dt)
	m.persistProgress()

	m.inputFrame.Clear()
	return m, tickCmd(m.runtime.TickRate)
}

// persistProgress saves finalized shots and completed rounds. Saves are
// best effort: the range keeps running if the database is unavailable.
func (m *GameModel) persistProgress() {
	if m.store == nil {
		return
	}

	if sc := m.session.ShotCount(); sc > m.savedShots {
		if res := m.session.LastResult(); res != nil {
			//nolint:errcheck // Best-effort save
			m.store.SaveShot(storage.ShotEntry{
				RoundID:    m.roundID,
				Difficulty: string(m.session.Difficulty()),
				Ring:       res.Ring,
				Points:     res.Points,
				Radial:     res.RadialDistance,
				Reason:     string(res.Reason),
			})
		}
		m.savedShots = sc
	}

	snap := m.session.Snapshot()
	if snap.AwaitingReload && !m.roundSaved {
		//nolint:errcheck // Best-effort save
		m.store.SaveRound(m.roundID, string(snap.Difficulty), snap.RoundScore, snap.QuiverSize)
		m.roundSaved = true
	}
	if !snap.AwaitingReload && m.roundSaved {
		m.roundID = uuid.NewString()
		m.roundSaved = false
	}
}

// View renders the current frame.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.drawScene(m.session.Snapshot())
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the player requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the player requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone session outside the menu flow.
func Run(cfg config.ArcheryConfig, store *storage.Store, rt core.RuntimeConfig, difficulty config.Difficulty) error {
	model := NewGameModel(cfg, store, rt, difficulty)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
