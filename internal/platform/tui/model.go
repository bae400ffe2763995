package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ScoreRecorder stores finished games. *storage.Store implements it.
type ScoreRecorder interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
}

// Optional game capabilities the model uses when present.
type (
	themed interface{ Theme() string }
	swiper interface{ SwipeThreshold() int }
)

// Options configures a Model.
type Options struct {
	Scores ScoreRecorder
	Logger *log.Logger

	// Clock returns the wall-clock time; defaults to time.Now.
	Clock func() time.Time

	// ScreenshotDir is where ctrl+s writes; defaults to ~/.snake/screenshots.
	ScreenshotDir string

	// Embedded models run inside a parent model: leaving the game does
	// not quit the program, the parent polls BackToMenu and IsQuitting.
	Embedded bool
}

// loopSeq numbers frame loops across all models of the process, so a
// frame still in flight never matches a loop started later.
var loopSeq atomic.Uint64

func nextLoop() uint64 {
	return loopSeq.Add(1)
}

// Model is the Bubble Tea model for running a snake game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	scores     ScoreRecorder
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	showHelp   bool
	swipe      *SwipeTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	clock      func() time.Time
	start      time.Time
	gen        uint64
	shotDir    string
	embedded   bool
	quitting   bool
	back       bool
	scoreSaved bool // Whether the score of the current session has been stored
}

// NewModel creates a new Bubble Tea model for the given game.
// The game is reset immediately so the first View already shows it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ScreenshotDir == "" {
		home, _ := os.UserHomeDir()
		opts.ScreenshotDir = filepath.Join(home, ".snake", "screenshots")
	}

	threshold := 3
	if s, ok := game.(swiper); ok && s.SwipeThreshold() > 0 {
		threshold = s.SwipeThreshold()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		scores:     opts.Scores,
		logger:     opts.Logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		swipe:      NewSwipeTracker(threshold),
		inputFrame: core.NewInputFrame(),
		clock:      opts.Clock,
		shotDir:    opts.ScreenshotDir,
		embedded:   opts.Embedded,
		gen:        nextLoop(),
	}
	m.help.Width = cfg.ScreenW
	m.start = m.clock()
	game.Reset(cfg)
	m.gameState = game.State()
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.FrameInterval(), m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a, ok := m.swipe.Handle(msg); ok {
			m.inputFrame.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		if msg.Gen != m.gen {
			// A frame of a loop that was superseded.
			return m, nil
		}
		return m.handleFrame(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.recordAbandoned("quit")
		m.quitting = true
		return m, m.exit()
	case key.Matches(msg, m.keys.Back):
		m.recordAbandoned("quit")
		m.back = true
		return m, m.exit()
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-m.footerHeight(), 1))
		return m, nil
	}

	a := m.keys.Action(msg)
	if a == core.ActionNone {
		return m, nil
	}
	m.inputFrame.Set(a)

	if a == core.ActionRestart {
		// Restart applies on the next frame of a fresh loop; any frame
		// already in flight belongs to the old loop and is dropped.
		m.recordAbandoned("restart")
		m.scoreSaved = false
		m.gen = nextLoop()
		return m, frameCmd(m.config.FrameInterval(), m.gen)
	}
	return m, nil
}

// handleResize processes window resize events. The session keeps running;
// the game redraws itself for the new size or shows a resize hint.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(msg.Height-m.footerHeight(), 1))
	return m, nil
}

// handleFrame advances the game to the frame's wall-clock time.
func (m Model) handleFrame(t time.Time) (tea.Model, tea.Cmd) {
	if t.IsZero() {
		t = m.clock()
	}
	now := t.Sub(m.start)

	wasRunning := m.gameState.Started && !m.gameState.GameOver
	result := m.game.Step(m.inputFrame, now)
	m.gameState = result.State

	if !wasRunning && m.gameState.Started && !m.gameState.GameOver {
		m.scoreSaved = false
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.recordScore(m.gameState.Cause)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, frameCmd(m.config.FrameInterval(), m.gen)
}

// recordAbandoned stores a running session that the player leaves.
func (m *Model) recordAbandoned(cause string) {
	if m.gameState.Started && !m.gameState.GameOver && !m.scoreSaved {
		m.recordScore(cause)
	}
}

func (m *Model) recordScore(cause string) {
	m.scoreSaved = true
	if m.scores == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.scores.SaveScore(storage.ScoreEntry{
		GameID:  m.game.ID(),
		Score:   m.gameState.Score,
		Chapter: m.gameState.Chapter,
		Cause:   cause,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("cannot save score", "game", m.game.ID(), "error", err)
	}
}

func (m Model) exit() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

func (m Model) footerHeight() int {
	if !m.showHelp {
		return 1
	}
	rows := 1
	for _, col := range m.keys.FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot dir", "error", err)
		return
	}

	timestamp := m.clock().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	theme := ThemeFor("")
	if t, ok := m.game.(themed); ok {
		theme = ThemeFor(t.Theme())
	}

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen, theme))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// GameState returns the last state reported by the game.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	_, err := RunModel(game, cfg, opts)
	return err
}

// RunModel runs the game like Run and returns the final model, so callers
// can tell quitting from going back to a menu.
func RunModel(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Mouse drags steer the snake
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if m, ok := final.(Model); ok {
		return m, nil
	}
	return model, nil
}
