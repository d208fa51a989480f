package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ambient/internal/core"
	"github.com/vovakirdan/tui-ambient/internal/registry"
	"github.com/vovakirdan/tui-ambient/internal/storage"
)

// Session origins stored with the history.
const (
	OriginLocal = "local"
	OriginSSH   = "ssh"
)

// ModelOptions holds the optional collaborators of a scene Model.
type ModelOptions struct {
	Origin        string      // Stored with the session, defaults to OriginLocal
	Logger        *log.Logger // Defaults to a logger that discards everything
	ScreenshotDir string      // Defaults to ~/.ambient/screenshots
	Embedded      bool        // Running inside a menu session: enables the back key
	ShowHelp      bool        // Start with the footer visible
}

// Model is the Bubble Tea model for running an ambient scene.
type Model struct {
	scene    registry.Scene
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	opts     ModelOptions
	keys     SceneKeyMap
	help     help.Model
	started  time.Time
	status   string
	paused   bool
	showHelp bool
	quitting bool
	back     bool
	saved    bool // Whether the session has been stored
	body     string
	fps      fpsMeter
}

// NewModel creates a new Bubble Tea model for the given scene.
func NewModel(scene registry.Scene, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Origin == "" {
		opts.Origin = OriginLocal
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	keys := DefaultSceneKeyMap()
	keys.Back.SetEnabled(opts.Embedded)

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		scene:    scene,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    store,
		config:   cfg,
		opts:     opts,
		keys:     keys,
		help:     h,
		started:  time.Now(),
		showHelp: opts.ShowHelp,
	}
}

// Init resets the scene and starts both the frame and clock loops.
func (m Model) Init() tea.Cmd {
	now := time.Now()
	m.scene.Reset(m.config)
	m.scene.TickClock(now)

	m.opts.Logger.Debug("scene started",
		"scene", m.scene.ID(),
		"size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH),
		"fps", m.config.TickRate,
		"seed", m.config.Seed,
	)

	return tea.Batch(tickCmd(m.config.TickRate), clockCmd(now))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case ClockMsg:
		if m.quitting || m.back {
			return m, nil
		}
		now := time.Time(msg)
		m.scene.TickClock(now)
		m.redraw()
		return m, clockCmd(now)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.saveSession()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.back = true
		m.saveSession()
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.opts.Logger.Error("screenshot failed", "error", err)
			m.status = "screenshot failed"
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
			m.status = "saved " + filepath.Base(path)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The weather restarts from an empty grid; the clock refits.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.scene.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	m.redraw()
	return m, nil
}

// handleTick processes simulation ticks. The scene is only redrawn when
// the step changed the picture; otherwise View reuses the last body.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.back {
		return m, nil
	}
	if !m.paused {
		m.fps.Observe(now)
		if m.scene.Step() || m.body == "" {
			m.redraw()
		}
	}
	return m, tickCmd(m.config.TickRate)
}

// redraw renders the scene into the cached body.
func (m *Model) redraw() {
	m.screen.Clear()
	m.scene.Render(m.screen)
	m.body = RenderScreen(m.screen)
}

// saveSession stores the run once. Failures are logged, never fatal.
func (m *Model) saveSession() {
	if m.saved {
		return
	}
	m.saved = true

	st := m.scene.Stats()
	m.opts.Logger.Debug("scene stopped", "scene", m.scene.ID(), "frames", st.Ticks)

	if m.store == nil || st.Ticks == 0 {
		return
	}
	_, err := m.store.SaveSession(storage.Session{
		SceneID:   m.scene.ID(),
		Mode:      st.Mode,
		Origin:    m.opts.Origin,
		Frames:    st.Ticks,
		Duration:  time.Since(m.started),
		StartedAt: m.started,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save session", "error", err)
	}
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.scene.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".ambient", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.scene.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	body := m.body
	if body == "" {
		m.screen.Clear()
		m.scene.Render(m.screen)
		body = RenderScreen(m.screen)
	}

	if !m.showHelp || m.screen.Height() < 2 {
		return body
	}

	// The footer takes over the last row.
	if i := strings.LastIndexByte(body, '\n'); i >= 0 {
		body = body[:i]
	}
	return body + "\n" + m.footer()
}

func (m Model) footer() string {
	st := m.scene.Stats()
	st.Paused = m.paused
	st.FPS = m.fps.Rate()

	line := footerStyle.Render(statsLine(st)) + "  " + m.help.View(m.keys)
	if m.status != "" {
		line += "  " + statusStyle.Render(m.status)
	}
	return line
}

// Paused reports whether the simulation is frozen.
func (m Model) Paused() bool {
	return m.paused
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a single scene.
func Run(scene registry.Scene, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewModel(scene, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
