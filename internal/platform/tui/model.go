package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-vanilla/internal/audio"
	"github.com/vovakirdan/arcade-vanilla/internal/config"
	"github.com/vovakirdan/arcade-vanilla/internal/core"
	"github.com/vovakirdan/arcade-vanilla/internal/games/breakout"
	"github.com/vovakirdan/arcade-vanilla/internal/logging"
)

// Alert messages shown when the game ends.
const (
	LoseMessage = "GAME OVER"
	WinMessage  = "YOU WIN, CONGRATULATIONS!"
)

// phase is the screen the model is showing.
type phase int

const (
	phaseStart   phase = iota // Start control enabled, no frames scheduled
	phasePlaying              // Frames scheduled while the driver runs
	phaseAlert                // Terminal alert, waiting for dismissal
)

// Options configures the game screen.
type Options struct {
	Config  config.BreakoutConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger   // nil discards
	Sound   *audio.Player // nil is silent
}

// Model is the Bubble Tea model for the Breakout screen.
type Model struct {
	opts    Options
	session *session
	phase   phase
	screen  *core.Screen
	layout  layout
	hold    *keyHold
	keys    KeyMap
	help    help.Model
	width   int
	height  int
	now     func() time.Time

	quitting bool
}

// NewModel creates the model and its first session.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	in := opts.Config.Input
	m := Model{
		opts:    opts,
		session: newSession(opts.Config, opts.Logger),
		hold: newKeyHold(
			time.Duration(in.KeyHoldInitialMS)*time.Millisecond,
			time.Duration(in.KeyHoldRepeatMS)*time.Millisecond,
		),
		keys: DefaultKeyMap(),
		help: help.New(),
		now:  time.Now,
	}
	m.resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	return m
}

// Init waits for the sprite. Frames are scheduled only after the start
// control is used.
func (m Model) Init() tea.Cmd {
	return m.session.waitSprite()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case spriteLoadedMsg:
		m.handleSprite(msg)
		return m, nil
	}

	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	cv := m.opts.Config.Canvas
	m.layout = computeLayout(width, height, cv.Width, cv.Height)
	m.help.Width = width
	if m.screen == nil {
		m.screen = core.NewScreen(m.layout.cols, m.layout.rows)
		return
	}
	m.screen.Resize(m.layout.cols, m.layout.rows)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.phase {
	case phaseStart:
		if key.Matches(msg, m.keys.Run) {
			return m.start()
		}
	case phasePlaying:
		if k := m.keys.direction(msg); k != core.KeyNone {
			m.press(k)
		}
	case phaseAlert:
		if key.Matches(msg, m.keys.Dismiss) {
			return m.reload()
		}
	}
	return m, nil
}

// press feeds a key press through the hold emulation into the game.
func (m Model) press(k core.Key) {
	in := m.session.driver.Input()
	repeat := m.hold.Held(k)
	for _, r := range m.hold.Press(k, m.now()) {
		in.OnKeyUp(r.String())
	}
	if !repeat {
		in.OnKeyDown(k.String())
	}
}

// handleMouse processes mouse input.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	click := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	switch m.phase {
	case phaseStart:
		if click && m.layout.hitsButton(msg.X, msg.Y) {
			return m.start()
		}
	case phasePlaying:
		clientX, offsetLeft := m.layout.pointer(msg.X, m.opts.Config.Canvas.Width)
		m.session.driver.Input().OnPointerMove(clientX, offsetLeft)
	case phaseAlert:
		if click {
			return m.reload()
		}
	}
	return m, nil
}

// start runs the start control once and schedules the first frame.
func (m Model) start() (tea.Model, tea.Cmd) {
	if err := m.session.driver.Start(); err != nil {
		m.session.logger.Warn("start ignored", "error", err)
		return m, nil
	}
	m.phase = phasePlaying
	m.session.logger.Info("game started")
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	d := m.session.driver
	if m.phase != phasePlaying || !d.Running() {
		return m, nil
	}

	for _, k := range m.hold.Expire(now) {
		d.Input().OnKeyUp(k.String())
	}

	res := d.Tick()
	m.session.report(res, m.opts.Sound)

	if !d.Running() {
		m.phase = phaseAlert
		m.hold.Reset()
		return m, nil
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// reload discards the finished session and shows the start screen again.
func (m Model) reload() (tea.Model, tea.Cmd) {
	gs := m.GameState()
	m.session.logger.Info("reloading", "outcome", gs.Outcome, "score", gs.Score, "lives", gs.Lives)
	m.session = newSession(m.opts.Config, m.opts.Logger)
	m.phase = phaseStart
	m.hold.Reset()
	return m, m.session.waitSprite()
}

func (m Model) handleSprite(msg spriteLoadedMsg) {
	if msg.sessionID != m.session.id {
		return
	}
	if msg.err != nil {
		m.session.logger.Warn("sprite load failed, using built-in ball", "error", msg.err)
		return
	}
	m.session.logger.Debug("sprite loaded", "path", m.opts.Config.Sprite.Path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.layout.tooSmall() {
		return errorStyle.Render("Window too small") + "\n" +
			helpStyle.Render("Resize the terminal or press q to quit")
	}

	switch m.phase {
	case phaseStart:
		m.drawStart()
	default:
		breakout.Render(m.session.world, m.screen, m.session.sprite)
		if m.phase == phaseAlert {
			m.drawAlert()
		}
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen, m.layout.originX))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.help.View(m.keys)))
	return b.String()
}

// drawStart draws the title and the Run button.
func (m Model) drawStart() {
	s := m.screen
	s.Clear()

	btn := m.layout.button()
	s.DrawTextCentered(btn.Y-3, "BREAKOUT", core.ColorOrange)
	s.DrawBox(btn, core.ColorLime)
	s.DrawTextColor(btn.X+(btn.W-3)/2, btn.Y+1, "Run", core.ColorLime)
	s.DrawTextCentered(btn.Bottom()+1, "enter / space / click", core.ColorGray)
	if !m.session.sprite.Ready() {
		s.DrawTextCentered(btn.Bottom()+2, "loading ball sprite...", core.ColorGray)
	}
}

// drawAlert draws the terminal message over the playfield.
func (m Model) drawAlert() {
	text, color := LoseMessage, core.ColorRed
	if m.session.driver.Outcome() == core.OutcomeWin {
		text, color = WinMessage, core.ColorLime
	}
	hint := "press enter"

	s := m.screen
	w := max(len(text), len(hint)) + 6
	box := core.NewRect((s.Width()-w)/2, (s.Height()-5)/2, w, 5)
	s.FillRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, color)
	s.DrawTextCentered(box.Y+1, text, color)
	s.DrawTextCentered(box.Y+3, hint, core.ColorGray)
}

// GameState returns the current session summary.
func (m Model) GameState() core.GameState {
	return m.session.driver.GameState()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer tracking without a held button
	)

	_, err := p.Run()
	return err
}
