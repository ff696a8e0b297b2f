package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-vanilla/internal/config"
	"github.com/vovakirdan/arcade-vanilla/internal/core"
	"github.com/vovakirdan/arcade-vanilla/internal/games/breakout"
)

var t0 = time.Unix(1000, 0)

func newTestModel(t *testing.T, cfg config.BreakoutConfig) Model {
	t.Helper()
	m := NewModel(Options{
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: 96, ScreenH: 34, TickRate: 60},
	})
	m.now = func() time.Time { return t0 }
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tickAt(d time.Duration) TickMsg {
	return TickMsg(t0.Add(d))
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStartScreen(t *testing.T) {
	m := newTestModel(t, config.DefaultBreakoutConfig())

	view := m.View()
	if !strings.Contains(view, "Run") || !strings.Contains(view, "BREAKOUT") {
		t.Errorf("start screen missing button:\n%s", view)
	}

	m, cmd := update(t, m, tickAt(16*time.Millisecond))
	if cmd != nil {
		t.Error("ticks before start should not reschedule")
	}
	if m.session.world.Tick() != 0 || m.GameState().Running {
		t.Error("game should not run before start")
	}

	// Movement keys are not listened to yet.
	m, _ = update(t, m, keyRight)
	if m.session.driver.Input().Pending() != 0 {
		t.Error("keys before start should be ignored")
	}
}

func TestStartWithKey(t *testing.T) {
	m := newTestModel(t, config.DefaultBreakoutConfig())

	m, cmd := update(t, m, keyEnter)
	if cmd == nil {
		t.Fatal("start should schedule the first frame")
	}
	if m.phase != phasePlaying || !m.GameState().Running {
		t.Fatal("game should be running after start")
	}

	// The start control is gone: enter does nothing now.
	m, cmd = update(t, m, keyEnter)
	if cmd != nil || m.phase != phasePlaying {
		t.Error("second enter should be ignored")
	}

	m, cmd = update(t, m, tickAt(16*time.Millisecond))
	if cmd == nil {
		t.Error("running game should reschedule")
	}
	if m.session.world.Tick() != 1 {
		t.Errorf("world tick = %d, expected 1", m.session.world.Tick())
	}
}

func TestStartWithClick(t *testing.T) {
	m := newTestModel(t, config.DefaultBreakoutConfig())

	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.phase != phaseStart {
		t.Fatal("click outside the button should not start")
	}

	m, cmd := update(t, m, tea.MouseMsg{X: 47, Y: 16, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if cmd == nil || m.phase != phasePlaying {
		t.Error("click on the button should start the game")
	}
}

func TestKeyHoldMovesPaddle(t *testing.T) {
	m := newTestModel(t, config.DefaultBreakoutConfig())
	m, _ = update(t, m, keyEnter)

	m, _ = update(t, m, keyRight)
	m, _ = update(t, m, tickAt(16*time.Millisecond))
	if got := m.session.world.Paddle().X; got != 209.5 {
		t.Fatalf("paddle x = %v, expected 209.5", got)
	}

	// No repeat within the initial window: the key is released.
	m, _ = update(t, m, tickAt(300*time.Millisecond))
	if got := m.session.world.Paddle().X; got != 209.5 {
		t.Errorf("paddle x = %v, expected released key to stop at 209.5", got)
	}
}

func TestRepeatedKeyQueuesOnce(t *testing.T) {
	m := newTestModel(t, config.DefaultBreakoutConfig())
	m, _ = update(t, m, keyEnter)

	m, _ = update(t, m, keyRight)
	m, _ = update(t, m, keyRight)
	m, _ = update(t, m, keyRight)
	if got := m.session.driver.Input().Pending(); got != 1 {
		t.Errorf("pending intents = %d, expected one key down for auto-repeat", got)
	}
}

func TestStartScreenShowsSpriteLoading(t *testing.T) {
	m := newTestModel(t, config.DefaultBreakoutConfig())
	if strings.Contains(m.View(), "loading ball sprite") {
		t.Error("built-in sprite is ready at once")
	}

	m.session.sprite = &breakout.Sprite{}
	if !strings.Contains(m.View(), "loading ball sprite") {
		t.Error("start screen should note a sprite still loading")
	}
}

func TestReloadLogsFinishedGame(t *testing.T) {
	var buf bytes.Buffer
	m := NewModel(Options{
		Config:  losingConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 96, ScreenH: 34, TickRate: 60},
		Logger:  log.New(&buf),
	})
	m.now = func() time.Time { return t0 }

	m, _ = update(t, m, keyEnter)
	m, _ = update(t, m, tea.MouseMsg{X: 10, Action: tea.MouseActionMotion})
	m = playUntilAlert(t, m)
	m, _ = update(t, m, keyEnter)

	out := buf.String()
	if !strings.Contains(out, "reloading") || !strings.Contains(out, "outcome=lose") {
		t.Errorf("reload log = %q", out)
	}
}

func TestOppositeKeyReleases(t *testing.T) {
	m := newTestModel(t, config.DefaultBreakoutConfig())
	m, _ = update(t, m, keyEnter)

	m, _ = update(t, m, keyRight)
	m, _ = update(t, m, runes("a"))
	m, _ = update(t, m, tickAt(16*time.Millisecond))

	if got := m.session.world.Paddle().X; got != 195.5 {
		t.Errorf("paddle x = %v, expected 195.5", got)
	}
	if in := m.session.world.Intent(); in.Right || !in.Left {
		t.Errorf("intent = %+v, expected left only", in)
	}
}

func TestMouseMovesPaddle(t *testing.T) {
	m := newTestModel(t, config.DefaultBreakoutConfig())

	m, _ = update(t, m, tea.MouseMsg{X: 48, Action: tea.MouseActionMotion})
	if m.session.driver.Input().Pending() != 0 {
		t.Error("pointer before start should be ignored")
	}

	m, _ = update(t, m, keyEnter)
	m, _ = update(t, m, tea.MouseMsg{X: 48, Action: tea.MouseActionMotion})
	m, _ = update(t, m, tickAt(16*time.Millisecond))

	if got := m.session.world.Paddle().X; got != 215 {
		t.Errorf("paddle x = %v, expected 215", got)
	}
}

// losingConfig serves the ball straight down with a single life.
func losingConfig() config.BreakoutConfig {
	cfg := config.DefaultBreakoutConfig()
	cfg.Gameplay.Lives = 1
	cfg.Ball.SpeedY = 5
	return cfg
}

// winningConfig places a single brick in the ball's path.
func winningConfig() config.BreakoutConfig {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.Rows, cfg.Bricks.Columns = 1, 1
	cfg.Bricks.OffsetLeft, cfg.Bricks.OffsetTop = 235, 270
	return cfg
}

func playUntilAlert(t *testing.T, m Model) Model {
	t.Helper()
	for i := 1; i <= 100 && m.phase == phasePlaying; i++ {
		m, _ = update(t, m, tickAt(time.Duration(i)*16*time.Millisecond))
	}
	if m.phase != phaseAlert {
		t.Fatal("game did not end")
	}
	return m
}

func TestLoseShowsAlertAndReloads(t *testing.T) {
	m := newTestModel(t, losingConfig())
	m, _ = update(t, m, keyEnter)
	// Park the paddle away from the ball.
	m, _ = update(t, m, tea.MouseMsg{X: 10, Action: tea.MouseActionMotion})

	m = playUntilAlert(t, m)

	if gs := m.GameState(); gs.Outcome != core.OutcomeLose || gs.Lives != 0 || gs.Running {
		t.Errorf("GameState() = %+v", gs)
	}
	if !strings.Contains(m.View(), LoseMessage) {
		t.Error("view should show the lose alert")
	}

	tick := m.session.world.Tick()
	m, cmd := update(t, m, tickAt(time.Hour))
	if cmd != nil || m.session.world.Tick() != tick {
		t.Error("no frames should run after the game ends")
	}

	// Movement is ignored while the alert is up.
	m, _ = update(t, m, keyRight)
	if m.session.driver.Input().Pending() != 0 {
		t.Error("alert should block game input")
	}

	oldID := m.session.id
	m, cmd = update(t, m, keyEnter)
	if cmd == nil {
		t.Error("reload should wait for the new sprite")
	}
	if m.phase != phaseStart || m.session.id == oldID {
		t.Fatal("dismissing the alert should reload the session")
	}
	if gs := m.GameState(); gs.Outcome != core.OutcomeNone || gs.Running || gs.Lives != 1 || gs.Score != 0 {
		t.Errorf("GameState() after reload = %+v", gs)
	}

	// The new session has its own start control.
	m, _ = update(t, m, keyEnter)
	if !m.GameState().Running {
		t.Error("reloaded session should start")
	}
}

func TestWinShowsAlert(t *testing.T) {
	m := newTestModel(t, winningConfig())
	m, _ = update(t, m, keyEnter)

	m = playUntilAlert(t, m)

	if gs := m.GameState(); gs.Outcome != core.OutcomeWin || gs.Score != 1 {
		t.Errorf("GameState() = %+v", gs)
	}
	if !strings.Contains(m.View(), WinMessage) {
		t.Error("view should show the win alert")
	}

	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.phase != phaseStart {
		t.Error("click should dismiss the alert")
	}
}

func TestQuitAndHelp(t *testing.T) {
	m := newTestModel(t, config.DefaultBreakoutConfig())

	m, _ = update(t, m, runes("?"))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}

	m, cmd := update(t, m, runes("q"))
	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestWindowTooSmall(t *testing.T) {
	m := newTestModel(t, config.DefaultBreakoutConfig())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 8})
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("small window should show a warning")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != m.layout.cols || m.screen.Height() != m.layout.rows {
		t.Errorf("screen %dx%d does not match layout %+v", m.screen.Width(), m.screen.Height(), m.layout)
	}
}

func TestSpriteLoadedMsg(t *testing.T) {
	m := newTestModel(t, config.DefaultBreakoutConfig())

	msg := m.Init()()
	loaded, ok := msg.(spriteLoadedMsg)
	if !ok {
		t.Fatalf("Init command returned %T", msg)
	}
	if loaded.err != nil || loaded.sessionID != m.session.id {
		t.Errorf("unexpected sprite message %+v", loaded)
	}

	// Stale or failed loads only log.
	m, _ = update(t, m, spriteLoadedMsg{sessionID: "stale"})
	m, _ = update(t, m, spriteLoadedMsg{sessionID: m.session.id, err: errTest})
	if m.phase != phaseStart {
		t.Error("sprite messages should not change the phase")
	}
}

type testError string

func (e testError) Error() string { return string(e) }

const errTest = testError("boom")

func TestRenderScreenIndent(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")

	out := RenderScreen(s, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "   ") || !strings.Contains(lines[0], "ab") {
		t.Errorf("line 0 = %q", lines[0])
	}
}

func TestCueForEvents(t *testing.T) {
	for k := range 6 {
		if _, ok := cueFor(breakout.EventKind(k)); !ok {
			t.Errorf("event %d has no cue", k)
		}
	}
	if _, ok := cueFor(breakout.EventKind(99)); ok {
		t.Error("unknown event should have no cue")
	}
}
