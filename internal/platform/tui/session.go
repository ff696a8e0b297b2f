package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-vanilla/internal/audio"
	"github.com/vovakirdan/arcade-vanilla/internal/config"
	"github.com/vovakirdan/arcade-vanilla/internal/core"
	"github.com/vovakirdan/arcade-vanilla/internal/games/breakout"
	"github.com/vovakirdan/arcade-vanilla/internal/logging"
)

// session is one game from start screen to terminal alert. A reload
// discards it and builds a new one.
type session struct {
	id     string
	world  *breakout.World
	driver *breakout.Driver
	sprite *breakout.Sprite
	logger *log.Logger
}

func newSession(cfg config.BreakoutConfig, logger *log.Logger) *session {
	id := logging.NewRunID()
	world := breakout.NewWorld(cfg)
	s := &session{
		id:     id,
		world:  world,
		driver: breakout.NewDriver(world, breakout.NewInputAdapter()),
		sprite: breakout.LoadSpriteAsync(cfg.Sprite.Path),
		logger: logging.WithRun(logger, id),
	}
	s.logger.Info("session ready", "bricks", world.TotalBricks(), "lives", world.Lives())
	return s
}

// spriteLoadedMsg reports the end of a background sprite load.
type spriteLoadedMsg struct {
	sessionID string
	err       error
}

// waitSprite returns a command that resolves once the sprite is decoded.
func (s *session) waitSprite() tea.Cmd {
	sprite, id := s.sprite, s.id
	return func() tea.Msg {
		return spriteLoadedMsg{sessionID: id, err: sprite.Wait(context.Background())}
	}
}

// report logs and plays sound for the events of one tick.
func (s *session) report(res breakout.StepResult, player *audio.Player) {
	for _, ev := range res.Events {
		if cue, ok := cueFor(ev.Kind); ok {
			player.Play(cue)
		}
		switch ev.Kind {
		case breakout.EventBrickDestroyed:
			s.logger.Debug("brick destroyed", "col", ev.Column, "row", ev.Row, "score", s.world.Score())
		case breakout.EventLifeLost:
			s.logger.Info("life lost", "lives", s.world.Lives(), "tick", s.world.Tick())
		}
	}
	if res.Outcome != core.OutcomeNone {
		s.logger.Info("game finished",
			"outcome", res.Outcome,
			"score", s.world.Score(),
			"lives", s.world.Lives(),
			"ticks", s.world.Tick(),
		)
	}
}

// cueFor maps a game event to its sound.
func cueFor(kind breakout.EventKind) (audio.Cue, bool) {
	switch kind {
	case breakout.EventBrickDestroyed:
		return audio.CueBrick, true
	case breakout.EventWallBounce:
		return audio.CueWall, true
	case breakout.EventPaddleHit:
		return audio.CuePaddle, true
	case breakout.EventLifeLost:
		return audio.CueLifeLost, true
	case breakout.EventWin:
		return audio.CueWin, true
	case breakout.EventLose:
		return audio.CueLose, true
	default:
		return 0, false
	}
}
