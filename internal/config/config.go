// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for configurations the game cannot run with.
var ErrInvalidConfig = errors.New("invalid config")

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Input    InputConfig    `yaml:"input"`
	Sprite   SpriteConfig   `yaml:"sprite"`
	Sound    SoundConfig    `yaml:"sound"`
}

// CanvasConfig defines the logical drawing surface in pixels.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball size and its serve state.
type BallConfig struct {
	Radius       float64 `yaml:"radius"`
	StartOffsetY float64 `yaml:"start_offset_y"` // Distance from the canvas bottom at serve
	SpeedX       float64 `yaml:"speed_x"`        // Initial dx in pixels per frame
	SpeedY       float64 `yaml:"speed_y"`        // Initial dy in pixels per frame
}

// PaddleConfig defines paddle geometry and keyboard movement.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Pixels per frame while a key is held
	Inset  float64 `yaml:"inset"` // Margin kept to either canvas side
}

// BricksConfig defines the fixed brick grid layout.
type BricksConfig struct {
	Rows       int     `yaml:"rows"`
	Columns    int     `yaml:"columns"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
}

// Total returns the number of bricks in the grid.
func (b BricksConfig) Total() int {
	return b.Rows * b.Columns
}

// PhysicsConfig defines reflection behavior.
type PhysicsConfig struct {
	BounceFactor float64 `yaml:"bounce_factor"` // Velocity multiplier on paddle return
	MaxSpeed     float64 `yaml:"max_speed"`     // Per-axis cap, 0 = unbounded
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// Pointer edge policies for pointer positions near the canvas sides.
const (
	PointerEdgeDrop  = "drop"  // Ignore positions outside the allowed zone
	PointerEdgeClamp = "clamp" // Snap positions to the nearest edge of the zone
)

// InputConfig defines input policies.
type InputConfig struct {
	PointerEdge string `yaml:"pointer_edge"`
	// Terminals report key presses only. A held key is treated as released
	// when no repeat arrives within these windows.
	KeyHoldInitialMS int `yaml:"key_hold_initial_ms"`
	KeyHoldRepeatMS  int `yaml:"key_hold_repeat_ms"`
}

// SpriteConfig points at the ball bitmap.
type SpriteConfig struct {
	Path string `yaml:"path"` // Empty means the built-in disc
}

// SoundConfig defines optional sound cues.
type SoundConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// MaxLives is the upper bound on starting lives.
const MaxLives = 3

// Validate checks that the configuration describes a playable game.
func (c BreakoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Canvas.Width > 0 && c.Canvas.Height > 0, "canvas must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height)
	check(c.Ball.Radius > 0, "ball radius must be positive, got %v", c.Ball.Radius)
	check(2*c.Ball.Radius < c.Canvas.Width && 2*c.Ball.Radius < c.Canvas.Height, "ball of radius %v does not fit the canvas", c.Ball.Radius)
	check(c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height)
	check(c.Paddle.Speed >= 0, "paddle speed must not be negative, got %v", c.Paddle.Speed)
	check(c.Paddle.Inset >= 0, "paddle inset must not be negative, got %v", c.Paddle.Inset)
	check(c.Paddle.Width+2*c.Paddle.Inset <= c.Canvas.Width, "paddle of width %v with inset %v does not fit the canvas", c.Paddle.Width, c.Paddle.Inset)
	check(c.Bricks.Rows > 0 && c.Bricks.Columns > 0, "brick grid must be positive, got %dx%d", c.Bricks.Columns, c.Bricks.Rows)
	check(c.Bricks.Width > 0 && c.Bricks.Height > 0, "bricks must be positive, got %vx%v", c.Bricks.Width, c.Bricks.Height)

	gridRight := c.Bricks.OffsetLeft + float64(c.Bricks.Columns)*(c.Bricks.Width+c.Bricks.Padding) - c.Bricks.Padding
	gridBottom := c.Bricks.OffsetTop + float64(c.Bricks.Rows)*(c.Bricks.Height+c.Bricks.Padding) - c.Bricks.Padding
	check(gridRight <= c.Canvas.Width, "brick grid right edge %v exceeds canvas width %v", gridRight, c.Canvas.Width)
	check(gridBottom < c.Canvas.Height-c.Paddle.Height, "brick grid bottom edge %v overlaps the paddle row", gridBottom)

	check(c.Physics.BounceFactor > 0, "bounce factor must be positive, got %v", c.Physics.BounceFactor)
	check(c.Physics.MaxSpeed >= 0, "max speed must not be negative, got %v", c.Physics.MaxSpeed)
	check(c.Gameplay.Lives >= 1 && c.Gameplay.Lives <= MaxLives, "lives must be within [1, %d], got %d", MaxLives, c.Gameplay.Lives)
	check(c.Input.PointerEdge == PointerEdgeDrop || c.Input.PointerEdge == PointerEdgeClamp,
		"pointer_edge must be %q or %q, got %q", PointerEdgeDrop, PointerEdgeClamp, c.Input.PointerEdge)
	check(c.Input.KeyHoldInitialMS > 0 && c.Input.KeyHoldRepeatMS > 0, "key hold windows must be positive")
	check(c.Sound.Volume >= 0 && c.Sound.Volume <= 1, "sound volume must be within [0, 1], got %v", c.Sound.Volume)
	check(!c.Sound.Enabled || c.Sound.SampleRate > 0, "sound sample rate must be positive, got %d", c.Sound.SampleRate)

	return errors.Join(errs...)
}
