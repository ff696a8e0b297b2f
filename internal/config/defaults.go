package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// It mirrors defaults/breakout.yaml and is used when the embedded file
// cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Canvas: CanvasConfig{
			Width:  480,
			Height: 320,
		},
		Ball: BallConfig{
			Radius:       10,
			StartOffsetY: 30,
			SpeedX:       2,
			SpeedY:       -2,
		},
		Paddle: PaddleConfig{
			Width:  75,
			Height: 10,
			Speed:  7,
			Inset:  10,
		},
		Bricks: BricksConfig{
			Rows:       3,
			Columns:    5,
			Width:      75,
			Height:     20,
			Padding:    10,
			OffsetTop:  30,
			OffsetLeft: 30,
		},
		Physics: PhysicsConfig{
			BounceFactor: 1.1,
			MaxSpeed:     0,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Input: InputConfig{
			PointerEdge:      PointerEdgeDrop,
			KeyHoldInitialMS: 250,
			KeyHoldRepeatMS:  100,
		},
		Sound: SoundConfig{
			Enabled:    false,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}
