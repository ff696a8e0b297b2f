package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-vanilla/internal/audio"
	"github.com/vovakirdan/arcade-vanilla/internal/core"
	"github.com/vovakirdan/arcade-vanilla/internal/logging"
	"github.com/vovakirdan/arcade-vanilla/internal/platform/tui"
)

var (
	flagSprite string
	flagSound  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Press Enter, Space or click "Run" to start. Move the paddle with the
arrow keys (or a/d, h/l) or with the mouse. When the game ends, dismiss
the alert to start over.

Controls:
  Left/Right   - Move paddle
  Mouse        - Paddle follows the pointer
  Enter/Space  - Run, close alert
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  arcade play
  arcade play --difficulty easy
  arcade play --sprite ./ball.png --sound
  arcade play --config ./my-breakout.yaml --log-file /tmp/arcade.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagSprite, "sprite", "", "Ball image (PNG, GIF or JPEG)")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound cues")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Options{Path: flagLogFile, Level: flagLogLevel})
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)

	// Get terminal size early so the first frame has the right layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var player *audio.Player
	if cfg.Sound.Enabled {
		player = audio.NewPlayer(cfg.Sound)
		if soundErr := player.Init(); soundErr != nil {
			// Non-fatal, game can run without sound
			logger.Warn("sound disabled", "error", soundErr)
			player = nil
		} else {
			defer player.Close()
		}
	}

	return tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		Logger: logger,
		Sound:  player,
	})
}
