package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-vanilla/internal/core"
	"github.com/vovakirdan/arcade-vanilla/internal/games/breakout"
	"github.com/vovakirdan/arcade-vanilla/internal/logging"
)

var (
	flagFrames     int
	flagSeedOffset float64
	flagRealtime   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with an autopilot",
	Long: `Run a game without a terminal UI. An autopilot steers the paddle
toward the ball through the same input path the keyboard uses.

The run stops at a win, a loss, or after --frames frames. The same
configuration and --seed-offset always produce the same result.

Examples:
  arcade simulate
  arcade simulate --frames 50000 --seed-offset -20
  arcade simulate --realtime --fps 120`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 20000, "Maximum number of frames")
	simulateCmd.Flags().Float64Var(&flagSeedOffset, "seed-offset", 0, "Autopilot aim offset from paddle center, in pixels")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at --fps instead of running flat out")
}

// SimulationResult summarizes a headless run.
type SimulationResult struct {
	RunID   string
	Outcome core.Outcome
	Score   int
	Total   int
	Lives   int
	Ticks   uint64
	Hash    uint64
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Options{Path: flagLogFile, Level: flagLogLevel})
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runID := logging.NewRunID()
	logger = logging.WithRun(logger, runID)
	logger.Info("simulation started", "source", source, "frames", flagFrames, "offset", flagSeedOffset)

	var pace <-chan time.Time
	if flagRealtime {
		ticker := time.NewTicker(time.Second / time.Duration(max(flagFPS, 1)))
		defer ticker.Stop()
		pace = ticker.C
	}

	world := breakout.NewWorld(cfg)
	res, err := simulate(ctx, world, flagSeedOffset, flagFrames, pace)
	res.RunID = runID
	if err != nil && !errors.Is(err, breakout.ErrFramesClosed) {
		return err
	}

	logger.Info("simulation finished", "outcome", res.Outcome, "score", res.Score, "ticks", res.Ticks)
	printResult(cmd, res)
	return nil
}

// simulate plays world with an autopilot for at most limit frames.
// A nil pace runs frames back to back. Running out of frames returns
// breakout.ErrFramesClosed with the partial result.
func simulate(ctx context.Context, world *breakout.World, offset float64, limit int, pace <-chan time.Time) (SimulationResult, error) {
	driver := breakout.NewDriver(world, nil)
	pilot := breakout.NewAutopilot(offset)
	pilot.Steer(world, driver.Input())

	frames := make(chan time.Time)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		defer close(frames)
		for range limit {
			now := time.Now()
			if pace != nil {
				select {
				case now = <-pace:
				case <-ctx.Done():
					return
				}
			}
			select {
			case frames <- now:
			case <-ctx.Done():
				return
			}
		}
	}()

	outcome, err := driver.Run(ctx, frames, func(w *breakout.World) {
		pilot.Steer(w, driver.Input())
	})

	snap := world.Snapshot()
	return SimulationResult{
		Outcome: outcome,
		Score:   world.Score(),
		Total:   world.TotalBricks(),
		Lives:   world.Lives(),
		Ticks:   world.Tick(),
		Hash:    snap.Hash(),
	}, err
}

func printResult(cmd *cobra.Command, res SimulationResult) {
	out := cmd.OutOrStdout()
	outcome := res.Outcome.String()
	if res.Outcome == core.OutcomeNone {
		outcome = "none (frame limit reached)"
	}
	fmt.Fprintf(out, "run:     %s\n", res.RunID)
	fmt.Fprintf(out, "outcome: %s\n", outcome)
	fmt.Fprintf(out, "score:   %d/%d\n", res.Score, res.Total)
	fmt.Fprintf(out, "lives:   %d\n", res.Lives)
	fmt.Fprintf(out, "ticks:   %d\n", res.Ticks)
	fmt.Fprintf(out, "hash:    %016x\n", res.Hash)
}
