package main

import (
	"log"

	"github.com/younwookim/skyfall/internal/application/game"
	"github.com/younwookim/skyfall/internal/application/replay"
	"github.com/younwookim/skyfall/internal/application/scene/ending"
	"github.com/younwookim/skyfall/internal/application/scene/playing"
	"github.com/younwookim/skyfall/internal/application/system"
	"github.com/younwookim/skyfall/internal/infrastructure/config"
)

// statsInterval is how many frames pass between headless stat lines
const statsInterval = 60

// headlessOptions configures a run without a window
type headlessOptions struct {
	Level  int
	Frames int
	DT     float64
	Replay *replay.ReplayData // nil holds fire
}

// headlessResult is where a headless run stopped
type headlessResult struct {
	Frames int
	Level  int
	Ended  bool // reached the ending or quit
}

// runHeadless drives the scene loop without ebiten's run loop. It stops
// at the frame limit, when a replay runs out, or at the ending.
func runHeadless(cfg *config.GameConfig, opts headlessOptions, logger *log.Logger) (headlessResult, error) {
	var input system.InputReader = system.NewScriptedInput(system.ControlInput{Fire: true})
	var replayer *replay.Replayer
	if opts.Replay != nil {
		replayer = replay.NewReplayer(*opts.Replay)
		input = replayer
		opts.Level = replayer.Level()
		opts.DT = replayer.DT()
		logger.Printf("[Headless] replaying %d frames on level %d", replayer.TotalFrames(), opts.Level)
	}
	if opts.DT <= 0 {
		opts.DT = system.NominalDelta
	}

	first, err := playing.New(cfg, opts.Level, playing.WithInput(input), playing.WithLogger(logger))
	if err != nil {
		return headlessResult{}, err
	}
	g := game.New(first, cfg.Combat.Display.ScreenWidth, cfg.Combat.Display.ScreenHeight)
	g.SetDT(opts.DT)

	res := headlessResult{Level: opts.Level}
	for g.Frames() < opts.Frames {
		if replayer != nil && replayer.Done() {
			break
		}
		ended, err := g.Step(1)
		if err != nil {
			return res, err
		}

		switch cur := g.Current().(type) {
		case *playing.Playing:
			st := cur.Level().Stats()
			res.Level = cur.Level().Definition().Number
			if g.Frames()%statsInterval == 0 {
				logger.Printf("[Headless] L%d t=%.1f waves=%d enemies=%d shots=%d hp=%d %s",
					res.Level, st.Elapsed, st.Waves, st.ActiveEnemies, st.Projectiles, st.PlayerHealth, st.State)
			}
		case *ending.Ending:
			ended = true
		}
		if ended {
			res.Ended = true
			break
		}
	}
	res.Frames = g.Frames()
	return res, nil
}
