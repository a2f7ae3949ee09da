package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/skyfall/internal/application/game"
	"github.com/younwookim/skyfall/internal/application/replay"
	"github.com/younwookim/skyfall/internal/application/scene/playing"
	"github.com/younwookim/skyfall/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

// loadConfig reads the embedded configs, or dir when it is set
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

func main() {
	// Parse command line flags
	levelFlag := flag.Int("level", 1, "Level to start on (1-5)")
	configFlag := flag.String("config", "", "Load configs from a directory instead of the embedded ones")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play a recording back without a window")
	headlessFlag := flag.Bool("headless", false, "Run without a window, holding fire")
	framesFlag := flag.Int("frames", 60*60, "Frame limit for headless runs")
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *headlessFlag || *replayFlag != "" {
		opts := headlessOptions{
			Level:  *levelFlag,
			Frames: *framesFlag,
			DT:     1.0 / float64(cfg.Combat.Display.Framerate),
		}
		if *replayFlag != "" {
			data, err := replay.LoadReplay(*replayFlag)
			if err != nil {
				log.Fatalf("Failed to load replay: %v", err)
			}
			opts.Replay = data
		}

		res, err := runHeadless(cfg, opts, log.Default())
		if err != nil {
			log.Fatalf("Headless run failed: %v", err)
		}
		log.Printf("[Headless] %d frames, finished on level %d, ended=%t", res.Frames, res.Level, res.Ended)
		return
	}

	var sceneOpts []playing.Option
	if *recordFlag != "" {
		sceneOpts = append(sceneOpts, playing.WithRecording(*recordFlag, 1.0/float64(cfg.Combat.Display.Framerate)))
	}
	first, err := playing.New(cfg, *levelFlag, sceneOpts...)
	if err != nil {
		log.Fatalf("Failed to start level %d: %v", *levelFlag, err)
	}

	display := cfg.Combat.Display
	g := game.New(first, display.ScreenWidth, display.ScreenHeight)
	g.SetDT(1.0 / float64(display.Framerate))

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Skyfall")
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
