package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/rockstorm/audio"
	"github.com/lixenwraith/rockstorm/bridge"
	"github.com/lixenwraith/rockstorm/config"
	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/input"
	"github.com/lixenwraith/rockstorm/parameter"
)

const (
	defaultConfigPath = "rockstorm.toml"
	defaultKeysPath   = "keys.toml"
	defaultEnvPath    = ".env"
)

var (
	configPath = flag.String("config", defaultConfigPath, "TOML config file")
	keysPath   = flag.String("keys", defaultKeysPath, "TOML keymap overriding the default bindings")
	envPath    = flag.String("env", defaultEnvPath, "dotenv file with ROCKSTORM_* overrides")
	debugFlag  = flag.Bool("debug", false, "Write logs/rockstorm.log and start with the debug overlay")
	seedFlag   = flag.Uint64("seed", 0, "World seed, 0 keeps the configured seed")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	bridgeFlag = flag.String("bridge", "", `Physics bridge backend: "", "null" or a command speaking msgpack on stdio`)
)

func main() {
	// Terminal teardown happens in HandleCrash via the registered cleanup
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "rockstorm needs an interactive terminal, use rockstorm-sim for headless runs")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	log.Printf("rockstorm starting seed=%d tick_rate=%d", cfg.Seed, cfg.TickRate)

	keys := input.DefaultKeyTable()
	if data, err := os.ReadFile(*keysPath); err == nil {
		override, err := input.LoadKeyConfig(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Keymap error: %v\n", err)
			os.Exit(1)
		}
		keys = input.MergeKeyTable(keys, override)
	} else if *keysPath != defaultKeysPath {
		fmt.Fprintf(os.Stderr, "Keymap error: %v\n", err)
		os.Exit(1)
	}

	backend, err := newBackend(*bridgeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bridge error: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()

	sound := audio.NewSoundManager(audio.NewAudioConfig(cfg.Audio, cfg.Volume))
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(*muteFlag)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var br *bridge.Bridge
	if backend != nil {
		br = bridge.New(backend)
		br.Start(ctx)
		defer br.Stop()
	}

	s := newSession(cfg, screen, keys, sound, br)
	run(s, screen)

	if br != nil {
		if err := br.Err(); err != nil {
			log.Printf("bridge stopped: %v", err)
		}
	}
	log.Printf("rockstorm exiting score=%d", s.world.Score)
}

// loadConfig reads the config file, the dotenv file and the environment, then applies flags
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configPath, *configPath == defaultConfigPath)
	if err != nil {
		return cfg, err
	}

	fileEnv, err := config.ReadEnvFile(*envPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(config.Environ(fileEnv)); err != nil {
		return cfg, err
	}

	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}
	return cfg, nil
}

// run is the main loop: events as they arrive, fixed-step simulation, one render per frame tick
func run(s *session, screen tcell.Screen) {
	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	step := time.Second / time.Duration(s.cfg.TickRate)
	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	last := time.Now()
	var acc time.Duration

	s.draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !s.handle(ev) {
				return
			}

		case now := <-frameTicker.C:
			// Stalls are capped so the simulation never runs a burst of catch-up steps
			acc += min(now.Sub(last), time.Duration(parameter.MaxFrameDelta*float64(time.Second)))
			last = now
			for acc >= step {
				s.tick(now, step.Seconds())
				acc -= step
			}
			s.draw()
		}
	}
}
