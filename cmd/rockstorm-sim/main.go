// rockstorm-sim runs the simulation without a terminal and prints the status registry
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/rockstorm/config"
	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/engine"
	"github.com/lixenwraith/rockstorm/event"
	"github.com/lixenwraith/rockstorm/status"
	"github.com/lixenwraith/rockstorm/vmath"
)

// autopilot is the scripted control applied every tick
type autopilot struct {
	Thrust float64
	Rotate float64
	Fire   bool
}

// result summarizes a run
type result struct {
	World    *engine.World
	Registry *status.Registry
	Events   map[event.EventType]int
	Ticks    int
}

// simulate steps a fresh world for ticks fixed steps, stopping early on game over when stopOnOver is set
func simulate(cfg config.Config, ticks int, pilot autopilot, stopOnOver bool) result {
	w := engine.NewWorld(cfg.Viewport.Width, cfg.Viewport.Height, vmath.NewFastRand(cfg.Seed))
	w.Tuning = cfg.Tuning
	engine.SpawnPlayer(w, w.Center())

	reg := status.NewRegistry()
	events := make(map[event.EventType]int)
	dt := 1.0 / float64(cfg.TickRate)
	in := engine.Intent{Thrust: pilot.Thrust, Rotate: pilot.Rotate, Fire: pilot.Fire}

	n := 0
	for ; n < ticks; n++ {
		if stopOnOver && w.GameOver {
			break
		}
		start := time.Now()
		engine.Step(w, dt, in)
		reg.Ints.Get("sim.step.ns").Store(int64(time.Since(start)))
		w.Events.Drain(func(ev event.GameEvent) {
			events[ev.Type]++
		})
	}
	engine.PublishStatus(w, reg)

	return result{World: w, Registry: reg, Events: events, Ticks: n}
}

func main() {
	configPath := flag.String("config", "rockstorm.toml", "TOML config file")
	envPath := flag.String("env", ".env", "dotenv file with ROCKSTORM_* overrides")
	ticks := flag.Int("ticks", 3600, "Number of fixed steps to run")
	seed := flag.Uint64("seed", 0, "World seed, 0 keeps the configured seed")
	thrust := flag.Float64("thrust", 0, "Constant thrust in [-1, 1]")
	rotate := flag.Float64("rotate", 0.3, "Constant turn in [-1, 1]")
	fire := flag.Bool("fire", true, "Hold the trigger")
	stop := flag.Bool("stop-on-over", true, "Stop at game over")
	flag.Parse()

	cfg, err := config.Load(*configPath, true)
	if err == nil {
		var fileEnv map[string]string
		if fileEnv, err = config.ReadEnvFile(*envPath); err == nil {
			err = cfg.ApplyEnv(config.Environ(fileEnv))
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	start := time.Now()
	res := simulate(cfg, *ticks, autopilot{Thrust: *thrust, Rotate: *rotate, Fire: *fire}, *stop)
	elapsed := time.Since(start)

	fmt.Printf("ran %d ticks (%.1fs game time) in %s\n", res.Ticks, res.World.Time, elapsed)
	for t := event.EventBulletFired; t <= event.EventGameOver; t++ {
		fmt.Printf("  %-20s %d\n", t.String(), res.Events[t])
	}
	for _, line := range res.Registry.Lines() {
		fmt.Println(" ", line)
	}
	if res.World.Store.CountKind(core.KindPlayerShip) == 0 {
		fmt.Println("ship destroyed")
	}
}
