package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rockstorm/audio"
	"github.com/lixenwraith/rockstorm/bridge"
	"github.com/lixenwraith/rockstorm/config"
	"github.com/lixenwraith/rockstorm/engine"
	"github.com/lixenwraith/rockstorm/event"
	"github.com/lixenwraith/rockstorm/input"
	"github.com/lixenwraith/rockstorm/render"
	"github.com/lixenwraith/rockstorm/status"
	"github.com/lixenwraith/rockstorm/vmath"
)

// session owns one game: the world plus the collaborators reading and feeding it
type session struct {
	cfg      config.Config
	world    *engine.World
	machine  *input.Machine
	renderer *render.TerminalRenderer
	sound    *audio.SoundManager
	bridge   *bridge.Bridge // nil when no physics backend is attached
	registry *status.Registry

	paused   bool
	restarts uint64
}

// newSession builds a session sized to the screen with a fresh world
func newSession(cfg config.Config, screen tcell.Screen, keys *input.KeyTable, sound *audio.SoundManager, br *bridge.Bridge) *session {
	s := &session{
		cfg:      cfg,
		machine:  input.NewMachine(keys),
		renderer: render.NewTerminalRenderer(screen),
		sound:    sound,
		bridge:   br,
		registry: status.NewRegistry(),
	}
	s.renderer.SetDebug(cfg.Debug)
	s.machine.SetProjection(s.renderer.Viewport().CellToWorld)
	s.world = s.newWorld()
	return s
}

// newWorld seeds a world over the current viewport with the ship at its center
func (s *session) newWorld() *engine.World {
	width, height := s.renderer.Viewport().WorldSize()
	seed := s.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	w := engine.NewWorld(width, height, vmath.NewFastRand(seed+s.restarts))
	w.Tuning = s.cfg.Tuning
	engine.SpawnPlayer(w, w.Center())
	return w
}

// restart discards the world and starts over
func (s *session) restart() {
	s.restarts++
	s.world = s.newWorld()
	s.machine.Reset()
	s.paused = false
	log.Printf("restart #%d seed=%d", s.restarts, s.cfg.Seed)
}

// handle applies one terminal event, returns false when the player quits
func (s *session) handle(ev tcell.Event) bool {
	switch s.machine.Process(ev) {
	case input.ActionQuit:
		return false
	case input.ActionPause:
		if !s.world.GameOver {
			s.paused = !s.paused
			s.machine.Reset()
		}
	case input.ActionToggleMute:
		log.Printf("audio muted=%v", s.sound.ToggleMute())
	case input.ActionToggleDebug:
		s.renderer.ToggleDebug()
	case input.ActionRestart:
		s.restart()
	case input.ActionResize:
		view := s.renderer.Resize()
		s.world.Resize(view.WorldSize())
		s.machine.SetProjection(view.CellToWorld)
	}
	return true
}

// tick advances the simulation by dt seconds of game time
func (s *session) tick(now time.Time, dt float64) {
	if s.paused {
		s.sound.SetThrust(false)
		return
	}

	in := s.machine.Intent(now)
	if s.bridge != nil {
		s.bridge.SendControl(in)
		s.bridge.ApplyLatest(s.world)
	}

	start := time.Now()
	engine.Step(s.world, dt, in)
	s.registry.Ints.Get("sim.step.ns").Store(int64(time.Since(start)))

	s.sound.SetThrust(s.world.Thrusting(in))
	s.world.Events.Drain(s.dispatch)

	engine.PublishStatus(s.world, s.registry)
	if s.bridge != nil {
		sent, dropped := s.bridge.Stats()
		s.registry.Ints.Get("bridge.sent").Store(int64(sent))
		s.registry.Ints.Get("bridge.dropped").Store(int64(dropped))
	}
}

// dispatch routes one simulation event to audio and the log
func (s *session) dispatch(ev event.GameEvent) {
	s.sound.HandleEvent(ev)
	switch ev.Type {
	case event.EventShipLost:
		log.Printf("ship lost, %v lives left, score %d", ev.Amount, s.world.Score)
	case event.EventGameOver:
		log.Printf("game over at t=%.2fs score %d", s.world.Time, s.world.Score)
	}
}

// draw renders the current frame
func (s *session) draw() {
	s.renderer.RenderFrame(s.world, render.Frame{
		Paused:   s.paused,
		Muted:    s.sound.Muted(),
		Registry: s.registry,
	})
}
