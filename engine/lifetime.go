package engine

import (
	"github.com/lixenwraith/rockstorm/component"
	"github.com/lixenwraith/rockstorm/core"
)

func newLifetime(seconds float64) component.Lifetime {
	return component.Lifetime{Remaining: seconds}
}

func newFadeout(seconds float64) component.Fadeout {
	return component.Fadeout{Remaining: seconds, Total: seconds}
}

// expireBullets ages every bullet lifetime by dt and removes bullets at or below zero
func expireBullets(w *World, dt float64) {
	var expired []core.EntityID
	for id, life := range w.BulletLifetimes {
		if _, ok := w.Store.Get(id); !ok {
			delete(w.BulletLifetimes, id)
			continue
		}
		if life.Tick(dt) {
			expired = append(expired, id)
			continue
		}
		w.BulletLifetimes[id] = life
	}
	for _, id := range expired {
		w.RemoveEntity(id)
	}
}

// fadeParticles ages debris and sparks, writing opacity = remaining/total until removal
func fadeParticles(w *World, dt float64) {
	var faded []core.EntityID
	for id, fade := range w.Fadeouts {
		e, ok := w.Store.Get(id)
		if !ok {
			delete(w.Fadeouts, id)
			continue
		}
		if fade.Tick(dt) {
			faded = append(faded, id)
			continue
		}
		w.Fadeouts[id] = fade
		e.Opacity = fade.Opacity()
		e.HasOpacity = true
	}
	for _, id := range faded {
		w.RemoveEntity(id)
	}
}
