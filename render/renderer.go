package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/engine"
	"github.com/lixenwraith/rockstorm/parameter"
	"github.com/lixenwraith/rockstorm/status"
	"github.com/lixenwraith/rockstorm/vmath"
)

// drawOrder layers kinds back to front
var drawOrder = [...]core.Kind{
	core.KindAsteroid,
	core.KindDebris,
	core.KindSpark,
	core.KindBullet,
	core.KindPlayerShip,
}

// Frame carries the loop state drawn over the world
type Frame struct {
	Paused   bool
	Muted    bool
	Registry *status.Registry // debug overlay source, nil hides it
}

// TerminalRenderer draws the world and HUD into a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	view   Viewport
	debug  bool
	bg     tcell.Style
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		bg:     tcell.StyleDefault.Background(RgbBackground),
	}
	r.Resize()
	return r
}

// Resize re-reads the screen size and returns the new viewport
func (r *TerminalRenderer) Resize() Viewport {
	cols, rows := r.screen.Size()
	r.view = Viewport{Cols: cols, Rows: rows}
	return r.view
}

// Viewport returns the current cell mapping
func (r *TerminalRenderer) Viewport() Viewport {
	return r.view
}

// ToggleDebug flips the debug overlay and returns the new state
func (r *TerminalRenderer) ToggleDebug() bool {
	r.debug = !r.debug
	return r.debug
}

// SetDebug sets the debug overlay state
func (r *TerminalRenderer) SetDebug(on bool) {
	r.debug = on
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(w *engine.World, f Frame) {
	r.screen.Fill(' ', r.bg)

	for _, kind := range drawOrder {
		w.Store.Each(func(e *core.Entity) bool {
			if e.Kind == kind {
				r.drawEntity(w, e)
			}
			return true
		})
	}

	r.drawHUD(w, f)

	switch {
	case w.GameOver:
		r.drawBanner(fmt.Sprintf("GAME OVER  score %d  (r to restart)", w.Score))
	case f.Paused:
		r.drawBanner("PAUSED")
	}

	if r.debug && f.Registry != nil {
		r.drawDebug(f.Registry.Lines())
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawEntity(w *engine.World, e *core.Entity) {
	pos := vmath.V3XY(e.Transform.Position)

	switch e.Kind {
	case core.KindAsteroid:
		r.drawAsteroid(e)
	case core.KindBullet:
		r.setWorld(pos, bulletGlyph, tcell.StyleDefault.Foreground(RgbBullet))
	case core.KindDebris:
		r.setWorld(pos, debrisGlyph, tcell.StyleDefault.Foreground(Fade(debrisColor, e.Alpha())))
	case core.KindSpark:
		r.setWorld(pos, sparkGlyph, tcell.StyleDefault.Foreground(Fade(sparkColor, e.Alpha())))
	case core.KindPlayerShip:
		color := RgbShip
		if w.Invincible() && int(w.Time*parameter.ShipBlinkHz)%2 == 0 {
			color = RgbShipHit
		}
		glyph := shipGlyph(vmath.AngleZ(e.Transform.Rotation))
		r.setWorld(pos, glyph, tcell.StyleDefault.Foreground(color).Bold(true))
	}
}

// drawAsteroid fills every cell whose center lies inside the collision circle, at least the center cell
func (r *TerminalRenderer) drawAsteroid(e *core.Entity) {
	center := vmath.V3XY(e.Transform.Position)
	radius := parameter.AsteroidBaseRadius * e.EffectiveScale()
	glyph := asteroidGlyph(e.MeshVariant)
	base := AsteroidColor(e.EffectiveScale())
	rim := tcell.StyleDefault.Foreground(toTcell(base))
	inner := tcell.StyleDefault.Foreground(Fade(base, 0.6))

	r.setWorld(center, glyph, rim)

	minX := int(math.Floor((center.X - radius) / parameter.CellWorldWidth))
	maxX := int(math.Floor((center.X + radius) / parameter.CellWorldWidth))
	minY := int(math.Floor((center.Y - radius) / parameter.CellWorldHeight))
	maxY := int(math.Floor((center.Y + radius) / parameter.CellWorldHeight))
	r2 := radius * radius

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			p := r.view.CellToWorld(cx, cy+parameter.HUDRows)
			d2 := vmath.V2MagSq(vmath.V2Sub(p, center))
			if d2 > r2 {
				continue
			}
			style := rim
			if d2 < r2*0.4 {
				style = inner
			}
			r.setWorld(p, glyph, style)
		}
	}
}

// setWorld draws a rune at a world position, positions off the playfield are skipped
func (r *TerminalRenderer) setWorld(p vmath.Vec2, ch rune, style tcell.Style) {
	x, y, ok := r.view.WorldToCell(p)
	if !ok {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style.Background(RgbBackground))
}

// drawText writes s from (x, y) clipped to maxX, returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y, maxX int, s string, style tcell.Style) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if x+w > maxX {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}

func (r *TerminalRenderer) drawHUD(w *engine.World, f Frame) {
	if r.view.Rows < parameter.HUDRows {
		return
	}
	cols := r.view.Cols
	style := r.bg.Foreground(RgbHudText)

	x := r.drawText(0, 0, cols, "SCORE ", style)
	x = r.drawText(x, 0, cols, fmt.Sprintf("%06d", w.Score), r.bg.Foreground(RgbHudScore).Bold(true))
	x = r.drawText(x, 0, cols, "  LIVES ", style)
	x = r.drawText(x, 0, cols, strings.Repeat("♥", max(w.Lives, 0)), r.bg.Foreground(RgbHudLives))
	x = r.drawText(x, 0, cols, "  HP ", style)

	frac := 0.0
	if w.MaxHealth > 0 {
		frac = w.Health / w.MaxHealth
	}
	filled := int(math.Round(frac * parameter.HealthBarWidth))
	bar := r.bg.Foreground(HealthColor(frac))
	x = r.drawText(x, 0, cols, strings.Repeat("█", filled), bar)
	x = r.drawText(x, 0, cols, strings.Repeat("░", parameter.HealthBarWidth-filled), r.bg.Foreground(RgbHudBarBg))
	r.drawText(x, 0, cols, fmt.Sprintf(" %3.0f", w.Health), style)

	var tags []string
	if f.Paused {
		tags = append(tags, "PAUSED")
	}
	if f.Muted {
		tags = append(tags, "MUTED")
	}
	if len(tags) > 0 {
		label := strings.Join(tags, " ")
		r.drawText(cols-runewidth.StringWidth(label), 0, cols, label, r.bg.Foreground(RgbHudTag).Bold(true))
	}
}

// drawBanner centers a message on the playfield
func (r *TerminalRenderer) drawBanner(msg string) {
	width := runewidth.StringWidth(msg)
	x := max((r.view.Cols-width)/2, 0)
	y := parameter.HUDRows + r.view.FieldRows()/2
	if y >= r.view.Rows {
		return
	}
	r.drawText(x, y, r.view.Cols, msg, r.bg.Foreground(RgbHudBanner).Bold(true))
}

// drawDebug draws the registry lines in a panel on the right edge
func (r *TerminalRenderer) drawDebug(lines []string) {
	x := max(r.view.Cols-parameter.DebugPanelWidth, 0)
	panel := tcell.StyleDefault.Background(RgbDebugPanel).Foreground(RgbDebugText)

	for i, line := range lines {
		y := parameter.HUDRows + i
		if y >= r.view.Rows {
			break
		}
		for cx := x; cx < r.view.Cols; cx++ {
			r.screen.SetContent(cx, y, ' ', nil, panel)
		}
		r.drawText(x+1, y, r.view.Cols, line, panel)
	}
}
