package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/rockstorm/vmath"
)

// Terminal colors
var (
	RgbBackground = tcell.NewRGBColor(10, 12, 22)    // Deep space
	RgbShip       = tcell.NewRGBColor(120, 220, 255) // Cyan hull
	RgbShipHit    = tcell.NewRGBColor(255, 90, 90)   // Blink while invincible
	RgbBullet     = tcell.NewRGBColor(255, 240, 140) // Pale yellow

	RgbHudText    = tcell.NewRGBColor(220, 220, 220) // Light gray
	RgbHudScore   = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbHudLives   = tcell.NewRGBColor(255, 100, 130) // Pink hearts
	RgbHudBarBg   = tcell.NewRGBColor(40, 40, 50)    // Empty gauge
	RgbHudBanner  = tcell.NewRGBColor(255, 255, 255) // Banner text
	RgbHudTag     = tcell.NewRGBColor(255, 165, 0)   // PAUSED / MUTED tags
	RgbDebugText  = tcell.NewRGBColor(150, 230, 150) // Debug overlay
	RgbDebugPanel = tcell.NewRGBColor(20, 24, 34)    // Debug overlay background
)

// Blend sources, kept in colorful space so fades and gauges interpolate perceptually
var (
	backgroundColor = colorful.Color{R: 10.0 / 255, G: 12.0 / 255, B: 22.0 / 255}
	debrisColor     = colorful.Color{R: 0.78, G: 0.66, B: 0.52}
	sparkColor      = colorful.Color{R: 1.0, G: 0.82, B: 0.3}
	rockSmallColor  = colorful.Color{R: 0.82, G: 0.76, B: 0.66}
	rockLargeColor  = colorful.Color{R: 0.52, G: 0.45, B: 0.40}
	healthLowColor  = colorful.Color{R: 0.9, G: 0.15, B: 0.15}
	healthHighColor = colorful.Color{R: 0.2, G: 0.85, B: 0.35}
)

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Fade blends c toward the background in Lab space, alpha 1 is c and 0 is the background
func Fade(c colorful.Color, alpha float64) tcell.Color {
	return toTcell(backgroundColor.BlendLab(c, vmath.Clamp(alpha, 0, 1)))
}

// HealthColor grades the health gauge from red to green
func HealthColor(frac float64) tcell.Color {
	return toTcell(healthLowColor.BlendHcl(healthHighColor, vmath.Clamp(frac, 0, 1)).Clamped())
}

// AsteroidColor darkens with scale, scale 1.5 and above use the darkest tone
func AsteroidColor(scale float64) colorful.Color {
	return rockSmallColor.BlendLab(rockLargeColor, vmath.Clamp(scale/1.5, 0, 1))
}
