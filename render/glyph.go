package render

import "math"

// Ship arrows by heading octant, clockwise from +X on a Y-down screen
var shipArrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Asteroid fill glyphs by mesh variant
var asteroidGlyphs = []rune{'#', '@', '%', '&', '8', '0'}

const (
	bulletGlyph = '•'
	debrisGlyph = '·'
	sparkGlyph  = '*'
)

// shipGlyph returns the arrow closest to a heading angle
func shipGlyph(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return shipArrows[octant]
}

// asteroidGlyph maps any variant, negative included, onto the glyph set
func asteroidGlyph(variant int) rune {
	n := len(asteroidGlyphs)
	return asteroidGlyphs[((variant%n)+n)%n]
}
