package parameter

// Terminal cell footprint in world units, a cell is about twice as tall as wide
const (
	CellWorldWidth  = 10.0
	CellWorldHeight = 20.0
)

// HUD layout
const (
	// HUDRows are reserved at the top of the terminal
	HUDRows = 1
	// HealthBarWidth is the health gauge width in cells
	HealthBarWidth = 20
	// DebugPanelWidth is the debug overlay width in cells
	DebugPanelWidth = 34
)

// ShipBlinkHz is the ship blink rate while invincible
const ShipBlinkHz = 8.0
