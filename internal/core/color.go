package core

// Color is the foreground color of a screen cell. The platform maps each
// value to a terminal style.
type Color uint8

// Palette used by the runner renderer.
const (
	ColorDefault Color = iota
	ColorSky
	ColorFoliageFar
	ColorFoliageMid
	ColorFoliageNear
	ColorGround
	ColorPlayer
	ColorStone
	ColorLog
	ColorHole
	ColorBanana
	ColorHUD
)
