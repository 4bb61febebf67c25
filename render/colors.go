package render

import "github.com/gdamore/tcell/v2"

var (
	ColorBackground = tcell.NewRGBColor(8, 10, 20)
	ColorStar       = tcell.NewRGBColor(60, 66, 96)
	ColorShip       = tcell.NewRGBColor(120, 220, 255)
	ColorShield     = tcell.NewRGBColor(90, 160, 255)
	ColorBullet     = tcell.NewRGBColor(255, 240, 160)
	ColorMissile    = tcell.NewRGBColor(255, 150, 80)
	ColorOrbit      = tcell.NewRGBColor(180, 140, 255)
	ColorBeam       = tcell.NewRGBColor(255, 90, 90)
	ColorLightning  = tcell.NewRGBColor(170, 200, 255)
	ColorDrone      = tcell.NewRGBColor(140, 255, 170)
	ColorPulse      = tcell.NewRGBColor(255, 200, 120)
	ColorHeal       = tcell.NewRGBColor(120, 255, 140)
	ColorWell       = tcell.NewRGBColor(150, 90, 220)
	ColorXP         = tcell.NewRGBColor(120, 255, 200)
	ColorEnemy      = tcell.NewRGBColor(255, 85, 85)
	ColorHPBar      = tcell.NewRGBColor(230, 70, 70)
	ColorXPBar      = tcell.NewRGBColor(80, 200, 255)
	ColorText       = tcell.NewRGBColor(220, 224, 240)
	ColorDim        = tcell.NewRGBColor(120, 126, 150)
	ColorAccent     = tcell.NewRGBColor(255, 210, 90)
	ColorPanel      = tcell.NewRGBColor(22, 26, 44)
)

var (
	StyleBackground = tcell.StyleDefault.Background(ColorBackground).Foreground(ColorStar)
	StyleText       = tcell.StyleDefault.Background(ColorBackground).Foreground(ColorText)
	StylePanel      = tcell.StyleDefault.Background(ColorPanel).Foreground(ColorText)
)

// Fg returns a foreground style on the arena background
func Fg(c tcell.Color) tcell.Style {
	return StyleBackground.Foreground(c)
}

// HexColor parses a catalog color such as "#ff5555", returning fallback when empty or invalid
func HexColor(hex string, fallback tcell.Color) tcell.Color {
	if hex == "" {
		return fallback
	}
	if c := tcell.GetColor(hex); c != tcell.ColorDefault {
		return c
	}
	return fallback
}
