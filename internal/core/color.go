package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Palette used by the board, HUD and effects.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorNeonPink
	ColorElectricBlue
	ColorGray
	ColorDimGray
)

// Dim returns a darker variant used for fading effects.
// Colors without a darker variant fade to gray.
func (c Color) Dim() Color {
	switch c {
	case ColorBrightCyan, ColorElectricBlue:
		return ColorCyan
	case ColorBrightWhite:
		return ColorWhite
	case ColorBrightGreen:
		return ColorGreen
	case ColorBrightRed:
		return ColorRed
	case ColorGray, ColorDimGray:
		return ColorDimGray
	default:
		return ColorGray
	}
}
