package core

// Color represents a foreground color for a screen cell.
// Terminal hosts map it to ANSI 256-color codes, the browser host to CSS hex.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
	ColorDarkGray
)

// Palette colors used by the snake renderer.
const (
	ColorSnakeHead = ColorBrightGreen
	ColorSnakeBody = ColorGreen
	ColorFood      = ColorRed
	ColorOverlay   = ColorBrightWhite
)

var hexColors = map[Color]string{
	ColorDefault:     "#ffffff",
	ColorRed:         "#ff0000",
	ColorGreen:       "#45a049",
	ColorYellow:      "#ffeb3b",
	ColorBlue:        "#2196f3",
	ColorWhite:       "#e0e0e0",
	ColorBrightRed:   "#ff5252",
	ColorBrightGreen: "#4caf50",
	ColorBrightWhite: "#ffffff",
	ColorGray:        "#9e9e9e",
	ColorDarkGray:    "#424242",
}

// Hex returns the CSS hex representation of the color.
func (c Color) Hex() string {
	if h, ok := hexColors[c]; ok {
		return h
	}
	return hexColors[ColorDefault]
}

// ANSI returns the ANSI 256-color code used by terminal hosts.
// An empty string means the terminal default.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorBlue:
		return "4"
	case ColorWhite:
		return "7"
	case ColorBrightRed:
		return "9"
	case ColorBrightGreen:
		return "10"
	case ColorBrightWhite:
		return "15"
	case ColorGray:
		return "245"
	case ColorDarkGray:
		return "238"
	default:
		return ""
	}
}
