package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Swatch returns an ANSI-coloured block for a colour.
// Width specifies how many characters wide the block should be.
func Swatch(c Colour, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return background(c) + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithText returns a swatch with centred text overlaid.
// The text colour is chosen to have good contrast with the background.
func SwatchWithText(c Colour, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := White
	if c.Luminance() > 0.5 {
		fg = Black
	}
	r, g, b, _ := fg.RGB255()
	fgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, r, g, b, ansiSuffix)

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return background(c) + fgColour + displayText + ansiReset
}

// FormatWithPreview formats a colour as its swatch followed by its hex code.
func FormatWithPreview(c Colour, width int) string {
	return fmt.Sprintf("%s %s", Swatch(c, width), c.Hex())
}

// SupportsANSIColours reports whether f is a terminal that should receive
// colour escape codes. NO_COLOR and TERM=dumb disable colour.
func SupportsANSIColours(f *os.File) bool {
	if f == nil {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

func background(c Colour) string {
	r, g, b, _ := c.RGB255()
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
}
