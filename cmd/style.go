package cmd

import (
	"fmt"

	"github.com/fatih/color"

	"topo-field/theme"
)

// Console colors
var (
	Brand  = color.New(color.FgHiCyan, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// swatch renders a block in the given color when the terminal supports it.
func swatch(c theme.Color) string {
	return color.RGB(int(c.R), int(c.G), int(c.B)).Sprint("██")
}

func printPalette(mode theme.Mode, accent string, p theme.Palette) {
	fmt.Printf("  %s %s\n", Subtle.Sprint("theme: "), Brand.Sprint(mode))
	fmt.Printf("  %s %s\n", Subtle.Sprint("color: "), accent)
	fmt.Printf("  %s %s %s\n", Subtle.Sprint("packet:"), swatch(p.Packet), p.Packet)
	fmt.Printf("  %s %s %s\n", Subtle.Sprint("node:  "), swatch(p.Node), p.Node)
	fmt.Printf("  %s %s %s\n", Subtle.Sprint("edge:  "), swatch(p.Edge), p.Edge)
}
