package ui

import (
	"image/color"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadUIFont loads a TrueType/OpenType face from path. An empty path or any
// failure returns basicfont.Face7x13.
func LoadUIFont(path string, size float64) font.Face {
	if path == "" {
		return basicfont.Face7x13
	}
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("ui font not found, using basic font", "path", path, "err", err)
		return basicfont.Face7x13
	}
	f, err := opentype.Parse(data)
	if err != nil {
		slog.Warn("ui font parse error, using basic font", "path", path, "err", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		slog.Warn("ui font face error, using basic font", "path", path, "err", err)
		return basicfont.Face7x13
	}
	return face
}

// LineHeight returns the ascent and the distance between baselines of face.
func LineHeight(face font.Face) (ascent, lineHeight int) {
	metrics := face.Metrics()
	ascent = metrics.Ascent.Ceil()
	lineHeight = ascent + metrics.Descent.Ceil()
	if lineHeight <= 0 {
		return 12, 16
	}
	return ascent, lineHeight
}

// DrawTextLines draws multiline text with (x, y) as the top-left of the first
// line.
func DrawTextLines(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	ascent, lineHeight := LineHeight(face)
	for i, line := range strings.Split(s, "\n") {
		text.Draw(screen, line, face, x, y+ascent+i*lineHeight, clr)
	}
}
