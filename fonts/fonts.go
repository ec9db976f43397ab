package fonts

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

type FontName string

const (
	Caption      FontName = "caption"
	CaptionSmall FontName = "caption-small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the Go Regular faces used for snapshot captions.
func LoadDefaults() error {
	if err := LoadFontWithSize(Caption, goregular.TTF, 14); err != nil {
		return err
	}
	return LoadFontWithSize(CaptionSmall, goregular.TTF, 10)
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

// DrawString draws s with its baseline at (x, y).
func DrawString(dst draw.Image, name FontName, x, y int, s string, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: name.Get(),
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// Measure returns the advance width of s in pixels.
func Measure(name FontName, s string) int {
	return font.MeasureString(name.Get(), s).Ceil()
}
