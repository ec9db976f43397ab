package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// CanvasData places a driver's surface on screen.
type CanvasData struct {
	X, Y          float64
	Width, Height int
	Background    color.Color // nil leaves the window transparent
}

var Canvas = donburi.NewComponentType[CanvasData]()
