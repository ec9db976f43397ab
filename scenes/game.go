package scenes

import (
	"image"

	"github.com/automoto/sparkle-cursor/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one window's content.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Layouter is implemented by scenes that size themselves to the window.
type Layouter interface {
	Layout(width, height int) (int, int)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	if l, ok := g.scene.(Layouter); ok {
		w, h := l.Layout(width, height)
		g.bounds = image.Rect(0, 0, w, h)
		return w, h
	}
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}
