package systems

import (
	"github.com/automoto/sparkle-cursor/components"
	cfg "github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/fonts"
	"github.com/automoto/sparkle-cursor/network"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Cached face for status rendering (lazy initialized)
var statusFace text.Face

// ShowStatus replaces the current status line.
func ShowStatus(ecs *ecs.ECS, msg string) {
	state := getOrCreateStatus(ecs)
	state.Text = msg
	state.DisplayTimer = cfg.Message.DisplayDuration
}

// UpdateStatus counts the status line down and reports overlay connection changes.
func UpdateStatus(ecs *ecs.ECS) {
	state := getOrCreateStatus(ecs)

	if entry, ok := components.Outbox.First(ecs.World); ok {
		current := components.Outbox.Get(entry).Sender.State()
		if current != state.LastState {
			switch {
			case current == network.StateConnected:
				ShowStatus(ecs, "Overlay connected")
			case state.LastState == network.StateConnected:
				ShowStatus(ecs, "Overlay disconnected")
			}
			state.LastState = current
		}
	}

	if state.DisplayTimer > 0 {
		state.DisplayTimer--
		if state.DisplayTimer == 0 {
			state.Text = ""
		}
	}
}

// DrawStatus renders the status line at the bottom left of the window
func DrawStatus(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateStatus(ecs)
	if state.Text == "" {
		return
	}

	if statusFace == nil {
		statusFace = text.NewGoXFace(fonts.Caption.Get())
	}

	textWidth, textHeight := text.Measure(state.Text, statusFace, 0)
	padding := cfg.Message.BoxPadding
	boxWidth := textWidth + padding*2
	boxHeight := textHeight + padding*2
	boxX := padding
	boxY := float64(screen.Bounds().Dy()) - boxHeight - cfg.Message.BottomMargin

	vector.FillRect(screen,
		float32(boxX), float32(boxY),
		float32(boxWidth), float32(boxHeight),
		cfg.Message.BoxColor, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(boxX+padding, boxY+padding)
	op.ColorScale.ScaleWithColor(cfg.Message.TextColor)
	text.Draw(screen, state.Text, statusFace, op)
}

// getOrCreateStatus returns the singleton Status component
func getOrCreateStatus(ecs *ecs.ECS) *components.StatusData {
	entry, ok := components.Status.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Status))
		components.Status.SetValue(entry, components.StatusData{
			LastState: network.StateDisconnected,
		})
	}
	return components.Status.Get(entry)
}
