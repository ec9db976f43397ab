package systems

import (
	"github.com/automoto/sparkle-cursor/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVisibility suspends every driver while the window is minimised.
func UpdateVisibility(e *ecs.ECS) {
	hidden := ebiten.IsWindowMinimized()
	components.Driver.Each(e.World, func(entry *donburi.Entry) {
		components.Driver.Get(entry).Driver.SetHidden(hidden)
	})
}

// UpdateFrames runs each driver's pending frame callback. The game runs one
// update per display refresh, so this is the refresh callback.
func UpdateFrames(e *ecs.ECS) {
	components.Driver.Each(e.World, func(entry *donburi.Entry) {
		components.Driver.Get(entry).Scheduler.RunFrame()
	})
}
