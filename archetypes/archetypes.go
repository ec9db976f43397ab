package archetypes

import (
	"github.com/automoto/sparkle-cursor/components"
	cfg "github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Overlay = newArchetype(
		tags.Overlay,
		components.Pointer,
		components.Driver,
		components.Canvas,
		components.Inbox,
	)
	Preview = newArchetype(
		tags.Preview,
		components.Pointer,
		components.Driver,
		components.Canvas,
		components.Preview,
	)
	Outbox = newArchetype(
		components.Outbox,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
