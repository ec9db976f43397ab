package factory

import (
	"github.com/automoto/sparkle-cursor/archetypes"
	"github.com/automoto/sparkle-cursor/components"
	"github.com/automoto/sparkle-cursor/network"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateOutbox(ecs *ecs.ECS, sender *network.Sender, address string) *donburi.Entry {
	outbox := archetypes.Outbox.Spawn(ecs)
	components.Outbox.SetValue(outbox, components.OutboxData{
		Sender:  sender,
		Address: address,
	})
	return outbox
}
