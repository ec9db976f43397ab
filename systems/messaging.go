package systems

import (
	"errors"
	"log"

	"github.com/automoto/sparkle-cursor/components"
	cfg "github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/network"
	"github.com/automoto/sparkle-cursor/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInbox applies queued settings messages to the overlay driver. It runs
// before UpdateFrames so a trail change is visible in the same frame.
func UpdateInbox(e *ecs.ECS) {
	components.Inbox.Each(e.World, func(entry *donburi.Entry) {
		inbox := components.Inbox.Get(entry)
		drv := components.Driver.Get(entry).Driver
		for _, msg := range inbox.Listener.Drain() {
			if err := drv.Apply(msg.Patch()); err != nil {
				log.Printf("[overlay] Warning: Could not apply %T: %v", msg, err)
			}
		}
	})
}

// UpdateOutbox keeps the editor dialling the overlay while it is not connected.
func UpdateOutbox(e *ecs.ECS) {
	entry, ok := components.Outbox.First(e.World)
	if !ok {
		return
	}
	out := components.Outbox.Get(entry)
	switch out.Sender.State() {
	case network.StateDisconnected, network.StateError:
	default:
		return
	}
	if out.ReconnectTimer > 0 {
		out.ReconnectTimer--
		return
	}
	out.Sender.Connect(out.Address)
	out.ReconnectTimer = cfg.Net.ReconnectGap
}

// Broadcast sends msg to the overlay. No overlay running is not an error.
func Broadcast(e *ecs.ECS, msg messages.Message) {
	entry, ok := components.Outbox.First(e.World)
	if !ok {
		return
	}
	err := components.Outbox.Get(entry).Sender.Send(msg)
	if err != nil && !errors.Is(err, network.ErrNotConnected) {
		log.Printf("[editor] Warning: Could not notify overlay: %v", err)
	}
}
