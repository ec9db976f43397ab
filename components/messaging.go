package components

import (
	"github.com/automoto/sparkle-cursor/network"
	"github.com/yohamta/donburi"
)

// InboxData is the overlay's queue of settings messages.
type InboxData struct {
	Listener *network.Listener
}

var Inbox = donburi.NewComponentType[InboxData]()

// OutboxData is the editor's connection to the overlay.
type OutboxData struct {
	Sender         *network.Sender
	Address        string
	ReconnectTimer int // Frames until the next dial attempt
}

var Outbox = donburi.NewComponentType[OutboxData]()
