package components

import (
	"github.com/automoto/sparkle-cursor/network"
	"github.com/yohamta/donburi"
)

// StatusData is a singleton tracking the editor's status line
type StatusData struct {
	Text         string
	DisplayTimer int                 // Frames remaining to display Text
	LastState    network.SenderState // Connection state seen last frame
}

var Status = donburi.NewComponentType[StatusData]()
