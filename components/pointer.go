package components

import (
	"github.com/automoto/sparkle-cursor/driver"
	"github.com/yohamta/donburi"
)

// PointerData feeds a host's pointer position to its driver.
type PointerData struct {
	Source *driver.Pointer
}

var Pointer = donburi.NewComponentType[PointerData]()
