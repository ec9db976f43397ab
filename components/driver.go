package components

import (
	"github.com/automoto/sparkle-cursor/driver"
	"github.com/automoto/sparkle-cursor/ebitensurface"
	"github.com/yohamta/donburi"
)

// DriverData binds an animation driver to the frame scheduler and surface it
// runs on.
type DriverData struct {
	Driver    *driver.Driver
	Scheduler *driver.FrameScheduler
	Surfaces  *ebitensurface.Provider
}

var Driver = donburi.NewComponentType[DriverData]()
