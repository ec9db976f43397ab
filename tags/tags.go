package tags

import "github.com/yohamta/donburi"

var (
	Overlay = donburi.NewTag().SetName("Overlay")
	Preview = donburi.NewTag().SetName("Preview")
)
