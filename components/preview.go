package components

import (
	"github.com/automoto/sparkle-cursor/preview"
	"github.com/yohamta/donburi"
)

type PreviewData struct {
	Path *preview.Path
}

var Preview = donburi.NewComponentType[PreviewData]()
