package scenes

import (
	"log"
	"sync"

	"github.com/automoto/sparkle-cursor/components"
	cfg "github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/fonts"
	"github.com/automoto/sparkle-cursor/network"
	"github.com/automoto/sparkle-cursor/settings"
	"github.com/automoto/sparkle-cursor/shared/messages"
	"github.com/automoto/sparkle-cursor/store"
	"github.com/automoto/sparkle-cursor/systems"
	"github.com/automoto/sparkle-cursor/systems/factory"
	"github.com/automoto/sparkle-cursor/ui"
	"github.com/automoto/sparkle-cursor/ui/form"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EditorScene is the settings window: controls on the left, a live preview
// pane on the right.
type EditorScene struct {
	ecs      *ecs.ECS
	store    *store.Store
	sender   *network.Sender
	address  string
	form     *form.Form
	editorUI *ui.EditorUI
	preview  *donburi.Entry
	once     sync.Once
}

func NewEditorScene(st *store.Store, sender *network.Sender, address string) *EditorScene {
	return &EditorScene{store: st, sender: sender, address: address}
}

func (es *EditorScene) Update() {
	es.once.Do(es.configure)

	es.ecs.Update()
	es.editorUI.Update()
}

func (es *EditorScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Editor.BackgroundColor)

	if es.ecs == nil {
		return
	}
	es.editorUI.UI.Draw(screen)
	es.ecs.Draw(screen)
}

func (es *EditorScene) configure() {
	es.ecs = ecs.NewECS(donburi.NewWorld())

	es.ecs.AddSystem(systems.UpdateOutbox)
	es.ecs.AddSystem(systems.UpdatePreviewPointer)
	es.ecs.AddSystem(systems.UpdateVisibility)
	es.ecs.AddSystem(systems.UpdateFrames)
	es.ecs.AddSystem(systems.UpdateStatus)

	es.ecs.AddRenderer(cfg.Default, systems.DrawCanvas)
	es.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	es.ecs.AddRenderer(cfg.Default, systems.DrawStatus)

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	s := es.store.Load()
	factory.CreateOutbox(es.ecs, es.sender, es.address)
	es.preview = factory.CreatePreview(es.ecs, s)

	es.form = form.New(s, cfg.Editor)
	es.form.OnChange = es.onChange
	es.editorUI = ui.NewEditorUI(es.form)

	ebiten.SetWindowTitle(es.form.Title())
}

// onChange saves, notifies the overlay and updates the preview.
func (es *EditorScene) onChange(s settings.Settings) {
	if err := es.store.Set(s); err != nil {
		log.Printf("[editor] Warning: Could not save settings: %v", err)
		systems.ShowStatus(es.ecs, "Could not save settings")
	}
	systems.Broadcast(es.ecs, messages.NewSettingsUpdate(s))
	components.Driver.Get(es.preview).Driver.Update(settings.Full(s))
	ebiten.SetWindowTitle(es.form.Title())
}
