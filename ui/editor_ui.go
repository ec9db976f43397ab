package ui

import (
	"bytes"
	"image/color"
	"strings"

	cfg "github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/settings"
	"github.com/automoto/sparkle-cursor/ui/form"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// EditorUI holds the ebitenui interface for the settings editor
type EditorUI struct {
	UI   *ebitenui.UI
	Form *form.Form

	// Widget references for updates
	enabledButton  *widget.Button
	colorLabel     *widget.Label
	sizeLabel      *widget.Label
	intensityLabel *widget.Label
	shapeButtons   map[settings.CursorShape]*widget.Button
	trailButtons   map[settings.TrailType]*widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewEditorUI builds the editor around f. Widget callbacks only call Form
// methods; the form's OnChange does the saving and broadcasting.
func NewEditorUI(f *form.Form) *EditorUI {
	eui := &EditorUI{
		Form:         f,
		shapeButtons: map[settings.CursorShape]*widget.Button{},
		trailButtons: map[settings.TrailType]*widget.Button{},
	}

	eui.loadFonts()
	eui.buildUI()

	return eui
}

func (eui *EditorUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	eui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	eui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	eui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (eui *EditorUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("sparkle cursor", &eui.titleFace, &widget.LabelColor{
			Idle: cfg.HotPink,
		}),
	))

	contentContainer.AddChild(eui.buildEnabledRow())
	contentContainer.AddChild(eui.buildColorRow())
	contentContainer.AddChild(eui.buildStepperRow("Size", &eui.sizeLabel, eui.Form.SizeLabel(), eui.Form.StepSize))
	contentContainer.AddChild(eui.buildStepperRow("Intensity", &eui.intensityLabel, eui.Form.IntensityLabel(), eui.Form.StepIntensity))
	contentContainer.AddChild(eui.buildShapeRow())
	contentContainer.AddChild(eui.buildTrailRow())

	rootContainer.AddChild(contentContainer)

	eui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (eui *EditorUI) row(title string) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &eui.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))
	return row
}

func (eui *EditorUI) button(label string, minWidth int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minWidth, 20),
		),
		widget.ButtonOpts.Image(eui.buttonImage()),
		widget.ButtonOpts.Text(label, &eui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			eui.UpdateUI()
		}),
	)
}

func (eui *EditorUI) buildEnabledRow() *widget.Container {
	row := eui.row("Enabled")
	eui.enabledButton = eui.button(eui.Form.EnabledLabel(), 60, eui.Form.ToggleEnabled)
	row.AddChild(eui.enabledButton)
	return row
}

func (eui *EditorUI) buildColorRow() *widget.Container {
	row := eui.row("Color")
	row.AddChild(eui.button("next", 40, eui.Form.NextColor))
	eui.colorLabel = widget.NewLabel(
		widget.LabelOpts.Text(eui.Form.Settings().Color, &eui.smallFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	row.AddChild(eui.colorLabel)
	return row
}

func (eui *EditorUI) buildStepperRow(title string, value **widget.Label, initial string, step func(int)) *widget.Container {
	row := eui.row(title)
	row.AddChild(eui.button("-", 24, func() { step(-1) }))
	*value = widget.NewLabel(
		widget.LabelOpts.Text(initial, &eui.smallFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	row.AddChild(*value)
	row.AddChild(eui.button("+", 24, func() { step(1) }))
	return row
}

func (eui *EditorUI) buildShapeRow() *widget.Container {
	row := eui.row("Shape")
	for _, shape := range settings.Shapes {
		s := shape // Capture for closure
		b := eui.button(string(s), 56, func() { eui.Form.SelectShape(s) })
		eui.shapeButtons[s] = b
		row.AddChild(b)
	}
	return row
}

func (eui *EditorUI) buildTrailRow() *widget.Container {
	row := eui.row("Trail")
	for _, trail := range settings.Trails {
		t := trail
		b := eui.button(string(t), 64, func() { eui.Form.SelectTrail(t) })
		eui.trailButtons[t] = b
		row.AddChild(b)
	}
	return row
}

func (eui *EditorUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 40, 70, 255})
	hover := image.NewNineSliceColor(color.RGBA{90, 60, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 25, 50, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI updates all UI elements to reflect the current form state
func (eui *EditorUI) UpdateUI() {
	s := eui.Form.Settings()

	if eui.enabledButton != nil {
		if textWidget := eui.enabledButton.Text(); textWidget != nil {
			textWidget.Label = eui.Form.EnabledLabel()
			if s.Enabled {
				textWidget.SetColor(cfg.Editor.EnabledColor)
			} else {
				textWidget.SetColor(cfg.Editor.DisabledColor)
			}
		}
	}
	if eui.colorLabel != nil {
		eui.colorLabel.Label = strings.ToUpper(s.Color)
	}
	if eui.sizeLabel != nil {
		eui.sizeLabel.Label = eui.Form.SizeLabel()
	}
	if eui.intensityLabel != nil {
		eui.intensityLabel.Label = eui.Form.IntensityLabel()
	}

	for shape, b := range eui.shapeButtons {
		if textWidget := b.Text(); textWidget != nil {
			textWidget.Label = form.OptionLabel(string(shape), shape == s.Shape)
		}
	}
	for trail, b := range eui.trailButtons {
		if textWidget := b.Text(); textWidget != nil {
			textWidget.Label = form.OptionLabel(string(trail), trail == s.Trail)
		}
	}
}

// Update calls the UI's Update method
func (eui *EditorUI) Update() {
	eui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !eui.initialized {
		eui.initialized = true
		eui.UpdateUI()
	}
}
