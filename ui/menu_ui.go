package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/gravibox/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStart            func()
	OnToggleMute       func() bool // Returns the new muted state
	OnToggleFullscreen func() bool // Returns the new fullscreen state
	OnExit             func()

	// Widget references for updates
	bestLabel        *widget.Label
	muteButton       *widget.Button
	fullscreenButton *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the main menu UI
func NewMenuUI(best int, muted, fullscreen bool, onStart func(), onToggleMute, onToggleFullscreen func() bool, onExit func()) *MenuUI {
	mui := &MenuUI{
		OnStart:            onStart,
		OnToggleMute:       onToggleMute,
		OnToggleFullscreen: onToggleFullscreen,
		OnExit:             onExit,
	}

	mui.loadFonts()
	mui.buildUI(best, muted, fullscreen)

	return mui
}

// Update steps the UI event handling
func (mui *MenuUI) Update() {
	mui.UI.Update()
}

// Draw renders the UI
func (mui *MenuUI) Draw(screen *ebiten.Image) {
	mui.UI.Draw(screen)
}

// SetBestScore updates the best score label
func (mui *MenuUI) SetBestScore(best int) {
	mui.bestLabel.Label = bestLabelText(best)
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   36,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (mui *MenuUI) buildUI(best int, muted, fullscreen bool) {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Content container with vertical layout, centered
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	// Title
	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("GRAVIBOX", &mui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	// Best score
	mui.bestLabel = widget.NewLabel(
		widget.LabelOpts.Text(bestLabelText(best), &mui.normalFace, &widget.LabelColor{
			Idle: cfg.Yellow,
		}),
	)
	contentContainer.AddChild(mui.bestLabel)

	// Start button
	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 32),
		),
		widget.ButtonOpts.Image(mui.startButtonImage()),
		widget.ButtonOpts.Text("Start", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnStart != nil {
				mui.OnStart()
			}
		}),
	)
	contentContainer.AddChild(startButton)

	// Sound toggle
	mui.muteButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 26),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(muteLabelText(muted), &mui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{180, 180, 180, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnToggleMute != nil {
				muted := mui.OnToggleMute()
				if textWidget := mui.muteButton.Text(); textWidget != nil {
					textWidget.Label = muteLabelText(muted)
				}
			}
		}),
	)
	contentContainer.AddChild(mui.muteButton)

	// Fullscreen toggle
	mui.fullscreenButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 26),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(fullscreenLabelText(fullscreen), &mui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{180, 180, 180, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnToggleFullscreen != nil {
				fullscreen := mui.OnToggleFullscreen()
				if textWidget := mui.fullscreenButton.Text(); textWidget != nil {
					textWidget.Label = fullscreenLabelText(fullscreen)
				}
			}
		}),
	)
	contentContainer.AddChild(mui.fullscreenButton)

	// Exit button
	exitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 26),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("Exit", &mui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{180, 180, 180, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnExit != nil {
				mui.OnExit()
			}
		}),
	)
	contentContainer.AddChild(exitButton)

	// Hint
	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("Space / click: flip gravity", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{120, 120, 140, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (mui *MenuUI) startButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func bestLabelText(best int) string {
	return fmt.Sprintf("Best: %d", best)
}

func muteLabelText(muted bool) string {
	if muted {
		return "Sound: Off"
	}
	return "Sound: On"
}

func fullscreenLabelText(fullscreen bool) string {
	if fullscreen {
		return "Fullscreen: On"
	}
	return "Fullscreen: Off"
}
