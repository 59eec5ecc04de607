package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// gameOverUI draws the end-of-run panel and routes its buttons to the
// gameOver state.
type gameOverUI struct {
	ui    *ebitenui.UI
	state *gameOver

	score  *widget.Text
	high   *widget.Text
	status *widget.Text
	submit *widget.Button
}

func newGameOverUI(state *gameOver, restart func(), width, height int) *gameOverUI {
	g := &gameOverUI{state: state}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg := &widget.ButtonImage{
		Idle:     imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}),
		Hover:    imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}),
		Pressed:  imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}),
		Disabled: imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0x80}),
	}

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	gold := color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white, Disabled: color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: false})
	stretched := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})

	newText := func(label string, clr color.Color) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text(label, &face, clr),
			widget.TextOpts.WidgetOpts(centered),
		)
	}
	newButton := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(stretched),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { onClick() }),
		)
	}

	title := newText("GAME OVER", white)
	g.score = newText("", white)
	g.high = newText("", gold)
	g.status = newText("", white)

	tryAgain := newButton("Try Again", restart)
	g.submit = newButton("Submit Score", state.Submit)
	copyBtn := newButton("Copy Score", state.Copy)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width*2/3, height/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(g.score)
	panel.AddChild(g.high)
	panel.AddChild(tryAgain)
	panel.AddChild(g.submit)
	panel.AddChild(copyBtn)
	panel.AddChild(g.status)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	g.ui = &ebitenui.UI{Container: root}
	g.refresh()
	return g
}

func (g *gameOverUI) refresh() {
	g.score.Label = g.state.ScoreLine()
	g.high.Label = g.state.HighScoreLine()
	g.status.Label = g.state.Status()
	g.submit.GetWidget().Disabled = !g.state.CanSubmit()
}

func (g *gameOverUI) Update() {
	g.state.Poll()
	g.ui.Update()
	g.refresh()
}

func (g *gameOverUI) Draw(screen *ebiten.Image) {
	g.ui.Draw(screen)
}
