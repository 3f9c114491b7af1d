package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/parkour/input"
	"github.com/milk9111/parkour/session"
	"golang.design/x/clipboard"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames int

	session *session.Session
	source  *keyboard
	view    *View
	pauseUI *ebitenui.UI

	clipboardReady bool
	status         string
}

func NewGame(sess *session.Session, mouseLook bool) *Game {
	g := &Game{
		session: sess,
		source:  newKeyboard(mouseLook),
		view:    NewView(baseWidth, baseHeight),
	}
	g.pauseUI = NewPauseUI(g)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardReady = true
	}
	return g
}

func (g *Game) Update() error {
	g.frames++

	keys, err := g.source.Poll()
	if err != nil {
		return err
	}
	if keys.JustPressed(input.KeyF8) {
		g.copySnapshot()
	}

	g.session.Update(keys)
	if g.session.Clocks.Animation.IsPaused() {
		g.pauseUI.Update()
	}
	return nil
}

// copySnapshot puts the current frame's debug state on the clipboard.
func (g *Game) copySnapshot() {
	if !g.clipboardReady {
		g.status = "clipboard unavailable"
		return
	}
	data, err := g.session.Snapshot().YAML()
	if err != nil {
		log.Printf("snapshot: %v", err)
		g.status = "snapshot failed"
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.status = fmt.Sprintf("copied snapshot at frame %d", g.frames)
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	g.view.Draw(screen, g.session.Level(), snap)

	hud := fmt.Sprintf("Frames: %d    FPS: %.2f\n%s", g.frames, ebiten.ActualFPS(), snap.HUD())
	if g.status != "" {
		hud += "\n" + g.status
	}
	ebitenutil.DebugPrint(screen, hud)

	if snap.AnimPaused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
