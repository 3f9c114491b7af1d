package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parkour/prefabs"
	"github.com/milk9111/parkour/session"
)

func main() {
	dir := flag.String("prefabs", "prefabs", "directory whose files override the embedded config")
	watch := flag.Bool("watch", true, "reload the animation graph when files under -prefabs change")
	mouseLook := flag.Bool("mouse", false, "turn the camera with the cursor")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("parkour")

	sess, err := session.New(context.Background(), session.Config{
		Store:       prefabs.NewStore(*dir),
		StepSeconds: 1 / float64(ebiten.DefaultTPS),
		Watch:       *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer sess.Close()

	game := NewGame(sess, *mouseLook)
	if *mouseLook {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
