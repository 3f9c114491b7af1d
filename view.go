package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/parkour/common"
	"github.com/milk9111/parkour/prefabs"
	"github.com/milk9111/parkour/session"
	"golang.org/x/image/colornames"
	"gonum.org/v1/gonum/spatial/r3"
)

// pixelsPerUnit is the top-down zoom.
const pixelsPerUnit = 24

// View draws the level from above, centered on the character. World X runs
// right and world Y runs up the screen.
type View struct {
	width, height float32
	focus         r3.Vec
}

func NewView(width, height int) *View {
	return &View{width: float32(width), height: float32(height)}
}

func (v *View) toScreen(p r3.Vec) (float32, float32) {
	x := v.width/2 + float32((p.X-v.focus.X)*pixelsPerUnit)
	y := v.height/2 - float32((p.Y-v.focus.Y)*pixelsPerUnit)
	return x, y
}

// obstacleColor shades boxes by height so vault blocks and ledges read apart.
func obstacleColor(height float64) color.Color {
	switch {
	case height < 2:
		return colornames.Rosybrown
	case height < 4:
		return colornames.Indianred
	default:
		return colornames.Firebrick
	}
}

func (v *View) Draw(screen *ebiten.Image, level prefabs.LevelSpec, snap session.Snapshot) {
	screen.Fill(colornames.Darkslategray)
	v.focus = snap.Position

	bounds := common.Rect{Width: v.width, Height: v.height}
	for _, o := range level.Obstacles {
		x0, y0 := v.toScreen(o.Min)
		x1, y1 := v.toScreen(o.Max)
		r := common.RectBetween(x0, y0, x1, y1)
		if !r.Overlaps(bounds) {
			continue
		}
		vector.FillRect(screen, r.X, r.Y, r.Width, r.Height, obstacleColor(o.Max.Z), false)
		// Outline inside the box.
		edge := r.Inset(0.5)
		vector.StrokeRect(screen, edge.X, edge.Y, edge.Width, edge.Height, 1, colornames.Red, false)
	}

	for _, name := range []string{"foot", "head", "left_shoulder", "right_shoulder", "ground"} {
		p, ok := snap.Probes[name]
		if !ok {
			continue
		}
		clr := color.Color(colornames.Lightgrey)
		if p.Hit {
			clr = colornames.Yellow
		}
		sx, sy := v.toScreen(p.Start)
		ex, ey := v.toScreen(p.End)
		vector.StrokeLine(screen, sx, sy, ex, ey, 1, clr, true)
	}

	cx, cy := v.toScreen(snap.Position)
	vector.FillCircle(screen, cx, cy, 0.3*pixelsPerUnit, colornames.Crimson, true)
	v.heading(screen, snap.Position, snap.Yaw, 0.8, colornames.White)

	camX, camY := v.toScreen(snap.CameraPosition)
	vector.StrokeCircle(screen, camX, camY, 0.2*pixelsPerUnit, 2, colornames.Skyblue, true)
	v.heading(screen, snap.CameraPosition, snap.CameraYaw, 0.6, colornames.Skyblue)
}

// heading draws a short line from p along yaw degrees.
func (v *View) heading(screen *ebiten.Image, p r3.Vec, yawDegrees, length float64, clr color.Color) {
	rad := yawDegrees * math.Pi / 180
	tip := r3.Add(p, r3.Vec{X: math.Cos(rad) * length, Y: math.Sin(rad) * length})
	x0, y0 := v.toScreen(p)
	x1, y1 := v.toScreen(tip)
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, true)
}
