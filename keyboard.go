package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parkour/input"
)

var ebitenKeys = map[input.Key][]ebiten.Key{
	input.KeyW:     {ebiten.KeyW, ebiten.KeyArrowUp},
	input.KeyA:     {ebiten.KeyA, ebiten.KeyArrowLeft},
	input.KeyS:     {ebiten.KeyS, ebiten.KeyArrowDown},
	input.KeyD:     {ebiten.KeyD, ebiten.KeyArrowRight},
	input.KeyQ:     {ebiten.KeyQ},
	input.KeyE:     {ebiten.KeyE},
	input.KeyC:     {ebiten.KeyC},
	input.KeyR:     {ebiten.KeyR},
	input.KeyL:     {ebiten.KeyL},
	input.KeyO:     {ebiten.KeyO},
	input.KeyP:     {ebiten.KeyP},
	input.KeySpace: {ebiten.KeySpace},
	input.KeyShift: {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	input.KeyF5:    {ebiten.KeyF5},
	input.KeyF6:    {ebiten.KeyF6},
	input.KeyF8:    {ebiten.KeyF8},
}

// keyboard polls the ebiten keyboard and cursor. Edges come from an
// input.Tracker rather than inpututil so scripted and live input share one
// code path.
type keyboard struct {
	tracker input.Tracker

	lastX, lastY int
	hasCursor    bool
	// mouseLook enables the cursor delta; it stays zero otherwise.
	mouseLook bool
}

func newKeyboard(mouseLook bool) *keyboard {
	return &keyboard{mouseLook: mouseLook}
}

func (kb *keyboard) Poll() (input.Keys, error) {
	var held []input.Key
	for key, codes := range ebitenKeys {
		for _, code := range codes {
			if ebiten.IsKeyPressed(code) {
				held = append(held, key)
				break
			}
		}
	}
	k := kb.tracker.Next(held...)

	mx, my := ebiten.CursorPosition()
	if kb.hasCursor && kb.mouseLook {
		k.MouseDX = float64(mx - kb.lastX)
		k.MouseDY = float64(my - kb.lastY)
	}
	kb.lastX, kb.lastY = mx, my
	kb.hasCursor = true
	return k, nil
}

var _ input.Source = (*keyboard)(nil)
