package character

import (
	"fmt"

	"github.com/milk9111/parkour/common"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mode selects who drives the camera.
type Mode int

const (
	// ModeFollow keeps the camera riding along with the character.
	ModeFollow Mode = iota
	// ModeFreeRoam detaches the camera and flies it with the keyboard.
	ModeFreeRoam
)

func (m Mode) String() string {
	switch m {
	case ModeFollow:
		return "follow"
	case ModeFreeRoam:
		return "freeRoam"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

type Transform struct {
	Position    r3.Vec      `yaml:"position"`
	Orientation quat.Number `yaml:"orientation"`
}

// Spawn is where a character and its camera start.
type Spawn struct {
	Character Transform `yaml:"character"`
	Camera    Transform `yaml:"camera"`
}

// Body holds the character and camera transforms movement reads and writes.
type Body struct {
	Character Transform
	Camera    Transform
	Height    float64
	Mode      Mode
}

func NewBody(spawn Spawn, height float64) *Body {
	b := &Body{Character: spawn.Character, Camera: spawn.Camera, Height: height}
	b.Character.Orientation = common.Normalize(b.Character.Orientation)
	b.Camera.Orientation = common.Normalize(b.Camera.Orientation)
	return b
}

func (b *Body) CharacterPosition() r3.Vec { return b.Character.Position }
func (b *Body) SetCharacterPosition(p r3.Vec) { b.Character.Position = p }
func (b *Body) CharacterOrientation() quat.Number { return b.Character.Orientation }
func (b *Body) SetCharacterOrientation(q quat.Number) { b.Character.Orientation = q }
func (b *Body) CameraPosition() r3.Vec { return b.Camera.Position }
func (b *Body) SetCameraPosition(p r3.Vec) { b.Camera.Position = p }
func (b *Body) CameraOrientation() quat.Number { return b.Camera.Orientation }
func (b *Body) SetCameraOrientation(q quat.Number) { b.Camera.Orientation = q }

// RotateTowardsCharacterOrientation turns a character-space vector into
// world space.
func (b *Body) RotateTowardsCharacterOrientation(v r3.Vec) r3.Vec {
	return common.Rotate(b.Character.Orientation, v)
}

func (b *Body) FreeRoam() bool { return b.Mode == ModeFreeRoam }

// ToggleMode flips between follow and free roam.
func (b *Body) ToggleMode() {
	if b.Mode == ModeFollow {
		b.Mode = ModeFreeRoam
	} else {
		b.Mode = ModeFollow
	}
}

// Forward is the character's heading.
func (b *Body) Forward() r3.Vec { return common.ForwardOf(b.Character.Orientation) }
