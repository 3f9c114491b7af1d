package character

import (
	"fmt"

	"github.com/milk9111/parkour/anim"
	"github.com/milk9111/parkour/common"
	"github.com/milk9111/parkour/input"
	"github.com/milk9111/parkour/movement"
	"github.com/milk9111/parkour/sensor"
)

// Config gathers everything a character is tuned with.
type Config struct {
	Height     float64          `yaml:"height"`
	Controller ControllerConfig `yaml:"controller"`
	Sensors    sensor.Config    `yaml:"sensors"`
	Movement   movement.Tuning  `yaml:"movement"`
}

func DefaultConfig() Config {
	return Config{
		Height:     1.8,
		Controller: DefaultControllerConfig(),
		Sensors:    sensor.DefaultConfig(),
		Movement:   movement.DefaultTuning(),
	}
}

// Clocks are the time sources a character reads. Animation drives the
// animation controller; Character drives root-motion sampling and manual
// locomotion; Camera drives the free-roam camera.
type Clocks struct {
	Character *common.Clock
	Animation *common.Clock
	Camera    *common.Clock
}

// Character wires a body to its animation controller, movement machine and
// sensors.
type Character struct {
	Body       *Body
	Anim       *anim.Controller
	Machine    *movement.Machine
	Sensors    *sensor.Sensors
	Controller *Controller

	clocks Clocks
}

func New(cfg Config, spawn Spawn, reg *anim.Registry, world *sensor.World, clocks Clocks) (*Character, error) {
	ctrl := anim.NewController(reg, clocks.Animation)
	if err := ctrl.Startup(); err != nil {
		return nil, fmt.Errorf("character: %w", err)
	}

	body := NewBody(spawn, cfg.Height)
	sensors := sensor.New(world, cfg.Sensors)
	machine := movement.NewMachine(&movement.Context{
		Anim:    ctrl,
		Body:    body,
		Sensors: sensors,
		Clock:   clocks.Character,
		Tuning:  cfg.Movement,
	})
	ctrl.SetEndListener(machine)

	c := &Character{
		Body:       body,
		Anim:       ctrl,
		Machine:    machine,
		Sensors:    sensors,
		Controller: NewController(cfg.Controller, body, machine, sensors),
		clocks:     clocks,
	}
	c.Sensors.Update(c.Pose())
	return c, nil
}

// Update runs one frame: manual control and root motion, the movement
// transition, the animation controller, then the sensors for next frame.
func (c *Character) Update(keys input.Keys) {
	c.Machine.Context().Keys = keys
	c.Controller.Update(keys, c.clocks.Character.DeltaSeconds(), c.clocks.Camera.DeltaSeconds())
	c.Machine.Update()
	c.Anim.Update()
	c.Sensors.Update(c.Pose())
}

// Pose is what the sensors see of the character.
func (c *Character) Pose() sensor.Pose {
	return sensor.Pose{
		Position:    c.Body.Character.Position,
		Orientation: c.Body.Character.Orientation,
		Height:      c.Body.Height,
		State:       c.Machine.Current().Kind.Name(),
	}
}

// Rebind moves the character onto a new registry. The old controller is
// shut down and movement restarts in idle where the character stands.
func (c *Character) Rebind(reg *anim.Registry, tuning movement.Tuning) error {
	ctrl := anim.NewController(reg, c.clocks.Animation)
	if err := ctrl.Startup(); err != nil {
		return fmt.Errorf("character: rebind: %w", err)
	}
	c.Anim.Shutdown()
	c.Anim = ctrl

	ctx := c.Machine.Context()
	ctx.Anim = ctrl
	ctx.Tuning = tuning
	c.Machine.Reset()
	ctrl.SetEndListener(c.Machine)
	return nil
}
