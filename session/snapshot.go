package session

import (
	"fmt"
	"math"
	"strings"

	"github.com/milk9111/parkour/common"
	"github.com/milk9111/parkour/sensor"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// Probe is one sensor ray as the debug views need it.
type Probe struct {
	Hit      bool    `yaml:"hit"`
	Distance float64 `yaml:"distance,omitempty"`
	Start    r3.Vec  `yaml:"start"`
	End      r3.Vec  `yaml:"end"`
}

// Snapshot is a read-only view of one frame, for the HUD, the frame log and
// the clipboard dump.
type Snapshot struct {
	Frame       uint64  `yaml:"frame"`
	GameSeconds float64 `yaml:"game_seconds"`
	GamePaused  bool    `yaml:"game_paused"`
	AnimPaused  bool    `yaml:"anim_paused"`
	Mode        string  `yaml:"mode"`

	Movement    string   `yaml:"movement"`
	Animation   string   `yaml:"animation"`
	AnimStack   []string `yaml:"anim_stack,flow"`
	AnimTimeMs  float64  `yaml:"anim_time_ms"`
	Crossfading bool     `yaml:"crossfading"`
	BlendWeight float64  `yaml:"blend_weight"`
	NotReady    []string `yaml:"not_ready,flow,omitempty"`

	Position       r3.Vec  `yaml:"position"`
	Yaw            float64 `yaml:"yaw_degrees"`
	CameraPosition r3.Vec  `yaml:"camera_position"`
	CameraYaw      float64 `yaml:"camera_yaw_degrees"`
	Speed          float64 `yaml:"speed"`
	OnGround       bool    `yaml:"on_ground"`

	Probes map[string]Probe `yaml:"probes"`
}

func (s *Session) Snapshot() Snapshot {
	ch := s.character
	body := ch.Body
	sensors := ch.Sensors

	probes := map[string]Probe{
		"foot":           probeOf(sensors.Foot),
		"head":           probeOf(sensors.Head),
		"left_shoulder":  probeOf(sensors.LeftShoulder),
		"right_shoulder": probeOf(sensors.RightShoulder),
		"ground":         probeOf(sensors.Ground),
	}

	return Snapshot{
		Frame:       s.Clocks.Game.FrameCount(),
		GameSeconds: s.Clocks.Game.TotalSeconds(),
		GamePaused:  s.Clocks.Game.IsPaused(),
		AnimPaused:  s.Clocks.Animation.IsPaused(),
		Mode:        body.Mode.String(),

		Movement:    ch.Machine.Current().Kind.String(),
		Animation:   ch.Anim.CurrentName(),
		AnimStack:   ch.Anim.Stack(),
		AnimTimeMs:  ch.Anim.LocalTimeMs(),
		Crossfading: ch.Anim.Crossfading(),
		BlendWeight: ch.Anim.BlendWeight(),
		NotReady:    s.registry.NotReady(),

		Position:       body.Character.Position,
		Yaw:            degrees(common.Yaw(body.Character.Orientation)),
		CameraPosition: body.Camera.Position,
		CameraYaw:      degrees(common.Yaw(body.Camera.Orientation)),
		Speed:          ch.Controller.Speed(),
		OnGround:       sensors.IsOnGround(),

		Probes: probes,
	}
}

func probeOf(r sensor.RaycastResult) Probe {
	p := Probe{Hit: r.DidImpact, Start: r.RayStart, End: r3.Add(r.RayStart, r3.Scale(r.RayMaxLength, r.RayFwd))}
	if r.DidImpact {
		p.Distance = r.ImpactDist
		p.End = r.ImpactPos
	}
	return p
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// YAML renders the snapshot for the clipboard.
func (sn Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(sn)
}

// Line is the one-line frame log entry.
func (sn Snapshot) Line() string {
	return fmt.Sprintf("%6d %8.3fs %-20s %-20s t=%7.1fms pos=(%.2f, %.2f, %.2f) yaw=%6.1f",
		sn.Frame, sn.GameSeconds, sn.Movement, sn.Animation, sn.AnimTimeMs,
		sn.Position.X, sn.Position.Y, sn.Position.Z, sn.Yaw)
}

// HUD is the multi-line debug overlay text.
func (sn Snapshot) HUD() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mode: %s  game: %.2fs", sn.Mode, sn.GameSeconds)
	if sn.GamePaused {
		b.WriteString(" (paused)")
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "movement: %s\n", sn.Movement)
	fmt.Fprintf(&b, "animation: %s %.0fms", sn.Animation, sn.AnimTimeMs)
	if sn.AnimPaused {
		b.WriteString(" (paused)")
	}
	b.WriteByte('\n')
	if sn.Crossfading {
		fmt.Fprintf(&b, "crossfade: %.2f\n", sn.BlendWeight)
	}
	fmt.Fprintf(&b, "pos: %.2f %.2f %.2f  yaw: %.1f  speed: %.2f\n",
		sn.Position.X, sn.Position.Y, sn.Position.Z, sn.Yaw, sn.Speed)
	fmt.Fprintf(&b, "ground: %t", sn.OnGround)
	if len(sn.NotReady) > 0 {
		fmt.Fprintf(&b, "\nloading: %s", strings.Join(sn.NotReady, ", "))
	}
	return b.String()
}
