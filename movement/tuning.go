package movement

import (
	"github.com/milk9111/parkour/anim"
	"github.com/milk9111/parkour/common"
)

// Tuning holds the numbers the retargeting and transition rules use.
type Tuning struct {
	LedgeGrabRange common.FloatRange `yaml:"ledge_grab_range"`
	VaultRange     common.FloatRange `yaml:"vault_range"`
	// VaultSplit is the time window, as fractions of the clip, whose X travel
	// is stretched to fit the vault.
	VaultSplit common.FloatRange `yaml:"vault_split"`
	// VaultWidth is the forward travel of a vault when it is not measured.
	VaultWidth float64 `yaml:"vault_width"`
	// VaultMeasureWidth derives the travel from the foot ray: distance to the
	// obstacle, its depth and VaultClearance.
	VaultMeasureWidth bool    `yaml:"vault_measure_width"`
	VaultClearance    float64 `yaml:"vault_clearance"`
	VaultHeightScale  float64 `yaml:"vault_height_scale"`

	LedgeGrabOffset   float64 `yaml:"ledge_grab_offset"`
	LedgeCameraLift   float64 `yaml:"ledge_camera_lift"`
	ClimbDistance     float64 `yaml:"climb_distance"`
	ClimbStandForward float64 `yaml:"climb_stand_forward"`
	ShimmyDistance    float64 `yaml:"shimmy_distance"`
	ShimmyLift        float64 `yaml:"shimmy_lift"`

	DropForwardScale  float64 `yaml:"drop_forward_scale"`
	FreeHangDrop      float64 `yaml:"free_hang_drop"`
	FreeHangClearance float64 `yaml:"free_hang_clearance"`

	HangDropArc     anim.Arc          `yaml:"hang_drop_arc"`
	HangDropWindow  common.FloatRange `yaml:"hang_drop_window"`
	HangDropCameraZ float64           `yaml:"hang_drop_camera_z"`
}

func DefaultTuning() Tuning {
	return Tuning{
		LedgeGrabRange:    common.FloatRange{Min: 0, Max: 0.6},
		VaultRange:        common.FloatRange{Min: 2, Max: 3},
		VaultSplit:        common.FloatRange{Min: 0.3, Max: 0.7},
		VaultWidth:        6,
		VaultClearance:    1,
		VaultHeightScale:  0.7,
		LedgeGrabOffset:   1.27,
		LedgeCameraLift:   1.5,
		ClimbDistance:     2,
		ClimbStandForward: 0.5,
		ShimmyDistance:    1,
		ShimmyLift:        0.2,
		DropForwardScale:  1.2,
		FreeHangDrop:      3.25,
		FreeHangClearance: 0.1,
		HangDropArc: anim.Arc{
			LinearEnd:  0.1,
			CubicEnd:   0.5,
			LinearRise: 0.1,
			PeakRise:   0.3,
			EaseIn:     [4]float64{0, 0.7, 0.25, 1},
			Bezier:     [4]float64{0.7, 1.6, 0, 0},
		},
		HangDropWindow:  common.FloatRange{Min: 0.35, Max: 0.59},
		HangDropCameraZ: 1.38 + 1.35,
	}
}
