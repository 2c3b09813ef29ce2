package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning collects the gameplay constants that shape movement and AI feel.
// Defaults reproduce the shipped balance; individual fields can be
// overridden from yaml next to the level config.
type Tuning struct {
	// World
	Gravity     float64 `yaml:"gravity"`      // character gravity, negative
	BombGravity float64 `yaml:"bomb_gravity"` // lighter so arcs read as lobs
	FixedStep   float64 `yaml:"fixed_step"`
	GoalRadius  float64 `yaml:"goal_radius"`

	// Player
	MoveSpeed        float64 `yaml:"move_speed"`
	SprintMultiplier float64 `yaml:"sprint_multiplier"`
	SprintDrain      float64 `yaml:"sprint_drain"`       // stamina per second while sprinting
	StaminaRegen     float64 `yaml:"stamina_regen"`      // stamina per second otherwise
	SprintMinStamina float64 `yaml:"sprint_min_stamina"` // below this sprint is refused
	GroundAccel      float64 `yaml:"ground_accel"`
	AirAccel         float64 `yaml:"air_accel"`
	JumpSpeed        float64 `yaml:"jump_speed"`
	JumpBuffer       float64 `yaml:"jump_buffer"`
	CoyoteTime       float64 `yaml:"coyote_time"`

	// Chaser
	ChaserSpeed       float64 `yaml:"chaser_speed"`
	ChaserAggression  float64 `yaml:"chaser_aggression"`
	ChaserAggroRange  float64 `yaml:"chaser_aggro_range"`
	ChaserCloseRange  float64 `yaml:"chaser_close_range"` // ramp kicks in inside this
	ChaserRampBoost   float64 `yaml:"chaser_ramp_boost"`  // max extra speed fraction
	ChaserJumpRange   float64 `yaml:"chaser_jump_range"`
	ChaserJumpMinGap  float64 `yaml:"chaser_jump_min_gap"`
	ChaserJumpPad     float64 `yaml:"chaser_jump_pad"` // clearance added to the height gap
	ChaserJumpMin     float64 `yaml:"chaser_jump_min"` // clamp band for the jump height
	ChaserJumpMax     float64 `yaml:"chaser_jump_max"`
	ChaserJumpCool    float64 `yaml:"chaser_jump_cooldown"`
	ChaserHopHeight   float64 `yaml:"chaser_hop_height"` // player this far up triggers platform hops
	CatchMargin       float64 `yaml:"catch_margin"`
	PlatformHopWeight float64 `yaml:"platform_hop_weight"` // weight of chaser distance in hop scoring

	// Bomber
	BomberSpeed      float64 `yaml:"bomber_speed"`
	StandoffDistance float64 `yaml:"standoff_distance"`
	StandoffSoftness float64 `yaml:"standoff_softness"`
	ThrowRange       float64 `yaml:"throw_range"`
	ThrowOpening     float64 `yaml:"throw_opening"`  // delay before the first bomb
	ThrowInterval    float64 `yaml:"throw_interval"` // repeat interval once warmed up
	BombCapacity     int     `yaml:"bomb_capacity"`
	BombFuse         float64 `yaml:"bomb_fuse"`
	BombLaunchUp     float64 `yaml:"bomb_launch_up"`
	BombSpeedBase    float64 `yaml:"bomb_speed_base"`
	BombSpeedScale   float64 `yaml:"bomb_speed_scale"` // extra speed per unit of distance
	BlastRadius      float64 `yaml:"blast_radius"`

	// Companions
	PickupRadius  float64 `yaml:"pickup_radius"`
	WanderRadius  float64 `yaml:"wander_radius"`
	OrbitRadius   float64 `yaml:"orbit_radius"`
	CatchUpRadius float64 `yaml:"catch_up_radius"`
}

// DefaultTuning returns the shipped balance.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:     -18,
		BombGravity: -9,
		FixedStep:   1.0 / 120.0,
		GoalRadius:  2.5,

		MoveSpeed:        5,
		SprintMultiplier: 1.6,
		SprintDrain:      0.35,
		StaminaRegen:     0.25,
		SprintMinStamina: 0.15,
		GroundAccel:      10,
		AirAccel:         4,
		JumpSpeed:        7,
		JumpBuffer:       0.12,
		CoyoteTime:       0.1,

		ChaserSpeed:       3.2,
		ChaserAggression:  1.15,
		ChaserAggroRange:  9,
		ChaserCloseRange:  4,
		ChaserRampBoost:   0.6,
		ChaserJumpRange:   5.5,
		ChaserJumpMinGap:  0.4,
		ChaserJumpPad:     0.4,
		ChaserJumpMin:     0.8,
		ChaserJumpMax:     2.4,
		ChaserJumpCool:    0.6,
		ChaserHopHeight:   1.2,
		CatchMargin:       0.1,
		PlatformHopWeight: 0.4,

		BomberSpeed:      2.6,
		StandoffDistance: 6,
		StandoffSoftness: 2,
		ThrowRange:       12,
		ThrowOpening:     2.5,
		ThrowInterval:    1.6,
		BombCapacity:     4,
		BombFuse:         3,
		BombLaunchUp:     6,
		BombSpeedBase:    3,
		BombSpeedScale:   0.35,
		BlastRadius:      2,

		PickupRadius:  1,
		WanderRadius:  3,
		OrbitRadius:   1.8,
		CatchUpRadius: 4.5,
	}
}

// LoadTuning reads a yaml overrides file on top of the defaults. Fields the
// file omits keep their default values.
func LoadTuning(path string) (Tuning, error) {
	tun := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		return tun, fmt.Errorf("sim: read tuning: %w", err)
	}
	if err := yaml.Unmarshal(data, &tun); err != nil {
		return tun, fmt.Errorf("sim: parse tuning %s: %w", path, err)
	}
	if tun.FixedStep <= 0 || tun.Gravity >= 0 || tun.BombCapacity <= 0 {
		return tun, fmt.Errorf("sim: tuning %s: fixed_step, gravity, and bomb_capacity must be sane", path)
	}
	return tun, nil
}
