package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/milk9111/gunship/combat"
	"github.com/milk9111/gunship/common"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() common.Vec3 {
	return common.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

type ColliderSpec struct {
	Radius float64 `yaml:"radius"`
}

type PilotSpec struct {
	ForwardSpeed  float64 `yaml:"forward_speed"`
	LateralSpeed  float64 `yaml:"lateral_speed"`
	VerticalSpeed float64 `yaml:"vertical_speed"`
	MinZ          float64 `yaml:"min_z"`
	MaxZ          float64 `yaml:"max_z"`
	MinY          float64 `yaml:"min_y"`
	MaxY          float64 `yaml:"max_y"`
}

type GunsSpec struct {
	Cadence    time.Duration `yaml:"cadence"`
	Reserve    int           `yaml:"reserve"`
	Magazine   int           `yaml:"magazine"`
	Reload     time.Duration `yaml:"reload"`
	Projectile string        `yaml:"projectile"`
	Emitters   []Vec3Spec    `yaml:"emitters"`
}

type MissilesSpec struct {
	Count        int           `yaml:"count"`
	Cost         int           `yaml:"cost"`
	Reload       time.Duration `yaml:"reload"`
	LaunchRadius float64       `yaml:"launch_radius"`
	Projectile   string        `yaml:"projectile"`
	Emitters     []Vec3Spec    `yaml:"emitters"`
}

type PlayerSpec struct {
	Name          string        `yaml:"name"`
	Transform     Vec3Spec      `yaml:"transform"`
	Health        int           `yaml:"health"`
	Collider      ColliderSpec  `yaml:"collider"`
	Pilot         PilotSpec     `yaml:"pilot"`
	Guns          GunsSpec      `yaml:"guns"`
	Missiles      MissilesSpec  `yaml:"missiles"`
	WarningBlink  time.Duration `yaml:"warning_blink"`
	GameOverDelay time.Duration `yaml:"game_over_delay"`
	Color         YAMLColor     `yaml:"color"`
}

type AimSpec struct {
	Slew     float64 `yaml:"slew"`
	MinPitch float64 `yaml:"min_pitch"`
	MaxPitch float64 `yaml:"max_pitch"`
}

// HostileSpec describes an enemy gun emplacement or vehicle.
type HostileSpec struct {
	Name              string        `yaml:"name"`
	Health            int           `yaml:"health"`
	Reward            int           `yaml:"reward"`
	Grace             time.Duration `yaml:"grace"`
	Collider          ColliderSpec  `yaml:"collider"`
	AcquireDelay      time.Duration `yaml:"acquire_delay"`
	RequeryInterval   time.Duration `yaml:"requery_interval"`
	Cadence           time.Duration `yaml:"cadence"`
	ShotsBeforeReload int           `yaml:"shots_before_reload"`
	Reload            time.Duration `yaml:"reload"`
	Range             float64       `yaml:"range"`
	Aim               AimSpec       `yaml:"aim"`
	Gun               Vec3Spec      `yaml:"gun"`
	AimAtTarget       bool          `yaml:"aim_at_target"`
	Projectile        string        `yaml:"projectile"`
	Wreck             string        `yaml:"wreck"`
	Drop              combat.Tag    `yaml:"drop"`
	Color             YAMLColor     `yaml:"color"`
}

func (s HostileSpec) FSMConfig() combat.HostileConfig {
	return combat.HostileConfig{
		AcquireDelay:      s.AcquireDelay,
		RequeryInterval:   s.RequeryInterval,
		Cadence:           s.Cadence,
		ShotsBeforeReload: s.ShotsBeforeReload,
		ReloadDuration:    s.Reload,
		Range:             s.Range,
	}
}

type ProjectileSpec struct {
	Name     string        `yaml:"name"`
	Kind     combat.Tag    `yaml:"kind"`
	Speed    float64       `yaml:"speed"`
	Lifetime time.Duration `yaml:"lifetime"`
	Collider ColliderSpec  `yaml:"collider"`
	// Homing fields, used by missiles only.
	ArcHeight       float64       `yaml:"arc_height"`
	SearchRadius    float64       `yaml:"search_radius"`
	FizzleAfter     time.Duration `yaml:"fizzle_after"`
	ExplosionOffset Vec3Spec      `yaml:"explosion_offset"`
	Explosion       string        `yaml:"explosion"`
	Color           YAMLColor     `yaml:"color"`
}

type PickupRuleSpec struct {
	Amount int       `yaml:"amount"`
	Color  YAMLColor `yaml:"color"`
}

type PickupsSpec struct {
	Collider     ColliderSpec                  `yaml:"collider"`
	BobAmplitude float64                       `yaml:"bob_amplitude"`
	BobSpeed     float64                       `yaml:"bob_speed"`
	Kinds        map[combat.Tag]PickupRuleSpec `yaml:"kinds"`
}

// Rules converts the pickup kinds to dispatcher rules, starting from the defaults
// so a missing kind keeps its built-in amount.
func (s PickupsSpec) Rules() map[combat.Tag]combat.PickupRule {
	rules := combat.DefaultPickupRules()
	for tag, k := range s.Kinds {
		rule, ok := rules[tag]
		if !ok {
			continue
		}
		rule.Amount = k.Amount
		rules[tag] = rule
	}
	return rules
}

type DamageSpec struct {
	Entries []combat.DamageEntry `yaml:"entries"`
}

func (s DamageSpec) Table() (*combat.DamageTable, error) {
	if len(s.Entries) == 0 {
		return combat.DefaultDamageTable(), nil
	}
	return combat.NewDamageTable(s.Entries)
}

type MarkerSpec struct {
	Lifetime time.Duration `yaml:"lifetime"`
	Color    YAMLColor     `yaml:"color"`
}

type MarkersSpec struct {
	Kinds map[string]MarkerSpec `yaml:"kinds"`
}

// YAMLColor accepts "#RRGGBB", "#RRGGBBAA" or an SVG color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color format: %s: %w", value.Value, err)
		}
		rgba[i] = v
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}

// Or returns c, or fallback when no color was configured.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
