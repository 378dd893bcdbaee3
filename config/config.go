// Package config loads the tunables of a crawler from YAML. Values are read
// once at spawn and never change during a run.
//
// Nothing here is validated. Negative speeds or a joint whose min exceeds its
// max are accepted and will simply produce odd motion.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/adammck/crawler"
	"github.com/adammck/crawler/math3d"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Walk     WalkConfig     `yaml:"walk"`
	Turn     TurnConfig     `yaml:"turn"`
	Sensor   SensorConfig   `yaml:"sensor"`
	Gait     GaitConfig     `yaml:"gait"`
	Joints   JointsConfig   `yaml:"joints"`
	Sequence SequenceConfig `yaml:"sequence"`
	Rig      RigConfig      `yaml:"rig"`
	World    WorldConfig    `yaml:"world"`
	Sim      SimConfig      `yaml:"sim"`
}

type WalkConfig struct {
	Speed float64 `yaml:"speed"` // distance per second along the facing direction
}

type TurnConfig struct {
	Speed      float64 `yaml:"speed"`       // blend rate towards the turn heading, per second
	Heading    float64 `yaml:"heading"`     // degrees; the fixed target of every avoidance turn
	ResetDelay float64 `yaml:"reset_delay"` // seconds of turning before the path is re-checked

	// Zero the turn timer whenever a new turn starts. When false, the timer
	// starts at ResetDelay and is never reset.
	ResetTimer bool `yaml:"reset_timer"`
}

type SensorConfig struct {
	Range  float64 `yaml:"range"`
	Layers uint    `yaml:"layers"`
	Offset Vec3    `yaml:"offset"` // probe origin, in the creature's local space
}

type GaitConfig struct {
	LegSpeed       float64 `yaml:"leg_speed"`       // blend rate of every joint, per second
	SwitchInterval float64 `yaml:"switch_interval"` // seconds per phase
	StepCooldown   float64 `yaml:"step_cooldown"`   // delay before the lead leg steps in phase zero
	LeanForward    Euler   `yaml:"lean_forward"`
	LeanBackward   Euler   `yaml:"lean_backward"`
}

// Range is the pitch (in degrees) at each end of a joint's swing.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type JointsConfig struct {
	UpperLeft  Range `yaml:"upper_left"`
	MidLeft    Range `yaml:"mid_left"`
	LowerLeft  Range `yaml:"lower_left"`
	UpperRight Range `yaml:"upper_right"`
	MidRight   Range `yaml:"mid_right"`
	LowerRight Range `yaml:"lower_right"`
}

// Ranges returns the swing of every leg joint, indexed by crawler.Joint.
func (jc JointsConfig) Ranges() [crawler.NumLegs]Range {
	return [crawler.NumLegs]Range{
		crawler.UpperLeft:  jc.UpperLeft,
		crawler.MidLeft:    jc.MidLeft,
		crawler.LowerLeft:  jc.LowerLeft,
		crawler.UpperRight: jc.UpperRight,
		crawler.MidRight:   jc.MidRight,
		crawler.LowerRight: jc.LowerRight,
	}
}

type SequenceConfig struct {
	Interval float64 `yaml:"interval"`
}

type RigConfig struct {
	Root  string       `yaml:"root"`
	Body  string       `yaml:"body"`
	Nodes []NodeConfig `yaml:"nodes"`
}

// NodeConfig describes one transform in the rig. Legs are found by their
// joint name (e.g. "upper_left").
type NodeConfig struct {
	Name     string `yaml:"name"`
	Parent   string `yaml:"parent"`
	Position Vec3   `yaml:"position"`
	Rotation Euler  `yaml:"rotation"`
}

type WorldConfig struct {
	Obstacles []ObstacleConfig `yaml:"obstacles"`
}

const (
	ShapeBox    = "box"
	ShapeCircle = "circle"
)

// ObstacleConfig is a static obstacle standing on the ground plane. Boxes are
// axis aligned; Size.X and Size.Z are their full width and depth.
type ObstacleConfig struct {
	Name   string  `yaml:"name"`
	Shape  string  `yaml:"shape"`
	Center Vec3    `yaml:"center"`
	Size   Vec3    `yaml:"size"`
	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`
	Layer  uint    `yaml:"layer"`
}

type SimConfig struct {
	DT    float64 `yaml:"dt"`
	Ticks int     `yaml:"ticks"`
}

type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3) Vector3() math3d.Vector3 {
	return math3d.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// Euler is an orientation in degrees.
type Euler struct {
	Heading float64 `yaml:"heading"`
	Pitch   float64 `yaml:"pitch"`
	Bank    float64 `yaml:"bank"`
}

func (e Euler) EulerAngles() math3d.EulerAngles {
	return math3d.Euler(e.Heading, e.Pitch, e.Bank)
}

func (e Euler) Quaternion() math3d.Quaternion {
	return e.EulerAngles().Quaternion()
}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	return Load("")
}

// Load reads configuration from a YAML file on top of the embedded defaults.
// Fields missing from the file keep their default. If path is empty, only the
// defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("%w (while parsing embedded defaults)", err)
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w (while reading config file)", err)
	}

	return Parse(cfg, data)
}

// Parse unmarshals data on top of an existing config.
func Parse(cfg *Config, data []byte) (*Config, error) {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w (while parsing config)", err)
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w (while marshaling config)", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w (while writing config file)", err)
	}

	return nil
}
