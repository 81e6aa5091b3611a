// Package config loads the YAML settings shared by the example programs.
//
// Every field has a default, so a file only needs to name what it changes. Unknown keys are rejected
// to catch typos.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Carmen-Shannon/oxy-labs/engine/bacteria"
	"github.com/Carmen-Shannon/oxy-labs/engine/mesh"
	"github.com/Carmen-Shannon/oxy-labs/internal/logging"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable holding an optional config file path.
const EnvPath = "OXY_CONFIG"

// Config is the root document.
type Config struct {
	Window   Window   `yaml:"window"`
	Log      Log      `yaml:"log"`
	Bacteria Bacteria `yaml:"bacteria"`
	Sphere   Sphere   `yaml:"sphere"`
	Render   Render   `yaml:"render"`
	Engine   Engine   `yaml:"engine"`
}

// Window sizes and titles the main window.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Log selects the zap level and whether the development encoder is used.
type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Bacteria mirrors the simulator options. A zero Seed means seed from the clock.
type Bacteria struct {
	Count         int          `yaml:"count"`
	DiskRadius    float32      `yaml:"disk_radius"`
	Speed         float32      `yaml:"speed"`
	Threshold     float32      `yaml:"threshold"`
	ComputerLimit int          `yaml:"computer_limit"`
	Scale         float32      `yaml:"scale"`
	Seed          uint64       `yaml:"seed"`
	Palette       [][4]float32 `yaml:"palette"`
	DegreeAngles  bool         `yaml:"degree_angles"`
}

// Sphere configures the lit sphere scene. AngleStep is the rotation in degrees per second.
type Sphere struct {
	Detail    int        `yaml:"detail"`
	Color     [3]float32 `yaml:"color"`
	AngleStep float32    `yaml:"angle_step"`
	Light     Light      `yaml:"light"`
	Camera    Camera     `yaml:"camera"`
}

// Light is the directional light shining on the sphere.
type Light struct {
	Color     [3]float32 `yaml:"color"`
	Direction [3]float32 `yaml:"direction"`
}

// Camera is the sphere scene's perspective camera. FOV is in degrees.
type Camera struct {
	FOV  float32    `yaml:"fov"`
	Near float32    `yaml:"near"`
	Far  float32    `yaml:"far"`
	Eye  [3]float32 `yaml:"eye"`
}

// Render configures presentation. MSAA is 1 or 4.
type Render struct {
	VSync bool `yaml:"vsync"`
	MSAA  int  `yaml:"msaa"`
}

// Engine configures the frame loop. TickRate is the number of simulation ticks per second; zero
// ticks once per frame.
type Engine struct {
	TickRate  int  `yaml:"tick_rate"`
	Profiling bool `yaml:"profiling"`
}

// Default returns the stock settings: an 800x800 window, five bacteria and a detail-15 sphere.
//
// Returns:
//   - *Config: a fully populated configuration
func Default() *Config {
	palette := make([][4]float32, len(bacteria.DefaultPalette))
	for i, c := range bacteria.DefaultPalette {
		palette[i] = c
	}
	return &Config{
		Window: Window{Title: "oxy-labs", Width: 800, Height: 800},
		Log:    Log{Level: "info"},
		Bacteria: Bacteria{
			Count:         bacteria.DefaultCount,
			DiskRadius:    bacteria.DefaultDiskRadius,
			Speed:         bacteria.DefaultSpeed,
			Threshold:     bacteria.DefaultThreshold,
			ComputerLimit: bacteria.DefaultComputerLimit,
			Scale:         bacteria.DefaultScale,
			Palette:       palette,
		},
		Sphere: Sphere{
			Detail:    15,
			Color:     mesh.DefaultSphereColor,
			AngleStep: 30,
			Light: Light{
				Color:     [3]float32{1, 1, 1},
				Direction: [3]float32{0.5, 3, 4},
			},
			Camera: Camera{
				FOV:  30,
				Near: 1,
				Far:  100,
				Eye:  [3]float32{3, 3, 7},
			},
		},
		Render: Render{VSync: true, MSAA: 1},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
//
// Parameters:
//   - path: the file path
//
// Returns:
//   - *Config: the merged configuration
//   - error: an error if the file cannot be read, decoded or validated
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by EnvPath, or the defaults when it is unset.
//
// Returns:
//   - *Config: the loaded configuration
//   - error: an error if the named file cannot be read, decoded or validated
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv(EnvPath))
}

// Decode reads YAML from r over the defaults and validates the result.
//
// Parameters:
//   - r: the YAML source
//
// Returns:
//   - *Config: the merged configuration
//   - error: a decode error or the joined validation errors
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid field.
//
// Returns:
//   - error: nil, or the joined per-field errors
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}
	if c.Bacteria.Count <= 0 {
		errs = append(errs, fmt.Errorf("bacteria.count: %w", bacteria.ErrInvalidCount))
	}
	if c.Bacteria.Speed < 0 {
		errs = append(errs, fmt.Errorf("bacteria.speed: %w", bacteria.ErrInvalidSpeed))
	}
	if c.Bacteria.Scale <= 0 {
		errs = append(errs, fmt.Errorf("bacteria.scale: %w", bacteria.ErrInvalidScale))
	}
	if len(c.Bacteria.Palette) == 0 {
		errs = append(errs, fmt.Errorf("bacteria.palette: %w", bacteria.ErrEmptyPalette))
	}
	if c.Sphere.Detail <= 0 {
		errs = append(errs, fmt.Errorf("sphere.detail: must be positive, got %d", c.Sphere.Detail))
	}
	if c.Sphere.Light.Direction == [3]float32{} {
		errs = append(errs, errors.New("sphere.light.direction: must not be zero"))
	}
	if c.Sphere.Camera.FOV <= 0 || c.Sphere.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("sphere.camera.fov: must be in (0, 180), got %v", c.Sphere.Camera.FOV))
	}
	if c.Sphere.Camera.Near <= 0 || c.Sphere.Camera.Far <= c.Sphere.Camera.Near {
		errs = append(errs, fmt.Errorf("sphere.camera: need 0 < near < far, got %v/%v", c.Sphere.Camera.Near, c.Sphere.Camera.Far))
	}
	if c.Render.MSAA != 1 && c.Render.MSAA != 4 {
		errs = append(errs, fmt.Errorf("render.msaa: must be 1 or 4, got %d", c.Render.MSAA))
	}
	if c.Engine.TickRate < 0 {
		errs = append(errs, fmt.Errorf("engine.tick_rate: must not be negative, got %d", c.Engine.TickRate))
	}
	return errors.Join(errs...)
}

// Logger builds the logger described by the log section.
//
// Returns:
//   - *zap.Logger: the configured logger
//   - error: an error if the level is unknown or the logger could not be built
func (c *Config) Logger() (*zap.Logger, error) {
	return logging.New(c.Log.Level, c.Log.Development)
}

// SimulatorOptions converts the bacteria section into simulator options.
//
// Parameters:
//   - logger: the logger handed to the simulator
//
// Returns:
//   - []bacteria.SimulatorOption: the options for bacteria.NewSimulator
func (c *Config) SimulatorOptions(logger *zap.Logger) []bacteria.SimulatorOption {
	b := c.Bacteria
	palette := make(bacteria.Palette, len(b.Palette))
	for i, col := range b.Palette {
		palette[i] = col
	}
	options := []bacteria.SimulatorOption{
		bacteria.WithCount(b.Count),
		bacteria.WithDiskRadius(b.DiskRadius),
		bacteria.WithSpeed(b.Speed),
		bacteria.WithThreshold(b.Threshold),
		bacteria.WithComputerLimit(b.ComputerLimit),
		bacteria.WithScale(b.Scale),
		bacteria.WithPalette(palette),
		bacteria.WithDegreeAngles(b.DegreeAngles),
		bacteria.WithLogger(logger),
	}
	if b.Seed != 0 {
		options = append(options, bacteria.WithSeed(b.Seed))
	}
	return options
}
