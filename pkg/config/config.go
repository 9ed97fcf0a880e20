// Package config handles render configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/df07/go-scanline-raytracer/pkg/camera"
	"github.com/df07/go-scanline-raytracer/pkg/core"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds all render settings.
type Config struct {
	Scene   string        `yaml:"scene"` // Built-in scene name or path to a YAML scene file
	Camera  CameraConfig  `yaml:"camera"`
	Image   ImageConfig   `yaml:"image"`
	Render  RenderConfig  `yaml:"render"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// CameraConfig overrides the scene's own viewpoint. Empty fields keep the scene's value.
// The lens fields are pointers so an explicit 0 can switch off a scene's depth of field.
type CameraConfig struct {
	LookFrom       []float64 `yaml:"look_from,omitempty,flow"`
	LookAt         []float64 `yaml:"look_at,omitempty,flow"`
	Up             []float64 `yaml:"up,omitempty,flow"`
	FovDegrees     float64   `yaml:"fov_degrees,omitempty"`
	DefocusDegrees *float64  `yaml:"defocus_degrees,omitempty"`
	FocusDistance  *float64  `yaml:"focus_distance,omitempty"`
}

// ImageConfig holds output raster settings.
type ImageConfig struct {
	Width       int    `yaml:"width"`
	AspectRatio string `yaml:"aspect_ratio"` // "16:9" or a decimal such as "1.5"
}

// RenderConfig holds sampling and scheduling settings.
type RenderConfig struct {
	Preset          string `yaml:"preset"`            // shallow or deep
	SamplesPerPixel int    `yaml:"samples_per_pixel"` // 0 uses the preset
	MaxDepth        int    `yaml:"max_depth"`         // 0 uses the preset
	Workers         int    `yaml:"workers"`           // 0 uses one per CPU
	Filter          string `yaml:"filter"`            // box, gaussian or mitchell
}

// OutputConfig holds where the finished image goes.
type OutputConfig struct {
	Path string `yaml:"path"` // .bmp or .png
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the built-in values.
func Default() *Config {
	return &Config{
		Scene: "default",
		Image: ImageConfig{
			Width:       400,
			AspectRatio: "16:9",
		},
		Render: RenderConfig{
			Preset: "shallow",
			Filter: "box",
		},
		Output: OutputConfig{
			Path: "output/render.bmp",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ParseAspectRatio accepts "W:H" or a positive decimal.
func ParseAspectRatio(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if w, h, ok := strings.Cut(s, ":"); ok {
		num, err1 := strconv.ParseFloat(strings.TrimSpace(w), 64)
		den, err2 := strconv.ParseFloat(strings.TrimSpace(h), 64)
		if err1 != nil || err2 != nil || num <= 0 || den <= 0 {
			return 0, fmt.Errorf("%w: aspect ratio %q", ErrInvalidConfig, s)
		}
		return num / den, nil
	}

	ratio, err := strconv.ParseFloat(s, 64)
	if err != nil || ratio <= 0 {
		return 0, fmt.Errorf("%w: aspect ratio %q", ErrInvalidConfig, s)
	}
	return ratio, nil
}

// ImageSettings converts the image section for the camera.
func (c *Config) ImageSettings() (camera.ImageSettings, error) {
	ratio, err := ParseAspectRatio(c.Image.AspectRatio)
	if err != nil {
		return camera.ImageSettings{}, err
	}
	return camera.ImageSettings{ImageWidth: c.Image.Width, AspectRatio: ratio}, nil
}

// RenderSettings resolves the preset and applies explicit overrides.
func (c *Config) RenderSettings() (camera.RenderSettings, error) {
	preset := c.Render.Preset
	if preset == "" {
		preset = "shallow"
	}
	rs, err := camera.Preset(preset)
	if err != nil {
		return camera.RenderSettings{}, err
	}
	if c.Render.SamplesPerPixel > 0 {
		rs.SamplesPerPixel = c.Render.SamplesPerPixel
	}
	if c.Render.MaxDepth > 0 {
		rs.MaxDepth = c.Render.MaxDepth
	}
	return rs, nil
}

// Bearings applies the camera section on top of base.
func (c *Config) Bearings(base camera.Bearings) (camera.Bearings, error) {
	b := base
	var err error
	if b.LookFrom, err = overrideVec(c.Camera.LookFrom, b.LookFrom, "look_from"); err != nil {
		return b, err
	}
	if b.LookAt, err = overrideVec(c.Camera.LookAt, b.LookAt, "look_at"); err != nil {
		return b, err
	}
	if b.Up, err = overrideVec(c.Camera.Up, b.Up, "up"); err != nil {
		return b, err
	}
	if c.Camera.FovDegrees != 0 {
		b.FovDegrees = c.Camera.FovDegrees
	}
	if c.Camera.DefocusDegrees != nil {
		b.DefocusDegrees = *c.Camera.DefocusDegrees
	}
	if c.Camera.FocusDistance != nil {
		b.FocusDistance = *c.Camera.FocusDistance
	}
	return b, nil
}

func overrideVec(values []float64, fallback core.Vec3, field string) (core.Vec3, error) {
	switch len(values) {
	case 0:
		return fallback, nil
	case 3:
		return core.NewVec3(values[0], values[1], values[2]), nil
	default:
		return fallback, fmt.Errorf("%w: camera.%s needs 3 components, got %d", ErrInvalidConfig, field, len(values))
	}
}

// Validate checks the settings that do not depend on the scene.
func (c *Config) Validate() error {
	if c.Scene == "" {
		return fmt.Errorf("%w: scene is empty", ErrInvalidConfig)
	}
	if c.Image.Width <= 0 {
		return fmt.Errorf("%w: image width %d", ErrInvalidConfig, c.Image.Width)
	}
	if _, err := c.ImageSettings(); err != nil {
		return err
	}
	if c.Render.SamplesPerPixel < 0 || c.Render.MaxDepth < 0 {
		return fmt.Errorf("%w: negative samples or depth", ErrInvalidConfig)
	}
	if _, err := c.RenderSettings(); err != nil {
		return err
	}
	if _, err := camera.NewFilter(c.Render.Filter); err != nil {
		return err
	}
	if c.Output.Path == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	}
	return nil
}
