// Package config loads SketchBoard settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"SketchBoard/internal/colormath"
	"SketchBoard/internal/state"
)

const fileName = "sketchboard.toml"

type Config struct {
	Port        int      `toml:"port"`
	ServiceName string   `toml:"service_name"`
	Palette     []string `toml:"palette"`
	Tool        string   `toml:"tool"`
	PickerColor string   `toml:"picker_color"`

	Stamp  StampConfig  `toml:"stamp"`
	Stroke StrokeConfig `toml:"stroke"`
}

type StampConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

type StrokeConfig struct {
	Width float32 `toml:"width"`
}

func Default() Config {
	return Config{
		Port:        8888,
		ServiceName: "_localsketch._tcp",
		Palette:     append([]string(nil), state.DefaultPalette...),
		Tool:        state.ToolPencil.String(),
		PickerColor: "#ff0000",
		Stamp:       StampConfig{Width: 50, Height: 50},
		Stroke:      StrokeConfig{Width: 5},
	}
}

// DefaultPath is ~/.config/sketchboard/sketchboard.toml or the platform
// equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "sketchboard", fileName)
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("could not read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown keys %v", undecoded)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if len(c.Palette) == 0 {
		return errors.New("palette is empty")
	}
	for _, name := range c.Palette {
		if _, ok := colormath.Parse(name); !ok {
			return fmt.Errorf("palette color %q is not a color", name)
		}
	}
	if _, err := state.ParseTool(c.Tool); err != nil {
		return err
	}
	if _, ok := colormath.HexToRGB(colormath.ExpandShorthandHex(c.PickerColor)); !ok {
		return fmt.Errorf("picker_color %q is not a hex color", c.PickerColor)
	}
	if c.Stamp.Width <= 0 || c.Stamp.Height <= 0 {
		return fmt.Errorf("stamp size %vx%v must be positive", c.Stamp.Width, c.Stamp.Height)
	}
	if c.Stroke.Width <= 0 {
		return fmt.Errorf("stroke width %v must be positive", c.Stroke.Width)
	}
	return nil
}

// InitialTool is the configured starting tool.
func (c Config) InitialTool() state.Tool {
	t, _ := state.ParseTool(c.Tool)
	return t
}
