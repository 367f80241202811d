package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

var ErrInvalid = errors.New("config: invalid")

// EnvPrefix namespaces environment overrides, e.g. LOBBY_LOOP_FPS
const EnvPrefix = "LOBBY"

// DefaultFile is searched in the working directory when no path is given
const DefaultFile = "lobby.toml"

type MovementConfig struct {
	Speed   float64 `mapstructure:"speed"`
	Damping float64 `mapstructure:"damping"`
}

type BodyConfig struct {
	EyeHeight float64 `mapstructure:"eyeHeight"`
	HalfWidth float64 `mapstructure:"halfWidth"`
	Height    float64 `mapstructure:"height"`
}

type RoomConfig struct {
	MinX float64 `mapstructure:"minX"`
	MaxX float64 `mapstructure:"maxX"`
	MinZ float64 `mapstructure:"minZ"`
	MaxZ float64 `mapstructure:"maxZ"`
}

type ZoneConfig struct {
	X           float64 `mapstructure:"x"`
	Y           float64 `mapstructure:"y"`
	Z           float64 `mapstructure:"z"`
	Radius      float64 `mapstructure:"radius"`
	RequireExit bool    `mapstructure:"requireExit"`
}

type SpawnConfig struct {
	X   float64 `mapstructure:"x"`
	Z   float64 `mapstructure:"z"`
	Yaw float64 `mapstructure:"yaw"`
}

type LoopConfig struct {
	FPS int `mapstructure:"fps"`
}

type InputConfig struct {
	HoldTimeout time.Duration `mapstructure:"holdTimeout"`
}

type LookConfig struct {
	TurnRate float64 `mapstructure:"turnRate"`
}

type ResolverConfig struct {
	MaxPasses int `mapstructure:"maxPasses"`
}

type AudioConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	SampleRate int     `mapstructure:"sampleRate"`
	Volume     float64 `mapstructure:"volume"`
	Ambient    bool    `mapstructure:"ambient"`
}

type ConciergeConfig struct {
	ReplyDelayMin time.Duration `mapstructure:"replyDelayMin"`
	ReplyDelayMax time.Duration `mapstructure:"replyDelayMax"`
}

type LogsConfig struct {
	Dir       string `mapstructure:"dir"`
	Level     string `mapstructure:"level"`
	MaxSizeMB int    `mapstructure:"maxSizeMB"`
}

// Config is the resolved walkthrough configuration
type Config struct {
	Movement  MovementConfig  `mapstructure:"movement"`
	Body      BodyConfig      `mapstructure:"body"`
	Room      RoomConfig      `mapstructure:"room"`
	Zone      ZoneConfig      `mapstructure:"zone"`
	Spawn     SpawnConfig     `mapstructure:"spawn"`
	Loop      LoopConfig      `mapstructure:"loop"`
	Input     InputConfig     `mapstructure:"input"`
	Look      LookConfig      `mapstructure:"look"`
	Resolver  ResolverConfig  `mapstructure:"resolver"`
	Audio     AudioConfig     `mapstructure:"audio"`
	Concierge ConciergeConfig `mapstructure:"concierge"`
	Logs      LogsConfig      `mapstructure:"logs"`
	Debug     bool            `mapstructure:"debug"`

	// Keys maps action names to key names, merged over the default key table
	Keys map[string][]string `mapstructure:"keys"`

	// File is the config file actually read, empty when running on defaults
	File string `mapstructure:"-"`
}

// setDefaults registers every key, durations as strings so the TOML dump stays readable
func setDefaults(v *viper.Viper) {
	v.SetDefault("movement.speed", 0.12)
	v.SetDefault("movement.damping", 0.08)

	v.SetDefault("body.eyeHeight", 1.6)
	v.SetDefault("body.halfWidth", 0.3)
	v.SetDefault("body.height", 1.7)

	v.SetDefault("room.minX", -11.0)
	v.SetDefault("room.maxX", 11.0)
	v.SetDefault("room.minZ", -9.0)
	v.SetDefault("room.maxZ", 9.0)

	v.SetDefault("zone.x", 0.0)
	v.SetDefault("zone.y", 0.0)
	v.SetDefault("zone.z", -6.0)
	v.SetDefault("zone.radius", 2.2)
	v.SetDefault("zone.requireExit", true)

	v.SetDefault("spawn.x", 0.0)
	v.SetDefault("spawn.z", 8.0)
	v.SetDefault("spawn.yaw", 0.0)

	v.SetDefault("loop.fps", 60)
	// Outlasts the terminal auto-repeat start delay (about 250 to 660ms) so a
	// held key does not stutter; a tapped key keeps walking for this long
	v.SetDefault("input.holdTimeout", "500ms")
	v.SetDefault("look.turnRate", 0.06)
	v.SetDefault("resolver.maxPasses", 1)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.sampleRate", 44100)
	v.SetDefault("audio.volume", 0.8)
	v.SetDefault("audio.ambient", true)

	v.SetDefault("concierge.replyDelayMin", "600ms")
	v.SetDefault("concierge.replyDelayMax", "1000ms")

	v.SetDefault("logs.dir", "./logs")
	v.SetDefault("logs.level", "info")
	v.SetDefault("logs.maxSizeMB", 10)
	v.SetDefault("debug", false)
}

// newViper creates an isolated viper with defaults and env binding
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load resolves configuration: overrides > LOBBY_* env > file > defaults
// An explicit path must exist, the default lobby.toml is optional
func Load(path string, overrides map[string]any) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFile, ".toml"))
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	for k, val := range overrides {
		v.Set(k, val)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	// Defaults always decode
	_ = newViper().Unmarshal(cfg)
	return cfg
}

// DefaultTOML renders the defaults as a config file template
func DefaultTOML() ([]byte, error) {
	v := viper.New()
	setDefaults(v)
	return toml.Marshal(v.AllSettings())
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Movement.Speed > 0, "movement.speed must be positive, got %v", c.Movement.Speed)
	check(c.Movement.Damping >= 0 && c.Movement.Damping < 1, "movement.damping must be in [0,1), got %v", c.Movement.Damping)
	check(c.Body.HalfWidth > 0, "body.halfWidth must be positive, got %v", c.Body.HalfWidth)
	check(c.Body.Height > 0, "body.height must be positive, got %v", c.Body.Height)
	check(c.Room.MinX < c.Room.MaxX, "room.minX must be below room.maxX")
	check(c.Room.MinZ < c.Room.MaxZ, "room.minZ must be below room.maxZ")
	check(c.Zone.Radius >= 0, "zone.radius must not be negative, got %v", c.Zone.Radius)
	check(c.Loop.FPS > 0, "loop.fps must be positive, got %d", c.Loop.FPS)
	check(c.Input.HoldTimeout > 0, "input.holdTimeout must be positive")
	check(c.Resolver.MaxPasses >= 1, "resolver.maxPasses must be at least 1, got %d", c.Resolver.MaxPasses)
	check(c.Audio.SampleRate > 0, "audio.sampleRate must be positive, got %d", c.Audio.SampleRate)
	check(c.Concierge.ReplyDelayMin <= c.Concierge.ReplyDelayMax, "concierge.replyDelayMin exceeds replyDelayMax")
	check(c.Logs.MaxSizeMB >= 0, "logs.maxSizeMB must not be negative")

	return errors.Join(errs...)
}
