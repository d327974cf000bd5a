package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Frontend selects the rendering surface
type Frontend string

const (
	FrontendGUI Frontend = "gui"
	FrontendTUI Frontend = "tui"
)

// Environment
const (
	EnvPrefix     = "PERSONFORM"
	EnvConfigPath = "PERSONFORM_CONFIG"
)

// Default values
const (
	DefaultFrontend     = FrontendGUI
	DefaultTrace        = true
	DefaultWindowWidth  = 480
	DefaultWindowHeight = 360
)

// ErrUnknownFrontend is returned when the configured frontend is not gui or tui
var ErrUnknownFrontend = errors.New("unknown frontend")

// Config holds launch-time configuration.
type Config struct {
	Frontend Frontend
	Trace    bool
	Window   WindowConfig
	TUI      TUIConfig
}

// WindowConfig holds the default GUI window size.
type WindowConfig struct {
	Width  float32
	Height float32
}

// TUIConfig holds terminal surface settings.
type TUIConfig struct {
	// LogFile receives render traces; stderr is owned by the terminal UI
	LogFile string `mapstructure:"log_file"`
}

// Load reads configuration from defaults, file, env and then args.
// Env var overrides use prefix PERSONFORM_.
func Load(args []string) (Config, error) {
	v := viper.New()

	v.SetDefault("frontend", string(DefaultFrontend))
	v.SetDefault("trace", DefaultTrace)
	v.SetDefault("window.width", DefaultWindowWidth)
	v.SetDefault("window.height", DefaultWindowHeight)
	v.SetDefault("tui.log_file", "")

	v.SetConfigType("yaml")
	if cfgPath := os.Getenv(EnvConfigPath); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		home, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(home, ".config", "person-form"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if err := v.BindPFlag("frontend", flags.Lookup("frontend")); err != nil {
		return Config{}, fmt.Errorf("bind frontend flag: %w", err)
	}
	if err := v.BindPFlag("trace", flags.Lookup("trace")); err != nil {
		return Config{}, fmt.Errorf("bind trace flag: %w", err)
	}
	if err := v.BindPFlag("tui.log_file", flags.Lookup("log-file")); err != nil {
		return Config{}, fmt.Errorf("bind log-file flag: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Frontend = Frontend(strings.ToLower(strings.TrimSpace(string(c.Frontend))))

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("person-form", pflag.ContinueOnError)
	flags.String("frontend", string(DefaultFrontend), "rendering surface: gui or tui")
	flags.Bool("trace", DefaultTrace, "log a line on every component render")
	flags.String("log-file", "", "file receiving render traces in tui mode")
	return flags
}

// Validate checks values that cannot be defaulted
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendGUI, FrontendTUI:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFrontend, c.Frontend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	return nil
}
