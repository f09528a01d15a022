package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	User     UserConfig
	UI       UIConfig
	Log      LogConfig
	Demo     DemoConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UserConfig selects whose data is loaded.
type UserConfig struct {
	ID string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat     string `mapstructure:"date_format"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
	Timezone       string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// DemoConfig controls sample data seeding for empty databases.
type DemoConfig struct {
	Seed bool
}

// Load reads configuration from file and env. Env var overrides use prefix FINCONTROL_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "fincontrol", "fincontrol.db"))
	v.SetDefault("user.id", "local")
	v.SetDefault("ui.date_format", "02/01/2006")
	v.SetDefault("ui.currency_symbol", "R$")
	v.SetDefault("ui.timezone", "America/Sao_Paulo")
	v.SetDefault("log.level", "info")
	v.SetDefault("demo.seed", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FINCONTROL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "fincontrol"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FINCONTROL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine; a broken one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("user.id", cfg.User.ID)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("log.level", cfg.Log.Level)
	v.Set("demo.seed", cfg.Demo.Seed)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Path returns the config file: $FINCONTROL_CONFIG when set, otherwise
// config.toml under $HOME/.config/fincontrol.
func Path() string {
	if p := os.Getenv("FINCONTROL_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "fincontrol", "config.toml")
}

// EnsureFile writes cfg to Path when no file exists there yet, so a first
// run leaves an editable config behind. It reports whether it wrote one.
func EnsureFile(cfg Config) (bool, error) {
	_, err := os.Stat(Path())
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config: %w", err)
	}
	if err := Save(cfg); err != nil {
		return false, err
	}
	return true, nil
}
