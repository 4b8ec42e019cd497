package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paw-tools/paw/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyRasterizer     = "rasterizer"
	KeyRasterizerArgs = "rasterizer_args"
	KeyLogLevel       = "log_level"
)

var v = viper.New()

// Dir returns the path to the config directory. PAW_HOME overrides ~/.paw/.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.paw/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	v = viper.New()
	v.SetConfigFile(FilePath())
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	v.SetDefault(KeyRasterizer, "auto")
	v.SetDefault(KeyLogLevel, "warn")

	// Ignore error if config file doesn't exist yet.
	_ = v.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return v.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	v.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Rasterizer returns the configured icon rasterizer: "auto", "builtin",
// or the name/path of an external tool.
func Rasterizer() string {
	return Get(KeyRasterizer)
}

// RasterizerArgs returns the argument template for an external rasterizer.
// Nil means the tool's built-in default.
func RasterizerArgs() []string {
	return strings.Fields(Get(KeyRasterizerArgs))
}

// LogLevel returns the configured log level name.
func LogLevel() string {
	return Get(KeyLogLevel)
}
