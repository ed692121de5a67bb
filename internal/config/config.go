package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	fileName  = "config"
	fileType  = "yaml"
	homeDir   = ".elmkit"
	envPrefix = "ELMKIT"

	// KeyCacheDir names the per-project directory holding the binary
	// outline cache.
	KeyCacheDir = "cache.dir"

	defaultCacheDir = "elm-stuff"
)

// Dir returns the path to the elmkit config directory (~/.elmkit/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", homeDir)
	}
	return filepath.Join(home, homeDir)
}

// FilePath returns the full path to the config file (~/.elmkit/config.yaml).
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
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	viper.SetDefault(KeyCacheDir, defaultCacheDir)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns the string value of a config key.
func Get(key string) string {
	return viper.GetString(key)
}

// CacheDir returns the configured per-project cache directory name.
func CacheDir() string {
	if dir := viper.GetString(KeyCacheDir); dir != "" {
		return dir
	}
	return defaultCacheDir
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
