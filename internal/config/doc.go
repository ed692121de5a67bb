// Package config manages user-level settings stored at ~/.elmkit/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the name of the per-project cache directory.
package config
