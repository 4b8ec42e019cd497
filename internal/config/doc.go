// Package config manages user-level settings stored at ~/.paw/config.yaml.
// It provides functions to load, read, and write keys such as the rasterizer
// command used for launcher icons and the default log level.
package config
