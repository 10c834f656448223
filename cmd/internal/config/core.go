// Package config implements configuration for the are executable using
// https://github.com/spf13/viper.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Contains all the keys for are's config
const (
	LogLevelKey = "loglevel"
	ExactKey    = "exact"
)

// Init initializes the config package. It loads are's defaults and
// sets up viper
func Init() error {
	// Set any defaults
	viper.SetDefault(LogLevelKey, "warn")
	viper.SetDefault(ExactKey, false)
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	defaultFileAbs = filepath.Join(homeDir, defaultFileSuffix)

	// Tell viper that the config. can be read from ARE_<entry>
	// environment variables
	viper.SetEnvPrefix("ARE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set the config type
	viper.SetConfigType("yaml")

	return nil
}

var defaultFileSuffix = filepath.Join(".are", "are.yaml")
var defaultFileRel = filepath.Join("~", defaultFileSuffix)
var defaultFileAbs string

// DefaultFile returns the default config file's path
func DefaultFile() string {
	return defaultFileRel
}

// ReadFrom reads the config from the specified file.
// If file == DefaultFile(), then ReadFrom wil not return
// an error if file does not exist.
func ReadFrom(file string) error {
	if file == DefaultFile() {
		if defaultFileAbs == "" {
			panic("config.ReadFrom: default file not set. Please call config.Init()")
		}
		if _, err := os.Stat(defaultFileAbs); os.IsNotExist(err) {
			return nil
		}
		file = defaultFileAbs
	}
	content, err := os.ReadFile(file)
	if err != nil {
		return newConfigReadErr(file, err)
	}
	if err := viper.ReadConfig(bytes.NewReader(content)); err != nil {
		return newConfigReadErr(file, err)
	}
	return nil
}

func newConfigReadErr(file string, reason error) error {
	return fmt.Errorf("could not read the config from %v: %v", file, reason)
}
