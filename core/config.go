/* ptpmgmt - Precision Time Protocol management messages
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"math"

	"github.com/pelletier/go-toml"
)

var config *toml.Tree

// LoadConfig loads the configuration from the specified configuration file.
func LoadConfig(file string) {
	var err error
	config, err = toml.LoadFile(file)
	if err != nil {
		LogFatal("Config", "Unable to load configuration file: "+err.Error())
	}
}

// LoadConfigString loads the configuration from an in-memory TOML document.
func LoadConfigString(doc string) error {
	var err error
	config, err = toml.Load(doc)
	return err
}

// HasConfig returns whether a configuration has been loaded.
func HasConfig() bool {
	return config != nil
}

// GetConfigIntDefault returns the integer configuration value at the specified key or the specified default value if it does not exist.
func GetConfigIntDefault(key string, def int) int {
	if config == nil {
		return def
	}
	valRaw := config.Get(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(int64)
	if ok && val >= math.MinInt32 && val <= math.MaxInt32 {
		return int(val)
	}
	return def
}

// GetConfigStringDefault returns the string configuration value at the specified key or the specified default value if it does not exist.
func GetConfigStringDefault(key string, def string) string {
	if config == nil {
		return def
	}
	valRaw := config.Get(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(string)
	if ok {
		return val
	}
	return def
}

// GetConfigBoolDefault returns the boolean configuration value at the specified key or the specified default value if it does not exist.
func GetConfigBoolDefault(key string, def bool) bool {
	if config == nil {
		return def
	}
	valRaw := config.Get(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(bool)
	if ok {
		return val
	}
	return def
}

const missingInt = math.MinInt32

// GetSectionIntDefault returns the integer value for key in the given port
// section, falling back first to the global section and then to the default.
func GetSectionIntDefault(section string, key string, def int) int {
	if section != "" {
		if val := GetConfigIntDefault(section+"."+key, missingInt); val != missingInt {
			return val
		}
	}
	return GetConfigIntDefault("global."+key, def)
}

// GetSectionStringDefault returns the string value for key in the given port
// section, falling back first to the global section and then to the default.
func GetSectionStringDefault(section string, key string, def string) string {
	if section != "" {
		if val := GetConfigStringDefault(section+"."+key, "\x00"); val != "\x00" {
			return val
		}
	}
	return GetConfigStringDefault("global."+key, def)
}
