package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variables
const EnvPrefix = "CHANGELOG"

// tokenEnvVars are consulted in order when no token flag is given.
var tokenEnvVars = []string{"CHANGELOG_TOKEN", "GITHUB_TOKEN", "GITHUB_ACCESS_TOKEN", "GITLAB_TOKEN"}

// BindEnv makes v read CHANGELOG_* environment variables, plus the
// conventional platform token variables for the token key.
func BindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindEnv(append([]string{"token"}, tokenEnvVars...)...)
}

// Load fills c from v: flags, then environment, then the optional config file.
// Values not set anywhere keep what c already holds. Config file keys use the
// flag names, e.g. base-branch or cache-ttl.
func (c *Config) Load(v *viper.Viper) error {
	c.setDefaults(v)

	if file := strings.TrimSpace(v.GetString("config")); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	c.trim()
	return nil
}

// setDefaults registers every key with v so environment variables are seen
// by Unmarshal even when no flag is bound for them.
func (c *Config) setDefaults(v *viper.Viper) {
	val := reflect.ValueOf(c).Elem()
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		if key := typ.Field(i).Tag.Get("mapstructure"); key != "" {
			v.SetDefault(key, val.Field(i).Interface())
		}
	}
}
