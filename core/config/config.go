package config

import (
	"reflect"
	"strings"

	"caldav-bridge/core/dav"
	"caldav-bridge/core/imagestore"
	"caldav-bridge/core/logger"
	"caldav-bridge/core/server"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Upstream holds configuration for the CalDAV upstream.
	Upstream dav.Config `mapstructure:"upstream"`
	// Store holds configuration for the image archive store.
	Store imagestore.Config `mapstructure:"store"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and a .env file.
func LoadConfig(path string) (*Config, error) {
	// Load .env file if it exists. Values in the file override the ambient
	// environment, matching the precedence the launcher guarantees.
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set defaults and env bindings
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// FromEnvironment builds a Config from an explicit variable snapshot instead
// of the ambient process environment. The launcher hands the snapshot to
// application factories so that env-file values reach the application
// through a parameter rather than through process-global state.
func FromEnvironment(env map[string]string) (*Config, error) {
	v := viper.New()
	bindValues(v, Config{}, "")
	applyEnv(v, Config{}, "", env)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default
// values in Viper based on the 'default' and 'mapstructure' tags. Fields
// carrying an 'env' tag are additionally bound to that exact variable name,
// so the original flat names (PORT, APPLE_ID, ...) keep working alongside
// the nested SERVER_PORT style.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)

		if envName := field.Tag.Get("env"); envName != "" {
			_ = v.BindEnv(key, envName)
		}
	}
}

// applyEnv overlays values from an explicit snapshot onto keys that carry
// an 'env' tag. Only flat-named variables participate; the nested
// SERVER_PORT style is an ambient-environment convenience.
func applyEnv(v *viper.Viper, iface any, prefix string, env map[string]string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			applyEnv(v, reflect.New(field.Type).Elem().Interface(), key, env)
			continue
		}

		if envName := field.Tag.Get("env"); envName != "" {
			if val, ok := env[envName]; ok {
				v.Set(key, val)
			}
		}
	}
}
