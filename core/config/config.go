package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"devserver/core/logger"
	"devserver/core/middleware/cors"
	"devserver/core/server"
	"devserver/core/storage"
	"devserver/feature/static"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds the serving root.
	Storage storage.Config `mapstructure:"storage"`
	// Static holds index and directory listing settings.
	Static static.Config `mapstructure:"static"`
	// CORS holds the cross-origin header values.
	CORS cors.Config `mapstructure:"cors"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// ConfigFileFlag is the flag naming an optional configuration file.
const ConfigFileFlag = "config"

// FlagKeys maps command-line flag names to configuration keys.
var FlagKeys = map[string]string{
	"host":      "server.host",
	"port":      "server.port",
	"backend":   "server.backend_url",
	"open":      "server.open_browser",
	"root":      "storage.root",
	"index":     "static.index",
	"list-dirs": "static.list_directories",
	"log-level": "log.level",
}

// LoadConfig loads configuration from defaults, the .env file in path, an
// optional config file, environment variables and flags, in increasing order
// of precedence. flags may be nil.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	// Ignore error if file doesn't exist
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
		if file, _ := flags.GetString(ConfigFileFlag); file != "" {
			v.SetConfigFile(file)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return &config, nil
}

// bindFlags binds every known flag present in flags to its key. Viper only
// uses a flag's value when it was set on the command line.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range FlagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
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

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
