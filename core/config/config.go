package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"hero-catalog/core/database"
	"hero-catalog/core/logger"
	"hero-catalog/core/server"
	"hero-catalog/core/storage"
	"hero-catalog/core/superhero"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the hero catalog configuration, one section per subsystem.
type Config struct {
	// Server is the HTTP API and the publisher kept on refresh.
	Server server.Config `mapstructure:"server"`
	// Source is the remote superhero API the catalog is fetched from.
	Source superhero.Config `mapstructure:"source"`
	// Storage is the bucket receiving favorites backups.
	Storage storage.Config `mapstructure:"storage"`
	Log     logger.Config  `mapstructure:"log"`
	// Database is where favorite flags are persisted.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig reads dir/.env, if present, then the environment. Every key is named
// after its section and field, so STORAGE_BACKUP_RETENTION sets storage.backup_retention.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	registerDefaults(v, reflect.TypeOf(Config{}), "")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// registerDefaults walks t and registers every mapstructure key with its default tag.
// Keys without a default are still registered, since AutomaticEnv only resolves known keys.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, name)
			continue
		}
		v.SetDefault(name, field.Tag.Get("default"))
	}
}
