package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves the on-disk location of the goal database.
type Config interface {
	BasePath() string
}

// LoadConfig reads the optional .cascade config file (current directory or
// CASCADE_CONFIG_PATH) and the CASCADE_* environment, falling back to
// ~/.cascade.db for the database path.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.cascade.db")
	viper.SetConfigName(".cascade") // .yaml is implicit
	viper.SetEnvPrefix("CASCADE")
	viper.AutomaticEnv()

	if override := os.Getenv("CASCADE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
