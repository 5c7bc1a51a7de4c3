package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Path is the directory holding the json config files.
var Path = "infra/config"

// Load reads the json file at the given path into v.
// Fields missing from the file keep the value v already has.
func Load(path string, v interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config '%s': %w", path, err)
	}
	err = json.Unmarshal(b, v)
	if err != nil {
		return fmt.Errorf("could not unmarshal config '%s': %w", path, err)
	}
	log.Debug().Str("path", path).Msg("loaded config")
	return nil
}

// MustLoad loads the config for the given key
func MustLoad(key string, v interface{}) {
	err := Load(filepath.Join(Path, fmt.Sprintf("%s.json", key)), v)
	if err != nil {
		panic(fmt.Sprintf("could not load config for %s: %s", key, err.Error()))
	}
	log.Info().Str("key", key).Msg("loaded default config")
}
