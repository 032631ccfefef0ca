package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/finstmt/finstmt"
)

const configName = ".finstmt.yaml"

// Config is the optional user configuration. The file is looked up in the
// working directory first and the home directory second; a missing file
// means defaults.
//
//	limits:
//	  item: 120
//	  notes: 40000
//	style: compliance
type Config struct {
	Limits finstmt.Limits `yaml:"limits"`
	Style  string         `yaml:"style"`
}

func loadConfig() (Config, error) {
	var cfg Config
	for _, dir := range configDirs() {
		name := filepath.Join(dir, configName)
		raw, err := os.ReadFile(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, fmt.Errorf("could not read config %q: %w", name, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("could not parse config %q: %w", name, err)
		}
		return cfg, nil
	}
	return cfg, nil
}

func configDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}
