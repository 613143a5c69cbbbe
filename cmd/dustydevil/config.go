package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"dustydevil"
)

const defaultConfigFile = "dustydevil.yaml"

// Config holds the file locations the interpreter works with. Every field
// can also be set from the command line.
type Config struct {
	Source  string `yaml:"source"`
	Log     string `yaml:"log"`
	Banner  string `yaml:"banner"`
	History string `yaml:"history"`
}

func DefaultConfig() Config {
	return Config{
		Source:  "DustyDevil+.in.txt",
		Log:     "DustyDevil+.out.txt",
		Banner:  dustydevil.DefaultBanner,
		History: ".dustydevil_history",
	}
}

// LoadConfig overlays the YAML file at path onto DefaultConfig. With an
// empty path it reads dustydevil.yaml from the working directory when that
// file exists.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = defaultConfigFile
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
