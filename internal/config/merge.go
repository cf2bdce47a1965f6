package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyDisplay = "display"
	keyState   = "state"
	keyLogging = "logging"
)

// ShallowMergeYAML loads a YAML file and merges its top-level sections onto
// target. Within a present section only the keys the file sets change;
// absent sections and unknown keys are left alone.
func ShallowMergeYAML(target *Config, path string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", path, err)
	}

	for key, node := range overlay {
		var decodeErr error
		switch key {
		case keyDisplay:
			decodeErr = node.Decode(&target.Display)
		case keyState:
			decodeErr = node.Decode(&target.State)
		case keyLogging:
			decodeErr = node.Decode(&target.Logging)
		default:
			continue
		}
		if decodeErr != nil {
			return fmt.Errorf("applying config section %q: %w", key, decodeErr)
		}
	}

	return nil
}
