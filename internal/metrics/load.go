package metrics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadObservationSet reads a JSON, TOML or YAML observation file, chosen by
// extension, and validates it.
func LoadObservationSet(path string) (*ObservationSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read observations file %s: %w", path, err)
	}

	set, err := DecodeObservationSet(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse observations file %s: %w", path, err)
	}
	return set, nil
}

// DecodeObservationSet parses data by extension (".toml", ".yaml"/".yml",
// anything else as JSON), then validates the result.
func DecodeObservationSet(data []byte, ext string) (*ObservationSet, error) {
	var set ObservationSet

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &set); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &set); err != nil {
			return nil, err
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&set); err != nil {
			return nil, err
		}
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}
