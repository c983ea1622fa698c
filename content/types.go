package content

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration with YAML parsing via time.ParseDuration,
// so definitions read naturally ("30s", "2m30s")
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// StageDef describes a single growth stage in a plant definition file
type StageDef struct {
	Block string   `yaml:"block"`
	Min   Duration `yaml:"min"`
	Max   Duration `yaml:"max"`
}

// PlantDef is the on-disk schema for a plant definition
//
// SeedDropWeights is positional: index i is the relative weight of dropping
// i seeds on destruction.
type PlantDef struct {
	Name            string     `yaml:"name"`
	Sustainable     bool       `yaml:"sustainable"`
	Seed            string     `yaml:"seed"`
	Produce         string     `yaml:"produce"`
	SeedDropWeights []int      `yaml:"seed_drop_weights"`
	Stages          []StageDef `yaml:"stages"`
}
