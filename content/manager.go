package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/grove/component"
)

// Manager loads plant definitions from YAML files and resolves names to
// instance prototypes
//
// Definitions are immutable after loading; Plant returns a value copy so
// callers can specialize the prototype freely.
type Manager struct {
	defs  map[string]definition
	names []string
	log   zerolog.Logger
}

type definition struct {
	def    PlantDef
	stages *component.StageTable
}

// NewManager creates an empty definition manager
func NewManager(log zerolog.Logger) *Manager {
	return &Manager{
		defs: make(map[string]definition),
		log:  log,
	}
}

// LoadDir loads every .yaml/.yml file under dir as a plant definition
// A missing directory is not an error; the manager just stays empty
func (m *Manager) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			m.log.Warn().Str("dir", dir).Msg("definition directory missing")
			return nil
		}
		return fmt.Errorf("read definition directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		path := filepath.Join(dir, name)
		if err := m.LoadFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}

	m.log.Info().Int("count", len(m.defs)).Str("dir", dir).Msg("plant definitions loaded")
	return nil
}

// LoadFile loads a single plant definition file
func (m *Manager) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return m.LoadBytes(data)
}

// LoadBytes parses and registers one definition from raw YAML
func (m *Manager) LoadBytes(data []byte) error {
	var def PlantDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return fmt.Errorf("unmarshal definition: %w", err)
	}
	return m.Register(def)
}

// Register validates a definition and adds it to the manager
// Later registrations of the same name replace earlier ones
func (m *Manager) Register(def PlantDef) error {
	name := normalizeName(def.Name)
	if name == "" {
		return fmt.Errorf("definition has no name")
	}
	if def.Seed == "" && def.Produce == "" {
		return fmt.Errorf("definition %q has neither seed nor produce item", name)
	}

	stages := make([]component.GrowthStage, len(def.Stages))
	for i, sd := range def.Stages {
		stages[i] = component.GrowthStage{
			Block:   sd.Block,
			MinTime: time.Duration(sd.Min),
			MaxTime: time.Duration(sd.Max),
		}
	}
	table, err := component.NewStageTable(stages)
	if err != nil {
		return fmt.Errorf("definition %q: %w", name, err)
	}
	for _, w := range def.SeedDropWeights {
		if w < 0 {
			return fmt.Errorf("definition %q: negative seed drop weight", name)
		}
	}

	if _, exists := m.defs[name]; !exists {
		m.names = append(m.names, name)
	}
	m.defs[name] = definition{def: def, stages: table}
	return nil
}

// Plant resolves a definition name to a fresh instance prototype
// Implements the growth system's definition source
func (m *Manager) Plant(name string) (component.PlantComponent, bool) {
	d, ok := m.defs[normalizeName(name)]
	if !ok {
		return component.PlantComponent{}, false
	}
	weights := make([]int, len(d.def.SeedDropWeights))
	copy(weights, d.def.SeedDropWeights)
	return component.PlantComponent{
		Definition:      normalizeName(name),
		CurrentStage:    -1,
		Stages:          d.stages,
		Sustainable:     d.def.Sustainable,
		Seed:            d.def.Seed,
		Produce:         d.def.Produce,
		SeedDropWeights: weights,
	}, true
}

// Names returns the registered definition names in registration order
func (m *Manager) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Len returns the number of registered definitions
func (m *Manager) Len() int {
	return len(m.defs)
}

// FindClosest resolves a possibly misspelled name to the nearest registered
// definition name within an edit-distance limit scaled by name length
func (m *Manager) FindClosest(name string) (string, bool) {
	name = normalizeName(name)
	if _, ok := m.defs[name]; ok {
		return name, true
	}

	best := ""
	bestDist := -1
	for _, candidate := range m.names {
		dist := levenshtein.ComputeDistance(name, candidate)
		if dist > distanceLimit(len(candidate)) {
			continue
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && candidate < best) {
			best = candidate
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
