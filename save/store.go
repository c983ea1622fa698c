package save

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const saveObject = "snapshots"

// Store persists snapshots through the gdata platform storage layer
//
// A nil gdata manager puts the store in degraded mode: saves become no-ops
// and loads report no snapshot, so the simulation runs memory-only.
type Store struct {
	data *gdata.Manager
	name string
	log  zerolog.Logger
}

// NewStore creates a snapshot store for the named save slot
func NewStore(data *gdata.Manager, name string, log zerolog.Logger) *Store {
	return &Store{data: data, name: name, log: log}
}

// Save writes the snapshot to the save slot
func (s *Store) Save(snap Snapshot) error {
	if s.data == nil {
		return nil
	}
	raw, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.data.SaveObjectProp(saveObject, s.name, raw); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	s.log.Debug().Str("slot", s.name).Int("bytes", len(raw)).Msg("snapshot saved")
	return nil
}

// Load reads the snapshot from the save slot
// The bool reports whether a snapshot existed
func (s *Store) Load() (Snapshot, bool, error) {
	if s.data == nil || !s.data.ObjectPropExists(saveObject, s.name) {
		return Snapshot{}, false, nil
	}
	raw, err := s.data.LoadObjectProp(saveObject, s.name)
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("load snapshot: %w", err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, false, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return snap, true, nil
}
