// Package draft persists one not-yet-submitted form snapshot to a local
// file and enforces a freshness window on load.
package draft

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/juchu-dx/api/internal/model"
)

// maxAgeDays is the freshness window: snapshots older than this many
// whole days are evicted on load.
const maxAgeDays = 7

// Snapshot is a saved form state plus its save timestamp.
type Snapshot struct {
	Header  model.Header     `json:"header"`
	Items   []model.LineItem `json:"items"`
	SavedAt time.Time        `json:"savedAt"`
}

// Store keeps at most one snapshot at a fixed path.
type Store struct {
	path string
	now  func() time.Time
}

// NewStore creates a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Save writes the snapshot, overwriting any previous one.
func (s *Store) Save(header model.Header, items []model.LineItem) error {
	snap := Snapshot{
		Header:  header,
		Items:   items,
		SavedAt: s.now(),
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Load returns the saved snapshot, or nil if there is none. Stale
// snapshots (older than the freshness window) and unparseable files are
// deleted and reported as absent; callers never see a corrupt draft.
func (s *Store) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		_ = os.Remove(s.path)
		return nil, nil
	}

	ageDays := int(s.now().Sub(snap.SavedAt).Hours() / 24)
	if ageDays > maxAgeDays {
		_ = os.Remove(s.path)
		return nil, nil
	}

	return &snap, nil
}

// Clear deletes the snapshot. Clearing an empty store is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
