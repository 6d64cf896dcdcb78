// Package activity owns the client-side progress records: the durable
// per-day activity map and the ephemeral per-date game state. Storage sits
// behind the Store interface so the deterministic engine and the sync
// reconciler never touch a concrete backend.
package activity

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"logic-looper-backend/internal/models"
)

// Store is the key-value persistence boundary. Loaders degrade to empty
// values on missing or corrupt data; they never fail the caller.
type Store interface {
	LoadActivity() models.ActivityMap
	SaveActivity(models.ActivityMap) error
	LoadState(date string) *models.GameState
	SaveState(date string, state *models.GameState) error
	Reset() error
}

const (
	activityFile    = "activity.json"
	statePrefix     = "state-"
	stateSuffix     = ".json"
	storageDirPerm  = 0o755
	storageFilePerm = 0o644
)

// FileStore keeps everything as JSON files under a single directory, one
// file for the activity map and one per-date file for game state.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, storageDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %v", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) LoadActivity() models.ActivityMap {
	data, err := os.ReadFile(filepath.Join(s.dir, activityFile))
	if err != nil {
		return models.ActivityMap{}
	}
	var m models.ActivityMap
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return models.ActivityMap{}
	}
	return m
}

func (s *FileStore) SaveActivity(m models.ActivityMap) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal activity: %v", err)
	}
	return os.WriteFile(filepath.Join(s.dir, activityFile), data, storageFilePerm)
}

func (s *FileStore) statePath(date string) string {
	return filepath.Join(s.dir, statePrefix+date+stateSuffix)
}

func (s *FileStore) LoadState(date string) *models.GameState {
	data, err := os.ReadFile(s.statePath(date))
	if err != nil {
		return nil
	}
	var st models.GameState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil
	}
	return &st
}

func (s *FileStore) SaveState(date string, state *models.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %v", err)
	}
	return os.WriteFile(s.statePath(date), data, storageFilePerm)
}

// Reset wipes the activity map and every stored game state.
func (s *FileStore) Reset() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if name == activityFile || (strings.HasPrefix(name, statePrefix) && strings.HasSuffix(name, stateSuffix)) {
			if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
				return err
			}
		}
	}
	return nil
}

// MemoryStore is the in-process backend used by tests and short-lived hosts.
type MemoryStore struct {
	activity models.ActivityMap
	states   map[string]models.GameState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		activity: models.ActivityMap{},
		states:   make(map[string]models.GameState),
	}
}

func (s *MemoryStore) LoadActivity() models.ActivityMap {
	out := make(models.ActivityMap, len(s.activity))
	for k, v := range s.activity {
		out[k] = v
	}
	return out
}

func (s *MemoryStore) SaveActivity(m models.ActivityMap) error {
	out := make(models.ActivityMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	s.activity = out
	return nil
}

func (s *MemoryStore) LoadState(date string) *models.GameState {
	st, ok := s.states[date]
	if !ok {
		return nil
	}
	return &st
}

func (s *MemoryStore) SaveState(date string, state *models.GameState) error {
	s.states[date] = *state
	return nil
}

func (s *MemoryStore) Reset() error {
	s.activity = models.ActivityMap{}
	s.states = make(map[string]models.GameState)
	return nil
}
