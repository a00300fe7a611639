package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ugparu/recdl/utils/logger"
)

// Store loads and saves settings snapshots.
type Store interface {
	Load() (Snapshot, error) // Returns the persisted snapshot, defaults when nothing is stored.
	Save(Snapshot) error     // Persists the snapshot, replacing the previous one.
}

const fileMode = 0o644

// FileStore keeps the snapshot in a YAML file. Keys missing from the file keep their
// default values.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by the YAML file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (fst *FileStore) Path() string {
	return fst.path
}

func (fst *FileStore) Load() (Snapshot, error) {
	fst.mu.Lock()
	defer fst.mu.Unlock()

	snap := Defaults()
	data, err := os.ReadFile(fst.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Infof(fst, "no settings at %s, using defaults", fst.path)
		return snap, nil
	}
	if err != nil {
		return snap, fmt.Errorf("settings: read %s: %w", fst.path, err)
	}
	if err = yaml.Unmarshal(data, &snap); err != nil {
		return Defaults(), fmt.Errorf("settings: decode %s: %w", fst.path, err)
	}
	return snap, nil
}

// Save writes the snapshot to a temporary file next to the target and renames it over the
// target, so readers never observe a partial file.
func (fst *FileStore) Save(snap Snapshot) (err error) {
	fst.mu.Lock()
	defer fst.mu.Unlock()

	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}

	dir := filepath.Dir(fst.path)
	if err = os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("settings: create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(fst.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("settings: create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("settings: write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("settings: close %s: %w", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), fileMode); err != nil {
		return fmt.Errorf("settings: chmod %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), fst.path); err != nil {
		return fmt.Errorf("settings: rename to %s: %w", fst.path, err)
	}
	logger.Debugf(fst, "saved settings to %s", fst.path)
	return nil
}

func (fst *FileStore) String() string {
	return fmt.Sprintf("FILE_STORE path=%s", filepath.Base(fst.path))
}

// MemoryStore keeps the snapshot in memory.
type MemoryStore struct {
	mu    sync.Mutex
	snap  Snapshot
	saves int
}

// NewMemoryStore returns a store holding snap.
func NewMemoryStore(snap Snapshot) *MemoryStore {
	return &MemoryStore{snap: snap}
}

func (mst *MemoryStore) Load() (Snapshot, error) {
	mst.mu.Lock()
	defer mst.mu.Unlock()
	return mst.snap, nil
}

func (mst *MemoryStore) Save(snap Snapshot) error {
	mst.mu.Lock()
	defer mst.mu.Unlock()
	mst.snap = snap
	mst.saves++
	return nil
}

// Saves returns how many times Save was called.
func (mst *MemoryStore) Saves() int {
	mst.mu.Lock()
	defer mst.mu.Unlock()
	return mst.saves
}

func (mst *MemoryStore) String() string {
	return "MEMORY_STORE"
}
