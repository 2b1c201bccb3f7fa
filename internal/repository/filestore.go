// Package repository provides the data access layer for the scoreboard.
//
// The store is a single JSON file owned by one process at a time: it is
// loaded fully into memory and rewritten whole on every save. Concurrent
// writers from multiple processes are not supported.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"arcade-scoreboard/internal/model"
)

// Common errors for repository operations.
var (
	ErrNoPath = errors.New("store path not configured")
)

// FileStore persists a model.Store as a JSON file.
type FileStore struct {
	path   string
	indent int

	now func() time.Time
}

// NewFileStore creates a FileStore writing to path. indent is the number of
// spaces used for pretty-printing; 0 writes compact JSON.
func NewFileStore(path string, indent int) *FileStore {
	return &FileStore{path: path, indent: indent, now: time.Now}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the store from the backing file. A missing, unreadable, or
// structurally invalid file yields a fresh empty store; corruption is logged
// and never propagated to the caller.
func (f *FileStore) Load() *model.Store {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", f.path).Msg("Scoreboard file unreadable, starting empty")
		}
		return model.NewStore()
	}

	var store model.Store
	if err := json.Unmarshal(data, &store); err != nil {
		log.Warn().Err(err).Str("path", f.path).Msg("Scoreboard file corrupt, starting empty")
		return model.NewStore()
	}

	store.Normalize()
	return &store
}

// Save serializes the full store and replaces the backing file. The store's
// LastUpdated field is set to the current time before writing. The data is
// written to a temporary file in the same directory and renamed into place,
// so a partial write never clobbers the previous good state.
func (f *FileStore) Save(store *model.Store) error {
	if f.path == "" {
		return ErrNoPath
	}

	store.LastUpdated = f.now()

	var (
		data []byte
		err  error
	)
	if f.indent > 0 {
		data, err = json.MarshalIndent(store, "", strings.Repeat(" ", f.indent))
	} else {
		data, err = json.Marshal(store)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace store file: %w", err)
	}

	return nil
}
