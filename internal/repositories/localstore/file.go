package localstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/KirkDiggler/roomsync/internal/models"
	"gopkg.in/yaml.v3"
)

// fileState is the on-disk layout of the local state
type fileState struct {
	Identity *models.Identity      `yaml:"identity,omitempty"`
	History  []*models.HistoryEntry `yaml:"history,omitempty"`
}

// File keeps local state in a YAML file, rewritten atomically on every change
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file-backed store. The file is created on first write.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	return &File{path: path}, nil
}

func (f *File) LoadIdentity(ctx context.Context) (*models.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.read()
	if err != nil {
		return nil, err
	}
	return state.Identity, nil
}

func (f *File) SaveIdentity(ctx context.Context, identity *models.Identity) error {
	if identity == nil || identity.ID == "" {
		return ErrIdentityRequired
	}

	return f.update(func(state *fileState) {
		saved := *identity
		state.Identity = &saved
	})
}

func (f *File) ClearIdentity(ctx context.Context) error {
	return f.update(func(state *fileState) {
		state.Identity = nil
	})
}

func (f *File) AppendHistory(ctx context.Context, entry *models.HistoryEntry) error {
	if entry == nil {
		return nil
	}

	return f.update(func(state *fileState) {
		state.History = prepend(state.History, entry)
	})
}

func (f *File) History(ctx context.Context) ([]*models.HistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.read()
	if err != nil {
		return nil, err
	}
	return slices.Clone(state.History), nil
}

func (f *File) update(mutate func(state *fileState)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.read()
	if err != nil {
		return err
	}

	mutate(state)
	return f.write(state)
}

func (f *File) read() (*fileState, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &fileState{}, nil
		}
		return nil, fmt.Errorf("failed to read local state: %w", err)
	}

	var state fileState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse local state: %w", err)
	}
	return &state, nil
}

func (f *File) write(state *fileState) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal local state: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write local state: %w", err)
	}

	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace local state: %w", err)
	}
	return nil
}
