package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var errCorrupt = errors.New("corrupt kv file")

// FileKV keeps every key in a single JSON document on disk. TTLs are not
// supported; values persist until overwritten or deleted. Reads of an
// undecodable document fail, while writes move it aside to path+".corrupt"
// and start a fresh one.
type FileKV struct {
	path string
	mu   sync.RWMutex
}

// NewFileKV creates the parent directory of path if needed.
func NewFileKV(path string) (*FileKV, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create kv directory: %w", err)
		}
	}
	return &FileKV{path: path}, nil
}

func (f *FileKV) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	doc := map[string]string{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode kv file %s: %w: %w", f.path, errCorrupt, err)
	}
	return doc, nil
}

// loadForWrite is load, except a corrupt document is renamed out of the way
// and replaced by an empty one.
func (f *FileKV) loadForWrite() (map[string]string, error) {
	doc, err := f.load()
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, errCorrupt) {
		return nil, err
	}
	if err := os.Rename(f.path, f.path+".corrupt"); err != nil {
		return nil, fmt.Errorf("failed to move corrupt kv file aside: %w", err)
	}
	return map[string]string{}, nil
}

func (f *FileKV) save(doc map[string]string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *FileKV) Get(ctx context.Context, key string) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	doc, err := f.load()
	if err != nil {
		return "", err
	}
	v, ok := doc[key]
	if !ok {
		return "", ErrMiss
	}
	return v, nil
}

func (f *FileKV) Set(ctx context.Context, key string, value string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.loadForWrite()
	if err != nil {
		return err
	}
	doc[key] = value
	return f.save(doc)
}

func (f *FileKV) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.loadForWrite()
	if err != nil {
		return err
	}
	if _, ok := doc[key]; !ok {
		return nil
	}
	delete(doc, key)
	return f.save(doc)
}
