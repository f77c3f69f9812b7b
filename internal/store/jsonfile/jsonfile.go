// Package jsonfile is the default Record Store driver: one indented JSON
// array file per collection under a data directory, rewritten wholesale on
// every Replace.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/recordshop/vinylstore/internal/store"
)

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(c store.Collection) string {
	return filepath.Join(s.dir, string(c)+".json")
}

func (s *Store) Load(_ context.Context, c store.Collection) ([]json.RawMessage, error) {
	b, err := os.ReadFile(s.path(c))
	if os.IsNotExist(err) {
		if err := s.writeFile(c, []byte("[]")); err != nil {
			return nil, err
		}
		return []json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c, err)
	}
	var docs []json.RawMessage
	if err := json.Unmarshal(b, &docs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", c, err)
	}
	return docs, nil
}

func (s *Store) Replace(_ context.Context, c store.Collection, docs []json.RawMessage) error {
	if docs == nil {
		docs = []json.RawMessage{}
	}
	b, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c, err)
	}
	return s.writeFile(c, b)
}

// writeFile goes through a temp file and rename so a crash mid-write never
// leaves a truncated collection behind.
func (s *Store) writeFile(c store.Collection, b []byte) error {
	tmp, err := os.CreateTemp(s.dir, string(c)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", c, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", c, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", c, err)
	}
	if err := os.Rename(tmp.Name(), s.path(c)); err != nil {
		return fmt.Errorf("write %s: %w", c, err)
	}
	return nil
}
