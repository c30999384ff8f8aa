// Package store persists a built match index as a key-value document.
// The matching core never depends on this package; persistence stays the
// caller's choice, and this is the choice registryd's own CLI makes.
package store

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/corpdata/registryd/pkg/match"
)

// Key prefixes. Name entries map canonical name → document number; meta
// entries record batch provenance.
const (
	namePrefix = "n/"
	metaRunKey = "m/run"
)

// IndexStore holds a persisted canonical-name → document-number mapping.
type IndexStore struct {
	db *pebble.DB
}

// Open opens (or creates) an index store at path.
func Open(path string) (*IndexStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open index store: %w", err)
	}
	return &IndexStore{db: db}, nil
}

// SaveIndex replaces the persisted mapping with the entries of a built
// index and records the batch run id. The write is applied as a single
// synced batch.
func (s *IndexStore) SaveIndex(runID ksuid.KSUID, idx *match.Index) error {
	b := s.db.NewBatch()
	defer b.Close()

	if err := b.DeleteRange([]byte(namePrefix), []byte(namePrefix+"\xff"), nil); err != nil {
		return fmt.Errorf("failed to clear previous index: %w", err)
	}
	for name, doc := range idx.Entries() {
		if err := b.Set([]byte(namePrefix+name), []byte(doc), nil); err != nil {
			return fmt.Errorf("failed to stage entry %q: %w", name, err)
		}
	}
	if err := b.Set([]byte(metaRunKey), runID.Bytes(), nil); err != nil {
		return fmt.Errorf("failed to stage run id: %w", err)
	}

	if err := s.db.Apply(b, pebble.Sync); err != nil {
		return fmt.Errorf("failed to commit index: %w", err)
	}
	return nil
}

// Get returns the document number for an already-canonical name. A miss
// returns match.ErrNotFound, same as an in-memory lookup.
func (s *IndexStore) Get(canonicalName string) (string, error) {
	data, closer, err := s.db.Get([]byte(namePrefix + canonicalName))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return "", match.ErrNotFound
		}
		return "", err
	}
	defer closer.Close()

	return string(data), nil
}

// Entries loads the full persisted mapping, for rebuilding an in-memory
// index without re-ingesting the extract.
func (s *IndexStore) Entries() (map[string]string, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(namePrefix),
		UpperBound: []byte(namePrefix + "\xff"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate index store: %w", err)
	}
	defer iter.Close()

	entries := make(map[string]string)
	for iter.First(); iter.Valid(); iter.Next() {
		name := string(iter.Key()[len(namePrefix):])
		value, err := iter.ValueAndErr()
		if err != nil {
			return nil, fmt.Errorf("failed to read entry %q: %w", name, err)
		}
		entries[name] = string(value)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return entries, nil
}

// RunID returns the ksuid of the batch run that produced the persisted
// mapping.
func (s *IndexStore) RunID() (ksuid.KSUID, error) {
	data, closer, err := s.db.Get([]byte(metaRunKey))
	if err != nil {
		return ksuid.Nil, fmt.Errorf("failed to read run id: %w", err)
	}
	defer closer.Close()

	id, err := ksuid.FromBytes(data)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("failed to parse run id: %w", err)
	}
	return id, nil
}

// Close closes the underlying database.
func (s *IndexStore) Close() error {
	return s.db.Close()
}
