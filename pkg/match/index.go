package match

import (
	"errors"

	"github.com/corpdata/registryd/pkg/codec"
)

// ErrNotFound is returned by Lookup when no entity matches a name.
// A miss is a normal outcome, not an exceptional condition.
var ErrNotFound = errors.New("no entity matches name")

// Index is a one-shot, read-only mapping from canonical entity name to
// document number. Once built it is never mutated, so any number of
// goroutines may look up concurrently without synchronization.
type Index struct {
	normalizer *Normalizer
	entries    map[string]string
	skipped    int
}

// BuildIndex builds an index from a finished batch of entities. Each
// entity's name is normalized to form the key and mapped to its document
// number. When two entities normalize to the same key, the later one wins
// (last-write-wins); callers needing provenance must deduplicate before
// building. Entities without a document number are skipped and counted.
func BuildIndex(n *Normalizer, entities []codec.Entity) *Index {
	idx := &Index{
		normalizer: n,
		entries:    make(map[string]string, len(entities)),
	}
	for _, e := range entities {
		if e.DocumentNumber == "" {
			idx.skipped++
			continue
		}
		idx.entries[n.Normalize(e.Name)] = e.DocumentNumber
	}
	return idx
}

// NewIndex rebuilds an index from previously persisted canonical-name →
// document-number entries. Keys are assumed to be already normalized.
func NewIndex(n *Normalizer, entries map[string]string) *Index {
	idx := &Index{
		normalizer: n,
		entries:    make(map[string]string, len(entries)),
	}
	for k, v := range entries {
		idx.entries[k] = v
	}
	return idx
}

// Lookup returns the document number for a raw name, normalizing it first.
// It returns ErrNotFound on a miss and never mutates the index.
func (idx *Index) Lookup(rawName string) (string, error) {
	doc, ok := idx.entries[idx.normalizer.Normalize(rawName)]
	if !ok {
		return "", ErrNotFound
	}
	return doc, nil
}

// Size returns the number of canonical names in the index.
func (idx *Index) Size() int {
	return len(idx.entries)
}

// Skipped returns how many entities were dropped at build time for lacking
// a document number.
func (idx *Index) Skipped() int {
	return idx.skipped
}

// Entries returns a copy of the canonical-name → document-number mapping,
// for callers that serialize the index. The index itself stays immutable.
func (idx *Index) Entries() map[string]string {
	out := make(map[string]string, len(idx.entries))
	for k, v := range idx.entries {
		out[k] = v
	}
	return out
}
