// Package batch partitions ordered entity collections into fixed-size
// chunks and drives the record codec to emit fixed-width text segments.
package batch

import (
	"fmt"

	"github.com/corpdata/registryd/pkg/codec"
)

// LineSeparator terminates every encoded record line within a segment.
const LineSeparator = "\n"

// Batcher slices an ordered entity sequence into fixed-size chunks and
// encodes each chunk into one fixed-width text segment. Chunk boundaries
// are purely positional; there is no semantic grouping. All methods are
// pure, so re-running them over the same input yields the same partition.
type Batcher struct {
	codec     *codec.RecordCodec
	chunkSize int
}

// NewBatcher creates a batcher over the given codec. The chunk size must
// be positive.
func NewBatcher(c *codec.RecordCodec, chunkSize int) (*Batcher, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	return &Batcher{codec: c, chunkSize: chunkSize}, nil
}

// ChunkSize returns the configured chunk size.
func (b *Batcher) ChunkSize() int {
	return b.chunkSize
}

// Chunks partitions entities into consecutive slices of the chunk size,
// preserving relative order within each chunk. The last chunk may be
// smaller. The returned slices alias the input; they are views, not copies.
func (b *Batcher) Chunks(entities []codec.Entity) [][]codec.Entity {
	if len(entities) == 0 {
		return nil
	}
	chunks := make([][]codec.Entity, 0, (len(entities)+b.chunkSize-1)/b.chunkSize)
	for start := 0; start < len(entities); start += b.chunkSize {
		end := start + b.chunkSize
		if end > len(entities) {
			end = len(entities)
		}
		chunks = append(chunks, entities[start:end])
	}
	return chunks
}

// Segment encodes one chunk member-by-member in order, concatenating the
// fixed-width lines with a line separator after each.
func (b *Batcher) Segment(chunk []codec.Entity) string {
	lineLen := b.codec.Layout().TotalWidth() + len(LineSeparator)
	out := make([]byte, 0, lineLen*len(chunk))
	for _, e := range chunk {
		out = append(out, b.codec.Encode(e)...)
		out = append(out, LineSeparator...)
	}
	return string(out)
}

// Segments partitions entities and encodes every chunk, returning one
// output segment per chunk in input order.
func (b *Batcher) Segments(entities []codec.Entity) []string {
	chunks := b.Chunks(entities)
	segments := make([]string, len(chunks))
	for i, chunk := range chunks {
		segments[i] = b.Segment(chunk)
	}
	return segments
}
