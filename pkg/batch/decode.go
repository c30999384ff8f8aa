package batch

import (
	"sync"

	"github.com/corpdata/registryd/pkg/codec"
)

// DecodeAll decodes a slice of raw record lines across a bounded set of
// worker goroutines. Records decode independently, but downstream consumers
// depend on input order, so each result is written to the slot of its
// original line index.
//
// Both returned slices have one element per input line. A failed line
// leaves a zero Entity and carries its error in the matching errs slot;
// one bad record never aborts the batch.
func DecodeAll(c *codec.RecordCodec, lines []string, workers int) ([]codec.Entity, []error) {
	entities := make([]codec.Entity, len(lines))
	errs := make([]error, len(lines))
	if len(lines) == 0 {
		return entities, errs
	}

	if workers <= 0 {
		workers = 1
	}
	if workers > len(lines) {
		workers = len(lines)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				entities[i], errs[i] = c.Decode(lines[i])
			}
		}()
	}

	for i := range lines {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return entities, errs
}
