package bitinfo

import (
	"github.com/sirupsen/logrus"

	"github.com/segmentio/bitinfo/encoding/bytestreamsplit"
	"github.com/segmentio/bitinfo/internal/bits"
	"github.com/segmentio/bitinfo/internal/debug"
	"github.com/segmentio/bitinfo/internal/workerpool"
)

// counter holds the buffers used to count the bit pairs of one chunk at a
// time. Each worker of the pool owns one counter.
type counter struct {
	width  int
	counts Counts
	values [2][]uint64
	planes [2][]byte
}

func newCounter(width, chunkSize int) *counter {
	return &counter{
		width:  width,
		counts: makeCounts(width),
		values: [2][]uint64{
			make([]uint64, chunkSize),
			make([]uint64, chunkSize),
		},
		planes: [2][]byte{
			make([]byte, 0, chunkSize),
			make([]byte, 0, chunkSize),
		},
	}
}

// count tallies the elements [start, end) of a and b, which must have the
// same shape. Each byte of the values is split into a plane, from the most
// significant to the least, and the bit pairs of the planes are counted.
func (c *counter) count(a, b *Array, start, end int) {
	va := c.values[0][:end-start]
	vb := c.values[1][:end-start]
	a.gather(va, start)
	b.gather(vb, start)

	for i := 0; i < c.width; i++ {
		shift := bytestreamsplit.Shift(c.width, i)
		c.planes[0] = bytestreamsplit.Plane(c.planes[0][:0], va, shift)
		c.planes[1] = bytestreamsplit.Plane(c.planes[1][:0], vb, shift)

		var byteCounts bits.Counts
		bits.CountPairs(&byteCounts, c.planes[0], c.planes[1])
		c.counts.add(i, &byteCounts)
	}
}

// countBitPairs counts the joint bit values of a and b, which must have the
// same shape, over width bytes per element.
//
// The elements are counted in chunks of config.ChunkSize, spread over up to
// config.Concurrency workers. Each worker accumulates its own counts which
// are summed once all chunks are done, so the result does not depend on how
// the work was scheduled.
func countBitPairs(a, b Array, width int, config *Config) Counts {
	size := a.Len()
	if size == 0 {
		return makeCounts(width)
	}

	chunkSize := min(config.ChunkSize, size)
	numChunks := (size + chunkSize - 1) / chunkSize
	numWorkers := min(config.Concurrency, numChunks)

	debug.Log(logrus.Fields{
		"shape":   a.shape,
		"bytes":   width,
		"chunks":  numChunks,
		"workers": numWorkers,
	}, "counting bit pairs")

	chunk := func(c *counter, i int) {
		start := i * chunkSize
		end := min(start+chunkSize, size)
		c.count(&a, &b, start, end)
	}

	if numWorkers == 1 {
		c := newCounter(width, chunkSize)
		for i := 0; i < numChunks; i++ {
			chunk(c, i)
		}
		return c.counts
	}

	counters := make([]*counter, numWorkers)
	pool := workerpool.New(numWorkers)
	defer pool.Close()

	pool.ForEach(numChunks, func(worker, i int) {
		c := counters[worker]
		if c == nil {
			c = newCounter(width, chunkSize)
			counters[worker] = c
		}
		chunk(c, i)
	})

	counts := makeCounts(width)
	for _, c := range counters {
		if c != nil {
			counts.merge(c.counts)
		}
	}
	return counts
}
