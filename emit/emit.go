package emit

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"

	"github.com/iamtheburd/lazy-cartesian-product/cartesian"
)

// Report describes one finished emission run.
type Report struct {
	RunID   string            // unique per run
	Emitted uint64            // records written
	Span    timespan.TimeSpan // wall-clock bounds of the run
}

// Emitter streams combinations of one Space into Encoders.
type Emitter[T any] struct {
	space       cartesian.Space[T]
	keys        []string
	logger      *zap.Logger
	maxSize     uint64
	fingerprint uint64
}

// New returns an Emitter over space. keys name the dimensions for encoders
// that use them; pass nil for positional output. logger may be nil for
// silence. The product size and fingerprint are computed once here, so an
// overflowing or otherwise unusable space fails before any run starts and
// runs never rewalk the space's elements.
func New[T any](space cartesian.Space[T], keys []string, logger *zap.Logger) (*Emitter[T], error) {
	if keys != nil && len(keys) != len(space) {
		return nil, fmt.Errorf("emit: %d keys for %d dimensions", len(keys), len(space))
	}
	maxSize, err := space.MaxSize()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Emitter[T]{
		space:       space,
		keys:        keys,
		logger:      logger,
		maxSize:     maxSize,
		fingerprint: space.Fingerprint(),
	}, nil
}

// MaxSize returns the product size computed at construction.
func (e *Emitter[T]) MaxSize() uint64 { return e.maxSize }

// At emits the single combination at index.
func (e *Emitter[T]) At(enc Encoder[T], index uint64) (Report, error) {
	return e.EmitIndices(enc, []uint64{index})
}

// EmitSample draws sampleSize evenly spread indices from rng and emits their
// combinations in ascending index order.
func (e *Emitter[T]) EmitSample(enc Encoder[T], sampleSize uint64, rng *rand.Rand) (Report, error) {
	indices, err := cartesian.RandomIndices(sampleSize, e.maxSize, rng)
	if err != nil {
		return Report{}, err
	}
	return e.EmitIndices(enc, indices)
}

// EmitIndices emits the combination of every index, in the given order,
// decoding and writing one record at a time. The run aborts on the first
// error; otherwise every record is written and a Report returned.
func (e *Emitter[T]) EmitIndices(enc Encoder[T], indices []uint64) (Report, error) {
	runID := uuid.New().String()
	start := time.Now()
	e.logger.Debug("emit run started",
		zap.String("runId", runID),
		zap.Uint64("fingerprint", e.fingerprint),
		zap.Uint64("maxSize", e.maxSize),
		zap.Int("indices", len(indices)),
	)

	entries, err := e.space.Entries(indices)
	if err != nil {
		return Report{}, err
	}
	if err := enc.Begin(e.keys); err != nil {
		return Report{}, fmt.Errorf("emit: begin: %w", err)
	}
	var emitted uint64
	for _, entry := range entries {
		if err := enc.Write(entry); err != nil {
			return Report{}, fmt.Errorf("emit: record %d: %w", emitted, err)
		}
		emitted++
	}
	if err := enc.End(); err != nil {
		return Report{}, fmt.Errorf("emit: end: %w", err)
	}

	report := Report{
		RunID:   runID,
		Emitted: emitted,
		Span:    timespan.BetweenTimes(start, time.Now()),
	}
	e.logger.Debug("emit run finished",
		zap.String("runId", runID),
		zap.Uint64("emitted", report.Emitted),
		zap.Duration("elapsed", time.Since(start)),
	)
	return report, nil
}
