package threshold

import (
	"fmt"
	"log/slog"
)

// DefaultMinRecall is the conventional recall floor for callers with no
// stricter requirement of their own.
const DefaultMinRecall = 0.9

// Optimizer selects the best decision threshold from a validated metrics
// set. The set is copied at construction; mutating the caller's slice
// afterwards does not affect selection.
type Optimizer struct {
	metrics []Metrics
	log     *slog.Logger
}

// Option configures an Optimizer during construction.
type Option func(*Optimizer)

// WithLogger sets the logger used for selection tracing.
// Nil loggers are ignored; without one the optimizer logs nothing.
func WithLogger(log *slog.Logger) Option {
	return func(o *Optimizer) {
		if log != nil {
			o.log = log
		}
	}
}

// New validates the metrics set and builds an optimizer over a copy of it.
// The set must be non-empty, thresholds must not repeat, and every count
// must be non-negative.
func New(metrics []Metrics, opts ...Option) (*Optimizer, error) {
	if len(metrics) == 0 {
		return nil, ErrNoMetrics
	}

	seen := make(map[float64]struct{}, len(metrics))
	for i, m := range metrics {
		if _, ok := seen[m.Threshold]; ok {
			return nil, fmt.Errorf("metrics[%d]: %w", i, NewErrDuplicateThreshold(m.Threshold))
		}
		seen[m.Threshold] = struct{}{}

		if m.TruePositives < 0 || m.TrueNegatives < 0 || m.FalsePositives < 0 || m.FalseNegatives < 0 {
			return nil, fmt.Errorf("metrics[%d]: %w", i, ErrNegativeCount)
		}
	}

	o := &Optimizer{metrics: append([]Metrics(nil), metrics...)}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = slog.New(slog.DiscardHandler)
	}

	o.log.Debug("optimizer initialized", slog.Int("metrics", len(o.metrics)))
	return o, nil
}

// MustNew creates a new optimizer from the given metrics and options.
// Panics if the metrics set is invalid, following FSMKit's fail-fast pattern.
func MustNew(metrics []Metrics, opts ...Option) *Optimizer {
	o, err := New(metrics, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create optimizer: %v", err))
	}
	return o
}

// FindBestThreshold returns the threshold with the highest precision among
// metrics whose recall is at least minRecall. Ties keep the earliest entry
// of the metrics set. A minRecall outside [0, 1] fails with
// ErrInvalidMinRecall; an empty candidate set fails with ErrNoThresholdFound.
func (o *Optimizer) FindBestThreshold(minRecall float64) (float64, error) {
	// Negated conjunction so NaN floors are rejected too
	if !(minRecall >= 0 && minRecall <= 1) {
		return 0, ErrInvalidMinRecall
	}

	var best *Metrics
	for i := range o.metrics {
		m := &o.metrics[i]
		if m.Recall() < minRecall {
			continue
		}
		if best == nil || m.Precision() > best.Precision() {
			best = m
		}
	}

	if best == nil {
		o.log.Warn("no threshold met the recall floor",
			slog.Float64("min_recall", minRecall),
			slog.Int("metrics", len(o.metrics)))
		return 0, ErrNoThresholdFound
	}

	o.log.Debug("best threshold selected",
		slog.Float64("threshold", best.Threshold),
		slog.Float64("recall", best.Recall()),
		slog.Float64("precision", best.Precision()))

	return best.Threshold, nil
}
