// Package threshold selects the best decision threshold for a binary
// classifier from precomputed confusion-matrix counts.
//
// The package does not train anything and never touches raw scores or
// labels: the caller evaluates their model at each candidate threshold,
// records the four counts in a Metrics value, and the Optimizer picks the
// threshold with the highest precision among those meeting a recall floor.
// This is the standard precision/recall trade: lowering the floor admits
// more candidates and usually raises the achievable precision.
//
// # Usage
//
//	import "github.com/dmitrymomot/fsmkit/pkg/threshold"
//
//	opt, err := threshold.New([]threshold.Metrics{
//	    {Threshold: 0.5, TruePositives: 80, TrueNegatives: 60, FalsePositives: 20, FalseNegatives: 40},
//	    {Threshold: 0.6, TruePositives: 70, TrueNegatives: 70, FalsePositives: 10, FalseNegatives: 50},
//	})
//	if err != nil {
//	    return err
//	}
//
//	best, err := opt.FindBestThreshold(threshold.DefaultMinRecall)
//
// # Error Handling
//
// Construction fails on an empty set (ErrNoMetrics), a repeated threshold
// (*ErrDuplicateThreshold, wrapped with the offending index), or a negative
// count (ErrNegativeCount, likewise wrapped). FindBestThreshold fails with
// ErrInvalidMinRecall for a floor outside [0, 1] and with
// ErrNoThresholdFound when no candidate meets the floor; the latter is an
// expected outcome for strict floors, not an exceptional one, so callers
// typically branch on it with errors.Is.
//
// # Concurrency
//
// An Optimizer is immutable after New. FindBestThreshold may be called
// from any number of goroutines.
package threshold
