package threshold

import (
	"errors"
	"fmt"
)

var (
	ErrNoMetrics        = errors.New("metrics set cannot be empty")
	ErrNegativeCount    = errors.New("metric counts must be non-negative")
	ErrInvalidMinRecall = errors.New("min recall must be between 0 and 1")
	ErrNoThresholdFound = errors.New("no threshold meets the recall requirement")
)

// ErrDuplicateThreshold indicates the same candidate threshold appeared
// more than once in the metrics set.
type ErrDuplicateThreshold struct {
	Threshold float64
}

func (e *ErrDuplicateThreshold) Error() string {
	return fmt.Sprintf("duplicate threshold %v", e.Threshold)
}

func NewErrDuplicateThreshold(threshold float64) *ErrDuplicateThreshold {
	return &ErrDuplicateThreshold{Threshold: threshold}
}

func IsDuplicateThresholdError(err error) bool {
	var e *ErrDuplicateThreshold
	return errors.As(err, &e)
}
