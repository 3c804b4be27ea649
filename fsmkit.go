package fsmkit

import "github.com/dmitrymomot/fsmkit/pkg/threshold"

// Version is the kit release tag.
const Version = "1.0.0"

// ClassificationMetrics captures confusion-matrix counts observed at one
// candidate decision threshold. Alias of the threshold package's Metrics.
type ClassificationMetrics = threshold.Metrics

// ThresholdOptimizer selects the best decision threshold from a validated
// metrics set. Alias of the threshold package's Optimizer.
type ThresholdOptimizer = threshold.Optimizer
