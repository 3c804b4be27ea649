// Package fsmkit is a small kit of composable building blocks around
// finite-state machines and classifier threshold tuning.
//
// FSMKit is designed for programs that need deterministic automata or
// simple model-tuning arithmetic without pulling in a framework. It focuses
// on explicit definitions, typed errors, and packages that stand alone.
//
// The kit bundles two independent utilities plus the ambient packages they
// share:
//
//   - pkg/fsm – a deterministic finite-state-machine engine driven by
//     single-character symbols, with whole-definition validation
//   - pkg/modthree – the classic modulo-three machine over binary digits,
//     built on pkg/fsm
//   - pkg/threshold – decision-threshold selection over precomputed
//     classification metrics
//   - pkg/logger and pkg/config – slog factory and environment
//     configuration for applications embedding the kit
//
// Basic Usage:
//
//	// Compute a remainder without parsing the number
//	r, err := modthree.Remainder("110101") // 53 % 3 = 2
//
//	// Pick a decision threshold from evaluated candidates
//	opt, err := threshold.New([]fsmkit.ClassificationMetrics{
//		{Threshold: 0.5, TruePositives: 80, TrueNegatives: 60, FalsePositives: 20, FalseNegatives: 40},
//	})
//	best, err := opt.FindBestThreshold(threshold.DefaultMinRecall)
//
// The root package re-exports the threshold selector's public types for
// consumers that want a single import, and carries the kit version tag.
//
// The kit follows these principles:
//   - Explicit definitions over runtime mutation
//   - Errors as part of the API, with typed causes and predicates
//   - Libraries stay silent: logging only through injected loggers
//   - Single-owner state over internal locking
package fsmkit
