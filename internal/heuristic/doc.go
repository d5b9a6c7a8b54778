// Package heuristic implements the uxscan scoring engine: ten independent
// principle evaluators and the aggregator that combines their results into
// a report.
//
// Every evaluator is a pure, total function of a page snapshot and a
// configuration value. A check that cannot be decided because its signal
// was not measured passes vacuously; evaluators never return errors. Each
// failing check subtracts a fixed penalty from a running score that starts
// at 100 and is clamped to [0,100], and appends exactly one recommendation.
package heuristic
