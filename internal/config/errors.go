package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoTarget is returned when no target URL is specified.
	ErrNoTarget = errors.New("no target specified: provide a URL with --url or as an argument")

	// ErrInvalidTimeout is returned when the capture timeout is not positive.
	// A zero or negative timeout would fail every navigation immediately.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidScoringBands is returned when the grade thresholds are not
	// strictly descending (excellent > good > needs_improvement) or fall
	// outside [0,100].
	ErrInvalidScoringBands = errors.New("invalid scoring bands: thresholds must be within [0,100] and strictly descending")

	// ErrInvalidTopRecommendations is returned when the ranked
	// recommendation limit is not positive.
	ErrInvalidTopRecommendations = errors.New("invalid top recommendations: must be positive")

	// ErrNoViewports is returned when responsive testing is configured
	// with an empty viewport list.
	ErrNoViewports = errors.New("no viewports configured: responsive testing needs at least one viewport")

	// ErrInvalidProbeLimit is returned when the link probe concurrency
	// limit is not positive.
	ErrInvalidProbeLimit = errors.New("invalid probe limit: must be positive")

	// ErrInvalidCheckLimit is returned when a per-evaluator element limit
	// (forms to check, call-to-action buttons to check) is not positive.
	ErrInvalidCheckLimit = errors.New("invalid check limit: must be positive")
)
