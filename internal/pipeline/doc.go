// Package pipeline orchestrates an audit run as an ordered sequence of
// steps: capture the page, probe its resources, score the snapshot, and
// persist the finished report. Steps share one report value and respect
// context cancellation between steps.
package pipeline
