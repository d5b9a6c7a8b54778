// Package config holds all configuration for uxscan: per-principle scoring
// thresholds, scoring bands, responsive viewports, accessibility check
// toggles, export options, and capture settings.
//
// Configuration is loaded once at startup (built-in defaults, optionally
// overlaid with a YAML file, then CLI flags) and passed explicitly into
// every evaluator call. Nothing in this package is global mutable state.
package config
