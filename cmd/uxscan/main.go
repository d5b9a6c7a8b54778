// Package main provides the entry point for the uxscan CLI.
//
// uxscan audits a website's UI/UX quality: it loads the page, captures
// its structure, styling, and timing signals, and scores them against
// ten usability principles.
//
// Usage:
//
//	uxscan audit <url>
//	uxscan audit --export --output report.json <url>
//
// See --help for all available options.
package main

// main is the entry point for uxscan.
func main() {
	Execute()
}
