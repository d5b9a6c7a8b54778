// Package capture collects the raw page signals that scoring consumes.
//
// Two capturers implement the same interface: a headless-browser capturer
// built on chromedp, which renders the page and measures computed styles,
// navigation timing, console errors, and per-viewport overflow; and a
// static HTTP capturer, which parses the served HTML without executing
// JavaScript and fills only the DOM-derived signals. The static capturer
// is the fallback for environments without Chrome.
//
// The package also hosts the resource probe, which checks the captured
// link and image URLs for broken targets with bounded concurrency.
package capture
