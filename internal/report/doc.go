// Package report renders audit reports: a human-readable text presenter,
// a JSON exporter, and a Markdown writer.
//
// All writers are pure formatters over a finished model.Report; they never
// modify the report and never re-score anything. The sentinel "no
// recommendations" message is substituted here, at render time, so the
// scoring core stays free of display text.
package report
