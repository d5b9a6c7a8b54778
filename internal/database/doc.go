// Package database provides the SQLite archive for finished audit
// reports. The archive is append-only: each run may save its report, and
// saved reports can be listed or fetched back, but nothing compares runs
// or mutates past rows.
package database
