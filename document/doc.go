// Package document tracks the file behind the editor buffer: its path, a
// stable ID, verbatim reads and writes, and an optional watcher that reports
// writes made by other programs.
package document
