// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Configuration fields.
	FieldMode      = "mode"
	FieldJobs      = "jobs"
	FieldNamespace = "namespace"
	FieldFormat    = "format"

	// Per-file fields.
	FieldDialect = "dialect"
	FieldSites   = "sites"
	FieldSkipped = "skipped"
	FieldLine    = "line"
	FieldReason  = "reason"
	FieldBackup  = "backup"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesChanged    = "files_changed"
	FieldFilesWritten    = "files_written"
	FieldSitesTotal      = "sites_total"
	FieldParseFailures   = "parse_failures"

	// Watch fields.
	FieldEvent = "event"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
