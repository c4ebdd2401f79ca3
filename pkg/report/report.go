// Package report accumulates per-run results and renders the console
// summary: migrated-file count, warnings, and the pipeline's fixed
// manual-review checklist.
package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// Reporter collects counts and warnings across a run and prints
// human-readable progress as files are processed.
type Reporter struct {
	out      io.Writer
	mu       sync.Mutex
	migrated int
	warnings []string

	success pterm.PrefixPrinter
	warning pterm.PrefixPrinter
}

// New creates a reporter writing to out.
func New(out io.Writer) *Reporter {
	return &Reporter{
		out:     out,
		success: *pterm.Success.WithWriter(out),
		warning: *pterm.Warning.WithWriter(out),
	}
}

// StartRun announces the run.
func (r *Reporter) StartRun(description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "🔄 Starting %s migration...\n\n", description)
}

// RootStart announces a root directory being processed.
func (r *Reporter) RootStart(root string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "📁 Processing %s...\n", root)
}

// RootMissing records a configured root that does not exist. The run
// continues with remaining roots.
func (r *Reporter) RootMissing(root string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg := fmt.Sprintf("Directory not found: %s", root)
	r.warning.Println(msg)
	r.warnings = append(r.warnings, msg)
}

// FileStart prints the per-file progress line.
func (r *Reporter) FileStart(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "  %s %s\n", color.CyanString("Migrating:"), path)
}

// FileMigrated counts a file whose rewritten content was written back.
func (r *Reporter) FileMigrated(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.migrated++
}

// FileWouldMigrate counts a file that a dry run would have rewritten.
func (r *Reporter) FileWouldMigrate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.migrated++
	fmt.Fprintf(r.out, "  %s %s\n", color.YellowString("Would migrate:"), path)
}

// Diff prints a dry-run diff preview for a file.
func (r *Reporter) Diff(path, rendered string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "--- %s\n%s\n", path, rendered)
}

// Warn records a warning for the end-of-run block.
func (r *Reporter) Warn(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, msg)
}

// Warnf records a formatted warning.
func (r *Reporter) Warnf(format string, args ...any) {
	r.Warn(fmt.Sprintf(format, args...))
}

// MigratedCount returns the number of migrated files so far.
func (r *Reporter) MigratedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.migrated
}

// Warnings returns a copy of the accumulated warnings.
func (r *Reporter) Warnings() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.warnings))
	copy(out, r.warnings)
	return out
}

// PrintSummary prints the completion summary, the warnings block when any
// warnings accumulated, and the manual-review checklist when the pipeline
// has one.
func (r *Reporter) PrintSummary(review []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintln(r.out)
	r.success.Println("Migration complete!")
	fmt.Fprintf(r.out, "  Migrated files: %d\n", r.migrated)

	if len(r.warnings) > 0 {
		fmt.Fprintln(r.out)
		r.warning.Println("Warnings:")
		for _, w := range r.warnings {
			fmt.Fprintf(r.out, "  - %s\n", w)
		}
	}

	if len(review) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, "📝 Manual review needed for:")
		for _, item := range review {
			fmt.Fprintf(r.out, "  - %s\n", item)
		}
	}
}
