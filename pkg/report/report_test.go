package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Counts(t *testing.T) {
	r := New(&bytes.Buffer{})

	assert.Equal(t, 0, r.MigratedCount())
	r.FileMigrated("a.ts")
	r.FileMigrated("b.tsx")
	assert.Equal(t, 2, r.MigratedCount())
}

func TestReporter_Warnings(t *testing.T) {
	r := New(&bytes.Buffer{})

	r.Warn("first")
	r.Warnf("%s: %d left", "b.ts", 3)

	require.Equal(t, []string{"first", "b.ts: 3 left"}, r.Warnings())

	// Warnings returns a copy.
	r.Warnings()[0] = "mutated"
	assert.Equal(t, "first", r.Warnings()[0])
}

func TestReporter_RootMissingIsWarned(t *testing.T) {
	out := &bytes.Buffer{}
	r := New(out)

	r.RootMissing("some/root")

	require.Len(t, r.Warnings(), 1)
	assert.Equal(t, "Directory not found: some/root", r.Warnings()[0])
	assert.Contains(t, out.String(), "Directory not found: some/root")
}

func TestReporter_PrintSummary(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(r *Reporter)
		review       []string
		wantContains []string
		wantOmits    []string
	}{
		{
			name:  "clean_run",
			setup: func(r *Reporter) { r.FileMigrated("a.ts") },
			wantContains: []string{
				"Migration complete!",
				"Migrated files: 1",
			},
			wantOmits: []string{"Warnings:", "Manual review needed"},
		},
		{
			name: "with_warnings",
			setup: func(r *Reporter) {
				r.Warn("a.ts: 2 instances of useChatStore remain (manual review needed)")
			},
			wantContains: []string{
				"Migrated files: 0",
				"Warnings:",
				"  - a.ts: 2 instances of useChatStore remain (manual review needed)",
			},
		},
		{
			name:   "with_review_checklist",
			setup:  func(r *Reporter) {},
			review: []string{"setOpenFiles() calls (may need adjustment)", "Complex state updates"},
			wantContains: []string{
				"Manual review needed for:",
				"  - setOpenFiles() calls (may need adjustment)",
				"  - Complex state updates",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			r := New(out)
			tt.setup(r)

			r.PrintSummary(tt.review)

			for _, want := range tt.wantContains {
				assert.Contains(t, out.String(), want)
			}
			for _, omit := range tt.wantOmits {
				assert.NotContains(t, out.String(), omit)
			}
		})
	}
}

func TestReporter_FileLines(t *testing.T) {
	out := &bytes.Buffer{}
	r := New(out)

	r.StartRun("useChatStore → useExtensionAPIContext")
	r.RootStart("editor/src")
	r.FileStart("editor/src/tree.tsx")
	r.FileWouldMigrate("editor/src/tree.tsx")

	s := out.String()
	assert.Contains(t, s, "Starting useChatStore → useExtensionAPIContext migration...")
	assert.Contains(t, s, "Processing editor/src...")
	assert.Contains(t, s, "Migrating:")
	assert.Contains(t, s, "Would migrate:")
	assert.Equal(t, 1, r.MigratedCount())
}
