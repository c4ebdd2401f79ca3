// Copyright 2026 sepilot
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package migrate drives a rewrite pipeline over the configured roots:
// walk, filter, transform, write back on change, report.
package migrate

import (
	"context"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
	"gitlab.com/tozd/go/errors"

	"github.com/sepilot/sepilot-migrate/pkg/report"
	"github.com/sepilot/sepilot-migrate/pkg/rewrite"
	"github.com/sepilot/sepilot-migrate/pkg/walker"
)

// 🔧 Options contains the migrator's collaborators.
type Options struct {
	// Pipeline is the ordered pass list to apply per file.
	Pipeline *rewrite.Pipeline
	// Walker enumerates candidate files.
	Walker *walker.Walker
	// Reporter accumulates counts and warnings.
	Reporter *report.Reporter
	// DryRun prints diffs instead of writing files.
	DryRun bool
}

// 🏭 New creates a migrator with the given options.
func New(opts Options) (*Migrator, error) {
	if opts.Pipeline == nil {
		return nil, errors.Errorf("pipeline is required")
	}
	if opts.Walker == nil {
		return nil, errors.Errorf("walker is required")
	}
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}
	return &Migrator{
		pipeline: opts.Pipeline,
		walker:   opts.Walker,
		reporter: opts.Reporter,
		dryRun:   opts.DryRun,
	}, nil
}

// 🎮 Migrator processes every candidate file under a list of roots,
// strictly sequentially.
type Migrator struct {
	pipeline *rewrite.Pipeline
	walker   *walker.Walker
	reporter *report.Reporter
	dryRun   bool
}

// 🏃 Run walks the roots in order. A missing root is reported and skipped;
// Run fails only when no configured root exists at all.
func (m *Migrator) Run(ctx context.Context, roots []string) error {
	logger := zerolog.Ctx(ctx)
	found := 0

	for _, root := range roots {
		files, ok, err := m.walker.Walk(root)
		if err != nil {
			return errors.Errorf("walking root %s: %w", root, err)
		}
		if !ok {
			m.reporter.RootMissing(root)
			continue
		}
		found++

		m.reporter.RootStart(root)
		logger.Debug().Str("root", root).Int("candidates", len(files)).Msg("processing root")

		for _, path := range files {
			m.processFile(ctx, path)
		}
	}

	if found == 0 {
		return errors.Errorf("no configured root exists: %v", roots)
	}
	return nil
}

// 📄 processFile takes one file through load → transform → write. Any
// read/write error becomes a warning; the run never aborts on one file.
func (m *Migrator) processFile(ctx context.Context, path string) {
	logger := zerolog.Ctx(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		m.reporter.Warnf("%s: Error - %v", path, err)
		return
	}
	original := string(data)

	// Files that never mention the legacy symbol are never written and
	// never reported.
	if !m.pipeline.Eligible(original) {
		return
	}

	m.reporter.FileStart(path)

	file := &rewrite.File{Path: path, Content: original}
	if err := m.pipeline.Apply(ctx, file); err != nil {
		m.reporter.Warnf("%s: Error - %v", path, err)
		return
	}
	for _, w := range file.Warnings {
		m.reporter.Warn(w)
	}

	if file.Content == original {
		logger.Debug().Str("file", path).Msg("content unchanged, write skipped")
		return
	}

	if m.dryRun {
		m.reporter.FileWouldMigrate(path)
		m.reporter.Diff(path, renderDiff(original, file.Content))
		return
	}

	if err := os.WriteFile(path, []byte(file.Content), fileMode(path)); err != nil {
		m.reporter.Warnf("%s: Error - %v", path, err)
		return
	}
	m.reporter.FileMigrated(path)
}

// fileMode preserves the file's existing permission bits on write-back.
func fileMode(path string) fs.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}

// renderDiff produces the dry-run preview for one file.
func renderDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
