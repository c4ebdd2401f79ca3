// Package safeapi rewrites window.electronAPI usages into calls through the
// safeElectronAPI wrapper and strips defensive existence checks made
// redundant by the wrapper's own internal safety.
package safeapi

import (
	"context"
	"regexp"
	"strings"

	"github.com/sepilot/sepilot-migrate/pkg/rewrite"
)

const (
	// LegacyGlobal is the host-provided global being migrated away from.
	LegacyGlobal = "window.electronAPI"

	// WrapperName is the safety-wrapping accessor calls are routed through.
	WrapperName = "safeElectronAPI"

	wrapperImport = "import { safeElectronAPI } from '@sepilot/extension-sdk';"
)

// sdkImportRe matches an existing named import from the SDK module; the
// capture holds the import's name list.
var sdkImportRe = regexp.MustCompile(`import\s*\{\s*([^}]+?)\s*\}\s*from\s*['"]@sepilot/extension-sdk['"]`)

// New builds the global-to-safe-wrapper pipeline.
func New() (*rewrite.Pipeline, error) {
	return rewrite.NewPipeline(
		"safe-api",
		LegacyGlobal,
		[]rewrite.Pass{
			&importPass{},
			newCallRewritePass(),
			newGuardStripPass(),
		},
		nil,
	)
}

// importPass makes safeElectronAPI importable in the file. If the wrapper
// name already appears anywhere, the pass is skipped entirely — a coarse
// guard that does not distinguish an import from any other mention.
type importPass struct{}

func (p *importPass) Name() string { return "import-insert" }

func (p *importPass) Apply(ctx context.Context, f *rewrite.File) error {
	if strings.Contains(f.Content, WrapperName) {
		return nil
	}

	// Append to an existing SDK import's name list when one exists.
	if loc := sdkImportRe.FindStringSubmatchIndex(f.Content); loc != nil {
		names := strings.TrimSpace(f.Content[loc[2]:loc[3]])
		replacement := "import { " + names + ", " + WrapperName + " } from '@sepilot/extension-sdk'"
		f.Content = f.Content[:loc[0]] + replacement + f.Content[loc[1]:]
		return nil
	}

	// Otherwise insert a brand-new import after the first import line.
	// A file with no import lines at all is left alone.
	lines := strings.Split(f.Content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "import ") {
			updated := make([]string, 0, len(lines)+1)
			updated = append(updated, lines[:i+1]...)
			updated = append(updated, wrapperImport)
			updated = append(updated, lines[i+1:]...)
			f.Content = strings.Join(updated, "\n")
			return nil
		}
	}
	return nil
}

// newCallRewritePass routes property access on the legacy global through the
// wrapper, uniformly across call expressions and property reads. Non-null
// assertions and optional chaining on the global are dropped.
func newCallRewritePass() *rewrite.RulePass {
	return rewrite.NewRulePass("call-rewrite", []rewrite.Rule{
		{
			Pattern: regexp.MustCompile(`window\.electronAPI[!?]?\.`),
			Replace: WrapperName + ".",
		},
	})
}

// newGuardStripPass removes boolean-combinator existence checks on the
// legacy global. Rule order keeps the negated forms ahead of the plain ones.
// The enclosing expression is not re-validated after removal.
func newGuardStripPass() *rewrite.RulePass {
	return rewrite.NewRulePass("guard-strip", []rewrite.Rule{
		{Pattern: regexp.MustCompile(`\s*&&\s*!window\.electronAPI[!?]?\s*`), Replace: ""},
		{Pattern: regexp.MustCompile(`\s*&&\s*window\.electronAPI[!?]?\s*`), Replace: ""},
		{Pattern: regexp.MustCompile(`\s*\|\|\s*!window\.electronAPI[!?]?\s*`), Replace: ""},
		{Pattern: regexp.MustCompile(`\s*\|\|\s*window\.electronAPI[!?]?\s*`), Replace: ""},
	})
}
