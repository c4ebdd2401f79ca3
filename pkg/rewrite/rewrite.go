// Package rewrite provides the pass/pipeline engine that migration
// pipelines are built from. A pipeline is an ordered list of passes,
// each of which scans whole-file text and produces new whole-file text.
package rewrite

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// File carries one source file through a pipeline. It exists only for
// the duration of processing that file.
type File struct {
	Path     string
	Content  string
	Warnings []string
}

// Warnf records a warning against the file without aborting the pipeline.
func (f *File) Warnf(format string, args ...any) {
	f.Warnings = append(f.Warnings, fmt.Sprintf(format, args...))
}

// Pass is a single whole-file text transformation. Passes must be
// stateless with respect to other files.
type Pass interface {
	Name() string
	Apply(ctx context.Context, f *File) error
}

// Pipeline applies an ordered list of passes to eligible files.
type Pipeline struct {
	name    string
	trigger string
	passes  []Pass
	review  []string
}

// NewPipeline creates a pipeline. The trigger is the legacy symbol whose
// presence makes a file eligible for processing; review is the fixed
// manual-review checklist printed after a run.
func NewPipeline(name, trigger string, passes []Pass, review []string) (*Pipeline, error) {
	if name == "" {
		return nil, errors.Errorf("pipeline name is required")
	}
	if trigger == "" {
		return nil, errors.Errorf("trigger substring is required")
	}
	if len(passes) == 0 {
		return nil, errors.Errorf("at least one pass is required")
	}
	return &Pipeline{
		name:    name,
		trigger: trigger,
		passes:  passes,
		review:  review,
	}, nil
}

// Name returns the pipeline name.
func (p *Pipeline) Name() string {
	return p.name
}

// Trigger returns the eligibility trigger substring.
func (p *Pipeline) Trigger() string {
	return p.trigger
}

// ReviewChecklist returns the manual-review reminders for this pipeline.
func (p *Pipeline) ReviewChecklist() []string {
	return p.review
}

// Eligible reports whether the content should be processed at all. Files
// without the trigger are never rewritten and never reported.
func (p *Pipeline) Eligible(content string) bool {
	return strings.Contains(content, p.trigger)
}

// Apply runs every pass in order over the file.
func (p *Pipeline) Apply(ctx context.Context, f *File) error {
	logger := zerolog.Ctx(ctx)
	for _, pass := range p.passes {
		if err := pass.Apply(ctx, f); err != nil {
			return errors.Errorf("applying pass %s: %w", pass.Name(), err)
		}
		logger.Debug().
			Str("pipeline", p.name).
			Str("pass", pass.Name()).
			Str("file", f.Path).
			Msg("pass applied")
	}
	return nil
}

// Rule pairs a compiled pattern with its replacement template. Rules are
// compiled once at pipeline construction, never per file.
type Rule struct {
	Pattern *regexp.Regexp
	Replace string
}

// Apply runs the rule over the whole text.
func (r Rule) Apply(s string) string {
	return r.Pattern.ReplaceAllString(s, r.Replace)
}

// RulePass applies an ordered list of rules as one pass. Rule order is
// replacement order; a rule that matches nothing is a silent no-op.
type RulePass struct {
	name  string
	rules []Rule
}

// NewRulePass creates a pass from compiled rules.
func NewRulePass(name string, rules []Rule) *RulePass {
	return &RulePass{name: name, rules: rules}
}

// Name returns the pass name.
func (p *RulePass) Name() string {
	return p.name
}

// Apply implements Pass.
func (p *RulePass) Apply(ctx context.Context, f *File) error {
	for _, rule := range p.rules {
		f.Content = rule.Apply(f.Content)
	}
	return nil
}
