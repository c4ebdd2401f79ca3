package rewrite

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipeline_Validation(t *testing.T) {
	pass := NewRulePass("noop", nil)

	tests := []struct {
		name      string
		pname     string
		trigger   string
		passes    []Pass
		wantError string
	}{
		{
			name:    "valid",
			pname:   "p",
			trigger: "legacy",
			passes:  []Pass{pass},
		},
		{
			name:      "missing_name",
			trigger:   "legacy",
			passes:    []Pass{pass},
			wantError: "pipeline name is required",
		},
		{
			name:      "missing_trigger",
			pname:     "p",
			passes:    []Pass{pass},
			wantError: "trigger substring is required",
		},
		{
			name:      "no_passes",
			pname:     "p",
			trigger:   "legacy",
			wantError: "at least one pass is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPipeline(tt.pname, tt.trigger, tt.passes, nil)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, p)
			assert.Equal(t, tt.pname, p.Name())
			assert.Equal(t, tt.trigger, p.Trigger())
		})
	}
}

func TestPipeline_Eligible(t *testing.T) {
	p, err := NewPipeline("p", "legacyHook", []Pass{NewRulePass("noop", nil)}, nil)
	require.NoError(t, err)

	assert.True(t, p.Eligible("const x = legacyHook();"))
	assert.False(t, p.Eligible("const x = somethingElse();"))
	assert.False(t, p.Eligible(""))
}

func TestRulePass_AppliesRulesInOrder(t *testing.T) {
	// The second rule only matches output of the first.
	pass := NewRulePass("ordered", []Rule{
		{Pattern: regexp.MustCompile(`alpha`), Replace: "beta"},
		{Pattern: regexp.MustCompile(`beta`), Replace: "gamma"},
	})

	f := &File{Path: "x.ts", Content: "alpha"}
	require.NoError(t, pass.Apply(context.Background(), f))
	assert.Equal(t, "gamma", f.Content)
}

func TestRulePass_NoMatchIsNoOp(t *testing.T) {
	pass := NewRulePass("none", []Rule{
		{Pattern: regexp.MustCompile(`missing`), Replace: "found"},
	})

	f := &File{Path: "x.ts", Content: "unrelated text"}
	require.NoError(t, pass.Apply(context.Background(), f))
	assert.Equal(t, "unrelated text", f.Content)
}

func TestFile_Warnf(t *testing.T) {
	f := &File{Path: "x.ts"}
	f.Warnf("%s: %d things", f.Path, 3)
	f.Warnf("other")

	require.Len(t, f.Warnings, 2)
	assert.Equal(t, "x.ts: 3 things", f.Warnings[0])
	assert.Equal(t, "other", f.Warnings[1])
}

func TestPipeline_Apply_RunsAllPasses(t *testing.T) {
	p, err := NewPipeline("p", "one", []Pass{
		NewRulePass("first", []Rule{{Pattern: regexp.MustCompile(`one`), Replace: "two"}}),
		NewRulePass("second", []Rule{{Pattern: regexp.MustCompile(`two`), Replace: "three"}}),
	}, nil)
	require.NoError(t, err)

	f := &File{Path: "x.ts", Content: "one"}
	require.NoError(t, p.Apply(context.Background(), f))
	assert.Equal(t, "three", f.Content)
}
