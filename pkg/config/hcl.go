package config

import (
	"context"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Expressions may reference cwd, e.g. roots = ["${cwd}/src"].
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Errorf("getting working directory: %w", err)
	}
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"cwd": cty.StringVal(cwd),
		},
	}

	// Define HCL schema
	type hclRun struct {
		Roots          []string `hcl:"roots,optional"`
		Extensions     []string `hcl:"extensions,optional"`
		IgnorePatterns []string `hcl:"ignore_patterns,optional"`
	}
	type hclConfig struct {
		ContextAPI *hclRun `hcl:"context_api,block"`
		SafeAPI    *hclRun `hcl:"safe_api,block"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model, keeping defaults for absent blocks and fields
	cfg := Default()
	apply := func(dst *RunConfig, src *hclRun) {
		if src == nil {
			return
		}
		if len(src.Roots) > 0 {
			dst.Roots = src.Roots
		}
		if len(src.Extensions) > 0 {
			dst.Extensions = src.Extensions
		}
		if src.IgnorePatterns != nil {
			dst.IgnorePatterns = src.IgnorePatterns
		}
	}
	apply(&cfg.ContextAPI, hclCfg.ContextAPI)
	apply(&cfg.SafeAPI, hclCfg.SafeAPI)

	return cfg, nil
}
