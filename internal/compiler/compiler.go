// Package compiler runs the full source pipeline: parse, rewrite components
// and print.
package compiler

import (
	"context"
	"fmt"

	"github.com/christianalfoni/rask-ui/internal/codegen"
	"github.com/christianalfoni/rask-ui/internal/parse"
	"github.com/christianalfoni/rask-ui/internal/transform"
)

// Output is the result of compiling one source file.
type Output struct {
	Code   string
	Result *transform.Result
}

// Compile parses source, transforms it with cfg and prints the result. The
// returned code is identical for identical source and configuration.
func Compile(ctx context.Context, fileName string, source []byte, cfg transform.Config, opts ...transform.Option) (*Output, error) {
	m, err := parse.Parse(ctx, fileName, source)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("compile %s canceled: %w", fileName, err)
	}

	result := transform.Transform(m, cfg, opts...)
	return &Output{
		Code:   codegen.Print(m),
		Result: result,
	}, nil
}
