// Package wasmapi provides the compiler API exported to JavaScript by the
// WASM build. It works on the JSON AST encoding only: the source parser
// needs cgo and is not available under js/wasm.
package wasmapi

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/christianalfoni/rask-ui/internal/ast"
	"github.com/christianalfoni/rask-ui/internal/transform"
)

// Component describes one rewritten declaration.
type Component struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// TransformResult contains the result of a transform operation.
type TransformResult struct {
	Module     string      `json:"module"`
	Components []Component `json:"components"`
}

// API provides WASM-compatible transformation functions.
type API struct {
	log *zap.Logger
}

// New creates a new WASM API instance. A nil logger disables logging.
func New(log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{log: log}
}

// TransformModule rewrites the components of a JSON-encoded module. An
// empty or malformed configuration falls back to the defaults.
func (a *API) TransformModule(moduleJSON, configJSON string) (*TransformResult, error) {
	m, err := ast.UnmarshalModule([]byte(moduleJSON))
	if err != nil {
		return nil, err
	}

	cfg, err := transform.DecodeConfig([]byte(configJSON))
	if err != nil {
		a.log.Warn("invalid plugin config, using defaults", zap.Error(err))
	}

	result := transform.Transform(m, cfg, transform.WithLogger(a.log))

	data, err := ast.MarshalModule(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode module: %w", err)
	}

	out := &TransformResult{
		Module:     string(data),
		Components: make([]Component, 0, len(result.Components)),
	}
	for _, c := range result.Components {
		out.Components = append(out.Components, Component{Name: c.Name, Kind: c.Kind.String()})
	}
	return out, nil
}
