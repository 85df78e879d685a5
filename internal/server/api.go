package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-json-experiment/json/jsontext"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/christianalfoni/rask-ui/internal/analyse"
	"github.com/christianalfoni/rask-ui/internal/ast"
	"github.com/christianalfoni/rask-ui/internal/compiler"
	"github.com/christianalfoni/rask-ui/internal/transform"
)

// DefaultCacheSize is the number of transformSource results kept when the
// caller does not choose a size.
const DefaultCacheSize = 256

type APIOptions struct {
	Cwd       string
	Logger    *zap.Logger
	CacheSize int
}

// API implements the server methods. It is safe for concurrent use.
type API struct {
	cwd   string
	log   *zap.Logger
	cache *lru.Cache[string, *SourceResponse]
}

func NewAPI(opts *APIOptions) (*API, error) {
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, *SourceResponse](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &API{
		cwd:   opts.Cwd,
		log:   log,
		cache: cache,
	}, nil
}

// config decodes a host configuration, logging and falling back to the
// defaults when it is malformed.
func (a *API) config(raw jsontext.Value) transform.Config {
	cfg, err := transform.DecodeConfig(raw)
	if err != nil {
		a.log.Warn("invalid plugin config, using defaults", zap.Error(err))
	}
	return cfg
}

// TransformModule rewrites a module received in the JSON AST encoding.
func (a *API) TransformModule(params *TransformParams) (*TransformResponse, error) {
	m, err := ast.UnmarshalModule(params.Module)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	result := transform.Transform(m, a.config(params.Config), transform.WithLogger(a.log))

	data, err := ast.MarshalModule(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode module: %w", err)
	}

	resp := &TransformResponse{
		Module:     data,
		Components: componentInfo(result),
	}
	for _, c := range result.Components {
		switch c.Kind {
		case analyse.Stateful:
			resp.Stateful = true
		case analyse.Stateless:
			resp.Stateless = true
		}
	}
	return resp, nil
}

// TransformSource compiles a standalone JavaScript source. Results are cached
// by configuration and source, since the output depends on nothing else.
func (a *API) TransformSource(ctx context.Context, fileName, source string, rawConfig jsontext.Value) (*SourceResponse, error) {
	cfg := a.config(rawConfig)
	key := cacheKey(cfg, source)
	if resp, ok := a.cache.Get(key); ok {
		a.log.Debug("transformSource cache hit", zap.String("file", fileName))
		return resp, nil
	}

	out, err := compiler.Compile(ctx, fileName, []byte(source), cfg, transform.WithLogger(a.log))
	if err != nil {
		return nil, err
	}

	resp := &SourceResponse{
		Code:       out.Code,
		Components: componentInfo(out.Result),
	}
	a.cache.Add(key, resp)
	return resp, nil
}

// TransformFile reads a file relative to the server's working directory and
// compiles it.
func (a *API) TransformFile(ctx context.Context, fileName string, rawConfig jsontext.Value) (*SourceResponse, error) {
	fileName = a.toAbsolutePath(fileName)
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}
	return a.TransformSource(ctx, fileName, string(data), rawConfig)
}

func (a *API) toAbsolutePath(fileName string) string {
	if filepath.IsAbs(fileName) {
		return fileName
	}
	return filepath.Join(a.cwd, fileName)
}

func cacheKey(cfg transform.Config, source string) string {
	h := sha256.New()
	h.Write([]byte(cfg.ImportSourceOrDefault()))
	h.Write([]byte{0})
	h.Write([]byte(source))
	return hex.EncodeToString(h.Sum(nil))
}

func componentInfo(result *transform.Result) []ComponentInfo {
	out := make([]ComponentInfo, 0, len(result.Components))
	for _, c := range result.Components {
		out = append(out, ComponentInfo{Name: c.Name, Kind: c.Kind.String()})
	}
	return out
}
