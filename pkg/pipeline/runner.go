package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphwalk/pkg/cache"
	gwerrors "github.com/matzehuels/graphwalk/pkg/errors"
	"github.com/matzehuels/graphwalk/pkg/graph"
	gwio "github.com/matzehuels/graphwalk/pkg/io"
	"github.com/matzehuels/graphwalk/pkg/observability"
	"github.com/matzehuels/graphwalk/pkg/search"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. It doesn't
// store pipeline results, so one Runner can serve any number of runs.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute runs the complete load → traverse → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	g, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Graph = g
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Vertices = g.VertexCount()
	result.Stats.Edges = g.EdgeCount()

	r.Logger.Info("loaded graph",
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Traverse
	searchStart := time.Now()
	res, err := r.Traverse(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("traverse: %w", err)
	}
	result.Search = res
	result.Stats.SearchTime = time.Since(searchStart)
	result.Stats.Expansions = res.Expansions()

	r.Logger.Info("searched graph",
		"algorithm", res.Algorithm.Name(),
		"expansions", res.Expansions(),
		"reachable", res.Reachable(),
		"duration", result.Stats.SearchTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, g, res, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the graph named by opts.Input.
func (r *Runner) Load(ctx context.Context, opts Options) (g *graph.Graph, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Input)
	start := time.Now()
	defer func() {
		vertices, edges := 0, 0
		if g != nil {
			vertices, edges = g.VertexCount(), g.EdgeCount()
		}
		hooks.OnLoadComplete(ctx, opts.Input, vertices, edges, time.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return gwio.Import(opts.Input)
}

// Traverse searches g from opts.Start to opts.End with opts.Algorithm.
func (r *Runner) Traverse(ctx context.Context, g *graph.Graph, opts Options) (res *search.Result, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForSearch(); err != nil {
		return nil, err
	}
	alg, err := search.ParseAlgorithm(opts.Algorithm)
	if err != nil {
		return nil, gwerrors.Wrap(gwerrors.ErrCodeInvalidAlgorithm, err, "algorithm")
	}

	hooks := observability.Pipeline()
	hooks.OnSearchStart(ctx, alg.Name(), opts.Start, opts.End)
	start := time.Now()
	defer func() {
		expansions, reachable := 0, false
		if res != nil {
			expansions, reachable = res.Expansions(), res.Reachable()
		}
		hooks.OnSearchComplete(ctx, alg.Name(), expansions, reachable, time.Since(start), err)
	}()

	res, err = search.Traverse(g, opts.Start, opts.End, alg)
	if errors.Is(err, graph.ErrVertexNotFound) {
		return nil, gwerrors.Wrap(gwerrors.ErrCodeNotFound, err, "start vertex %d", opts.Start)
	}
	if err != nil {
		return nil, err
	}
	if !res.Reachable() {
		opts.Logger.Debug("goal unreachable", "start", opts.Start, "end", opts.End)
	}
	return res, nil
}

// RenderWithCacheInfo generates artifacts and reports whether every
// Graphviz artifact came from the cache. Text, JSON and DOT outputs are
// cheap and always rendered; SVG, PNG and PDF are cached under the hash of
// their DOT source. res may be nil, see [Render].
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *graph.Graph, res *search.Result, opts Options) (artifacts map[string][]byte, hit bool, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	dot := DOT(g, res, opts)
	dotHash := cache.Hash([]byte(dot))

	artifacts = make(map[string][]byte, len(opts.Formats))
	var pending []string
	for _, format := range opts.Formats {
		if !isGraphviz(format) {
			pending = append(pending, format)
			continue
		}
		if data, ok := r.cached(ctx, artifactKey(dotHash, format, opts)); ok {
			artifacts[format] = data
			continue
		}
		pending = append(pending, format)
	}

	hit = opts.NeedsGraphviz()
	for _, format := range pending {
		data, err := renderFormat(ctx, format, dot, g, res, opts)
		if err != nil {
			return nil, false, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
		if isGraphviz(format) {
			hit = false
			r.store(ctx, artifactKey(dotHash, format, opts), data)
		}
	}
	return artifacts, hit, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, g *graph.Graph, res *search.Result, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, g, res, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) cached(ctx context.Context, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "error", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, "artifact")
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, "artifact")
	return data, true
}

func (r *Runner) store(ctx context.Context, key string, data []byte) {
	if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "artifact", len(data))
}

// artifactKey folds the PNG scale into the key since it changes the image
// but not the DOT source.
func artifactKey(dotHash, format string, opts Options) string {
	if format == FormatPNG {
		format += "@" + strconv.FormatFloat(opts.PNGScale, 'f', -1, 64)
	}
	return cache.ArtifactKey(dotHash, format)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
