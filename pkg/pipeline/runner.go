package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/testspec/pkg/cache"
	stio "github.com/matzehuels/testspec/pkg/io"
	"github.com/matzehuels/testspec/pkg/observability"
	"github.com/matzehuels/testspec/pkg/testspec"
)

// keyTypeArtifact labels artifact cache events.
const keyTypeArtifact = "artifact"

// Runner executes the pipeline with artifact caching.
//
// The Runner holds no per-run state. Multiple goroutines can use the same
// Runner with different inputs and options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute parses input and renders it in opts.Format.
//
// The artifact is looked up in the cache first unless opts.Refresh is set.
// Cache failures are logged and never fail the run. Parse and render errors
// are returned unchanged.
func (r *Runner) Execute(ctx context.Context, input []byte, opts Options) (*Result, error) {
	logger := r.logger(opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	result := &Result{
		Format:   opts.Format,
		SpecHash: cache.Hash(input),
	}

	// Stage 1: Parse
	start := time.Now()
	spec, err := r.Parse(ctx, input)
	if err != nil {
		return nil, err
	}
	parsed := Summarize(spec)
	parsed.ParseTime = time.Since(start)
	result.Spec = spec
	result.Stats = parsed

	logger.Debug("parsed spec",
		"title", spec.Title,
		"primary", parsed.Primary,
		"secondary", parsed.Secondary,
		"tertiary", parsed.Tertiary,
		"rows", parsed.Rows)

	// Stage 2: Render, from the cache when possible
	key := r.Keyer.ArtifactKey(result.SpecHash, opts.ArtifactKeyOpts())
	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			logger.Warn("cache lookup failed", "error", err)
		case hit:
			observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
			logger.Debug("artifact cache hit", "format", opts.Format, "bytes", len(data))
			result.Artifact = data
			result.CacheHit = true
			return result, nil
		default:
			observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
		}
	}

	start = time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Format)
	data, err := Render(spec, opts)
	result.Stats.RenderTime = time.Since(start)
	observability.Pipeline().OnRenderComplete(ctx, opts.Format, len(data), result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifact = data

	logger.Info("rendered spec",
		"format", opts.Format,
		"rows", parsed.Rows,
		"bytes", len(data),
		"duration", result.Stats.RenderTime)

	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		logger.Warn("cache store failed", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, keyTypeArtifact, len(data))
	}

	return result, nil
}

// Parse decodes a YAML document and reports it to the pipeline hooks.
func (r *Runner) Parse(ctx context.Context, input []byte) (*testspec.Spec, error) {
	start := time.Now()
	observability.Pipeline().OnParseStart(ctx, len(input))

	spec, err := stio.DecodeSpec(input)

	var st Stats
	if err == nil {
		st = Summarize(spec)
	}
	observability.Pipeline().OnParseComplete(ctx, st.Primary, st.Rows, time.Since(start), err)
	return spec, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// logger prefers the logger set on the options.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
