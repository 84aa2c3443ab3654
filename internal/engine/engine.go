// Package engine is the analyzer's facade. It reconciles two sources of
// truth about a document, the structural query provider and the fallback
// lexical scanner, into consistent token streams, and owns the caches that
// make repeated queries over unchanged text cheap.
//
// An Engine is built once by the composition root and passed by reference;
// there is no package-level instance. It is intended to be driven from a
// single control-flow context: the caches require external mutual exclusion
// if an instance is ever shared across goroutines.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/shigou0206/editor-analyzer/internal/cachemanager"
	"github.com/shigou0206/editor-analyzer/internal/lexer"
	"github.com/shigou0206/editor-analyzer/internal/log"
	"github.com/shigou0206/editor-analyzer/internal/merger"
	"github.com/shigou0206/editor-analyzer/internal/projector"
	"github.com/shigou0206/editor-analyzer/internal/query"
	"github.com/shigou0206/editor-analyzer/internal/token"
)

// Engine coordinates the scanner, the query adapter, the projector, the
// merger, and the result caches behind one API.
type Engine struct {
	id       string
	provider query.Structural
	degraded bool
	tracer   trace.Tracer
	ttl      time.Duration

	// Compiled queries live for the engine's lifetime; a category that
	// failed to load once is never retried on this instance.
	queries     map[query.Category]query.CompiledQuery
	unavailable map[query.Category]bool

	tokenCache  *cachemanager.ReadThroughCache[string, []token.Token, string]
	resultCache *cachemanager.ReadThroughCache[string, Result, string]
	symbolCache *cachemanager.ReadThroughCache[string, []token.Symbol, string]
	foldCache   *cachemanager.ReadThroughCache[string, []token.Fold, string]
	tagCache    *cachemanager.ReadThroughCache[string, []token.Tag, string]
	caches      []interface {
		Flush(ctx context.Context) error
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithTracer installs a tracer for per-operation spans.
func WithTracer(t trace.Tracer) Option {
	return func(e *Engine) { e.tracer = t }
}

// WithTTL overrides the result cache TTL.
func WithTTL(d time.Duration) Option {
	return func(e *Engine) { e.ttl = d }
}

// New creates an engine over the given structural provider. A nil provider
// puts the engine into permanently degraded mode: highlighting falls back to
// the lexical scanner, structural-only results are empty, and no retry is
// attempted for this instance's lifetime. Construct a new engine to retry.
func New(provider query.Structural, opts ...Option) *Engine {
	e := &Engine{
		id:          uuid.NewString(),
		provider:    provider,
		degraded:    provider == nil,
		tracer:      noop.NewTracerProvider().Tracer("noop"),
		ttl:         cachemanager.DefaultExpiration,
		queries:     make(map[query.Category]query.CompiledQuery),
		unavailable: make(map[query.Category]bool),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.initCaches(false)

	log.Info(log.CatEngine, "engine created", "id", e.id, "degraded", e.degraded)
	return e
}

// NewUncached creates an engine whose read-through caches always recompute.
func NewUncached(provider query.Structural, opts ...Option) *Engine {
	e := New(provider, opts...)
	e.initCaches(true)
	return e
}

func (e *Engine) initCaches(skip bool) {
	tokens := cachemanager.NewInMemoryCacheManager[string, []token.Token]("tokens", e.ttl, cachemanager.DefaultCleanupInterval)
	results := cachemanager.NewInMemoryCacheManager[string, Result]("highlight", e.ttl, cachemanager.DefaultCleanupInterval)
	symbols := cachemanager.NewInMemoryCacheManager[string, []token.Symbol]("symbols", e.ttl, cachemanager.DefaultCleanupInterval)
	folds := cachemanager.NewInMemoryCacheManager[string, []token.Fold]("folds", e.ttl, cachemanager.DefaultCleanupInterval)
	tags := cachemanager.NewInMemoryCacheManager[string, []token.Tag]("tags", e.ttl, cachemanager.DefaultCleanupInterval)

	e.tokenCache = cachemanager.NewReadThroughCache[string, []token.Token, string](tokens, e.computeTokens, skip)
	e.resultCache = cachemanager.NewReadThroughCache[string, Result, string](results, e.computeHighlight, skip)
	e.symbolCache = cachemanager.NewReadThroughCache[string, []token.Symbol, string](symbols, e.computeSymbols, skip)
	e.foldCache = cachemanager.NewReadThroughCache[string, []token.Fold, string](folds, e.computeFolds, skip)
	e.tagCache = cachemanager.NewReadThroughCache[string, []token.Tag, string](tags, e.computeTags, skip)
	e.caches = []interface {
		Flush(ctx context.Context) error
	}{tokens, results, symbols, folds, tags}
}

// ID returns the engine instance id used for log correlation.
func (e *Engine) ID() string {
	return e.id
}

// Degraded reports whether the engine is running without structural support.
func (e *Engine) Degraded() bool {
	return e.degraded
}

// Tokenize returns the lexical-only token stream for text. The result is
// total over the input and cached by content.
func (e *Engine) Tokenize(text string) []token.Token {
	tokens, _ := e.tokenCache.GetWithRefresh(context.Background(), sourceKey("tokenize", text), text, e.ttl)
	return tokens
}

func (e *Engine) computeTokens(ctx context.Context, text string) ([]token.Token, error) {
	tokens := lexer.Scan(text)
	log.Debug(log.CatLexer, "scanned", "engine", e.id, "chars", len(text), "tokens", len(tokens))
	return tokens, nil
}

// Highlight returns the best available token stream for text: structural
// captures merged over basic words when the provider works, otherwise the
// lexical fallback. The result always covers the whole input; the Outcome
// tag says which path produced it.
func (e *Engine) Highlight(ctx context.Context, text string) Result {
	ctx, span := e.tracer.Start(ctx, "engine.Highlight",
		trace.WithAttributes(attribute.Int("source.bytes", len(text))))
	defer span.End()

	result, _ := e.resultCache.GetWithRefresh(ctx, sourceKey("highlight", text), text, e.ttl)
	span.SetAttributes(attribute.String("outcome", result.Outcome.String()))
	return result
}

func (e *Engine) computeHighlight(ctx context.Context, text string) (Result, error) {
	if text == "" {
		return Result{Outcome: OutcomeEmpty}, nil
	}

	matches, ok := e.captures(ctx, query.Highlights, text)
	if !ok {
		return Result{Tokens: lexer.Scan(text), Outcome: OutcomeLexical}, nil
	}

	structural := query.Project(matches, text)
	merged := merger.Merge(structural, lexer.Words(text))
	full := merger.Fill(merged, text)
	log.Debug(log.CatMerge, "merged highlight tokens",
		"engine", e.id, "structural", len(structural), "merged", len(merged), "filled", len(full))
	return Result{Tokens: full, Outcome: OutcomeStructural}, nil
}

// Lines returns the line-bucketed token view for text: highlight and tag
// provenance tokens from the structural provider layered over basic word
// tokens. In degraded mode every token is basic provenance.
func (e *Engine) Lines(ctx context.Context, text string) projector.Lines {
	ctx, span := e.tracer.Start(ctx, "engine.Lines",
		trace.WithAttributes(attribute.Int("source.bytes", len(text))))
	defer span.End()

	return projector.ByLine(e.lineTokens(ctx, text), text)
}

// LineTokens returns the tokens on a single zero-based line.
func (e *Engine) LineTokens(ctx context.Context, text string, line int) []token.LineToken {
	return e.Lines(ctx, text).ForLine(line)
}

// LineRange returns the tokens on lines in the inclusive range
// [startLine, endLine]; out-of-range bounds are clipped.
func (e *Engine) LineRange(ctx context.Context, text string, startLine, endLine int) []token.LineToken {
	return e.Lines(ctx, text).InRange(startLine, endLine)
}

func (e *Engine) lineTokens(ctx context.Context, text string) []token.LineToken {
	var structural []token.LineToken
	if matches, ok := e.captures(ctx, query.Highlights, text); ok {
		structural = query.ProjectLineTokens(matches, text, token.SourceHighlight)
	}
	if matches, ok := e.captures(ctx, query.Tags, text); ok {
		structural = append(structural, query.ProjectLineTokens(matches, text, token.SourceTag)...)
	}

	if len(structural) == 0 {
		// Degraded view: classify with the fallback scanner, keep words only.
		var out []token.LineToken
		for _, t := range lexer.Scan(text) {
			if t.Kind == token.Whitespace {
				continue
			}
			out = append(out, token.LineToken{Token: t, Source: token.SourceBasic})
		}
		return out
	}

	out := structural
	for _, w := range lexer.Words(text) {
		if containedInLineTokens(w, structural) {
			continue
		}
		out = append(out, token.LineToken{Token: w, Source: token.SourceBasic})
	}
	return out
}

func containedInLineTokens(t token.Token, structural []token.LineToken) bool {
	for _, s := range structural {
		if s.Start <= t.Start && s.End >= t.End {
			return true
		}
	}
	return false
}

// Symbols returns the symbol records derived from the locals query. Always
// empty, never an error, when structural info is unavailable: there is no
// lexical fallback for symbols.
func (e *Engine) Symbols(ctx context.Context, text string) []token.Symbol {
	ctx, span := e.tracer.Start(ctx, "engine.Symbols")
	defer span.End()

	symbols, _ := e.symbolCache.GetWithRefresh(ctx, sourceKey("symbols", text), text, e.ttl)
	return symbols
}

func (e *Engine) computeSymbols(ctx context.Context, text string) ([]token.Symbol, error) {
	matches, ok := e.captures(ctx, query.Locals, text)
	if !ok {
		return nil, nil
	}
	return query.ExtractSymbols(matches, text), nil
}

// Folds returns foldable regions from the folds query; empty when
// structural info is unavailable.
func (e *Engine) Folds(ctx context.Context, text string) []token.Fold {
	ctx, span := e.tracer.Start(ctx, "engine.Folds")
	defer span.End()

	folds, _ := e.foldCache.GetWithRefresh(ctx, sourceKey("folds", text), text, e.ttl)
	return folds
}

func (e *Engine) computeFolds(ctx context.Context, text string) ([]token.Fold, error) {
	matches, ok := e.captures(ctx, query.Folds, text)
	if !ok {
		return nil, nil
	}
	return query.ExtractFolds(matches, text), nil
}

// Tags returns navigation tags from the tags query; empty when structural
// info is unavailable.
func (e *Engine) Tags(ctx context.Context, text string) []token.Tag {
	ctx, span := e.tracer.Start(ctx, "engine.Tags")
	defer span.End()

	tags, _ := e.tagCache.GetWithRefresh(ctx, sourceKey("tags", text), text, e.ttl)
	return tags
}

func (e *Engine) computeTags(ctx context.Context, text string) ([]token.Tag, error) {
	matches, ok := e.captures(ctx, query.Tags, text)
	if !ok {
		return nil, nil
	}
	return query.ExtractTags(matches, text), nil
}

// captures parses text and runs the named query over it. Returns ok=false
// when the engine is degraded, the query definition is unavailable, or the
// provider fails; callers degrade to their fallback in every case.
func (e *Engine) captures(ctx context.Context, c query.Category, text string) ([]query.CaptureMatch, bool) {
	if e.degraded {
		return nil, false
	}

	q, ok := e.compiled(c)
	if !ok {
		return nil, false
	}

	tree, err := e.provider.Parse(ctx, text)
	if err != nil {
		log.Warn(log.CatQuery, "parse failed, degrading", "engine", e.id, "error", err)
		return nil, false
	}

	matches, err := e.provider.Execute(ctx, tree, q, text)
	if err != nil {
		log.Warn(log.CatQuery, "query execution failed, degrading",
			"engine", e.id, "category", string(c), "error", err)
		return nil, false
	}
	return matches, true
}

// compiled returns the cached compiled query for the category, compiling on
// first use. Unavailable categories are remembered and not retried.
func (e *Engine) compiled(c query.Category) (query.CompiledQuery, bool) {
	if q, ok := e.queries[c]; ok {
		return q, true
	}
	if e.unavailable[c] {
		return nil, false
	}

	q, err := e.provider.Query(c)
	if err != nil {
		if errors.Is(err, query.ErrQueryUnavailable) {
			log.Info(log.CatQuery, "query definition absent", "engine", e.id, "category", string(c))
		} else {
			log.ErrorErr(log.CatQuery, "query compilation failed", err, "engine", e.id, "category", string(c))
		}
		e.unavailable[c] = true
		return nil, false
	}

	e.queries[c] = q
	return q, true
}

// Invalidate drops every cached result. Compiled queries are kept.
func (e *Engine) Invalidate(ctx context.Context) {
	for _, c := range e.caches {
		_ = c.Flush(ctx)
	}
	log.Info(log.CatCache, "result caches flushed", "engine", e.id)
}

// Close drops compiled queries and flushes all result caches. The engine
// must not be used afterwards.
func (e *Engine) Close() {
	e.Invalidate(context.Background())
	e.queries = make(map[query.Category]query.CompiledQuery)
	e.unavailable = make(map[query.Category]bool)
	log.Info(log.CatEngine, "engine closed", "id", e.id)
}
