package pipeline

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ppetrenko/textra/internal/cache"
	"github.com/ppetrenko/textra/internal/chunker"
	"github.com/ppetrenko/textra/internal/evaluate"
	"github.com/ppetrenko/textra/internal/model"
	"github.com/ppetrenko/textra/internal/processor"
	"github.com/ppetrenko/textra/internal/search"
	"github.com/ppetrenko/textra/internal/store"
)

// Pipeline orchestrates the retrieval flow: a document is segmented,
// then document and chunks are written to the store; a query pulls all
// stored chunks and ranks them. The pipeline owns its store instance;
// there is no ambient global state.
type Pipeline struct {
	processor *processor.Processor
	strategy  chunker.Strategy
	store     *store.Store
	searcher  *search.Engine
	evaluator *evaluate.Evaluator
	cache     cache.Cache // nil when caching is disabled
	config    *model.Config
}

// New creates a pipeline from the given configuration.
func New(cfg *model.Config) (*Pipeline, error) {
	strategy, err := chunker.ForName(cfg.Chunking.Strategy, cfg.Chunking.Size)
	if err != nil {
		return nil, fmt.Errorf("configure chunker: %w", err)
	}

	var queryCache cache.Cache
	if cfg.Cache.Enabled {
		queryCache = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.TTL)
	}

	return &Pipeline{
		processor: processor.NewProcessor(),
		strategy:  strategy,
		store:     store.New(),
		searcher:  search.NewEngine(),
		evaluator: evaluate.NewEvaluator(),
		cache:     queryCache,
		config:    cfg,
	}, nil
}

// IngestFile reads a file from disk and ingests it, returning the
// assigned document ID.
func (p *Pipeline) IngestFile(path string) (string, error) {
	doc, err := p.processor.ProcessFile(path)
	if err != nil {
		return "", fmt.Errorf("process document: %w", err)
	}
	return p.Ingest(doc)
}

// Ingest segments an already-built document and writes document and
// chunks to the store. The two writes are separate store operations; a
// concurrent reader may briefly see the document without its chunks.
func (p *Pipeline) Ingest(doc model.Document) (string, error) {
	chunks := p.strategy.Split(doc)
	docID := p.store.PutDocument(doc)
	p.store.PutChunks(chunks)
	return docID, nil
}

// Search ranks all stored chunks against the query and returns at most
// limit results. Results are served from the query cache as long as
// the store has not been mutated since they were computed; the store
// generation is part of the cache key, so mutation can never serve a
// stale list.
func (p *Pipeline) Search(query string, limit int) []model.SearchResult {
	var key string
	if p.cache != nil {
		key = cache.Key(query, strconv.Itoa(limit), strconv.FormatUint(p.store.Generation(), 10))
		if data, ok := p.cache.Get(key); ok {
			var cached []model.SearchResult
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached
			}
		}
	}

	results := p.searcher.Search(query, p.store.AllChunks(), limit)

	if p.cache != nil {
		if data, err := json.Marshal(results); err == nil {
			_ = p.cache.Set(key, data, p.config.Cache.TTL)
		}
	}
	return results
}

// EvaluateSearch runs a query with the configured result limit and
// scores the outcome against the expected document IDs.
func (p *Pipeline) EvaluateSearch(query string, expectedDocIDs []string) model.EvaluationMetrics {
	results := p.Search(query, p.config.Search.Limit)
	return p.evaluator.Evaluate(results, expectedDocIDs)
}

// ListDocuments returns the IDs of all ingested documents.
func (p *Pipeline) ListDocuments() []string {
	return p.store.ListDocumentIDs()
}

// GetDocument returns a stored document by ID.
func (p *Pipeline) GetDocument(id string) (model.Document, bool) {
	return p.store.GetDocument(id)
}

// Stats reports aggregate store counters.
func (p *Pipeline) Stats() model.StorageStats {
	return p.store.Stats()
}

// Clear removes all stored documents and chunks.
func (p *Pipeline) Clear() {
	p.store.Clear()
	if p.cache != nil {
		_ = p.cache.Clear()
	}
}

// ResolveDocumentIDs maps tokens that are either document IDs or
// origin file paths to document IDs. Unknown tokens pass through
// unchanged, so the evaluator counts them as missed expectations.
func (p *Pipeline) ResolveDocumentIDs(tokens []string) []string {
	ids := make([]string, 0, len(tokens))
	for _, token := range tokens {
		ids = append(ids, p.resolveToken(token))
	}
	return ids
}

func (p *Pipeline) resolveToken(token string) string {
	if _, ok := p.store.GetDocument(token); ok {
		return token
	}
	for _, id := range p.store.ListDocumentIDs() {
		if doc, ok := p.store.GetDocument(id); ok && doc.Metadata.FilePath == token {
			return id
		}
	}
	return token
}
