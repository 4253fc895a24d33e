package search

import (
	"sort"
	"strings"

	"github.com/ppetrenko/textra/internal/model"
)

// Chunks shorter than minPenaltyWords or longer than maxPenaltyWords
// are penalized; anything in between scores at full weight.
const (
	minPenaltyWords = 10
	maxPenaltyWords = 200
)

// Engine ranks chunks against a query using word-substring overlap.
// Scores are lexical only; there is no semantic similarity.
type Engine struct{}

// NewEngine creates a new search engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Search scores every chunk against the query, sorts by score
// descending, truncates to limit, and assigns dense 1-based ranks over
// the truncated list. A limit of zero or an empty candidate set yields
// an empty result list. Ties keep the candidates' iteration order; no
// secondary sort key is defined.
func (e *Engine) Search(query string, chunks []model.Chunk, limit int) []model.SearchResult {
	if limit <= 0 || len(chunks) == 0 {
		return nil
	}

	results := make([]model.SearchResult, 0, len(chunks))
	for _, chunk := range chunks {
		results = append(results, model.SearchResult{
			ChunkID:    chunk.ID,
			DocumentID: chunk.DocumentID,
			Content:    chunk.Content,
			Score:      e.score(query, chunk.Content),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if limit < len(results) {
		results = results[:limit]
	}
	for i := range results {
		results[i].Rank = i + 1
	}
	return results
}

// score computes the lexical relevance of content for query.
//
// A query word matches if it is a substring of a chunk word or the
// chunk word is a substring of the query word; this catches both
// stemming-like suffixes ("learn" vs "learning") and abbreviations.
// Each query word contributes at most one match. The keyword fraction
// is then damped by a length penalty so that very short and very long
// chunks rank below mid-sized ones.
func (e *Engine) score(query, content string) float64 {
	queryWords := strings.Fields(strings.ToLower(query))
	contentWords := strings.Fields(strings.ToLower(content))
	if len(queryWords) == 0 || len(contentWords) == 0 {
		return 0
	}

	matches := 0
	for _, qw := range queryWords {
		for _, cw := range contentWords {
			if strings.Contains(cw, qw) || strings.Contains(qw, cw) {
				matches++
				break
			}
		}
	}
	keywordScore := float64(matches) / float64(len(queryWords))

	var lengthPenalty float64
	switch n := len(contentWords); {
	case n < minPenaltyWords:
		lengthPenalty = float64(n) / minPenaltyWords
	case n > maxPenaltyWords:
		lengthPenalty = maxPenaltyWords / float64(n)
	default:
		lengthPenalty = 1.0
	}

	return keywordScore * lengthPenalty
}
