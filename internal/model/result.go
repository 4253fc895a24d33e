package model

// SearchResult is one ranked chunk returned for a query. Content is a
// denormalized copy, so results stay valid even if the store is
// mutated afterwards.
type SearchResult struct {
	ChunkID    string  `json:"chunk_id"`
	DocumentID string  `json:"document_id"`
	Content    string  `json:"content"`
	Score      float64 `json:"score"` // Lexical relevance, roughly [0,1]
	Rank       int     `json:"rank"`  // 1-based position within the returned list
}
