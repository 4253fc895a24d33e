package model

// Chunk is a contiguous sub-span of a document's text, the unit
// actually ranked by queries. Chunks are produced once per document at
// ingestion time and never mutated.
type Chunk struct {
	ID         string `json:"id"`          // <document_id>_<sequence>, sequence is 0-based emission order
	Content    string `json:"content"`     // Chunk text
	StartPos   int    `json:"start_pos"`   // Start word offset within the parent document
	EndPos     int    `json:"end_pos"`     // End word offset (exclusive)
	WordCount  int    `json:"word_count"`  // Words in this chunk
	DocumentID string `json:"document_id"` // Owning document, lookup only (not enforced by the store)
}
