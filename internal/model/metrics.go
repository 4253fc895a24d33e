package model

// EvaluationMetrics reports retrieval quality against a
// relevance-judgment set. All fields are in [0,1].
type EvaluationMetrics struct {
	Relevance float64 `json:"relevance"` // Average result score, capped at 1.0
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1Score   float64 `json:"f1_score"` // Harmonic mean of precision and recall
}

// StorageStats are aggregate counters over the corpus store.
type StorageStats struct {
	TotalDocuments int `json:"total_documents"`
	TotalChunks    int `json:"total_chunks"`
	TotalSizeBytes int `json:"total_size_bytes"` // Sum of stored document content lengths
}
