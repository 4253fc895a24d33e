package model

// DocumentMetadata describes where an ingested document came from
type DocumentMetadata struct {
	FilePath  string `json:"file_path"`  // Origin path on disk
	FileType  string `json:"file_type"`  // Extension-derived type tag (e.g., "txt", "md")
	FileSize  int    `json:"file_size"`  // Size in bytes
	WordCount int    `json:"word_count"` // Whitespace-delimited word count
}

// Document is one ingested unit of source text plus its metadata.
// The corpus store owns a document once it is stored; it is never
// mutated afterwards.
type Document struct {
	ID       string           `json:"id"`       // Assigned at ingestion, immutable
	Content  string           `json:"content"`  // Full decoded text
	Metadata DocumentMetadata `json:"metadata"`
}
