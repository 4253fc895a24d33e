package chunker

import (
	"strings"

	"github.com/ppetrenko/textra/internal/model"
)

// FixedSize emits successive chunks of at most Size whitespace-delimited
// words until the document is exhausted. The final chunk may be shorter.
// Chunk content is rebuilt by joining words with a single space, so the
// original inter-word whitespace is not preserved.
type FixedSize struct {
	Size int
}

func (s FixedSize) Name() string { return "fixed" }

func (s FixedSize) Split(doc model.Document) []model.Chunk {
	size := s.Size
	if size <= 0 {
		size = DefaultChunkSize
	}

	words := strings.Fields(doc.Content)
	var chunks []model.Chunk
	for start := 0; start < len(words); {
		end := start + size
		if end > len(words) {
			end = len(words)
		}
		part := words[start:end]
		chunks = append(chunks, model.Chunk{
			ID:         chunkID(doc.ID, len(chunks)),
			Content:    strings.Join(part, " "),
			StartPos:   start,
			EndPos:     end,
			WordCount:  len(part),
			DocumentID: doc.ID,
		})
		start = end
	}
	return chunks
}
