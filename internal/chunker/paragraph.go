package chunker

import (
	"strings"

	"github.com/ppetrenko/textra/internal/model"
)

// Paragraph emits one chunk per blank-line-separated paragraph,
// discarding paragraphs that are empty after trimming. Word offsets are
// cumulative across surviving paragraphs only, so gaps in the original
// text do not advance the offset counter.
type Paragraph struct{}

func (Paragraph) Name() string { return "paragraph" }

func (Paragraph) Split(doc model.Document) []model.Chunk {
	var chunks []model.Chunk
	wordPos := 0
	for _, para := range strings.Split(doc.Content, "\n\n") {
		if strings.TrimSpace(para) == "" {
			continue
		}
		n := len(strings.Fields(para))
		chunks = append(chunks, model.Chunk{
			ID:         chunkID(doc.ID, len(chunks)),
			Content:    para,
			StartPos:   wordPos,
			EndPos:     wordPos + n,
			WordCount:  n,
			DocumentID: doc.ID,
		})
		wordPos += n
	}
	return chunks
}
