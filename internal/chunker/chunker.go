package chunker

import (
	"fmt"
	"strconv"

	"github.com/ppetrenko/textra/internal/model"
)

// DefaultChunkSize is the word count per chunk for the fixed strategy.
const DefaultChunkSize = 500

// Strategy splits a document's text into ordered, non-overlapping
// chunks. Implementations must be deterministic for a fixed input, and
// must emit chunk IDs of the form <document_id>_<sequence> where
// sequence is the chunk's 0-based emission order.
type Strategy interface {
	Name() string
	Split(doc model.Document) []model.Chunk
}

// ForName returns the strategy registered under the given name.
// Size only applies to the fixed strategy; zero selects the default.
func ForName(name string, size int) (Strategy, error) {
	switch name {
	case "fixed", "fixed-size", "":
		if size <= 0 {
			size = DefaultChunkSize
		}
		return FixedSize{Size: size}, nil
	case "paragraph":
		return Paragraph{}, nil
	default:
		return nil, fmt.Errorf("unknown chunking strategy: %q", name)
	}
}

func chunkID(docID string, seq int) string {
	return docID + "_" + strconv.Itoa(seq)
}
