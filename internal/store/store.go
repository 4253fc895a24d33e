package store

import (
	"sync"

	"github.com/ppetrenko/textra/internal/model"
)

// Store is an in-memory corpus store keyed by identifier, safe for
// concurrent use. Each operation is atomic with respect to the others,
// but a document write followed by a chunks write is not atomic as a
// unit: a reader racing between the two calls may see the document
// without its chunks. Data lives for the process lifetime only.
type Store struct {
	mu         sync.RWMutex
	documents  map[string]model.Document
	chunks     map[string]model.Chunk
	generation uint64
}

// New creates an empty store.
func New() *Store {
	return &Store{
		documents: make(map[string]model.Document),
		chunks:    make(map[string]model.Chunk),
	}
}

// PutDocument inserts or overwrites a document by its ID and returns
// the ID. The document is visible to all readers as soon as this
// returns.
func (s *Store) PutDocument(doc model.Document) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.ID] = doc
	s.generation++
	return doc.ID
}

// PutChunks inserts each chunk by its own ID; last write wins on
// collision. The store does not check that a chunk's DocumentID refers
// to a stored document.
func (s *Store) PutChunks(chunks []model.Chunk) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range chunks {
		s.chunks[c.ID] = c
	}
	s.generation++
}

// GetDocument returns a copy of the document and whether it exists.
func (s *Store) GetDocument(id string) (model.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	return doc, ok
}

// AllChunks returns a snapshot copy of every stored chunk in
// arbitrary order. The order is not stable across calls when
// concurrent writes occur.
func (s *Store) AllChunks() []model.Chunk {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chunks := make([]model.Chunk, 0, len(s.chunks))
	for _, c := range s.chunks {
		chunks = append(chunks, c)
	}
	return chunks
}

// ListDocumentIDs returns the IDs of all stored documents.
func (s *Store) ListDocumentIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.documents))
	for id := range s.documents {
		ids = append(ids, id)
	}
	return ids
}

// Stats reports document and chunk counts plus the total byte length
// of stored document content (chunks are not counted).
func (s *Store) Stats() model.StorageStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, doc := range s.documents {
		total += len(doc.Content)
	}
	return model.StorageStats{
		TotalDocuments: len(s.documents),
		TotalChunks:    len(s.chunks),
		TotalSizeBytes: total,
	}
}

// Clear removes all documents and chunks atomically with respect to
// other store operations.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = make(map[string]model.Document)
	s.chunks = make(map[string]model.Chunk)
	s.generation++
}

// Generation returns a counter that increases on every mutation.
// Callers use it to invalidate derived state such as cached query
// results.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}
