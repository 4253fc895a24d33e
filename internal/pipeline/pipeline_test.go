package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppetrenko/textra/internal/model"
)

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	return cfg
}

func newTestPipeline(t *testing.T, cfg *model.Config) *Pipeline {
	t.Helper()
	p, err := New(cfg)
	if err != nil {
		t.Fatalf("create pipeline: %v", err)
	}
	return p
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	return path
}

func TestPipeline_IngestAndSearch(t *testing.T) {
	p := newTestPipeline(t, testConfig())

	content := "Machine learning is a subset of artificial intelligence that enables computers to learn from data."
	path := writeTestFile(t, "ml.txt", content)

	docID, err := p.IngestFile(path)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if docID == "" {
		t.Fatal("expected a document ID")
	}

	// 15 words at chunk size 500: exactly one chunk holding everything
	stats := p.Stats()
	if stats.TotalDocuments != 1 {
		t.Errorf("expected 1 document, got %d", stats.TotalDocuments)
	}
	if stats.TotalChunks != 1 {
		t.Errorf("expected 1 chunk, got %d", stats.TotalChunks)
	}

	results := p.Search("machine learning", 3)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Score <= 0 {
		t.Errorf("expected positive score, got %f", results[0].Score)
	}
	// 15 words is in [10,200], so no length penalty; both query words match
	if results[0].Score != 1.0 {
		t.Errorf("expected full score 1.0, got %f", results[0].Score)
	}
	if results[0].DocumentID != docID {
		t.Errorf("expected result to reference %s, got %s", docID, results[0].DocumentID)
	}
}

func TestPipeline_ShortChunkLengthPenalty(t *testing.T) {
	p := newTestPipeline(t, testConfig())

	path := writeTestFile(t, "short.txt", "machine learning short note")
	if _, err := p.IngestFile(path); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	results := p.Search("machine learning", 1)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	// 4 words: both query words match but the length penalty applies
	if results[0].Score <= 0 || results[0].Score >= 1 {
		t.Errorf("expected penalized positive score, got %f", results[0].Score)
	}
}

func TestPipeline_StatsOverTwoDocuments(t *testing.T) {
	p := newTestPipeline(t, testConfig())

	first := "Alpha document about storage engines and retrieval."
	second := "Beta document about evaluation metrics."
	pathA := writeTestFile(t, "a.txt", first)
	pathB := writeTestFile(t, "b.txt", second)

	if _, err := p.IngestFile(pathA); err != nil {
		t.Fatalf("ingest a: %v", err)
	}
	if _, err := p.IngestFile(pathB); err != nil {
		t.Fatalf("ingest b: %v", err)
	}

	stats := p.Stats()
	if stats.TotalDocuments != 2 {
		t.Errorf("expected 2 documents, got %d", stats.TotalDocuments)
	}
	if want := len(first) + len(second); stats.TotalSizeBytes != want {
		t.Errorf("expected %d bytes, got %d", want, stats.TotalSizeBytes)
	}
}

func TestPipeline_EvaluateSearch(t *testing.T) {
	p := newTestPipeline(t, testConfig())

	relevant := writeTestFile(t, "ml.txt",
		"Machine learning is a subset of artificial intelligence that enables computers to learn from data.")
	irrelevant := writeTestFile(t, "cooking.txt",
		"Slice the onions finely and fry them gently in butter until golden and translucent throughout.")

	relevantID, err := p.IngestFile(relevant)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if _, err := p.IngestFile(irrelevant); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	metrics := p.EvaluateSearch("machine learning", []string{relevantID})
	if metrics.Recall != 1.0 {
		t.Errorf("expected recall 1.0, got %f", metrics.Recall)
	}
	if metrics.Precision <= 0 {
		t.Errorf("expected positive precision, got %f", metrics.Precision)
	}
	if metrics.Relevance <= 0 {
		t.Errorf("expected positive relevance, got %f", metrics.Relevance)
	}
}

func TestPipeline_ParagraphStrategy(t *testing.T) {
	cfg := testConfig()
	cfg.Chunking.Strategy = "paragraph"
	p := newTestPipeline(t, cfg)

	content := "First paragraph about machine learning.\n\nSecond paragraph about cooking pasta."
	path := writeTestFile(t, "mixed.txt", content)
	if _, err := p.IngestFile(path); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	if stats := p.Stats(); stats.TotalChunks != 2 {
		t.Errorf("expected 2 paragraph chunks, got %d", stats.TotalChunks)
	}

	results := p.Search("machine learning", 2)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !strings.Contains(results[0].Content, "machine learning") {
		t.Errorf("expected the matching paragraph first, got %q", results[0].Content)
	}
}

func TestPipeline_UnknownStrategy(t *testing.T) {
	cfg := testConfig()
	cfg.Chunking.Strategy = "sentence"
	if _, err := New(cfg); err == nil {
		t.Error("expected error for unknown chunking strategy")
	}
}

func TestPipeline_SearchCaching(t *testing.T) {
	cfg := model.DefaultConfig() // cache enabled
	p := newTestPipeline(t, cfg)

	path := writeTestFile(t, "ml.txt",
		"Machine learning is a subset of artificial intelligence that enables computers to learn from data.")
	if _, err := p.IngestFile(path); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	first := p.Search("machine learning", 3)
	second := p.Search("machine learning", 3)
	if len(first) != len(second) {
		t.Fatalf("cached result length differs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("cached result %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}

	// A store mutation changes the generation, so the next search must
	// reflect the new corpus rather than the cached list.
	other := writeTestFile(t, "ml2.txt",
		"Another machine learning note with enough words to be a reasonable chunk for ranking.")
	if _, err := p.IngestFile(other); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	third := p.Search("machine learning", 3)
	if len(third) != 2 {
		t.Errorf("expected 2 results after second ingest, got %d", len(third))
	}
}

func TestPipeline_ResolveDocumentIDs(t *testing.T) {
	p := newTestPipeline(t, testConfig())

	path := writeTestFile(t, "ml.txt", "machine learning content goes here today")
	docID, err := p.IngestFile(path)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}

	resolved := p.ResolveDocumentIDs([]string{docID, path, "unknown-token"})
	if resolved[0] != docID {
		t.Errorf("expected ID passthrough, got %s", resolved[0])
	}
	if resolved[1] != docID {
		t.Errorf("expected path to resolve to %s, got %s", docID, resolved[1])
	}
	if resolved[2] != "unknown-token" {
		t.Errorf("expected unknown token passthrough, got %s", resolved[2])
	}
}

func TestPipeline_Clear(t *testing.T) {
	p := newTestPipeline(t, testConfig())

	path := writeTestFile(t, "doc.txt", "some document content for clearing")
	if _, err := p.IngestFile(path); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	p.Clear()

	if stats := p.Stats(); stats.TotalDocuments != 0 || stats.TotalChunks != 0 {
		t.Errorf("expected empty store after clear, got %+v", stats)
	}
	if results := p.Search("document", 5); len(results) != 0 {
		t.Errorf("expected no results after clear, got %d", len(results))
	}
}
