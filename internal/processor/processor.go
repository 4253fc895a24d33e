package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ppetrenko/textra/internal/model"
)

// Processor turns files on disk into documents ready for ingestion.
type Processor struct{}

// NewProcessor creates a new document processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// ProcessFile reads the file at path and builds a document with a
// fresh identifier and origin metadata. The content must already be
// valid UTF-8 plain text.
func (p *Processor) ProcessFile(path string) (model.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("read file: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("stat file: %w", err)
	}

	fileType := strings.TrimPrefix(filepath.Ext(path), ".")
	if fileType == "" {
		fileType = "txt"
	}

	text := string(content)
	return model.Document{
		ID:      uuid.NewString(),
		Content: text,
		Metadata: model.DocumentMetadata{
			FilePath:  path,
			FileType:  fileType,
			FileSize:  int(info.Size()),
			WordCount: len(strings.Fields(text)),
		},
	}, nil
}
