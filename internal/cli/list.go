package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ppetrenko/textra/internal/model"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List ingested documents with short metadata",
	Long: `List ingests the corpus named by --corpus and prints each document's
identifier, type tag, and word count.

Example:
  textra list --corpus docs/`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringSliceVar(&corpusTargets, "corpus", nil, "files or directories to ingest")
	listCmd.Flags().StringVar(&strategyName, "strategy", "", "chunking strategy (fixed, paragraph)")
	listCmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "words per chunk for the fixed strategy")
	listCmd.Flags().BoolVar(&jsonOut, "json", false, "emit machine-readable output")
	_ = listCmd.MarkFlagRequired("corpus")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	applyCorpusFlags(cfg)

	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	if _, err := ingestCorpus(context.Background(), p, cfg, corpusTargets); err != nil {
		return err
	}

	ids := p.ListDocuments()
	sort.Strings(ids)

	if cfg.Output.JSON {
		docs := make([]model.Document, 0, len(ids))
		for _, id := range ids {
			if doc, ok := p.GetDocument(id); ok {
				doc.Content = "" // keep listings small
				docs = append(docs, doc)
			}
		}
		return printJSON(docs)
	}

	fmt.Printf("Processed Documents (%d):\n", len(ids))
	for _, id := range ids {
		if doc, ok := p.GetDocument(id); ok {
			fmt.Printf("  - %s (%s, %d words) %s\n", id, doc.Metadata.FileType, doc.Metadata.WordCount, doc.Metadata.FilePath)
		}
	}
	return nil
}
