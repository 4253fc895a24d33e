package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppetrenko/textra/internal/model"
)

var (
	expectedDocs string
	evalLimit    int
)

// applyEvaluateLimit overrides the configured search limit only when
// --limit was given explicitly; otherwise the config value stands.
func applyEvaluateLimit(cfg *model.Config) {
	if evalLimit > 0 {
		cfg.Search.Limit = evalLimit
	}
}

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate <query>",
	Short: "Measure retrieval quality against expected documents",
	Long: `Evaluate runs a query against the ingested corpus and compares the
ranked results to a relevance-judgment set, reporting relevance,
precision, recall, and F1.

Expected documents are given as a comma-separated list; each entry is
either a document ID or the path of an ingested file (paths are
resolved to the IDs assigned during this run).

Example:
  textra evaluate "machine learning" --corpus docs/ --expect docs/ml.txt
  textra evaluate "laksa" --corpus recipes/ --expect recipes/laksa.txt,recipes/curry.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringSliceVar(&corpusTargets, "corpus", nil, "files or directories to ingest before querying")
	evaluateCmd.Flags().StringVar(&expectedDocs, "expect", "", "comma-separated expected document IDs or file paths")
	evaluateCmd.Flags().IntVarP(&evalLimit, "limit", "l", 0, "result count to evaluate (default: configured search limit)")
	evaluateCmd.Flags().StringVar(&strategyName, "strategy", "", "chunking strategy (fixed, paragraph)")
	evaluateCmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "words per chunk for the fixed strategy")
	evaluateCmd.Flags().BoolVar(&jsonOut, "json", false, "emit machine-readable output")
	_ = evaluateCmd.MarkFlagRequired("corpus")
	_ = evaluateCmd.MarkFlagRequired("expect")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	query := args[0]

	cfg := buildConfig()
	applyCorpusFlags(cfg)
	applyEvaluateLimit(cfg)

	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	if _, err := ingestCorpus(context.Background(), p, cfg, corpusTargets); err != nil {
		return err
	}

	var tokens []string
	for _, token := range strings.Split(expectedDocs, ",") {
		if trimmed := strings.TrimSpace(token); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	expectedIDs := p.ResolveDocumentIDs(tokens)

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Evaluating search for: %s\n", query)
		fmt.Fprintf(os.Stderr, "Expected documents: %v\n", expectedIDs)
	}

	metrics := p.EvaluateSearch(query, expectedIDs)
	return printMetrics(metrics, cfg.Output.JSON)
}
