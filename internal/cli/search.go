package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var searchLimit int

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Rank corpus chunks against a free-text query",
	Long: `Search ingests the corpus named by --corpus, scores every stored
chunk against the query, and prints the top results ordered by
descending lexical relevance.

A query word matches a chunk word when either is a substring of the
other, so "learn" matches "learning" and "ML" matches "ml". Chunks
under 10 or over 200 words score lower than mid-sized ones.

Example:
  textra search "machine learning" --corpus docs/
  textra search "neural networks" --corpus notes.txt --limit 3 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringSliceVar(&corpusTargets, "corpus", nil, "files or directories to ingest before querying")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 5, "maximum number of results")
	searchCmd.Flags().StringVar(&strategyName, "strategy", "", "chunking strategy (fixed, paragraph)")
	searchCmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "words per chunk for the fixed strategy")
	searchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the query-result cache")
	searchCmd.Flags().BoolVar(&jsonOut, "json", false, "emit machine-readable output")
	_ = searchCmd.MarkFlagRequired("corpus")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	cfg := buildConfig()
	applyCorpusFlags(cfg)

	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	if _, err := ingestCorpus(context.Background(), p, cfg, corpusTargets); err != nil {
		return err
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Searching for: %s\n", query)
	}

	results := p.Search(query, searchLimit)
	return printResults(results, cfg.Output.JSON)
}
