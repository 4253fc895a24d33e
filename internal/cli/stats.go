package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus storage statistics",
	Long: `Stats ingests the corpus named by --corpus and prints document and
chunk counts plus total stored content size.

Example:
  textra stats --corpus docs/ --strategy paragraph`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringSliceVar(&corpusTargets, "corpus", nil, "files or directories to ingest")
	statsCmd.Flags().StringVar(&strategyName, "strategy", "", "chunking strategy (fixed, paragraph)")
	statsCmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "words per chunk for the fixed strategy")
	statsCmd.Flags().BoolVar(&jsonOut, "json", false, "emit machine-readable output")
	_ = statsCmd.MarkFlagRequired("corpus")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	applyCorpusFlags(cfg)

	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	if _, err := ingestCorpus(context.Background(), p, cfg, corpusTargets); err != nil {
		return err
	}

	return printStats(p.Stats(), cfg.Output.JSON)
}
