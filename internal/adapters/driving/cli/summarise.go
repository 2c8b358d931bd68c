package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
)

var (
	summariseLength  string
	summariseRefresh bool
)

var summariseCmd = &cobra.Command{
	Use:     "summarise [doc-id]",
	Aliases: []string{"summarize"},
	Short:   "Generate a document summary",
	Long: `Generates an AI summary of an uploaded document. Summaries are cached;
use --refresh to regenerate.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarise,
}

func init() {
	summariseCmd.Flags().StringVarP(&summariseLength, "length", "l", "medium", "summary length: short, medium, or long")
	summariseCmd.Flags().BoolVar(&summariseRefresh, "refresh", false, "regenerate even if a summary is cached")
	rootCmd.AddCommand(summariseCmd)
}

func runSummarise(cmd *cobra.Command, args []string) error {
	if summaryService == nil {
		return errors.New("summary service not configured")
	}
	if llmWarning != "" {
		cmd.Println(warningStyle.Render("AI features disabled: " + llmWarning))
	}

	length := domain.SummaryLength(summariseLength)
	summary, err := summaryService.Summarise(context.Background(), args[0], length, summariseRefresh)
	if err != nil {
		return fmt.Errorf("summarise failed: %w", err)
	}

	cmd.Println(titleStyle.Render("Summary (" + length.Description() + ")"))
	cmd.Println()
	cmd.Println(summary)
	return nil
}
