package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [doc-id] [question]",
	Short: "Ask a question about a document",
	Long: `Answers a question using the document's content. The most relevant
sections are selected and sent to the AI provider together with the question.`,
	Args: cobra.ExactArgs(2),
	RunE: runAsk,
}

var historyCmd = &cobra.Command{
	Use:   "history [doc-id]",
	Short: "Show a document's question history",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(historyCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if qaService == nil {
		return errors.New("question answering service not configured")
	}
	if llmWarning != "" {
		cmd.Println(warningStyle.Render("AI features disabled: " + llmWarning))
	}

	qa, err := qaService.Ask(context.Background(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("question failed: %w", err)
	}

	cmd.Println(labelStyle.Render("Q: ") + qa.Question)
	cmd.Println(labelStyle.Render("A: ") + qa.Answer)
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	if qaService == nil {
		return errors.New("question answering service not configured")
	}

	history, err := qaService.History(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(history) == 0 {
		cmd.Println("No questions asked yet.")
		return nil
	}

	for i := range history {
		cmd.Println(mutedStyle.Render(history[i].CreatedAt.Format("2006-01-02 15:04")))
		cmd.Println(labelStyle.Render("Q: ") + history[i].Question)
		cmd.Println(labelStyle.Render("A: ") + history[i].Answer)
		cmd.Println()
	}
	return nil
}
