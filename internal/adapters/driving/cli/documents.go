package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Manage uploaded documents",
	Long:  `List, inspect, or delete uploaded documents.`,
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentsList,
}

var documentsShowCmd = &cobra.Command{
	Use:   "show [doc-id]",
	Short: "Show document details",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsShow,
}

var documentsContentCmd = &cobra.Command{
	Use:   "content [doc-id]",
	Short: "Print a document's extracted text",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsContent,
}

var documentsDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a document and its history",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsDelete,
}

func init() {
	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsShowCmd)
	documentsCmd.AddCommand(documentsContentCmd)
	documentsCmd.AddCommand(documentsDeleteCmd)
	rootCmd.AddCommand(documentsCmd)
}

func runDocumentsList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	docs, err := documentService.List(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents uploaded yet. Use 'intellidoc upload' to add one.")
		return nil
	}

	cmd.Println(titleStyle.Render("Your documents"))
	cmd.Println()
	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    %s %s\n", labelStyle.Render("File:"), docs[i].Filename)
		cmd.Printf("    %s %d words\n", labelStyle.Render("Size:"), docs[i].WordCount())
		if docs[i].Summary != "" {
			cmd.Printf("    %s %s\n", labelStyle.Render("Summary:"), mutedStyle.Render(docs[i].SummaryPreview(100)))
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentsShow(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	details, err := documentService.GetDetails(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Println(titleStyle.Render(details.Filename))
	cmd.Printf("  %s %s\n", labelStyle.Render("ID:"), details.ID)
	cmd.Printf("  %s %d bytes\n", labelStyle.Render("File size:"), details.FileSize)
	cmd.Printf("  %s %d\n", labelStyle.Render("Words:"), details.WordCount)
	cmd.Printf("  %s %d\n", labelStyle.Render("Chunks:"), details.ChunkCount)
	cmd.Printf("  %s %t\n", labelStyle.Render("Summarised:"), details.HasSummary)
	cmd.Printf("  %s %s\n", labelStyle.Render("Uploaded:"), details.CreatedAt.Format("2006-01-02 15:04"))
	for key, value := range details.Metadata {
		cmd.Printf("  %s %s\n", labelStyle.Render(key+":"), value)
	}
	return nil
}

func runDocumentsContent(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	content, err := documentService.GetContent(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get content: %w", err)
	}

	cmd.Println(content)
	return nil
}

func runDocumentsDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	if err := documentService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Println(successStyle.Render("Deleted " + args[0]))
	return nil
}
