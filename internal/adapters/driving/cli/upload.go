package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload a document",
	Long: `Extracts text from a PDF, plain text, or Markdown file and stores it
for summarisation and question answering.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	ctx := context.Background()
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	doc, err := documentService.Upload(ctx, &domain.RawUpload{
		UserID:   userID,
		Filename: filepath.Base(path),
		MIMEType: mimeTypeForFile(path, content),
		Content:  content,
	})
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	cmd.Println(successStyle.Render("Uploaded " + doc.Filename))
	cmd.Printf("  %s %s\n", labelStyle.Render("ID:"), doc.ID)
	cmd.Printf("  %s %d\n", labelStyle.Render("Words:"), doc.WordCount())
	cmd.Printf("  %s %s\n", labelStyle.Render("Preview:"), mutedStyle.Render(doc.ContentPreview(120)))
	return nil
}

// mimeTypeForFile maps a filename to its upload MIME type, sniffing the
// content when the extension is unknown.
func mimeTypeForFile(path string, content []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	case ".md", ".markdown":
		return "text/markdown"
	default:
		return http.DetectContentType(content)
	}
}
