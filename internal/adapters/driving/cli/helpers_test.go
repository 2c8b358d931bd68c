package cli

import (
	"context"
	"os"

	configfile "github.com/intellidoc-labs/intellidoc/internal/adapters/driven/config/file"
	"github.com/intellidoc-labs/intellidoc/internal/adapters/driven/storage/memory"
	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
	"github.com/intellidoc-labs/intellidoc/internal/core/ports/driven"
	"github.com/intellidoc-labs/intellidoc/internal/core/services"
	"github.com/intellidoc-labs/intellidoc/internal/extractors"
	"github.com/intellidoc-labs/intellidoc/internal/extractors/plaintext"
	"github.com/intellidoc-labs/intellidoc/internal/postprocessors"
	"github.com/intellidoc-labs/intellidoc/internal/postprocessors/chunker"
)

// stubLLMService returns canned responses for CLI tests.
type stubLLMService struct{}

func (s *stubLLMService) Generate(_ context.Context, _ string, _ driven.GenerateOptions) (string, error) {
	return "A direct answer.", nil
}

func (s *stubLLMService) Chat(_ context.Context, _ []driven.ChatMessage, _ driven.ChatOptions) (string, error) {
	return "A direct answer.", nil
}

func (s *stubLLMService) Summarise(_ context.Context, _ string, _ string) (string, error) {
	return "A concise summary.", nil
}

func (s *stubLLMService) ModelName() string            { return "stub" }
func (s *stubLLMService) Ping(_ context.Context) error { return nil }
func (s *stubLLMService) Close() error                 { return nil }

// seededDocID is the document uploaded by setupTestServices.
var seededDocID string

// setupTestServices wires the commands to memory-backed services with
// one seeded document and session. Returns a cleanup function that
// restores the previous wiring.
func setupTestServices() func() {
	oldDocument := documentService
	oldSummary := summaryService
	oldQA := qaService
	oldSession := sessionService
	oldConfig := configStore
	oldWarning := llmWarning

	dir, err := os.MkdirTemp("", "intellidoc-cli-test")
	if err != nil {
		panic(err)
	}
	configStore, err = configfile.NewConfigStore(dir)
	if err != nil {
		panic(err)
	}

	docStore := memory.NewDocumentStore()
	qaStore := memory.NewQAStore()

	registry := extractors.NewRegistry()
	registry.Register(plaintext.New())
	pipeline := postprocessors.NewPipeline(chunker.New(
		chunker.WithMinWords(2),
		chunker.WithMaxWords(10),
	))

	llm := &stubLLMService{}

	documentService = services.NewDocumentService(docStore, qaStore, registry, pipeline)
	summaryService = services.NewSummaryService(docStore, llm)
	qaService = services.NewQAService(docStore, qaStore, llm)
	sessionService = services.NewSessionService(memory.NewUserStore())
	llmWarning = ""

	ctx := context.Background()
	user, err := sessionService.Begin(ctx)
	if err != nil {
		panic(err)
	}
	if err := configStore.Set(sessionUserKey, user.ID); err != nil {
		panic(err)
	}

	doc, err := documentService.Upload(ctx, &domain.RawUpload{
		UserID:   user.ID,
		Filename: "report.txt",
		MIMEType: "text/plain",
		Content:  []byte("The quarterly report shows revenue grew ten percent over last year."),
	})
	if err != nil {
		panic(err)
	}
	seededDocID = doc.ID

	return func() {
		documentService = oldDocument
		summaryService = oldSummary
		qaService = oldQA
		sessionService = oldSession
		configStore = oldConfig
		llmWarning = oldWarning
		seededDocID = ""
		os.RemoveAll(dir)
	}
}
