// Package cli provides the command-line interface for IntelliDoc.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/intellidoc-labs/intellidoc/internal/adapters/driven/ai"
	configfile "github.com/intellidoc-labs/intellidoc/internal/adapters/driven/config/file"
	"github.com/intellidoc-labs/intellidoc/internal/adapters/driven/storage/sqlite"
	"github.com/intellidoc-labs/intellidoc/internal/core/ports/driving"
	"github.com/intellidoc-labs/intellidoc/internal/core/services"
	"github.com/intellidoc-labs/intellidoc/internal/extractors"
	"github.com/intellidoc-labs/intellidoc/internal/extractors/pdf"
	"github.com/intellidoc-labs/intellidoc/internal/extractors/plaintext"
	"github.com/intellidoc-labs/intellidoc/internal/logger"
	"github.com/intellidoc-labs/intellidoc/internal/postprocessors"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services used by the commands. Wired by initServices, replaced by
// test helpers.
var (
	documentService driving.DocumentService
	summaryService  driving.SummaryService
	qaService       driving.QAService
	sessionService  driving.SessionService

	configStore *configfile.ConfigStore
	store       *sqlite.Store
	llmWarning  string
)

// Persistent flags.
var (
	flagVerbose   bool
	flagDataDir   string
	flagConfigDir string
)

var rootCmd = &cobra.Command{
	Use:   "intellidoc",
	Short: "Upload documents, summarise them, and ask questions",
	Long: `IntelliDoc extracts text from PDF and plain text documents, generates
AI summaries, and answers questions grounded in document content.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)

		// version and help need no services
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}
		return initServices()
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if store != nil {
			store.Close()
			store = nil
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.intellidoc/data)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.intellidoc)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// buildPipeline constructs the post-processing pipeline, letting the
// config file override the chunker word bounds.
func buildPipeline() (*postprocessors.Pipeline, error) {
	processors := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(processors)

	cfg := map[string]any{}
	if v := configStore.GetInt("chunker.min_words"); v > 0 {
		cfg["min_words"] = v
	}
	if v := configStore.GetInt("chunker.max_words"); v > 0 {
		cfg["max_words"] = v
	}

	chunkProc, err := processors.Build("chunker", cfg)
	if err != nil {
		return nil, fmt.Errorf("build chunker: %w", err)
	}
	return postprocessors.NewPipeline(chunkProc), nil
}

// initServices builds the full service graph: SQLite storage, extractor
// registry, chunking pipeline, and the configured AI provider.
func initServices() error {
	if documentService != nil {
		return nil // already wired (tests)
	}

	var err error
	configStore, err = configfile.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	store, err = sqlite.NewStore(flagDataDir)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	registry := extractors.NewRegistry()
	registry.Register(pdf.New())
	registry.Register(plaintext.New())

	pipeline, err := buildPipeline()
	if err != nil {
		return err
	}

	llm, err := ai.CreateAndValidateLLMService(configStore.LLMSettings())
	if err != nil {
		// Degrade to browse-only mode rather than refusing to start.
		llmWarning = err.Error()
		llm = nil
	}

	docStore := store.DocumentStore()
	qaStore := store.QAStore()

	documentService = services.NewDocumentService(docStore, qaStore, registry, pipeline)
	summaryService = services.NewSummaryService(docStore, llm)
	var qaOpts []services.QAOption
	if v := configStore.GetInt("qa.top_k"); v > 0 {
		qaOpts = append(qaOpts, services.WithTopK(v))
	}
	qaService = services.NewQAService(docStore, qaStore, llm, qaOpts...)
	sessionService = services.NewSessionService(store.UserStore())

	if llmWarning != "" {
		logger.Warn("AI features disabled: %s", llmWarning)
	}

	return nil
}
