package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/intellidoc-labs/intellidoc/internal/adapters/driven/ai"
	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure the AI provider",
	Long: `View and configure the AI provider used for summaries and questions.

Running without a subcommand starts the interactive setup. API keys can
also be supplied through GEMINI_API_KEY or OPENAI_API_KEY, which take
precedence over the stored configuration.`,
	RunE: runConfigSetup,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not initialised")
	}

	settings := configStore.LLMSettings()

	cmd.Printf("%s\n", titleStyle.Render("AI Configuration"))
	cmd.Printf("  %s %s\n", labelStyle.Render("Provider:"), settings.Provider.Description())
	cmd.Printf("  %s %s\n", labelStyle.Render("Model:"), settings.Model)
	if settings.Provider.IsLocal() {
		cmd.Printf("  %s %s\n", labelStyle.Render("Base URL:"), settings.BaseURL)
	}
	if settings.Provider.RequiresAPIKey() {
		if settings.APIKey != "" {
			cmd.Printf("  %s %s\n", labelStyle.Render("API Key:"), maskAPIKey(settings.APIKey))
		} else {
			cmd.Printf("  %s (not set)\n", labelStyle.Render("API Key:"))
		}
	}

	if err := ai.ValidateLLMConfig(settings); err != nil {
		cmd.Printf("\n%s\n", warningStyle.Render(fmt.Sprintf("Warning: %v", err)))
		cmd.Println("Run 'intellidoc config' to fix.")
		return nil
	}
	cmd.Printf("\n%s\n", successStyle.Render("Configuration is valid."))
	return nil
}

func runConfigSetup(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not initialised")
	}

	reader := bufio.NewReader(os.Stdin)

	cmd.Printf("%s\n\n", titleStyle.Render("IntelliDoc AI Setup"))

	cmd.Println("Select AI Provider")
	providers := domain.AllAIProviders()
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(providers), 1)
	provider := providers[idx-1]

	defaults := domain.DefaultLLMModels()
	defaultModel := defaults[provider]
	cmd.Printf("Enter model name [%s]: ", defaultModel)
	model := readLine(reader)
	if model == "" {
		model = defaultModel
	}

	var apiKey string
	if provider.RequiresAPIKey() {
		cmd.Print("Enter API key: ")
		apiKey = readPassword()
		cmd.Println()
		if apiKey == "" {
			return errors.New("API key is required for this provider")
		}
	}

	settings := &domain.LLMSettings{
		Provider: provider,
		Model:    model,
		APIKey:   apiKey,
	}

	if err := configStore.SetLLMSettings(settings); err != nil {
		return fmt.Errorf("save configuration: %w", err)
	}

	// Validate by pinging the configured service
	cmd.Print("Validating configuration... ")
	if err := ai.ValidateLLMConfig(settings); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	cmd.Println("OK")

	cmd.Printf("\n%s\n", successStyle.Render(
		fmt.Sprintf("AI provider configured: %s (%s)", provider.Description(), model)))
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
