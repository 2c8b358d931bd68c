package domain

const unknownDescription = "Unknown"

// SummaryLength selects how detailed a generated summary should be.
// Each length carries its own chunking bound so larger targets get
// smaller sections and more passes over the document.
type SummaryLength string

// Available summary lengths.
const (
	// SummaryShort is a brief 2-3 sentence overview.
	SummaryShort SummaryLength = "short"

	// SummaryMedium is a concise one-paragraph summary.
	SummaryMedium SummaryLength = "medium"

	// SummaryLong is a detailed multi-paragraph summary.
	SummaryLong SummaryLength = "long"
)

// IsValid returns true if the summary length is recognised.
func (l SummaryLength) IsValid() bool {
	switch l {
	case SummaryShort, SummaryMedium, SummaryLong:
		return true
	default:
		return false
	}
}

// MaxChunkWords returns the chunking bound used when summarising at
// this length.
func (l SummaryLength) MaxChunkWords() int {
	switch l {
	case SummaryShort:
		return 1500
	case SummaryLong:
		return 1000
	default:
		return 1200
	}
}

// Instruction returns the per-section summarisation instruction.
func (l SummaryLength) Instruction() string {
	switch l {
	case SummaryShort:
		return "Write a brief 2-3 sentence summary"
	case SummaryLong:
		return "Write a detailed 2-3 paragraph summary"
	default:
		return "Write a concise paragraph summary"
	}
}

// CombineInstruction returns the instruction used to merge per-section
// summaries into the final summary.
func (l SummaryLength) CombineInstruction() string {
	switch l {
	case SummaryShort:
		return "Combine these section summaries into a brief 2-3 sentence overview"
	case SummaryLong:
		return "Combine these section summaries into a detailed 3-4 paragraph summary covering all key points"
	default:
		return "Combine these section summaries into a comprehensive 1-2 paragraph summary"
	}
}

// String returns the string representation.
func (l SummaryLength) String() string {
	return string(l)
}

// Description returns a human-readable description of the length.
func (l SummaryLength) Description() string {
	switch l {
	case SummaryShort:
		return "Short (2-3 sentences)"
	case SummaryMedium:
		return "Medium (one paragraph)"
	case SummaryLong:
		return "Long (2-3 paragraphs)"
	default:
		return unknownDescription
	}
}

// AIProvider identifies an AI service provider for text generation.
type AIProvider string

// Available AI providers.
const (
	// AIProviderGemini is the Google Generative Language cloud API.
	AIProviderGemini AIProvider = "gemini"

	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderGemini, AIProviderOllama, AIProviderOpenAI:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderGemini:
		return "Google Gemini (cloud)"
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	default:
		return unknownDescription
	}
}

// RequiresAPIKey returns true if the provider authenticates requests
// with an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderGemini || p == AIProviderOpenAI
}

// IsLocal returns true if the provider runs on the local machine.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// AllAIProviders returns all supported providers in display order.
func AllAIProviders() []AIProvider {
	return []AIProvider{AIProviderGemini, AIProviderOllama, AIProviderOpenAI}
}

// DefaultLLMModels returns the default model per provider.
func DefaultLLMModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderGemini: "gemini-2.5-flash",
		AIProviderOllama: "mistral",
		AIProviderOpenAI: "gpt-4o-mini",
	}
}

// LLMSettings configures the text generation provider.
type LLMSettings struct {
	// Provider selects the AI service.
	Provider AIProvider

	// Model is the provider-specific model name. Empty uses the
	// adapter default.
	Model string

	// APIKey authenticates cloud providers. Ignored by Ollama.
	APIKey string

	// BaseURL overrides the provider endpoint (local proxies,
	// compatible APIs).
	BaseURL string
}

// IsConfigured returns true if the settings name a valid provider with
// the credentials it needs.
func (s *LLMSettings) IsConfigured() bool {
	if s == nil || !s.Provider.IsValid() {
		return false
	}
	if s.Provider == AIProviderOllama {
		return true
	}
	return s.APIKey != ""
}
