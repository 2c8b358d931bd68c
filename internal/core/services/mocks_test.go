package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/intellidoc-labs/intellidoc/internal/core/ports/driven"
)

// mockLLM implements driven.LLMService for testing. It records every
// prompt and summarise instruction it receives.
type mockLLM struct {
	mu sync.Mutex

	generateResponse string
	generateErr      error
	prompts          []string
	generateOpts     []driven.GenerateOptions

	summariseErr  error
	summariseFunc func(content, instruction string) string
	instructions  []string
	contents      []string
}

func (m *mockLLM) Generate(_ context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	m.generateOpts = append(m.generateOpts, opts)
	if m.generateErr != nil {
		return "", m.generateErr
	}
	return m.generateResponse, nil
}

func (m *mockLLM) Chat(_ context.Context, _ []driven.ChatMessage, _ driven.ChatOptions) (string, error) {
	return "", nil
}

func (m *mockLLM) Summarise(_ context.Context, content string, instruction string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contents = append(m.contents, content)
	m.instructions = append(m.instructions, instruction)
	if m.summariseErr != nil {
		return "", m.summariseErr
	}
	if m.summariseFunc != nil {
		return m.summariseFunc(content, instruction), nil
	}
	return fmt.Sprintf("summary %d", len(m.contents)), nil
}

func (m *mockLLM) ModelName() string { return "mock-model" }

func (m *mockLLM) Ping(_ context.Context) error { return nil }

func (m *mockLLM) Close() error { return nil }

// callCount returns how many summarise calls were made.
func (m *mockLLM) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.contents)
}
