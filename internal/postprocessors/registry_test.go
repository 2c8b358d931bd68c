package postprocessors

import (
	"context"
	"testing"

	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
	"github.com/intellidoc-labs/intellidoc/internal/core/ports/driven"
	"github.com/intellidoc-labs/intellidoc/internal/postprocessors/chunker"
)

// registryMockProcessor is a simple mock for testing registry functionality.
type registryMockProcessor struct {
	name string
}

func (m *registryMockProcessor) Name() string { return m.name }
func (m *registryMockProcessor) Process(_ context.Context, _ *domain.Document, chunks []domain.Chunk) ([]domain.Chunk, error) {
	return chunks, nil
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}
	if len(r.builders) != 0 {
		t.Errorf("expected empty builders, got %d", len(r.builders))
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	builder := func(_ map[string]any) (driven.PostProcessor, error) {
		return &registryMockProcessor{name: "test"}, nil
	}

	r.Register("test", builder)

	if !r.Has("test") {
		t.Error("expected 'test' to be registered")
	}
}

func TestRegistry_Build_Unknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Build("missing", nil)
	if err == nil {
		t.Error("expected error for unknown processor")
	}
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	if !r.Has("chunker") {
		t.Fatal("expected 'chunker' to be registered")
	}

	proc, err := r.Build("chunker", map[string]any{
		"min_words": int64(5),
		"max_words": int64(20),
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if _, ok := proc.(*chunker.Processor); !ok {
		t.Errorf("expected *chunker.Processor, got %T", proc)
	}
	if proc.Name() != "chunker" {
		t.Errorf("expected name 'chunker', got %q", proc.Name())
	}
}

func TestGetIntFromConfig(t *testing.T) {
	cfg := map[string]any{
		"as_int":     7,
		"as_int64":   int64(8),
		"as_float64": 9.0,
		"as_string":  "10",
	}

	if got := getIntFromConfig(cfg, "as_int"); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	if got := getIntFromConfig(cfg, "as_int64"); got != 8 {
		t.Errorf("expected 8, got %d", got)
	}
	if got := getIntFromConfig(cfg, "as_float64"); got != 9 {
		t.Errorf("expected 9, got %d", got)
	}
	if got := getIntFromConfig(cfg, "as_string"); got != 0 {
		t.Errorf("expected 0 for non-numeric value, got %d", got)
	}
	if got := getIntFromConfig(cfg, "missing"); got != 0 {
		t.Errorf("expected 0 for missing key, got %d", got)
	}
}
