// ABOUTME: Tests for configuration loading and validation
// ABOUTME: Verifies defaults, env overrides and rejection of bad parameters

package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.K != 2 {
		t.Errorf("K = %d, want 2", cfg.K)
	}
	if cfg.Window != 25 {
		t.Errorf("Window = %d, want 25", cfg.Window)
	}
	if cfg.Dim != 50 {
		t.Errorf("Dim = %d, want 50", cfg.Dim)
	}
	if cfg.MinThreshold != 0.05 || cfg.MaxThreshold != 0.15 {
		t.Errorf("thresholds = %g/%g, want 0.05/0.15", cfg.MinThreshold, cfg.MaxThreshold)
	}
	if cfg.EmbedderBackend != EmbedderWord2Vec {
		t.Errorf("EmbedderBackend = %q, want word2vec", cfg.EmbedderBackend)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", cfg.Workers)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FOLDVEC_K", "3")
	t.Setenv("FOLDVEC_DIM", "100")
	t.Setenv("FOLDVEC_MIN_THRESHOLD", "0.1")
	t.Setenv("FOLDVEC_MAX_THRESHOLD", "0.3")
	t.Setenv("FOLDVEC_EMBEDDER", "openai")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.K != 3 {
		t.Errorf("K = %d, want 3", cfg.K)
	}
	if cfg.Dim != 100 {
		t.Errorf("Dim = %d, want 100", cfg.Dim)
	}
	if cfg.MinThreshold != 0.1 || cfg.MaxThreshold != 0.3 {
		t.Errorf("thresholds = %g/%g", cfg.MinThreshold, cfg.MaxThreshold)
	}
	if cfg.EmbedderBackend != EmbedderOpenAI {
		t.Errorf("EmbedderBackend = %q, want openai", cfg.EmbedderBackend)
	}
}

func TestValidate_Rejections(t *testing.T) {
	valid := func() *Config {
		return &Config{
			K: 2, Window: 25, Dim: 50, MinTokenFreq: 1, Epochs: 5,
			LearningRate: 0.025, MinThreshold: 0.05, MaxThreshold: 0.15,
			Workers: 2, EmbedderBackend: EmbedderWord2Vec,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"zero k", func(c *Config) { c.K = 0 }, "FOLDVEC_K"},
		{"negative k", func(c *Config) { c.K = -2 }, "FOLDVEC_K"},
		{"zero dim", func(c *Config) { c.Dim = 0 }, "FOLDVEC_DIM"},
		{"negative window", func(c *Config) { c.Window = -1 }, "FOLDVEC_WINDOW"},
		{"negative min freq", func(c *Config) { c.MinTokenFreq = -1 }, "FOLDVEC_MIN_TOKEN_FREQ"},
		{"zero epochs", func(c *Config) { c.Epochs = 0 }, "FOLDVEC_EPOCHS"},
		{"zero learning rate", func(c *Config) { c.LearningRate = 0 }, "FOLDVEC_LEARNING_RATE"},
		{"threshold above one", func(c *Config) { c.MaxThreshold = 1.5 }, "FOLDVEC_MAX_THRESHOLD"},
		{"negative threshold", func(c *Config) { c.MinThreshold = -0.1 }, "FOLDVEC_MIN_THRESHOLD"},
		{"min above max", func(c *Config) { c.MinThreshold = 0.2 }, "must be below"},
		{"zero workers", func(c *Config) { c.Workers = 0 }, "FOLDVEC_WORKERS"},
		{"unknown backend", func(c *Config) { c.EmbedderBackend = "tfidf" }, "FOLDVEC_EMBEDDER"},
		{"excessive retries", func(c *Config) { c.MaxRetries = 99 }, "OPENAI_MAX_RETRIES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}

	if err := valid().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestLoad_WindowZeroIsAllowed(t *testing.T) {
	t.Setenv("FOLDVEC_WINDOW", "0")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Window != 0 {
		t.Errorf("Window = %d, want 0", cfg.Window)
	}
}
