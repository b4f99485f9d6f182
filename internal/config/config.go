// ABOUTME: Centralized configuration for the foldvec pipeline
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"
)

// Embedder backend names accepted by EmbedderBackend
const (
	EmbedderWord2Vec = "word2vec"
	EmbedderOpenAI   = "openai"
)

// Config holds all configuration for the pipeline
type Config struct {
	// Tokenizer / embedding settings
	K            int   // k-mer length
	Window       int   // skip-gram window radius
	Dim          int   // embedding dimensionality
	MinTokenFreq int   // tokens rarer than this are dropped from the vocabulary
	Epochs       int   // training passes over the corpus
	Seed         int64 // RNG seed for reproducible training

	// Learning rate for the embedding trainer
	LearningRate float64

	// Fold classification thresholds
	MinThreshold float64
	MaxThreshold float64

	// Pipeline settings
	Workers int

	// Embedder backend: word2vec (local training) or openai (remote)
	EmbedderBackend string

	// OpenAI settings (remote backend only)
	OpenAIKey      string
	EmbeddingModel string
	RemoteDim      int
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Storage settings
	DBPath string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		K:               getEnvInt("FOLDVEC_K", 2),
		Window:          getEnvInt("FOLDVEC_WINDOW", 25),
		Dim:             getEnvInt("FOLDVEC_DIM", 50),
		MinTokenFreq:    getEnvInt("FOLDVEC_MIN_TOKEN_FREQ", 1),
		Epochs:          getEnvInt("FOLDVEC_EPOCHS", 5),
		Seed:            int64(getEnvInt("FOLDVEC_SEED", 11)),
		LearningRate:    getEnvFloat("FOLDVEC_LEARNING_RATE", 0.025),
		MinThreshold:    getEnvFloat("FOLDVEC_MIN_THRESHOLD", 0.05),
		MaxThreshold:    getEnvFloat("FOLDVEC_MAX_THRESHOLD", 0.15),
		Workers:         getEnvInt("FOLDVEC_WORKERS", runtime.NumCPU()),
		EmbedderBackend: getEnv("FOLDVEC_EMBEDDER", EmbedderWord2Vec),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		EmbeddingModel:  getEnv("FOLDVEC_EMBEDDING_MODEL", "text-embedding-3-small"),
		RemoteDim:       getEnvInt("FOLDVEC_REMOTE_DIM", 1536),
		Timeout:         getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:      getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:      getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		DBPath:          getEnv("FOLDVEC_DB", ""),
	}

	return cfg, cfg.Validate()
}

// Validate rejects unusable parameters before any processing starts
func (c *Config) Validate() error {
	if c.K <= 0 {
		return fmt.Errorf("FOLDVEC_K must be positive, got %d", c.K)
	}
	if c.Dim <= 0 {
		return fmt.Errorf("FOLDVEC_DIM must be positive, got %d", c.Dim)
	}
	if c.Window < 0 {
		return fmt.Errorf("FOLDVEC_WINDOW must be non-negative, got %d", c.Window)
	}
	if c.MinTokenFreq < 0 {
		return fmt.Errorf("FOLDVEC_MIN_TOKEN_FREQ must be non-negative, got %d", c.MinTokenFreq)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("FOLDVEC_EPOCHS must be positive, got %d", c.Epochs)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("FOLDVEC_LEARNING_RATE must be positive, got %g", c.LearningRate)
	}
	if c.MinThreshold < 0 || c.MinThreshold > 1 {
		return fmt.Errorf("FOLDVEC_MIN_THRESHOLD must be 0-1, got %g", c.MinThreshold)
	}
	if c.MaxThreshold < 0 || c.MaxThreshold > 1 {
		return fmt.Errorf("FOLDVEC_MAX_THRESHOLD must be 0-1, got %g", c.MaxThreshold)
	}
	if c.MinThreshold >= c.MaxThreshold {
		return fmt.Errorf("FOLDVEC_MIN_THRESHOLD (%g) must be below FOLDVEC_MAX_THRESHOLD (%g)",
			c.MinThreshold, c.MaxThreshold)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("FOLDVEC_WORKERS must be positive, got %d", c.Workers)
	}
	switch c.EmbedderBackend {
	case EmbedderWord2Vec, EmbedderOpenAI:
	default:
		return fmt.Errorf("FOLDVEC_EMBEDDER must be %q or %q, got %q",
			EmbedderWord2Vec, EmbedderOpenAI, c.EmbedderBackend)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
