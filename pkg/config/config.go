package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// EmbeddingProvider defines the backend embedding service type
type EmbeddingProvider string

const (
	EmbeddingNone   EmbeddingProvider = "none"   // No embeddings, lexical scanners only
	EmbeddingRemote EmbeddingProvider = "remote" // OpenAI-compatible HTTP embeddings endpoint
	EmbeddingLocal  EmbeddingProvider = "local"  // Local ONNX model via hugot
)

// Config holds global settings for the moderation engine.
// All settings can be configured via environment variables or programmatically.
type Config struct {
	// === Verdict Thresholds (0.0 - 1.0) ===
	BlockThreshold  float64 // Risk score above this = BLOCK (default: 0.5)
	FlagThreshold   float64 // Risk score above this = FLAG (default: 0.2)
	MinBlockSignals int     // High-severity signals needed to force BLOCK (default: 1)

	// === Domain Relevance Thresholds ===
	FinancePassThreshold float64 // Relevance below this adds low_finance_relevance flag (default: 0.15)
	FinanceFlagThreshold float64 // Relevance below this = off-topic BLOCK (default: 0.05)

	// === Signal Weights ===
	ScamWeight     float64 // Rule scanner contribution to fused risk (default: 0.7)
	ToxicityWeight float64 // Toxicity scanner contribution to fused risk (default: 0.7)
	FuzzyWeight    float64 // Fuzzy matcher contribution, maxed not summed (default: 0.4)
	SemanticWeight float64 // Semantic matcher contribution, maxed not summed (default: 0.6)

	// === Context Reductions ===
	// Empirically tuned; preserved as configuration rather than code constants.
	ContextReductions map[string]float64

	// === Risk Amplifiers ===
	// Carried as tuning data for downstream consumers; the decision
	// engine does not apply them to the fused risk score.
	RiskAmplifiers map[string]float64

	// === Fuzzy Matching ===
	FuzzyThreshold float64 // Edit similarity 0-1, scaled to 0-100 internally (default: 0.80)
	EnableFuzzy    bool

	// === Semantic Matching ===
	SemanticThreshold float64 // Cosine similarity threshold (default: 0.72)
	EnableSemantic    bool

	// === Content Analyzer ===
	EnableAnalyzer bool // Multi-dimensional quality scoring over the domain gate

	// === Embedding Service ===
	Embeddings    EmbeddingProvider
	EmbedBaseURL  string // Endpoint for remote provider (OpenAI-compatible /embeddings)
	EmbedModel    string // Model identifier for remote provider
	EmbedAPIKey   string
	EmbedModelDir string // Local ONNX model directory for the local provider

	// === Seed Data ===
	DataDir string // Directory holding optional YAML seed files (empty = built-in banks only)

	// === Serving ===
	Port             string
	BatchConcurrency int    // Concurrent evaluations per batch request (default: 8)
	CacheURL         string // Redis URL for verdict caching (empty = disabled)
	CacheTTLSeconds  int
	AuditDSN         string // Postgres DSN for the audit trail (empty = disabled)
}

// NewDefaultConfig creates a Config with the production-tuned defaults.
// All settings can be overridden via environment variables.
func NewDefaultConfig() *Config {
	cfg := &Config{
		BlockThreshold:  GetEnvFloat("MODERATOR_BLOCK_THRESHOLD", 0.5),
		FlagThreshold:   GetEnvFloat("MODERATOR_FLAG_THRESHOLD", 0.2),
		MinBlockSignals: GetEnvInt("MODERATOR_MIN_BLOCK_SIGNALS", 1),

		FinancePassThreshold: GetEnvFloat("MODERATOR_FINANCE_PASS_THRESHOLD", 0.15),
		FinanceFlagThreshold: GetEnvFloat("MODERATOR_FINANCE_FLAG_THRESHOLD", 0.05),

		ScamWeight:     GetEnvFloat("MODERATOR_SCAM_WEIGHT", 0.7),
		ToxicityWeight: GetEnvFloat("MODERATOR_TOXICITY_WEIGHT", 0.7),
		FuzzyWeight:    GetEnvFloat("MODERATOR_FUZZY_WEIGHT", 0.4),
		SemanticWeight: GetEnvFloat("MODERATOR_SEMANTIC_WEIGHT", 0.6),

		ContextReductions: map[string]float64{
			"strong":     0.9,
			"medium":     0.7,
			"opinion":    0.4,
			"question":   0.3,
			"past_tense": 0.3,
		},
		RiskAmplifiers: map[string]float64{
			"money_request":                0.4,
			"external_redirect_with_claim": 0.3,
			"multiple_scam_keywords":       0.2,
		},

		// 80% keeps common phrases from fuzzy-matching into the corpus
		FuzzyThreshold: GetEnvFloat("MODERATOR_FUZZY_THRESHOLD", 0.80),
		EnableFuzzy:    GetEnvBool("MODERATOR_ENABLE_FUZZY", true),

		SemanticThreshold: GetEnvFloat("MODERATOR_SEMANTIC_THRESHOLD", 0.72),
		EnableSemantic:    GetEnvBool("MODERATOR_ENABLE_SEMANTIC", true),

		EnableAnalyzer: GetEnvBool("MODERATOR_ENABLE_ANALYZER", true),

		Embeddings:    detectEmbeddingProvider(),
		EmbedBaseURL:  GetEnv("MODERATOR_EMBED_URL", "http://localhost:11434/v1"),
		EmbedModel:    GetEnv("MODERATOR_EMBED_MODEL", "nomic-embed-text"),
		EmbedAPIKey:   GetEnv("MODERATOR_EMBED_API_KEY", os.Getenv("OPENAI_API_KEY")),
		EmbedModelDir: GetEnv("MODERATOR_EMBED_MODEL_DIR", "./models/embedder"),

		DataDir: GetEnv("MODERATOR_DATA_DIR", ""),

		Port:             GetEnv("MODERATOR_PORT", "8090"),
		BatchConcurrency: clampInt(GetEnvInt("MODERATOR_BATCH_CONCURRENCY", 8), 1, 256),
		CacheURL:         GetEnv("MODERATOR_CACHE_URL", ""),
		CacheTTLSeconds:  GetEnvInt("MODERATOR_CACHE_TTL_SECONDS", 300),
		AuditDSN:         GetEnv("MODERATOR_AUDIT_DSN", ""),
	}

	return cfg
}

// NewLightweightConfig creates a Config for small deployments.
// Disables fuzzy matching, semantic matching and the content analyzer;
// rule, domain and toxicity scanning still provide the bulk of detection.
func NewLightweightConfig() *Config {
	cfg := NewDefaultConfig()
	cfg.EnableFuzzy = false
	cfg.EnableSemantic = false
	cfg.EnableAnalyzer = false
	cfg.Embeddings = EmbeddingNone
	return cfg
}

// NewStrictConfig creates a Config that blocks more aggressively
// (expect more false positives).
func NewStrictConfig() *Config {
	cfg := NewDefaultConfig()
	cfg.BlockThreshold = 0.40
	cfg.FlagThreshold = 0.15
	cfg.FinanceFlagThreshold = 0.10
	return cfg
}

func detectEmbeddingProvider() EmbeddingProvider {
	if p := os.Getenv("MODERATOR_EMBEDDINGS"); p != "" {
		return EmbeddingProvider(p)
	}
	// Auto-detect: local model dir wins, then a configured remote endpoint
	if dir := os.Getenv("MODERATOR_EMBED_MODEL_DIR"); dir != "" {
		if _, err := os.Stat(dir); err == nil {
			return EmbeddingLocal
		}
	}
	if os.Getenv("MODERATOR_EMBED_URL") != "" || os.Getenv("OPENAI_API_KEY") != "" {
		return EmbeddingRemote
	}
	return EmbeddingNone
}

// clampInt ensures a value is within bounds
func clampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Helper functions for environment variable parsing
// These are exported for use by other packages

// GetEnv returns the value of an environment variable or a default value.
func GetEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// GetEnvBool returns the boolean value of an environment variable or a default value.
func GetEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

// GetEnvFloat returns the float64 value of an environment variable or a default value.
func GetEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return defaultValue
}

// GetEnvInt returns the integer value of an environment variable or a default value.
func GetEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return defaultValue
}

// GetEnvSlice returns a comma-separated list from an environment variable or a default value.
func GetEnvSlice(key string, defaultValue []string) []string {
	if v := os.Getenv(key); v != "" {
		var parts []string
		for _, p := range strings.Split(v, ",") {
			trimmed := strings.TrimSpace(p)
			if trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
		if len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	var problems []string

	inUnit := func(name string, v float64) {
		if v < 0 || v > 1 {
			problems = append(problems, fmt.Sprintf("%s must be in [0,1], got %g", name, v))
		}
	}
	inUnit("block threshold", c.BlockThreshold)
	inUnit("flag threshold", c.FlagThreshold)
	inUnit("finance pass threshold", c.FinancePassThreshold)
	inUnit("finance flag threshold", c.FinanceFlagThreshold)
	inUnit("fuzzy threshold", c.FuzzyThreshold)
	inUnit("semantic threshold", c.SemanticThreshold)

	if c.FlagThreshold > c.BlockThreshold {
		problems = append(problems, "flag threshold must not exceed block threshold")
	}
	if c.FinanceFlagThreshold > c.FinancePassThreshold {
		problems = append(problems, "finance flag threshold must not exceed finance pass threshold")
	}
	if c.MinBlockSignals < 1 {
		problems = append(problems, "min block signals must be at least 1")
	}
	if c.ScamWeight < 0 || c.ToxicityWeight < 0 || c.FuzzyWeight < 0 || c.SemanticWeight < 0 {
		problems = append(problems, "signal weights must be non-negative")
	}
	if c.Embeddings == EmbeddingRemote && c.EmbedBaseURL == "" {
		problems = append(problems, "remote embeddings require MODERATOR_EMBED_URL")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// MustValidate calls Validate and fatally exits if validation fails.
// Call this at startup before serving traffic.
func (c *Config) MustValidate() {
	if err := c.Validate(); err != nil {
		log.Fatalf("[STARTUP] FATAL: Configuration validation failed: %v", err)
	}
	log.Println("[STARTUP] Configuration validated successfully")
}
