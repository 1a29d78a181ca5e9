package config

import "os"

// OpenAIModels defines which models to use for different tasks
type OpenAIModels struct {
	// Classify is for per-round gap classification (needs to be fast)
	Classify string `json:"classify" yaml:"classify"`

	// Question is for follow-up question generation
	Question string `json:"question" yaml:"question"`

	// Report is for final advice report generation (quality over speed)
	Report string `json:"report" yaml:"report"`

	// Explain is for weaving term definitions into advice texts
	Explain string `json:"explain" yaml:"explain"`
}

// AIConfig holds all AI-related configuration
type AIConfig struct {
	APIKey      string       `json:"-" yaml:"-"` // Never serialize
	BaseURL     string       `json:"baseUrl" yaml:"baseUrl"`
	Models      OpenAIModels `json:"models" yaml:"models"`
	Temperature float32      `json:"temperature" yaml:"temperature"`
	TimeoutMS   int          `json:"timeoutMs" yaml:"timeoutMs"`
}

// DefaultAIConfig returns the default AI configuration
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		Models: OpenAIModels{
			// Fast model for the per-round classification loop
			Classify: getEnvOrDefault("OPENAI_MODEL_CLASSIFY", "gpt-4o-mini"),

			// Quality models for question wording and the final report
			Question: getEnvOrDefault("OPENAI_MODEL_QUESTION", "gpt-4o"),
			Report:   getEnvOrDefault("OPENAI_MODEL_REPORT", "gpt-4o"),
			Explain:  getEnvOrDefault("OPENAI_MODEL_EXPLAIN", "gpt-4o-mini"),
		},
		Temperature: 0.3,
		TimeoutMS:   15000, // 15 second default timeout
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
