// Package config loads application configuration from environment
// variables with sensible defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/text/language"
)

// Config holds all application configuration.
//
// Environment Variables:
// LLM Configuration:
// - GOOGLE_API_KEY: API key for the Gemini API (required)
// - GEMINI_MODEL: Model name to use (default: gemini-2.5-flash)
//
// Storage Configuration:
// - PIZZA_DB_FILE: Pizza database file (default: ./pizza_db.json)
// - CHAT_HISTORY_FILE: Chat transcript file (default: ./chat_history.json)
// - HISTORY_SAVE_INTERVAL: Periodic history flush interval in seconds (default: 10)
//
// Agent Configuration:
// - AGENT_REPLY_LANGUAGE: BCP-47 fallback reply language (default: tr)
type Config struct {
	LLM     LLMConfig     `json:"llm"`
	Storage StorageConfig `json:"storage"`
	Agent   AgentConfig   `json:"agent"`
}

// LLMConfig holds the configuration for the Gemini client.
type LLMConfig struct {
	APIKey string `json:"api_key"`
	Model  string `json:"model"`
}

// StorageConfig holds the backing file paths and the periodic flush
// cadence.
type StorageConfig struct {
	PizzaDBFile         string        `json:"pizza_db_file"`
	ChatHistoryFile     string        `json:"chat_history_file"`
	HistorySaveInterval time.Duration `json:"history_save_interval"`
}

// AgentConfig holds the conversation-level settings.
type AgentConfig struct {
	// ReplyLanguage is the language the assistant falls back to when
	// the user's input language cannot be detected reliably.
	ReplyLanguage language.Tag `json:"reply_language"`
}

// Option is a function type for configuring Config.
type Option func(*Config)

// NewFromEnv creates a new Config instance with values from
// environment variables and options.
func NewFromEnv(opts ...Option) (*Config, error) {
	replyLanguage, err := parseLanguage(getEnvString("AGENT_REPLY_LANGUAGE", "tr"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		LLM: LLMConfig{
			APIKey: getEnvString("GOOGLE_API_KEY", ""),
			Model:  getEnvString("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Storage: StorageConfig{
			PizzaDBFile:         getEnvString("PIZZA_DB_FILE", "./pizza_db.json"),
			ChatHistoryFile:     getEnvString("CHAT_HISTORY_FILE", "./chat_history.json"),
			HistorySaveInterval: time.Duration(getEnvInt("HISTORY_SAVE_INTERVAL", 10)) * time.Second,
		},
		Agent: AgentConfig{
			ReplyLanguage: replyLanguage,
		},
	}

	for _, opt := range opts {
		opt(config)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate checks if all required configuration is properly set.
func (c *Config) validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY is required")
	}
	if c.Storage.HistorySaveInterval <= 0 {
		return fmt.Errorf("HISTORY_SAVE_INTERVAL must be positive")
	}
	return nil
}

func parseLanguage(value string) (language.Tag, error) {
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, fmt.Errorf("AGENT_REPLY_LANGUAGE %q: %w", value, err)
	}
	return tag, nil
}

// getEnvString gets a string value from environment variables with
// default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment variables with
// default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
