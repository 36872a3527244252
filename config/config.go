// Package config provides configuration management for the pagesplit
// chunking engine. It handles loading, validation, and persistence of
// splitter settings with support for multiple sources:
//   - Configuration files (JSON)
//   - Environment variables
//   - Programmatic defaults
//
// Settings are resolved in the following order (highest to lowest
// precedence):
//  1. Environment variables
//  2. Configuration file
//  3. Default values
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds the tunable settings of the chunking engine.
type Config struct {
	// Sentence splitter settings
	MaxTokensPerSection int // Token budget per emitted chunk
	MaxSectionLength    int // Character length of the sliding section window
	SentenceSearchLimit int // Characters scanned past a boundary for a sentence ending
	OverlapPercent      int // Section overlap as a percentage of the section length

	// Simple splitter settings
	MaxObjectLength int // Fixed chunk width for structured content

	// Tokenizer settings
	Encoding string // tiktoken encoding name; empty selects the word counter

	// Logging
	LogLevel string // OFF, ERROR, WARN, INFO, or DEBUG
}

// LoadConfig loads configuration from multiple sources, combining them
// according to the precedence rules.
//
// Configuration file search paths:
//  1. $PAGESPLIT_CONFIG
//  2. ~/.pagesplit/config.json
//  3. ~/.config/pagesplit/config.json
//  4. ./pagesplit.json
//
// Environment variable overrides: PAGESPLIT_MAX_TOKENS,
// PAGESPLIT_MAX_SECTION_LENGTH, PAGESPLIT_SENTENCE_SEARCH_LIMIT,
// PAGESPLIT_OVERLAP_PERCENT, PAGESPLIT_MAX_OBJECT_LENGTH,
// PAGESPLIT_ENCODING, PAGESPLIT_LOG_LEVEL.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		MaxTokensPerSection: 500,
		MaxSectionLength:    1000,
		SentenceSearchLimit: 100,
		OverlapPercent:      10,
		MaxObjectLength:     1000,
		Encoding:            "",
		LogLevel:            "WARN",
	}

	configFile := os.Getenv("PAGESPLIT_CONFIG")
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			candidates := []string{
				filepath.Join(home, ".pagesplit", "config.json"),
				filepath.Join(home, ".config", "pagesplit", "config.json"),
				"pagesplit.json",
			}

			for _, candidate := range candidates {
				if _, err := os.Stat(candidate); err == nil {
					configFile = candidate
					break
				}
			}
		}
	}

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err == nil {
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", configFile, err)
			}
		}
	}

	for env, dst := range map[string]*int{
		"PAGESPLIT_MAX_TOKENS":            &cfg.MaxTokensPerSection,
		"PAGESPLIT_MAX_SECTION_LENGTH":    &cfg.MaxSectionLength,
		"PAGESPLIT_SENTENCE_SEARCH_LIMIT": &cfg.SentenceSearchLimit,
		"PAGESPLIT_OVERLAP_PERCENT":       &cfg.OverlapPercent,
		"PAGESPLIT_MAX_OBJECT_LENGTH":     &cfg.MaxObjectLength,
	} {
		if v := os.Getenv(env); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", env, err)
			}
			*dst = n
		}
	}
	if encoding := os.Getenv("PAGESPLIT_ENCODING"); encoding != "" {
		cfg.Encoding = encoding
	}
	if level := os.Getenv("PAGESPLIT_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}

// Save persists the configuration to a JSON file at the specified path,
// creating any necessary parent directories.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
