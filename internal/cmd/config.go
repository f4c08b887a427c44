package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds server-level settings. The game catalog (parts, materials,
// thresholds, round duration) lives in its own file, see internal/catalog.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	CatalogPath string `yaml:"catalog_path"`
}

func defaultConfig() *Config {
	var config Config
	config.Server.Port = getEnv("PORT", "8080")
	config.CatalogPath = getEnv("CATALOG_PATH", "")
	return &config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Environment variables win over file values.
	if port := os.Getenv("PORT"); port != "" {
		config.Server.Port = port
	}
	if path := os.Getenv("CATALOG_PATH"); path != "" {
		config.CatalogPath = path
	}
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}
	return &config, nil
}
