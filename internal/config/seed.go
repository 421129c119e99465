// Package config holds application configuration loaded from the
// environment and optional YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	pkgconfig "newsdesk/pkg/config"
)

// SeedItem is one category or department in the seed catalog.
type SeedItem struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
}

// SeedConfig describes the fixed state present before any user action:
// one admin account, the category catalog and the department catalog.
type SeedConfig struct {
	AdminEmail    string     `yaml:"admin_email"`
	AdminPassword string     `yaml:"admin_password"`
	AdminName     string     `yaml:"admin_name"`
	Categories    []SeedItem `yaml:"categories"`
	Departments   []SeedItem `yaml:"departments"`
}

// DefaultSeedConfig returns the built-in seed catalog.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		AdminEmail:    "admin@newsdesk.local",
		AdminPassword: "admin123",
		AdminName:     "System Administrator",
		Categories: []SeedItem{
			{Name: "Politics", Slug: "politics"},
			{Name: "Business", Slug: "business"},
			{Name: "Technology", Slug: "technology"},
			{Name: "Sports", Slug: "sports"},
			{Name: "World", Slug: "world"},
			{Name: "Entertainment", Slug: "entertainment"},
		},
		Departments: []SeedItem{
			{Name: "Newsdesk Verify", Slug: "newsdesk-verify"},
			{Name: "Newsdesk Declassify", Slug: "newsdesk-declassify"},
			{Name: "Newsdesk Investigative", Slug: "newsdesk-investigative"},
			{Name: "Newsdesk International", Slug: "newsdesk-international"},
		},
	}
}

// LoadSeedConfig builds the seed configuration. Admin credentials come
// from DEFAULT_ADMIN_EMAIL / DEFAULT_ADMIN_PASSWORD / DEFAULT_ADMIN_NAME
// with fixed fallbacks. When SEED_FILE points at a YAML file, its
// catalog entries override the built-in ones.
func LoadSeedConfig() (SeedConfig, error) {
	cfg := DefaultSeedConfig()

	if path := os.Getenv("SEED_FILE"); path != "" {
		fileCfg, err := loadSeedFile(path)
		if err != nil {
			return SeedConfig{}, err
		}
		if len(fileCfg.Categories) > 0 {
			cfg.Categories = fileCfg.Categories
		}
		if len(fileCfg.Departments) > 0 {
			cfg.Departments = fileCfg.Departments
		}
		if fileCfg.AdminEmail != "" {
			cfg.AdminEmail = fileCfg.AdminEmail
		}
		if fileCfg.AdminPassword != "" {
			cfg.AdminPassword = fileCfg.AdminPassword
		}
		if fileCfg.AdminName != "" {
			cfg.AdminName = fileCfg.AdminName
		}
	}

	cfg.AdminEmail = pkgconfig.GetEnvString("DEFAULT_ADMIN_EMAIL", cfg.AdminEmail)
	cfg.AdminPassword = pkgconfig.GetEnvString("DEFAULT_ADMIN_PASSWORD", cfg.AdminPassword)
	cfg.AdminName = pkgconfig.GetEnvString("DEFAULT_ADMIN_NAME", cfg.AdminName)

	if err := validateSeedConfig(cfg); err != nil {
		return SeedConfig{}, fmt.Errorf("seed config validation failed: %w", err)
	}
	return cfg, nil
}

// loadSeedFile loads a seed catalog from a YAML file.
// The path comes from a trusted source (environment), not user input.
func loadSeedFile(path string) (SeedConfig, error) {
	// #nosec G304 -- path is provided by the operator via SEED_FILE
	data, err := os.ReadFile(path)
	if err != nil {
		return SeedConfig{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var cfg SeedConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SeedConfig{}, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return cfg, nil
}

func validateSeedConfig(cfg SeedConfig) error {
	if cfg.AdminEmail == "" {
		return fmt.Errorf("admin email is required")
	}
	if cfg.AdminPassword == "" {
		return fmt.Errorf("admin password is required")
	}
	for _, item := range append(append([]SeedItem{}, cfg.Categories...), cfg.Departments...) {
		if item.Name == "" || item.Slug == "" {
			return fmt.Errorf("seed item requires both name and slug")
		}
	}
	return nil
}
