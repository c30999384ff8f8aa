/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/corpdata/registryd/pkg/layout"
)

// Config represents the registryd configuration.
type Config struct {
	DataDir      string   `yaml:"data_dir"`
	ChunkSize    int      `yaml:"chunk_size"`
	NameSuffixes []string `yaml:"name_suffixes"`
	Server       Server   `yaml:"server"`
	Record       Record   `yaml:"record"`
}

// Server contains the lookup service bind settings.
type Server struct {
	Bind string `yaml:"bind"`
	Port int    `yaml:"port"`
}

// Record describes the fixed-width record geometry. Widths are
// configuration, not hard-coded constants: a registry may revise its
// extract format without a rebuild.
type Record struct {
	TotalWidth    int          `yaml:"total_width"`
	MaxOfficers   int          `yaml:"max_officers"`
	HeadFields    []FieldWidth `yaml:"head_fields"`
	OfficerFields []FieldWidth `yaml:"officer_fields"`
}

// FieldWidth is one named column width.
type FieldWidth struct {
	Name  string `yaml:"name"`
	Width int    `yaml:"width"`
}

// DefaultSuffixes is the ordered corporate-suffix strip list. Longer, more
// specific tokens come first so a shorter token never clips a longer match.
func DefaultSuffixes() []string {
	return []string{
		", INC.",
		", INC",
		" INC.",
		" INC",
		", L.L.C.",
		", LLC",
		" LLC",
		", LTD.",
		", LTD",
		" LTD.",
		" LTD",
		", CORP.",
		", CORP",
		" CORP.",
		" CORP",
		", CO.",
		" CO.",
	}
}

// DefaultConfig returns a default configuration with the quarterly extract
// geometry.
func DefaultConfig() *Config {
	return &Config{
		DataDir:      "./data",
		ChunkSize:    100,
		NameSuffixes: DefaultSuffixes(),
		Server: Server{
			Bind: "127.0.0.1",
			Port: 8080,
		},
		Record: Record{
			TotalWidth:    layout.DefaultTotalWidth,
			MaxOfficers:   layout.DefaultMaxOfficers,
			HeadFields:    toFieldWidths(layout.DefaultHeadFields()),
			OfficerFields: toFieldWidths(layout.DefaultOfficerFields()),
		},
	}
}

// Layout builds the record layout declared by the configuration.
func (c *Config) Layout() (*layout.Layout, error) {
	return layout.New(
		toLayoutFields(c.Record.HeadFields),
		toLayoutFields(c.Record.OfficerFields),
		c.Record.MaxOfficers,
		c.Record.TotalWidth,
	)
}

// LoadConfig loads configuration from the specified path.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified path.
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ConfigExists checks if a configuration file exists.
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}

func toFieldWidths(fields []layout.Field) []FieldWidth {
	out := make([]FieldWidth, len(fields))
	for i, f := range fields {
		out[i] = FieldWidth{Name: f.Name, Width: f.Width}
	}
	return out
}

func toLayoutFields(fields []FieldWidth) []layout.Field {
	out := make([]layout.Field, len(fields))
	for i, f := range fields {
		out[i] = layout.Field{Name: f.Name, Width: f.Width}
	}
	return out
}
