package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, 100, cfg.ChunkSize)
	assert.Equal(t, "127.0.0.1", cfg.Server.Bind)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 1440, cfg.Record.TotalWidth)
	assert.Equal(t, 5, cfg.Record.MaxOfficers)
	assert.NotEmpty(t, cfg.Record.HeadFields)
	assert.NotEmpty(t, cfg.Record.OfficerFields)

	// The strip list must hold both dotted and bare INC tokens, longer
	// tokens first, or lookups like "pelican bay foundation inc." would
	// miss "PELICAN BAY FOUNDATION INC".
	assert.Contains(t, cfg.NameSuffixes, " INC.")
	assert.Contains(t, cfg.NameSuffixes, " INC")
	assert.Contains(t, cfg.NameSuffixes, ", INC.")
	assert.Less(t,
		indexOf(cfg.NameSuffixes, ", INC."),
		indexOf(cfg.NameSuffixes, " INC"))
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}

func TestConfig_Layout(t *testing.T) {
	cfg := DefaultConfig()

	l, err := cfg.Layout()
	require.NoError(t, err)

	assert.Equal(t, 1440, l.TotalWidth())
	assert.Equal(t, 5, l.MaxOfficers())
	assert.Equal(t, 12, l.Width("document_number"))
	assert.Equal(t, 192, l.Width("name"))

	// Invalid geometry surfaces at construction, not at codec time.
	bad := DefaultConfig()
	bad.Record.TotalWidth = 100
	_, err = bad.Layout()
	assert.Error(t, err)
}

func TestSaveLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "registryd.yaml")

	original := DefaultConfig()
	original.DataDir = "/var/lib/registryd"
	original.ChunkSize = 250
	original.Server.Port = 9200

	require.NoError(t, SaveConfig(original, configPath))
	assert.True(t, ConfigExists(configPath))

	loaded, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, original.DataDir, loaded.DataDir)
	assert.Equal(t, original.ChunkSize, loaded.ChunkSize)
	assert.Equal(t, original.Server, loaded.Server)
	assert.Equal(t, original.NameSuffixes, loaded.NameSuffixes)
	assert.Equal(t, original.Record, loaded.Record)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_Malformed(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("data_dir: [unclosed"), 0600))

	_, err := LoadConfig(configPath)
	assert.Error(t, err)
}
