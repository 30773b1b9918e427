package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRead(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := Read("")
		assert.NoError(t, err)
		assert.NotNil(t, cfg)
		assert.Empty(t, cfg.AccountMapping)
		assert.Empty(t, cfg.MarkerPhrases)
	})

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Read(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.NoError(t, err)
		assert.NotNil(t, cfg)
		assert.Empty(t, cfg.AccountMapping)
	})

	t.Run("valid yaml", func(t *testing.T) {
		path := writeConfig(t, `
account_mapping:
  "922020049111111": Primary
  "50100212345678": Sports
marker_phrases:
  - OPENING BALANCE
  - STATEMENT SUMMARY
`)

		cfg, err := Read(path)
		assert.NoError(t, err)
		assert.Equal(t, map[string]string{
			"922020049111111": "Primary",
			"50100212345678":  "Sports",
		}, cfg.AccountMapping)
		assert.Equal(t, []string{"OPENING BALANCE", "STATEMENT SUMMARY"}, cfg.MarkerPhrases)
	})

	t.Run("partial yaml keeps defaults for the rest", func(t *testing.T) {
		path := writeConfig(t, `
marker_phrases:
  - TRANSACTION TOTAL
`)

		cfg, err := Read(path)
		assert.NoError(t, err)
		assert.NotNil(t, cfg.AccountMapping)
		assert.Empty(t, cfg.AccountMapping)
		assert.Equal(t, []string{"TRANSACTION TOTAL"}, cfg.MarkerPhrases)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "account_mapping: [not: a: mapping\n")

		cfg, err := Read(path)
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}
