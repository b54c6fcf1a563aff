package cmd

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "iacscan", configBaseName)
	assert.Equal(t, "iacscan.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "cache.dir", cacheDirKey)
	assert.Equal(t, "org.settings", orgSettingsKey)
	assert.Equal(t, ".iacscan-reports", defaultReportsDir)
	assert.Equal(t, "IACSCAN", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestDefaultCacheDir(t *testing.T) {
	assert.Equal(t, configBaseName, filepath.Base(defaultCacheDir()))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestLoadOrgSettings(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		settings, err := loadOrgSettings()
		require.NoError(t, err)
		assert.Equal(t, m.OrgSettings{}, settings)
	})

	t.Run("decodes config", func(t *testing.T) {
		viper.Set(orgSettingsKey, map[string]any{
			"org_name":          "acme",
			"versions":          map[string]any{"policy_engine": "2.0.0"},
			"ignore_settings":   map[string]any{"disregard_ignores": true},
			"custom_severities": map[string]any{"iac-1": "critical"},
		})
		t.Cleanup(func() { viper.Set(orgSettingsKey, nil) })

		settings, err := loadOrgSettings()
		require.NoError(t, err)
		assert.Equal(t, "acme", settings.OrgName)
		assert.Equal(t, "2.0.0", settings.Versions.PolicyEngine)
		assert.True(t, settings.IgnoreSettings.DisregardIgnores)
		assert.Equal(t, m.SeverityCritical, settings.CustomSeverities["iac-1"])
	})
}
