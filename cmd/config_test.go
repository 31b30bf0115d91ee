package cmd

import (
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "suitegen", configBaseName)
	assert.Equal(t, "suitegen.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "parallel", parallelFlagName)
	assert.Equal(t, "generate.sub_suites", subSuitesConfigKey)
	assert.Equal(t, "generate.misc", miscConfigKey)
	assert.Equal(t, "generated_resmoke_config", defaultOutputDir)
	assert.Equal(t, "SUITEGEN", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.True(t, viper.GetBool(miscConfigKey))
	assert.Equal(t, defaultLogFilename, viper.GetString(logFilenameKey))
	assert.Equal(t, defaultLogMaxBackups, viper.GetInt(logMaxBackupsKey))
}

func TestConfigEnvOverride(t *testing.T) {
	t.Setenv("SUITEGEN_GENERATE_MISC", "false")
	t.Setenv("SUITEGEN_LOG_LEVEL", "debug")

	assert.False(t, viper.GetBool(miscConfigKey))
	assert.Equal(t, "debug", viper.GetString(logLevelKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}
