package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		development bool
		wantErr     bool
	}{
		{name: "debug production", level: "debug"},
		{name: "info production", level: "info"},
		{name: "warn development", level: "warn", development: true},
		{name: "error development", level: "error", development: true},
		{name: "invalid level", level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.level, tt.development)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, logger)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger.SugaredLogger)
			require.Equal(t, tt.level, logger.GetLevel())
		})
	}
}

func TestLogger_SetLevel(t *testing.T) {
	logger, err := NewLogger("info", false)
	require.NoError(t, err)

	require.NoError(t, logger.SetLevel("debug"))
	require.Equal(t, "debug", logger.GetLevel())
	require.True(t, logger.atomicLevel.Enabled(zapcore.DebugLevel))

	require.Error(t, logger.SetLevel("loud"))
	require.Equal(t, "debug", logger.GetLevel())
}

func TestLogger_WithComponentSharesLevel(t *testing.T) {
	base, err := NewLogger("warn", false)
	require.NoError(t, err)
	require.Equal(t, "", base.GetComponent())

	resolver := base.WithComponent("sync-resolver")
	coordinator := base.WithComponent("coordinator")
	require.Equal(t, "sync-resolver", resolver.GetComponent())
	require.Equal(t, "coordinator", coordinator.GetComponent())
	require.False(t, resolver.atomicLevel.Enabled(zapcore.InfoLevel))

	require.NoError(t, base.SetLevel("debug"))
	require.Equal(t, "debug", resolver.GetLevel())
	require.Equal(t, "debug", coordinator.GetLevel())
}

func TestNewComponentLogger(t *testing.T) {
	logger := NewComponentLogger("head-probe", "error", true)
	require.Equal(t, "head-probe", logger.GetComponent())
	require.Equal(t, "error", logger.GetLevel())

	require.Panics(t, func() {
		_ = NewComponentLogger("head-probe", "invalid", false)
	})
}

type stubLoggingConfig struct {
	defaultLevel    string
	componentLevels map[string]string
}

func (s *stubLoggingConfig) GetComponentLevel(component string) string {
	if level, ok := s.componentLevels[component]; ok {
		return level
	}
	return s.defaultLevel
}

func (s *stubLoggingConfig) GetDefaultLevel() string { return s.defaultLevel }

func (s *stubLoggingConfig) IsDevelopment() bool { return false }

func TestNewComponentLoggerFromConfig(t *testing.T) {
	tests := []struct {
		name          string
		component     string
		config        LoggingConfig
		expectedLevel string
	}{
		{
			name:      "component override",
			component: "coordinator",
			config: &stubLoggingConfig{
				defaultLevel:    "info",
				componentLevels: map[string]string{"coordinator": "debug"},
			},
			expectedLevel: "debug",
		},
		{
			name:          "falls back to default level",
			component:     "sink",
			config:        &stubLoggingConfig{defaultLevel: "warn"},
			expectedLevel: "warn",
		},
		{
			name:          "nil config",
			component:     "api",
			config:        nil,
			expectedLevel: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewComponentLoggerFromConfig(tt.component, tt.config)
			require.Equal(t, tt.component, logger.GetComponent())
			require.Equal(t, tt.expectedLevel, logger.GetLevel())
		})
	}
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	require.NotNil(t, logger.SugaredLogger)

	logger.Debug("discarded")
	logger.Infow("discarded", "height", 1)
	require.NoError(t, logger.SetLevel("error"))
	require.Equal(t, "error", logger.GetLevel())
}
