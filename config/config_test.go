package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	testCases := []struct {
		name     string
		env      map[string]string
		assertFn func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "defaults",
			assertFn: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "glucose-insights", cfg.App.Name)
				assert.Equal(t, 8050, cfg.App.Port)
				assert.Equal(t, "info", cfg.App.LogLevel)
				assert.Equal(t, "glucose_data.xlsx", cfg.Data.File)
				assert.Equal(t, "", cfg.Data.Sheet)
				assert.Equal(t, 1024, cfg.Chart.Width)
				assert.Equal(t, 480, cfg.Chart.Height)
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"APP_PORT":     "9000",
				"DATA_FILE":    "/srv/readings.csv",
				"DATA_SHEET":   "Export",
				"CHART_HEIGHT": "300",
			},
			assertFn: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, 9000, cfg.App.Port)
				assert.Equal(t, "/srv/readings.csv", cfg.Data.File)
				assert.Equal(t, "Export", cfg.Data.Sheet)
				assert.Equal(t, 300, cfg.Chart.Height)
			},
		},
		{
			name: "invalid port",
			env:  map[string]string{"APP_PORT": "not-a-number"},
			assertFn: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to parse config")
				assert.Nil(t, cfg)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			for k, v := range testCase.env {
				t.Setenv(k, v)
			}
			cfg, err := Load()
			testCase.assertFn(t, cfg, err)
		})
	}
}
