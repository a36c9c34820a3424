package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/radial-bar/internal/chart"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, "radialbar.yaml", `
chart:
  width: 400
  colors: ["#112233", "#445566"]
window:
  title: Ops board
logging:
  level: debug
data:
  - name: On-Time
    value: 432
  - name: Completed
    value: 310.5
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 400.0, cfg.Chart.Width)
	assert.Equal(t, 300.0, cfg.Chart.Height, "default")
	assert.Equal(t, []string{"#112233", "#445566"}, cfg.Chart.Colors)
	assert.Equal(t, 10, cfg.Chart.NumTicks, "default")
	assert.Equal(t, "Ops board", cfg.Window.Title)
	assert.Equal(t, WindowWidth, cfg.Window.Width)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []chart.DataPoint{{Name: "On-Time", Value: 432}, {Name: "Completed", Value: 310.5}}, cfg.Data)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("RADIALBAR_CHART_HEIGHT", "500")
	t.Setenv("RADIALBAR_LOGGING_FORMAT", "json")

	cfg, err := Load(writeFile(t, "radialbar.yaml", "chart:\n  width: 250\n"))
	require.NoError(t, err)
	assert.Equal(t, 250.0, cfg.Chart.Width)
	assert.Equal(t, 500.0, cfg.Chart.Height)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadData(t *testing.T) {
	path := writeFile(t, "data.json", `{"data": [{"name": "A", "value": 1}, {"name": "B", "value": 0}]}`)
	data, err := LoadData(path)
	require.NoError(t, err)
	assert.Equal(t, []chart.DataPoint{{Name: "A", Value: 1}, {Name: "B"}}, data)
}

func TestLoadDataWithoutList(t *testing.T) {
	_, err := LoadData(writeFile(t, "data.yaml", "chart:\n  width: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data list")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := LoggingConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = LoggingConfig{Level: "loud"}.NewLogger(&buf)
	assert.Error(t, err)
	_, err = LoggingConfig{Format: "xml"}.NewLogger(&buf)
	assert.Error(t, err)
}
