package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/phbuddy/internal/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "/dev/ttyUSB0", cfg.Port)
	assert.Equal(t, 9600, cfg.Baud)
	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.Equal(t, "phbuddy/reading", cfg.MQTT.Topic)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"empty port", func(c *Config) { c.Port = "" }, true},
		{"zero baud", func(c *Config) { c.Baud = 0 }, true},
		{"negative baud", func(c *Config) { c.Baud = -9600 }, true},
		{"interval too short", func(c *Config) { c.Interval = 100 * time.Millisecond }, true},
		{"interval at minimum", func(c *Config) { c.Interval = MinInterval }, false},
		{"broker without topic", func(c *Config) {
			c.MQTT.Broker = "tcp://localhost:1883"
			c.MQTT.Topic = ""
		}, true},
		{"broker with topic", func(c *Config) { c.MQTT.Broker = "tcp://localhost:1883" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	content := `port: /dev/ttyACM0
baud: 115200
interval: 5s
record: session.db
mqtt:
  broker: tcp://broker.local:1883
  topic: kids/ph
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyACM0", cfg.Port)
	assert.Equal(t, 115200, cfg.Baud)
	assert.Equal(t, 5*time.Second, cfg.Interval)
	assert.Equal(t, "session.db", cfg.Record)
	assert.Equal(t, "tcp://broker.local:1883", cfg.MQTT.Broker)
	assert.Equal(t, "kids/ph", cfg.MQTT.Topic)
	assert.Equal(t, path, cfg.Path)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("baud: 19200\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 19200, cfg.Baud)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultInterval, cfg.Interval)
	assert.Equal(t, "phbuddy", cfg.MQTT.ClientID)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFindExplicitMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestFindInCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("port: /dev/ttyS0\n"), 0o644))

	t.Chdir(dir)

	found, err := Find("")
	require.NoError(t, err)
	// Resolve symlinks; macOS temp dirs live under /private
	wantDir, _ := filepath.EvalSymlinks(dir)
	gotDir, _ := filepath.EvalSymlinks(filepath.Dir(found))
	assert.Equal(t, wantDir, gotDir)
	assert.Equal(t, ConfigFileName, filepath.Base(found))
}

func TestLoadOrDefaultWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Empty(t, cfg.Path)
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"", DefaultInterval, false},
		{"2s", 2 * time.Second, false},
		{"500ms", 500 * time.Millisecond, false},
		{"1m", time.Minute, false},
		{"fast", 0, true},
		{"10", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInterval(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
