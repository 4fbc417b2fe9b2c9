// Package config handles loading and validating phbuddy configuration.
//
// Config is resolved in this order: explicit --config path, .phbuddy.yaml in
// the current directory, .phbuddy.yaml in parent directories (stopping at the
// git root or home), then ~/.config/phbuddy/config.yaml.
package config

import (
	"time"

	"github.com/rileyhilliard/phbuddy/internal/errors"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".phbuddy.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/phbuddy"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Defaults applied when a key is absent from the config file.
const (
	DefaultPort     = "/dev/ttyUSB0"
	DefaultBaud     = 9600
	DefaultInterval = 2 * time.Second

	// MinInterval guards the tick source against intervals that would
	// starve rendering or hammer the sensor.
	MinInterval = 500 * time.Millisecond
)

// Config holds the full phbuddy configuration.
type Config struct {
	// Port is the serial device the pH sensor is attached to.
	Port string `mapstructure:"port"`
	// Baud is the serial line rate.
	Baud int `mapstructure:"baud"`
	// Interval is the sampling cadence.
	Interval time.Duration `mapstructure:"interval"`
	// Record is an optional sqlite file path for session recording.
	Record string `mapstructure:"record"`
	// MQTT configures optional telemetry publishing.
	MQTT MQTTConfig `mapstructure:"mqtt"`

	// Path is where this config was loaded from (empty for defaults).
	Path string `mapstructure:"-"`
}

// MQTTConfig configures the optional MQTT publisher.
type MQTTConfig struct {
	Broker   string `mapstructure:"broker"`
	Topic    string `mapstructure:"topic"`
	ClientID string `mapstructure:"client_id"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		Port:     DefaultPort,
		Baud:     DefaultBaud,
		Interval: DefaultInterval,
		MQTT: MQTTConfig{
			Topic:    "phbuddy/reading",
			ClientID: "phbuddy",
		},
	}
}

// Validate checks the config for values that cannot work.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New(errors.ErrConfig,
			"Serial port is empty",
			"Set 'port' in .phbuddy.yaml or pass --port")
	}
	if c.Baud <= 0 {
		return errors.New(errors.ErrConfig,
			"Baud rate must be a positive integer",
			"Common sensor rates are 9600 or 115200")
	}
	if c.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			"Sampling interval too short",
			"Minimum interval is 500ms; try 2s")
	}
	if c.MQTT.Broker != "" && c.MQTT.Topic == "" {
		return errors.New(errors.ErrConfig,
			"MQTT topic is empty",
			"Set 'mqtt.topic' or remove the broker to disable publishing")
	}
	return nil
}
