package publish

import (
	"encoding/json"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/rileyhilliard/phbuddy/internal/config"
	"github.com/rileyhilliard/phbuddy/internal/errors"
	"github.com/rileyhilliard/phbuddy/internal/logger"
	"github.com/rileyhilliard/phbuddy/internal/monitor"
)

const (
	connectTimeout    = 10 * time.Second
	disconnectQuiesce = 250 // milliseconds, paho's own unit
)

// MQTTPublisher publishes each reading as JSON to a broker topic.
type MQTTPublisher struct {
	client mqtt.Client
	topic  string
	log    logger.Logger
}

// NewMQTT connects to the broker and returns a publisher for cfg.Topic.
func NewMQTT(cfg config.MQTTConfig, log logger.Logger) (*MQTTPublisher, error) {
	if log == nil {
		log = logger.NewEnvLogger("[mqtt]")
	}
	if cfg.Broker == "" {
		return nil, errors.New(errors.ErrPublish,
			"MQTT broker address is required",
			"Set mqtt.broker in your config or pass --mqtt")
	}

	broker := cfg.Broker
	if !strings.Contains(broker, "://") {
		broker = "tcp://" + broker
	}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(connectTimeout)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, errors.WrapWithCode(token.Error(), errors.ErrPublish,
			"failed to connect to MQTT broker "+broker,
			"Check that the broker is reachable and credentials are correct")
	}

	log.Debug("connected to %s, publishing to %s", broker, cfg.Topic)
	return &MQTTPublisher{client: client, topic: cfg.Topic, log: log}, nil
}

// Publish sends one reading as a JSON payload. Satisfies monitor.Sink.
func (p *MQTTPublisher) Publish(e monitor.Entry) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrPublish,
			"failed to encode reading", "")
	}

	token := p.client.Publish(p.topic, 0, false, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		return errors.WrapWithCode(err, errors.ErrPublish,
			"failed to publish reading", "")
	}
	return nil
}

// Close disconnects from the broker.
func (p *MQTTPublisher) Close() error {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(disconnectQuiesce)
	}
	return nil
}
