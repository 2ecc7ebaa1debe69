package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	corenotify "github.com/mossyhq/binminder/core/notify"
	"github.com/mossyhq/binminder/infra/logger"
)

// pahoClient narrows the paho API for testability.
type pahoClient interface {
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// MQTTNotifier publishes notifications as JSON to a topic, for home-automation
// consumers listening on the broker.
type MQTTNotifier struct {
	cli    pahoClient
	topic  string
	qos    byte
	retain bool
	log    logger.Logger
}

// NewMQTTNotifier connects to the broker. Callers must Close the notifier to
// flush and disconnect.
func NewMQTTNotifier(cfg MQTTConfig) (*MQTTNotifier, error) {
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	log := logger.New("mqtt-notifier")
	cli := newMQTTClient(opts)
	if token := cli.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	log.Infof("connected to %s", cfg.Broker)
	return &MQTTNotifier{
		cli:    cli,
		topic:  cfg.Topic,
		qos:    cfg.QoS,
		retain: cfg.Retain,
		log:    log,
	}, nil
}

// Send publishes the notification payload. The message ID lets consumers
// deduplicate retained deliveries.
func (m *MQTTNotifier) Send(ctx context.Context, n corenotify.Notification) error {
	payload, err := json.Marshal(struct {
		MessageID string `json:"message_id"`
		Title     string `json:"title"`
		Message   string `json:"message"`
		Priority  int    `json:"priority"`
		Timestamp int64  `json:"timestamp"`
	}{
		MessageID: uuid.NewString(),
		Title:     n.Title,
		Message:   n.Message,
		Priority:  n.Priority,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		return err
	}
	token := m.cli.Publish(m.topic, m.qos, m.retain, payload)
	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close disconnects from the broker.
func (m *MQTTNotifier) Close() error {
	m.cli.Disconnect(250)
	m.log.Debugf("disconnected")
	return nil
}
