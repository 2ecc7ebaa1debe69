package notify

import "fmt"

// Config selects and configures notification backends. At least one backend
// must be enabled: the notification channel doubles as the error channel, so
// a run without one has nowhere to report.
type Config struct {
	Gotify GotifyConfig `json:"gotify"`
	MQTT   MQTTConfig   `json:"mqtt"`
}

// GotifyConfig configures the multipart HTTP notifier.
type GotifyConfig struct {
	Enabled        bool   `json:"enabled"`
	URL            string `json:"url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// MQTTConfig configures the MQTT notifier.
type MQTTConfig struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Topic    string `json:"topic"`
	QoS      byte   `json:"qos"`
	Retain   bool   `json:"retain"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Gotify.TimeoutSeconds <= 0 {
		c.Gotify.TimeoutSeconds = 10
	}
	if c.MQTT.ClientID == "" {
		c.MQTT.ClientID = "binminder"
	}
	if c.MQTT.Topic == "" {
		c.MQTT.Topic = "binminder/reminder"
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if !c.Gotify.Enabled && !c.MQTT.Enabled {
		return fmt.Errorf("no notification backend enabled")
	}
	if c.Gotify.Enabled && c.Gotify.URL == "" {
		return fmt.Errorf("gotify url is required")
	}
	if c.MQTT.Enabled && c.MQTT.Broker == "" {
		return fmt.Errorf("mqtt broker is required")
	}
	return nil
}
