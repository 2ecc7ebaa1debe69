package metrics

// Config defines settings for metrics sinks. All sinks are optional; a run
// with none enabled records nothing.
type Config struct {
	Push   PushConfig   `json:"push"`
	Influx InfluxConfig `json:"influx"`
}

// PushConfig configures the Prometheus Pushgateway sink.
type PushConfig struct {
	Enabled bool   `json:"enabled"`
	Gateway string `json:"gateway"`
	Job     string `json:"job"`
}

// InfluxConfig configures the InfluxDB v2 sink.
type InfluxConfig struct {
	Enabled bool   `json:"enabled"`
	URL     string `json:"url"`
	Token   string `json:"token"`
	Org     string `json:"org"`
	Bucket  string `json:"bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Push.Job == "" {
		c.Push.Job = "binminder"
	}
}
