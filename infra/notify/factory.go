package notify

import (
	corenotify "github.com/mossyhq/binminder/core/notify"
)

// New builds the configured notifier. A construction failure here is fatal to
// the caller: without a notifier there is no channel left to report through.
func New(cfg Config) (corenotify.Notifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var notifiers []corenotify.Notifier
	if cfg.Gotify.Enabled {
		notifiers = append(notifiers, NewGotifyNotifier(cfg.Gotify))
	}
	if cfg.MQTT.Enabled {
		n, err := NewMQTTNotifier(cfg.MQTT)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, n)
	}
	if len(notifiers) == 1 {
		return notifiers[0], nil
	}
	return NewMultiNotifier(notifiers...), nil
}
