package metrics

import coremetrics "github.com/mossyhq/binminder/core/metrics"

// New assembles the configured sinks. With none enabled a NopSink is returned
// so callers never need a nil check.
func New(cfg coremetrics.Config) coremetrics.MetricsSink {
	var sinks []coremetrics.MetricsSink
	if cfg.Push.Enabled {
		sinks = append(sinks, NewPushSink(cfg.Push))
	}
	if cfg.Influx.Enabled {
		sinks = append(sinks, NewInfluxSinkWithFallback(cfg.Influx))
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}
	case 1:
		return sinks[0]
	default:
		return NewMultiSink(sinks...)
	}
}
