package config

import (
	"strings"

	"daysched/pkg/logx"
)

// SummarizeConfigChange returns the changed sections and structured attrs for logging.
// Only the logging section is applied live; the rest is reported so the
// operator knows a restart is needed.
func SummarizeConfigChange(oldCfg, newCfg *Config) ([]string, []logx.Field) {
	if oldCfg == nil {
		oldCfg = &Config{}
	}
	if newCfg == nil {
		newCfg = &Config{}
	}

	changed := make([]string, 0, 5)
	attrs := make([]logx.Field, 0, 10)

	if oldCfg.Logging.Level != newCfg.Logging.Level ||
		oldCfg.Logging.Console != newCfg.Logging.Console ||
		oldCfg.Logging.File.Enabled != newCfg.Logging.File.Enabled ||
		strings.TrimSpace(oldCfg.Logging.File.Path) != strings.TrimSpace(newCfg.Logging.File.Path) {
		changed = append(changed, "logging")
		attrs = append(attrs,
			logx.String("logging.level", newCfg.Logging.Level),
			logx.Bool("logging.console", newCfg.Logging.Console),
			logx.Bool("logging.file_enabled", newCfg.Logging.File.Enabled),
		)
	}

	var oldSt, newSt StorageConfig
	if oldCfg.Storage != nil {
		oldSt = *oldCfg.Storage
	}
	if newCfg.Storage != nil {
		newSt = *newCfg.Storage
	}
	if oldSt != newSt {
		changed = append(changed, "storage")
		attrs = append(attrs, logx.String("storage.driver", newSt.Driver))
	}

	if oldCfg.Agenda != newCfg.Agenda {
		changed = append(changed, "agenda")
		attrs = append(attrs,
			logx.Bool("agenda.enabled", newCfg.Agenda.Enabled),
			logx.String("agenda.spec", newCfg.Agenda.Spec),
		)
	}

	if oldCfg.Notify != newCfg.Notify {
		changed = append(changed, "notify")
		attrs = append(attrs, logx.Int("notify.log_rate_per_sec", newCfg.Notify.LogRatePerSec))
	}

	if oldCfg.Tasks != newCfg.Tasks {
		changed = append(changed, "tasks")
		attrs = append(attrs, logx.Bool("tasks.strict_priority", newCfg.Tasks.StrictPriority))
	}

	return changed, attrs
}
