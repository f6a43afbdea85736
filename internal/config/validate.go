package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate performs the checks that need nothing outside this package.
// Cross-package checks (cron syntax) run through Manager.SetValidator.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", cfg.Logging.Level)
	}

	if st := cfg.Storage; st != nil {
		switch strings.ToLower(strings.TrimSpace(st.Driver)) {
		case "", "none":
		case "file", "sqlite", "sqlite3":
			if strings.TrimSpace(st.Path) == "" {
				return fmt.Errorf("storage.path is required for driver %q", st.Driver)
			}
		default:
			return fmt.Errorf("storage.driver: unknown driver %q", st.Driver)
		}
		if _, err := st.BusyTimeoutOr(0); err != nil {
			return err
		}
	}

	switch {
	case cfg.Notify.LogRatePerSec < 0:
		return errors.New("notify.log_rate_per_sec must be >= 0")
	case cfg.Notify.HistorySize < 0:
		return errors.New("notify.history_size must be >= 0")
	case cfg.Agenda.Enabled && strings.TrimSpace(cfg.Agenda.Spec) == "":
		return errors.New("agenda.spec is required when agenda is enabled")
	}
	return nil
}
