package app

import (
	"fmt"
	"strings"
	"time"

	"daysched/internal/config"
	"daysched/internal/storage"
	"daysched/pkg/logx"
)

// auditConfig translates the storage section. ok is false when the audit
// trail is off.
func auditConfig(cfg *config.Config) (sc storage.Config, ok bool, err error) {
	st := cfg.Storage
	if st == nil {
		return sc, false, nil
	}
	driver := strings.ToLower(strings.TrimSpace(st.Driver))
	switch driver {
	case "", "none":
		return sc, false, nil
	case "sqlite3":
		driver = "sqlite"
	}

	sc = storage.Config{Driver: driver, Path: strings.TrimSpace(st.Path)}
	if sc.Path == "" {
		return sc, false, fmt.Errorf("storage.path is required for driver %q", driver)
	}
	if sc.BusyTimeout, err = st.BusyTimeoutOr(time.Second); err != nil {
		return sc, false, err
	}
	return sc, true, nil
}

func loggingConfig(cfg *config.Config) logx.Config {
	l := cfg.Logging
	return logx.Config{
		Level:   l.Level,
		Console: l.Console,
		File:    logx.FileConfig{Enabled: l.File.Enabled, Path: l.File.Path},
	}
}
