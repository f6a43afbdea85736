package config

type Config struct {
	Logging LoggingConfig  `json:"logging" yaml:"logging"`
	Storage *StorageConfig `json:"storage,omitempty" yaml:"storage,omitempty"`
	Agenda  AgendaConfig   `json:"agenda" yaml:"agenda"`
	Notify  NotifyConfig   `json:"notify" yaml:"notify"`
	Tasks   TasksConfig    `json:"tasks" yaml:"tasks"`
}

type LoggingConfig struct {
	Level   string      `json:"level" yaml:"level"`
	Console bool        `json:"console" yaml:"console"`
	File    LoggingFile `json:"file" yaml:"file"`
}

type LoggingFile struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// StorageConfig controls the optional audit trail.
//
// Example:
//
//	storage: { driver: file, path: ./daysched.audit.jsonl }
type StorageConfig struct {
	Driver      string `json:"driver" yaml:"driver"`
	Path        string `json:"path" yaml:"path"`
	BusyTimeout string `json:"busy_timeout,omitempty" yaml:"busy_timeout,omitempty"` // Go duration string (sqlite)
}

// AgendaConfig controls the daily agenda digest.
//
// Spec is a standard 5-field cron expression or descriptor
// (e.g. "0 7 * * *", "@daily") evaluated in local time.
type AgendaConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Spec    string `json:"spec,omitempty" yaml:"spec,omitempty"`
}

type NotifyConfig struct {
	// LogRatePerSec throttles conflict log lines (default 1).
	LogRatePerSec int `json:"log_rate_per_sec,omitempty" yaml:"log_rate_per_sec,omitempty"`
	HistorySize   int `json:"history_size,omitempty" yaml:"history_size,omitempty"`
}

type TasksConfig struct {
	// StrictPriority rejects priorities other than Low/Medium/High.
	StrictPriority bool `json:"strict_priority" yaml:"strict_priority"`
}

// DefaultAgendaSpec fires the digest at 07:00 every day.
const DefaultAgendaSpec = "0 7 * * *"

// Defaults is used when no config file is given.
func Defaults() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "warn", Console: false},
		Agenda:  AgendaConfig{Enabled: false, Spec: DefaultAgendaSpec},
		Notify:  NotifyConfig{LogRatePerSec: 1},
	}
}
