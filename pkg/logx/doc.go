// Package logx is daysched's structured logging layer, a thin wrapper over
// zerolog.
//
// Loggers derived from a Service follow its sinks across Service.Apply, so a
// config reload can retarget or silence logging without rebuilding the
// components that hold a Logger. With no sink enabled the service is silent;
// the interactive shell owns stdout and logs never interleave with it.
package logx
