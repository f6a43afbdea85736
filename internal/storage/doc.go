// Package storage provides the optional audit trail for registry operations.
//
// The trail is append-only and write-only: the scheduler never reads it back
// to rebuild state, so tasks still live only for the lifetime of the process.
package storage
