// Package notifier fans out scheduling conflict events to registered listeners.
//
// Listeners are plain functions invoked synchronously, in subscription order.
// A listener that returns an error or panics is logged and skipped; the
// remaining listeners still run and nothing propagates back to the publisher.
//
// # History
//
// For debugging and operator visibility, the hub keeps a small in-memory
// history of recently published events.
package notifier
