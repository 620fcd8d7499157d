// internal/types/types.go
package types

// EntityID identifies a simulation entity. Pooled entities get a fresh id on
// every acquire, so ids are safe to hold across ticks: a stale id simply
// stops resolving.
type EntityID = string
