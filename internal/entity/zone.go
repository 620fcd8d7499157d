// internal/entity/zone.go
package entity

import "go-grid-defense/internal/types"

// StormZone is a duration-bound area effect that damages anything inside it
// each tick. Zones are pooled; the state machine is inactive -> active (Init)
// -> expired (Update) -> inactive (pool reset).
type StormZone struct {
	id string

	X, Y            float64 // center
	Radius          float64
	Duration        float64
	DamagePerSecond float64
	StartTime       float64
	Active          bool
	SourceID        types.EntityID // tower credited with zone kills
}

func (z *StormZone) ID() string                   { return z.id }
func (z *StormZone) SetID(id string)              { z.id = id }
func (z *StormZone) Position() (float64, float64) { return z.X, z.Y }

// ResetZone restores pool defaults. Injected into the zone pool.
func ResetZone(z *StormZone) {
	*z = StormZone{}
}

// Init arms the zone. Until the next Init it can expire exactly once.
func (z *StormZone) Init(x, y, radius, duration, dps, startTime float64, sourceID types.EntityID) {
	z.X, z.Y = x, y
	z.Radius = radius
	z.Duration = duration
	z.DamagePerSecond = dps
	z.StartTime = startTime
	z.Active = true
	z.SourceID = sourceID
}

// ContainsPoint reports whether the point is inside the zone. The boundary
// is inclusive: a point at exactly Radius counts as inside.
func (z *StormZone) ContainsPoint(x, y float64) bool {
	dx := x - z.X
	dy := y - z.Y
	return dx*dx+dy*dy <= z.Radius*z.Radius
}

// Update reports expiry: true exactly when now - StartTime >= Duration.
// Once expired the zone deactivates and stays inactive until the next Init.
func (z *StormZone) Update(now float64) bool {
	if now-z.StartTime >= z.Duration {
		z.Active = false
		return true
	}
	return false
}

// CalculateDamage is the damage delivered to any single point inside the
// zone over dt. It is a pure formula, independent of prior calls and of how
// many entities are inside.
func (z *StormZone) CalculateDamage(dt float64) float64 {
	return z.DamagePerSecond * dt
}
