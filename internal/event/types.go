// internal/event/types.go
package event

import "go-grid-defense/internal/types"

const (
	EnemySpawned    EventType = "EnemySpawned"
	EnemyKilled     EventType = "EnemyKilled"
	EnemyEscaped    EventType = "EnemyEscaped"
	TowerPlaced     EventType = "TowerPlaced"
	TowerSold       EventType = "TowerSold"
	TowerUpgraded   EventType = "TowerUpgraded"
	ProjectileFired EventType = "ProjectileFired"
	ProjectileHit   EventType = "ProjectileHit"
	WaveStarted     EventType = "WaveStarted"
	WaveCompleted   EventType = "WaveCompleted"
	CreditsChanged  EventType = "CreditsChanged"
	LivesChanged    EventType = "LivesChanged"

	// Purely visual requests; they carry no state the simulation reads back.
	DamageNumberRequest EventType = "DamageNumberRequest"
	ExplosionRequest    EventType = "ExplosionRequest"
	GoldNumberRequest   EventType = "GoldNumberRequest"
	PulseEffectRequest  EventType = "PulseEffectRequest"
)

// KillPayload reports a death and which tower gets the credit.
type KillPayload struct {
	EnemyID types.EntityID
	TowerID types.EntityID
	Reward  int
}

// DamageNumberPayload asks the HUD to float a damage number.
type DamageNumberPayload struct {
	X, Y   float64
	Amount float64
}

// ExplosionPayload asks the renderer for an impact burst.
type ExplosionPayload struct {
	X, Y   float64
	Radius float64
}

// PulsePayload asks the renderer for an expanding ring (slow pulses, zone
// spawns).
type PulsePayload struct {
	X, Y   float64
	Radius float64
}

// WavePayload reports a wave starting or completing.
type WavePayload struct {
	Number int
}
