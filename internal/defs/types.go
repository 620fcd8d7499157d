// internal/defs/types.go
package defs

// AttackKind selects a tower's firing behavior.
type AttackKind string

const (
	AttackProjectile AttackKind = "PROJECTILE"
	AttackSlow       AttackKind = "SLOW"
	AttackChain      AttackKind = "CHAIN"
	AttackStorm      AttackKind = "STORM"
)

// Scaled is a linear per-level coefficient pair: At(1) == Base, every level
// adds Growth. Growth may be negative (faster fire intervals); callers clamp
// the result where the stat has a floor.
type Scaled struct {
	Base   float64 `json:"base"`
	Growth float64 `json:"growth"`
}

// At evaluates the stat at the given level.
func (s Scaled) At(level int) float64 {
	return s.Base + s.Growth*float64(level-1)
}
