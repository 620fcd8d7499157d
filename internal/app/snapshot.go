// internal/app/snapshot.go
package app

import (
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/interfaces"
)

// Snapshot freezes the current simulation state for the rendering/HUD layer.
// Entities come out in the same stable order the systems iterate in.
func (g *Game) Snapshot() *interfaces.Snapshot {
	s := &interfaces.Snapshot{
		Time:     g.gameTime,
		Wave:     g.waveSystem.Wave(),
		Credits:  g.credits,
		Lives:    g.lives,
		GameOver: g.gameOver,
		Path:     g.path,
	}

	for _, e := range g.Enemies() {
		col := config.EnemyColor
		if def, ok := defs.EnemyLibrary[e.DefID]; ok {
			col = def.Visuals.Color
		}
		s.Enemies = append(s.Enemies, interfaces.EnemyView{
			ID:     e.ID(),
			X:      e.X,
			Y:      e.Y,
			Health: e.Health,
			MaxHP:  e.MaxHealth,
			Slowed: e.IsSlowed(g.gameTime),
			Color:  col,
		})
	}

	for _, t := range g.Towers() {
		col := config.TextLightColor
		if def, ok := defs.TowerLibrary[t.DefID]; ok {
			col = def.Visuals.Color
		}
		s.Towers = append(s.Towers, interfaces.TowerView{
			ID:    t.ID,
			DefID: t.DefID,
			Col:   t.Col,
			Row:   t.Row,
			X:     t.X,
			Y:     t.Y,
			Level: t.Level,
			Range: t.Range,
			Kills: t.Kills,
			Color: col,
		})
	}

	for _, p := range g.Projectiles() {
		s.Projectiles = append(s.Projectiles, interfaces.ProjectileView{
			ID: p.ID(),
			X:  p.X,
			Y:  p.Y,
		})
	}

	for _, z := range g.Zones() {
		s.Zones = append(s.Zones, interfaces.ZoneView{
			ID:     z.ID(),
			X:      z.X,
			Y:      z.Y,
			Radius: z.Radius,
		})
	}
	return s
}
