// internal/app/tower_management.go
package app

import (
	"fmt"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"
)

// PlaceTower buys and places a tower on a free cell. Path cells and occupied
// cells are refused; towers are created on placement, never pooled.
func (g *Game) PlaceTower(defID string, col, row int) (*entity.Tower, error) {
	def, ok := defs.TowerLibrary[defID]
	if !ok {
		return nil, fmt.Errorf("place tower: unknown definition %q", defID)
	}
	if g.CellBlocked(col, row) {
		return nil, fmt.Errorf("place tower: cell (%d,%d) is blocked", col, row)
	}
	if g.credits < def.Cost {
		return nil, fmt.Errorf("place tower: need %d credits, have %d", def.Cost, g.credits)
	}

	g.credits -= def.Cost
	g.nextTowerID++
	id := types.EntityID(fmt.Sprintf("tower-%d", g.nextTowerID))
	t := entity.NewTower(id, def, col, row)

	g.towers[id] = t
	g.towerOrder = append(g.towerOrder, id)
	g.towerCells[grid.Cell{Col: col, Row: row}] = id

	g.dispatcher.Dispatch(event.Event{Type: event.CreditsChanged, Data: g.credits})
	g.dispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return t, nil
}

// SellTower removes a tower and refunds a fraction of everything invested in
// it.
func (g *Game) SellTower(id types.EntityID) (int, error) {
	t, ok := g.towers[id]
	if !ok {
		return 0, fmt.Errorf("sell tower: no tower %q", id)
	}

	refund := int(float64(t.Invested) * config.SellRefund)
	delete(g.towers, id)
	delete(g.towerCells, grid.Cell{Col: t.Col, Row: t.Row})
	for i, tid := range g.towerOrder {
		if tid == id {
			g.towerOrder = append(g.towerOrder[:i], g.towerOrder[i+1:]...)
			break
		}
	}

	g.credits += refund
	g.dispatcher.Dispatch(event.Event{Type: event.CreditsChanged, Data: g.credits})
	g.dispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: id})
	return refund, nil
}

// UpgradeTower raises a tower one level if the player can afford it.
func (g *Game) UpgradeTower(id types.EntityID) error {
	t, ok := g.towers[id]
	if !ok {
		return fmt.Errorf("upgrade tower: no tower %q", id)
	}
	def, ok := defs.TowerLibrary[t.DefID]
	if !ok {
		return fmt.Errorf("upgrade tower: unknown definition %q", t.DefID)
	}
	if t.Level >= def.MaxLevel {
		return fmt.Errorf("upgrade tower: %q is at max level %d", id, def.MaxLevel)
	}
	cost := entity.UpgradeCost(def, t.Level)
	if g.credits < cost {
		return fmt.Errorf("upgrade tower: need %d credits, have %d", cost, g.credits)
	}

	g.credits -= cost
	t.Upgrade(def)

	g.dispatcher.Dispatch(event.Event{Type: event.CreditsChanged, Data: g.credits})
	g.dispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: id})
	return nil
}
