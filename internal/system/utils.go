// internal/system/utils.go
package system

import (
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/interfaces"
	"go-grid-defense/internal/types"
)

// applyDamage is the one place hit damage lands: it runs the armor math,
// books the amount against the source tower, and on a kill grants the reward
// and removes the enemy. raw bypasses armor (zone damage arrives in dt-sized
// slices flat armor would swallow).
func applyDamage(ctx interfaces.GameContext, d *event.Dispatcher, enemyID, towerID types.EntityID, amount float64, raw bool) {
	e, ok := ctx.Enemy(enemyID)
	if !ok {
		return
	}

	before := e.Health
	var dead bool
	if raw {
		dead = e.TakeRawDamage(amount)
	} else {
		dead = e.TakeDamage(amount)
	}
	dealt := before - e.Health

	var tower *entity.Tower
	if towerID != "" {
		if t, found := ctx.Tower(towerID); found {
			tower = t
			t.DamageDealt += dealt
		}
	}

	if dealt > 0 {
		d.Dispatch(event.Event{Type: event.DamageNumberRequest, Data: event.DamageNumberPayload{
			X: e.X, Y: e.Y, Amount: dealt,
		}})
	}

	if dead {
		if tower != nil {
			tower.Kills++
		}
		reward := e.Reward
		ctx.GrantCredits(reward)
		d.Dispatch(event.Event{Type: event.GoldNumberRequest, Data: event.DamageNumberPayload{
			X: e.X, Y: e.Y, Amount: float64(reward),
		}})
		d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.KillPayload{
			EnemyID: enemyID, TowerID: towerID, Reward: reward,
		}})
		ctx.RemoveEnemy(enemyID)
	}
}
