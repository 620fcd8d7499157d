// cmd/game/main.go
package main

import (
	"flag"
	"log"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/loop"
	"go-grid-defense/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hotkeys 1..5 pick which tower the next click places.
var towerHotkeys = map[ebiten.Key]string{
	ebiten.Key1: "TOWER_CANNON",
	ebiten.Key2: "TOWER_ARROW",
	ebiten.Key3: "TOWER_FROST",
	ebiten.Key4: "TOWER_TESLA",
	ebiten.Key5: "TOWER_STORM",
}

// AppGame hosts the simulation inside ebiten's frame callbacks. Ebiten calls
// Update at the display rate; the loop converts that into fixed simulation
// steps.
type AppGame struct {
	game     *app.Game
	loop     *loop.Loop
	renderer *system.RenderSystem

	paused      bool
	fast        bool
	selectedDef string
}

func (a *AppGame) Update() error {
	a.handleInput()
	a.loop.Frame()
	a.renderer.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (a *AppGame) handleInput() {
	for key, defID := range towerHotkeys {
		if inpututil.IsKeyJustPressed(key) {
			a.selectedDef = defID
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.paused = !a.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		a.fast = !a.fast
		if a.fast {
			a.loop.SetSpeed(2.0)
		} else {
			a.loop.SetSpeed(1.0)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		a.game.StartWaves()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && a.game.GameOver() {
		a.game.Reset()
		a.loop.Reset()
	}

	mx, my := ebiten.CursorPosition()
	col := mx / int(config.CellSize)
	row := my / int(config.CellSize)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if _, occupied := a.game.TowerAt(col, row); !occupied {
			if _, err := a.game.PlaceTower(a.selectedDef, col, row); err != nil {
				log.Println(err)
			}
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if t, ok := a.game.TowerAt(col, row); ok {
			if _, err := a.game.SellTower(t.ID); err != nil {
				log.Println(err)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		if t, ok := a.game.TowerAt(col, row); ok {
			if err := a.game.UpgradeTower(t.ID); err != nil {
				log.Println(err)
			}
		}
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.game.Snapshot())

	// Ghost the selected tower's range under the cursor.
	mx, my := ebiten.CursorPosition()
	col := mx / int(config.CellSize)
	row := my / int(config.CellSize)
	if t, ok := a.game.TowerAt(col, row); ok {
		a.renderer.DrawRangeRing(screen, t.X, t.Y, t.Range)
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	towersPath := flag.String("towers", "", "tower definitions JSON file (overrides the built-in set)")
	enemiesPath := flag.String("enemies", "", "enemy definitions JSON file (overrides the built-in set)")
	seed := flag.Int64("seed", 0, "simulation seed; 0 seeds from the clock")
	flag.Parse()

	if *towersPath != "" {
		if err := defs.LoadTowerDefinitions(*towersPath); err != nil {
			log.Fatal(err)
		}
	}
	if *enemiesPath != "" {
		if err := defs.LoadEnemyDefinitions(*enemiesPath); err != nil {
			log.Fatal(err)
		}
	}

	game := app.NewGame(app.DefaultPathCells(), *seed)
	renderer := system.NewRenderSystem(game.Dispatcher())

	a := &AppGame{
		game:        game,
		renderer:    renderer,
		selectedDef: "TOWER_CANNON",
	}
	l, err := loop.New(loop.Options{TickRate: config.TickRate}, loop.SystemClock{}, game.Update, func() bool { return a.paused })
	if err != nil {
		log.Fatal(err)
	}
	a.loop = l
	l.Start()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Grid Defense")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
