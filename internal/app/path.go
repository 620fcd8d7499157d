// internal/app/path.go
package app

import (
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

// DefaultPathCells is the scripted lane enemies walk, as grid cells from
// spawn to exit.
func DefaultPathCells() []grid.Cell {
	var cells []grid.Cell
	appendRun := func(fromCol, fromRow, toCol, toRow int) {
		colStep, rowStep := sign(toCol-fromCol), sign(toRow-fromRow)
		c := grid.Cell{Col: fromCol, Row: fromRow}
		for {
			if len(cells) == 0 || cells[len(cells)-1] != c {
				cells = append(cells, c)
			}
			if c.Col == toCol && c.Row == toRow {
				return
			}
			c.Col += colStep
			c.Row += rowStep
		}
	}
	appendRun(0, 4, 10, 4)
	appendRun(10, 4, 10, 14)
	appendRun(10, 14, 20, 14)
	appendRun(20, 14, 20, 7)
	appendRun(20, 7, config.GridCols-1, 7)
	return cells
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// BuildPath converts a cell lane into world-space waypoints at cell centers.
func BuildPath(cells []grid.Cell) []utils.Vec {
	path := make([]utils.Vec, 0, len(cells))
	for _, c := range cells {
		path = append(path, utils.Vec{
			X: (float64(c.Col) + 0.5) * config.CellSize,
			Y: (float64(c.Row) + 0.5) * config.CellSize,
		})
	}
	return path
}
