// pkg/grid/spatial.go
package grid

import (
	"log"
	"math"
	"sort"
)

// Member is anything the index can bucket: it reports a stable id and its
// current world-space position.
type Member interface {
	ID() string
	Position() (x, y float64)
}

// Cell addresses one bucket of the uniform grid.
type Cell struct {
	Col, Row int
}

// Index is a uniform-grid spatial index over world space. It answers "all
// members within radius R of point P" by scanning only the buckets that can
// intersect the query circle. Buckets are unbounded sets, so dense cells
// never drop members.
type Index[T Member] struct {
	cellSize float64
	buckets  map[Cell]map[string]T
	located  map[string]Cell // bucket each member id currently lives in
}

// NewIndex creates an index with the given bucket size. Bucket size is fixed
// for the life of the index.
func NewIndex[T Member](cellSize float64) *Index[T] {
	return &Index[T]{
		cellSize: cellSize,
		buckets:  make(map[Cell]map[string]T),
		located:  make(map[string]Cell),
	}
}

// CellAt returns the bucket containing the world-space point.
func (ix *Index[T]) CellAt(x, y float64) Cell {
	return Cell{
		Col: int(math.Floor(x / ix.cellSize)),
		Row: int(math.Floor(y / ix.cellSize)),
	}
}

// CellCenter returns the world-space center of a cell. Queries anchored to a
// cell measure from here, not from the cell's top-left corner.
func (ix *Index[T]) CellCenter(c Cell) (float64, float64) {
	return (float64(c.Col) + 0.5) * ix.cellSize, (float64(c.Row) + 0.5) * ix.cellSize
}

// Insert adds m to the bucket containing its current position.
func (ix *Index[T]) Insert(m T) {
	x, y := m.Position()
	c := ix.CellAt(x, y)
	b, ok := ix.buckets[c]
	if !ok {
		b = make(map[string]T)
		ix.buckets[c] = b
	}
	b[m.ID()] = m
	ix.located[m.ID()] = c
}

// Remove drops m's membership. Removing a member that was never inserted is
// a no-op; a member whose recorded bucket does not contain it indicates the
// index and the entity disagree about position history, which is a defect.
func (ix *Index[T]) Remove(m T) {
	id := m.ID()
	c, ok := ix.located[id]
	if !ok {
		return
	}
	delete(ix.located, id)
	b, ok := ix.buckets[c]
	if !ok {
		log.Printf("grid: bucket miss for %q in cell %+v", id, c)
		return
	}
	if _, in := b[id]; !in {
		log.Printf("grid: bucket miss for %q in cell %+v", id, c)
		return
	}
	delete(b, id)
	if len(b) == 0 {
		delete(ix.buckets, c)
	}
}

// Update re-buckets m after a position change. Members never inserted are
// inserted, so callers can treat Update as idempotent upkeep.
func (ix *Index[T]) Update(m T) {
	id := m.ID()
	x, y := m.Position()
	next := ix.CellAt(x, y)
	prev, ok := ix.located[id]
	if ok && prev == next {
		return
	}
	if ok {
		ix.Remove(m)
	}
	ix.Insert(m)
}

// QueryPoint returns every member whose true Euclidean distance from (x, y)
// is <= radius, in stable id order. Only cells intersecting the query circle
// are scanned.
func (ix *Index[T]) QueryPoint(x, y, radius float64) []T {
	var out []T
	if radius < 0 {
		return out
	}
	minCol := int(math.Floor((x - radius) / ix.cellSize))
	maxCol := int(math.Floor((x + radius) / ix.cellSize))
	minRow := int(math.Floor((y - radius) / ix.cellSize))
	maxRow := int(math.Floor((y + radius) / ix.cellSize))
	r2 := radius * radius
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			b, ok := ix.buckets[Cell{Col: col, Row: row}]
			if !ok {
				continue
			}
			for _, m := range b {
				mx, my := m.Position()
				dx, dy := mx-x, my-y
				if dx*dx+dy*dy <= r2 {
					out = append(out, m)
				}
			}
		}
	}
	// Bucket maps iterate in random order; callers feed query results into
	// combat resolution, so the order must not vary run to run.
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// QueryCell is QueryPoint anchored at the center of the given cell. Towers
// are cell-centered, so range queries must measure from the center rather
// than the cell origin.
func (ix *Index[T]) QueryCell(c Cell, radius float64) []T {
	cx, cy := ix.CellCenter(c)
	return ix.QueryPoint(cx, cy, radius)
}

// Clear empties every bucket.
func (ix *Index[T]) Clear() {
	ix.buckets = make(map[Cell]map[string]T)
	ix.located = make(map[string]Cell)
}

// Rebuild clears the index and re-inserts the full member list. Used after
// bulk mutation instead of many individual inserts.
func (ix *Index[T]) Rebuild(members []T) {
	ix.Clear()
	for _, m := range members {
		ix.Insert(m)
	}
}
