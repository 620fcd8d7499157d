package grid

import (
	"sort"
	"testing"
)

type fakeMember struct {
	id   string
	x, y float64
}

func (f *fakeMember) ID() string                   { return f.id }
func (f *fakeMember) Position() (float64, float64) { return f.x, f.y }

func ids[T Member](members []T) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, m.ID())
	}
	sort.Strings(out)
	return out
}

func TestQueryMeasuresFromCellCenter(t *testing.T) {
	ix := NewIndex[*fakeMember](32)

	// Cell (0,0) spans [0,32)x[0,32); its center is (16,16). A member at
	// (46,16) is 30 away from the center but 46 away from the origin.
	m := &fakeMember{id: "e1", x: 46, y: 16}
	ix.Insert(m)

	if got := ix.QueryCell(Cell{0, 0}, 30); len(got) != 1 {
		t.Fatalf("query radius 30 from cell center missed member at distance 30 (inclusive boundary)")
	}
	if got := ix.QueryCell(Cell{0, 0}, 29); len(got) != 0 {
		t.Fatalf("query radius 29 found member at distance 30")
	}
}

func TestQueryPointEuclideanNotBucketCoarse(t *testing.T) {
	ix := NewIndex[*fakeMember](32)
	near := &fakeMember{id: "near", x: 10, y: 10}
	far := &fakeMember{id: "far", x: 31, y: 31} // same bucket, outside circle
	ix.Insert(near)
	ix.Insert(far)

	got := ids(ix.QueryPoint(8, 8, 10))
	if len(got) != 1 || got[0] != "near" {
		t.Errorf("QueryPoint returned %v, want [near]", got)
	}
}

func TestUpdateRebucketsMovedMember(t *testing.T) {
	ix := NewIndex[*fakeMember](32)
	m := &fakeMember{id: "e1", x: 16, y: 16}
	ix.Insert(m)

	// Unchanged position: still findable.
	ix.Update(m)
	if got := ix.QueryPoint(16, 16, 1); len(got) != 1 {
		t.Fatalf("member lost after no-op update")
	}

	// Move far away: old location empty, new location populated.
	m.x, m.y = 500, 500
	ix.Update(m)
	if got := ix.QueryPoint(16, 16, 20); len(got) != 0 {
		t.Errorf("stale member still at old location after update")
	}
	if got := ix.QueryPoint(500, 500, 1); len(got) != 1 {
		t.Errorf("moved member not found at new location")
	}
}

func TestUpdateActsAsInsertForUnknownMember(t *testing.T) {
	ix := NewIndex[*fakeMember](32)
	m := &fakeMember{id: "e1", x: 100, y: 100}
	ix.Update(m)
	if got := ix.QueryPoint(100, 100, 1); len(got) != 1 {
		t.Errorf("update of never-inserted member did not insert it")
	}
}

func TestRemoveAndDoubleRemove(t *testing.T) {
	ix := NewIndex[*fakeMember](32)
	m := &fakeMember{id: "e1", x: 5, y: 5}
	ix.Insert(m)
	ix.Remove(m)
	if got := ix.QueryPoint(5, 5, 10); len(got) != 0 {
		t.Fatalf("member found after removal")
	}
	ix.Remove(m) // never inserted anymore; must be a no-op
}

func TestRebuildReplacesContents(t *testing.T) {
	ix := NewIndex[*fakeMember](32)
	ix.Insert(&fakeMember{id: "old", x: 10, y: 10})

	fresh := []*fakeMember{
		{id: "a", x: 100, y: 100},
		{id: "b", x: 200, y: 200},
	}
	ix.Rebuild([]*fakeMember{fresh[0], fresh[1]})

	if got := ix.QueryPoint(10, 10, 5); len(got) != 0 {
		t.Errorf("rebuild kept stale member")
	}
	got := ids(ix.QueryPoint(150, 150, 100))
	want := []string{"a", "b"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("rebuild contents = %v, want %v", got, want)
	}
}

func TestQuerySpansMultipleCells(t *testing.T) {
	ix := NewIndex[*fakeMember](32)
	members := []*fakeMember{
		{id: "a", x: 1, y: 1},
		{id: "b", x: 63, y: 1},
		{id: "c", x: 1, y: 63},
		{id: "d", x: 300, y: 300},
	}
	for _, m := range members {
		ix.Insert(m)
	}
	got := ids(ix.QueryPoint(32, 32, 50))
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("query across cells = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("query across cells = %v, want %v", got, want)
		}
	}
}
