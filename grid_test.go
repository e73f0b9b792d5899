package dbscan

import "testing"

func TestCellKey_OrdersByXThenY(t *testing.T) {
	if cellKey(0, 1) >= cellKey(1, 0) {
		t.Error("cellKey should order primarily by cx")
	}
	if cellKey(2, 5) == cellKey(5, 2) {
		t.Error("cellKey must not be symmetric in its arguments")
	}
}

func TestBuildGrid_EmptyInput(t *testing.T) {
	g := buildGrid(0, nil, nil)
	if len(g.uniqueKeys) != 0 {
		t.Errorf("uniqueKeys = %v, want empty", g.uniqueKeys)
	}
	if len(g.cellOffsets) != 1 || g.cellOffsets[0] != 0 {
		t.Errorf("cellOffsets = %v, want [0]", g.cellOffsets)
	}
}

func TestBuildGrid_GroupsByCell(t *testing.T) {
	cellX := []uint32{0, 0, 1, 0}
	cellY := []uint32{0, 0, 1, 1}
	g := buildGrid(4, cellX, cellY)

	if len(g.uniqueKeys) != 3 {
		t.Fatalf("want 3 unique cells, got %d (%v)", len(g.uniqueKeys), g.uniqueKeys)
	}

	begin, end, ok := g.cellRange(0, 0)
	if !ok {
		t.Fatal("expected cell (0,0) to be present")
	}
	members := g.orderedIndices[begin:end]
	if len(members) != 2 {
		t.Errorf("cell (0,0) members = %v, want 2 entries", members)
	}
	seen := map[uint32]bool{}
	for _, m := range members {
		seen[m] = true
	}
	if !seen[0] || !seen[1] {
		t.Errorf("cell (0,0) should contain points 0 and 1, got %v", members)
	}

	if _, _, ok := g.cellRange(9, 9); ok {
		t.Error("cell (9,9) should be absent")
	}
}

func TestGrid_ForEachNeighborCell_VisitsThreeByThreeBlock(t *testing.T) {
	// Nine points, one per cell in a 3x3 block.
	cellX := []uint32{0, 0, 0, 1, 1, 1, 2, 2, 2}
	cellY := []uint32{0, 1, 2, 0, 1, 2, 0, 1, 2}
	g := buildGrid(9, cellX, cellY)

	visited := map[uint32]bool{}
	g.forEachNeighborCell(1, 1, func(idx uint32) bool { visited[idx] = true; return true })
	if len(visited) != 9 {
		t.Errorf("expected all 9 points visited from center cell, got %d", len(visited))
	}
}

func TestGrid_ForEachNeighborCell_StopsOnFalse(t *testing.T) {
	cellX := []uint32{0, 0, 0, 1, 1, 1, 2, 2, 2}
	cellY := []uint32{0, 1, 2, 0, 1, 2, 0, 1, 2}
	g := buildGrid(9, cellX, cellY)

	visitCount := 0
	g.forEachNeighborCell(1, 1, func(idx uint32) bool {
		visitCount++
		return visitCount < 3
	})
	if visitCount != 3 {
		t.Errorf("visitCount = %d, want exactly 3 (iteration should stop once visit returns false)", visitCount)
	}
}

func TestGrid_ForEachNeighborCell_ClampsNegativeCells(t *testing.T) {
	cellX := []uint32{0, 1}
	cellY := []uint32{0, 0}
	g := buildGrid(2, cellX, cellY)

	visited := map[uint32]bool{}
	g.forEachNeighborCell(0, 0, func(idx uint32) bool { visited[idx] = true; return true })
	if len(visited) != 2 {
		t.Errorf("visited = %v, want both points reachable from corner cell (0,0)", visited)
	}
}
