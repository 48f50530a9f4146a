package core

import "testing"

func testBuilding() BuildingSpec {
	return BuildingSpec{
		Height:       30,
		Width:        10,
		Depth:        8,
		FloorCount:   5,
		Stiffness:    5,
		DampingRatio: 0.05,
		Material:     Concrete,
	}
}

// TestElementsCount: one foundation plus, per floor, four columns, four
// beams and one slab.
func TestElementsCount(t *testing.T) {
	b := testBuilding()
	elems := Elements(b)
	want := 1 + b.FloorCount*9
	if len(elems) != want {
		t.Fatalf("element count: got %d, want %d", len(elems), want)
	}
}

// TestElementsEnumerationOrder: foundation first, then per floor bottom-up
// the columns, beams and slab, so downstream per-tick arrays line up frame
// to frame.
func TestElementsEnumerationOrder(t *testing.T) {
	elems := Elements(testBuilding())

	if elems[0].Ref.Type != Foundation {
		t.Fatalf("first element should be the foundation, got %v", elems[0].Ref)
	}

	i := 1
	for floor := 0; floor < 5; floor++ {
		for c := 0; c < 4; c++ {
			if elems[i].Ref.Type != Column || elems[i].Floor != floor {
				t.Fatalf("index %d: want floor %d column, got %+v", i, floor, elems[i].Ref)
			}
			i++
		}
		for bm := 0; bm < 4; bm++ {
			if elems[i].Ref.Type != Beam || elems[i].Floor != floor {
				t.Fatalf("index %d: want floor %d beam, got %+v", i, floor, elems[i].Ref)
			}
			i++
		}
		if elems[i].Ref.Type != Slab || elems[i].Ref.ID != floor {
			t.Fatalf("index %d: want slab %d, got %+v", i, floor, elems[i].Ref)
		}
		i++
	}
}

// TestElementsUniqueRefs: identity is (type, id) and no two elements share
// both.
func TestElementsUniqueRefs(t *testing.T) {
	seen := make(map[ElementRef]bool)
	for _, e := range Elements(testBuilding()) {
		if seen[e.Ref] {
			t.Fatalf("duplicate ref %+v", e.Ref)
		}
		seen[e.Ref] = true
	}
}

// TestElementsGeometry sanity-checks rest-pose placement: columns at the
// corners spanning their story, slabs at floor tops.
func TestElementsGeometry(t *testing.T) {
	b := testBuilding()
	story := b.StoryHeight()

	for _, e := range Elements(b) {
		switch e.Ref.Type {
		case Column:
			wantY := float64(e.Floor)*story + story/2
			if e.Center.Y != wantY {
				t.Errorf("column %d: center y %v, want %v", e.Ref.ID, e.Center.Y, wantY)
			}
			if ax, az := abs(e.Center.X), abs(e.Center.Z); ax != b.Width/2 || az != b.Depth/2 {
				t.Errorf("column %d not at a corner: (%v, %v)", e.Ref.ID, e.Center.X, e.Center.Z)
			}
		case Slab:
			wantY := float64(e.Floor+1) * story
			if e.Center.Y != wantY {
				t.Errorf("slab %d: center y %v, want %v", e.Ref.ID, e.Center.Y, wantY)
			}
		case Foundation:
			if e.Center.Y >= 0 {
				t.Errorf("foundation should sit below grade, got y=%v", e.Center.Y)
			}
		}
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func TestFindElement(t *testing.T) {
	b := testBuilding()
	if _, ok := FindElement(b, ElementRef{Type: Slab, ID: 2}); !ok {
		t.Error("slab 2 should exist")
	}
	if _, ok := FindElement(b, ElementRef{Type: Slab, ID: 99}); ok {
		t.Error("slab 99 should not exist")
	}
}

// TestConnectionGraphShape: the derived edge set wires foundation to the
// ground-floor columns, stacks columns, and hands each beam's load to its
// slab.
func TestConnectionGraphShape(t *testing.T) {
	b := testBuilding()
	edges := ConnectionGraph(b)

	counts := make(map[InteractionType]int)
	foundationFeeds := 0
	groundInfill := 0
	for _, e := range edges {
		counts[e.Type]++
		if e.Source.Type == Foundation {
			foundationFeeds++
			if e.Type != LoadTransfer {
				t.Errorf("foundation edge should be load transfer, got %v", e.Type)
			}
		}
		if len(e.NonStructural) > 0 {
			groundInfill++
		}
	}

	if foundationFeeds != 4 {
		t.Errorf("foundation should feed 4 ground columns, got %d", foundationFeeds)
	}
	if groundInfill != 4 {
		t.Errorf("infill panels should attach to the 4 ground moment connections, got %d", groundInfill)
	}
	// Per floor: 4 column load transfers, 4 column-joint + 4 joint-beam
	// moment connections, 4 beam-slab shear connections.
	if want := b.FloorCount * 4; counts[LoadTransfer] != want {
		t.Errorf("load transfer edges: got %d, want %d", counts[LoadTransfer], want)
	}
	if want := b.FloorCount * 8; counts[MomentConnection] != want {
		t.Errorf("moment edges: got %d, want %d", counts[MomentConnection], want)
	}
	if want := b.FloorCount * 4; counts[ShearConnection] != want {
		t.Errorf("shear edges: got %d, want %d", counts[ShearConnection], want)
	}
}
