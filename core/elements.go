package core

import "fmt"

// ElementType is the closed set of structural element kinds.
type ElementType int

const (
	Column ElementType = iota
	Beam
	Slab
	Foundation
	Joint
)

func (t ElementType) String() string {
	switch t {
	case Column:
		return "column"
	case Beam:
		return "beam"
	case Slab:
		return "slab"
	case Foundation:
		return "foundation"
	case Joint:
		return "joint"
	}
	return fmt.Sprintf("ElementType(%d)", int(t))
}

// ElementRef identifies one structural element. Identity is (Type, ID);
// IDs are dense per type, assigned in enumeration order.
type ElementRef struct {
	Type ElementType `json:"type"`
	ID   int         `json:"id"`
}

// Element is one entry of the building's fixed structural grid: its ref,
// the floor it belongs to, its rest-pose center and its box dimensions.
// FloorY is the element's height along the building, the driver of the
// mode-shape term in the kinematic response.
type Element struct {
	Ref    ElementRef
	Floor  int
	Center Vector3
	Size   Vector3
}

// FloorY is the element's rest height above ground.
func (e Element) FloorY() float64 {
	return e.Center.Y
}

// Column/beam/slab section sizes. Unitless meters, sized for the viewer.
const (
	columnSection = 0.4
	beamSection   = 0.3
	slabThickness = 0.2
	footingDepth  = 0.5
)

// Elements enumerates the structural grid for a building spec. The order is
// fixed and deterministic: foundation first, then per floor (bottom up) the
// four corner columns (outer loop x, inner loop z), the four edge beams, and
// the floor slab. Every tick walks this same order, so downstream arrays
// line up frame to frame.
func Elements(b BuildingSpec) []Element {
	b = b.Clamped()
	story := b.StoryHeight()
	hw, hd := b.Width/2, b.Depth/2

	elems := make([]Element, 0, 1+b.FloorCount*9)

	elems = append(elems, Element{
		Ref:    ElementRef{Type: Foundation, ID: 0},
		Floor:  0,
		Center: Vector3{0, -footingDepth / 2, 0},
		Size:   Vector3{b.Width + 1, footingDepth, b.Depth + 1},
	})

	columnID, beamID := 0, 0
	for floor := 0; floor < b.FloorCount; floor++ {
		base := float64(floor) * story
		top := base + story

		// Corner columns: x then z, matching the enumeration contract.
		for _, x := range []float64{-hw, hw} {
			for _, z := range []float64{-hd, hd} {
				elems = append(elems, Element{
					Ref:    ElementRef{Type: Column, ID: columnID},
					Floor:  floor,
					Center: Vector3{x, base + story/2, z},
					Size:   Vector3{columnSection, story, columnSection},
				})
				columnID++
			}
		}

		// Edge beams at the floor top: the two x-spanning edges, then the
		// two z-spanning edges.
		for _, z := range []float64{-hd, hd} {
			elems = append(elems, Element{
				Ref:    ElementRef{Type: Beam, ID: beamID},
				Floor:  floor,
				Center: Vector3{0, top, z},
				Size:   Vector3{b.Width, beamSection, beamSection},
			})
			beamID++
		}
		for _, x := range []float64{-hw, hw} {
			elems = append(elems, Element{
				Ref:    ElementRef{Type: Beam, ID: beamID},
				Floor:  floor,
				Center: Vector3{x, top, 0},
				Size:   Vector3{beamSection, beamSection, b.Depth},
			})
			beamID++
		}

		elems = append(elems, Element{
			Ref:    ElementRef{Type: Slab, ID: floor},
			Floor:  floor,
			Center: Vector3{0, top, 0},
			Size:   Vector3{b.Width, slabThickness, b.Depth},
		})
	}

	return elems
}

// FindElement looks up one element of the grid by ref. The second return is
// false when the ref does not exist for this building.
func FindElement(b BuildingSpec, ref ElementRef) (Element, bool) {
	for _, e := range Elements(b) {
		if e.Ref == ref {
			return e, true
		}
	}
	return Element{}, false
}
