package core

import "fmt"

// InteractionType classifies how load moves across a structural connection.
type InteractionType int

const (
	LoadTransfer InteractionType = iota
	MomentConnection
	ShearConnection
)

func (t InteractionType) String() string {
	switch t {
	case LoadTransfer:
		return "load-transfer"
	case MomentConnection:
		return "moment-connection"
	case ShearConnection:
		return "shear-connection"
	}
	return fmt.Sprintf("InteractionType(%d)", int(t))
}

// NonStructuralEffect models an attached non-structural component (infill
// wall, facade panel, partition) that stiffens a connection without carrying
// primary load.
type NonStructuralEffect struct {
	Kind                  string  `json:"kind" yaml:"kind"`
	StiffnessContribution float64 `json:"stiffnessContribution" yaml:"stiffnessContribution"`
}

// InteractionEdge is one directed structural connection of the building
// graph with its static transfer characteristics. Ratios and resistances
// are in [0,1]; ThermalExpansion is mm/degC.
type InteractionEdge struct {
	Source               ElementRef            `json:"source"`
	Target               ElementRef            `json:"target"`
	Type                 InteractionType       `json:"interactionType"`
	LoadTransferRatio    float64               `json:"loadTransferRatio"`
	MomentResistance     float64               `json:"momentResistance"`
	ShearResistance      float64               `json:"shearResistance"`
	ThermalExpansion     float64               `json:"thermalExpansion"`
	DynamicAmplification float64               `json:"dynamicAmplification"`
	NonStructural        []NonStructuralEffect `json:"nonStructural,omitempty"`
}

// DynamicConditions is the environment record the interaction analysis runs
// under: temperature degC, load variation percent, moisture percent, creep
// factor, fatigue accumulation in [0,1] and total load cycles.
type DynamicConditions struct {
	Temperature         float64 `json:"temperature" yaml:"temperature"`
	LoadVariation       float64 `json:"loadVariation" yaml:"loadVariation"`
	MoistureContent     float64 `json:"moistureContent" yaml:"moistureContent"`
	CreepFactor         float64 `json:"creepFactor" yaml:"creepFactor"`
	FatigueAccumulation float64 `json:"fatigueAccumulation" yaml:"fatigueAccumulation"`
	CyclesCount         float64 `json:"cyclesCount" yaml:"cyclesCount"`
}

// DefaultConditions is the benign baseline: room temperature, no overload,
// fresh structure.
func DefaultConditions() DynamicConditions {
	return DynamicConditions{
		Temperature:         20,
		LoadVariation:       10,
		MoistureContent:     40,
		CreepFactor:         0.1,
		FatigueAccumulation: 0.05,
		CyclesCount:         10000,
	}
}

// LoadDistribution splits the transferred load into its components.
type LoadDistribution struct {
	Axial  float64 `json:"axial"`
	Shear  float64 `json:"shear"`
	Moment float64 `json:"moment"`
}

// InteractionResult is the analysis output for one connection.
type InteractionResult struct {
	Load                 LoadDistribution `json:"loadDistribution"`
	JointRotation        float64          `json:"jointRotation"`        // rad
	RelativeDisplacement float64          `json:"relativeDisplacement"` // mm
	StressConcentration  float64          `json:"stressConcentration"`  // MPa
	DamageIndex          float64          `json:"damageIndex"`
}

// Per-connection-type transfer defaults used when deriving the graph from a
// building spec.
var edgeDefaults = map[InteractionType]InteractionEdge{
	LoadTransfer:     {LoadTransferRatio: 0.9, MomentResistance: 0.4, ShearResistance: 0.7, ThermalExpansion: 0.012, DynamicAmplification: 1.2},
	MomentConnection: {LoadTransferRatio: 0.7, MomentResistance: 0.85, ShearResistance: 0.6, ThermalExpansion: 0.010, DynamicAmplification: 1.5},
	ShearConnection:  {LoadTransferRatio: 0.6, MomentResistance: 0.3, ShearResistance: 0.9, ThermalExpansion: 0.011, DynamicAmplification: 1.3},
}

func newEdge(src, dst ElementRef, t InteractionType) InteractionEdge {
	e := edgeDefaults[t]
	e.Source = src
	e.Target = dst
	e.Type = t
	return e
}

// ConnectionGraph derives the static interaction edge set from the building
// grid: foundation feeds the ground-floor columns (load transfer), columns
// carry their floor's beams through moment connections and the column-top
// joints, beams hand the slab its load through shear connections. Infill
// panels attach to the ground floor moment connections as non-structural
// stiffeners.
func ConnectionGraph(b BuildingSpec) []InteractionEdge {
	b = b.Clamped()
	var edges []InteractionEdge

	for floor := 0; floor < b.FloorCount; floor++ {
		for corner := 0; corner < 4; corner++ {
			col := ElementRef{Type: Column, ID: floor*4 + corner}

			if floor == 0 {
				edges = append(edges, newEdge(ElementRef{Type: Foundation, ID: 0}, col, LoadTransfer))
			} else {
				// Column stacks on the column below.
				below := ElementRef{Type: Column, ID: (floor-1)*4 + corner}
				edges = append(edges, newEdge(below, col, LoadTransfer))
			}

			joint := ElementRef{Type: Joint, ID: floor*4 + corner}
			e := newEdge(col, joint, MomentConnection)
			if floor == 0 {
				e.NonStructural = []NonStructuralEffect{
					{Kind: "infill-wall", StiffnessContribution: 0.3},
					{Kind: "facade-panel", StiffnessContribution: 0.15},
				}
			}
			edges = append(edges, e)
		}

		for i := 0; i < 4; i++ {
			beam := ElementRef{Type: Beam, ID: floor*4 + i}
			// Each beam spans two corner joints; attach it at the lower
			// numbered one and hand the slab its load.
			joint := ElementRef{Type: Joint, ID: floor*4 + i}
			edges = append(edges, newEdge(joint, beam, MomentConnection))
			edges = append(edges, newEdge(beam, ElementRef{Type: Slab, ID: floor}, ShearConnection))
		}
	}

	return edges
}
