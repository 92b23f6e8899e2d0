package aci

// LoadCombination represents a strength design load combination
// ASCE 7 / NSCP 2015 Section 203.3
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D
	Live       float64 // L
	Roof       float64 // Lr
	Wind       float64 // W
	Earthquake float64 // E
	Rain       float64 // R
}

// Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Dead: 1.4},
	{ID: "2", Description: "1.2D + 1.6L + 0.5(Lr or R)", Dead: 1.2, Live: 1.6, Roof: 0.5, Rain: 0.5},
	{ID: "3", Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)", Dead: 1.2, Live: 1.0, Roof: 1.6, Rain: 1.6, Wind: 0.5},
	{ID: "4", Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)", Dead: 1.2, Live: 1.0, Wind: 1.0, Roof: 0.5, Rain: 0.5},
	{ID: "5", Description: "1.2D + 1.0E + 1.0L", Dead: 1.2, Live: 1.0, Earthquake: 1.0},
	{ID: "6", Description: "0.9D + 1.0W", Dead: 0.9, Wind: 1.0},
	{ID: "7", Description: "0.9D + 1.0E", Dead: 0.9, Earthquake: 1.0},
}

// Effect holds one unfactored load effect per load type. For column checks
// it is used once for the axial force and once for the moment.
type Effect struct {
	Dead       float64
	Live       float64
	Roof       float64
	Wind       float64
	Earthquake float64
	Rain       float64
}

// Factor applies the combination's load factors to an effect
func (lc LoadCombination) Factor(e Effect) float64 {
	return lc.Dead*e.Dead +
		lc.Live*e.Live +
		lc.Roof*e.Roof +
		lc.Wind*e.Wind +
		lc.Earthquake*e.Earthquake +
		lc.Rain*e.Rain
}

// Demand is a factored axial force (compression positive) with its
// factored moment under one combination.
type Demand struct {
	Combination LoadCombination
	Pu          float64
	Mu          float64
}

// Demands evaluates every combination for the given axial and moment effects
func Demands(axial, moment Effect, combinations []LoadCombination) []Demand {
	out := make([]Demand, 0, len(combinations))
	for _, combo := range combinations {
		out = append(out, Demand{
			Combination: combo,
			Pu:          combo.Factor(axial),
			Mu:          combo.Factor(moment),
		})
	}
	return out
}

// GoverningMoment finds the maximum factored moment from all combinations
func GoverningMoment(moment Effect, combinations []LoadCombination) (float64, LoadCombination) {
	var maxMoment float64
	var governing LoadCombination

	for _, combo := range combinations {
		mu := combo.Factor(moment)
		if mu > maxMoment {
			maxMoment = mu
			governing = combo
		}
	}

	return maxMoment, governing
}
