// Package rules holds the scoring steps of the settlement heuristic. Each rule
// reads the case, updates the shared worksheet and reports the factors it found.
package rules

import (
	"math"

	"settlement-engine/internal/model"
	"settlement-engine/internal/schedule"
)

// Rule defines the contract for all scoring steps. Rules run once per case in
// registry order and never fail: missing inputs contribute nothing.
type Rule interface {
	Apply(ws *Worksheet, in *model.CaseInput) []model.Factor
}

// Worksheet accumulates the running valuation of one case.
type Worksheet struct {
	Schedule *schedule.Schedule

	MedicalCosts     float64
	PainAndSuffering float64

	// Base is the additive total before any multiplier.
	Base                 float64
	RiskMultiplier       float64
	NegligenceMultiplier float64
	Fault                float64

	Gross       float64
	Capped      float64
	PolicyLimit float64 // 0 when no limit applies
	CapBinding  bool

	Contingency float64 // 0 when unrepresented
}

func NewWorksheet(s *schedule.Schedule) *Worksheet {
	return &Worksheet{
		Schedule:             s,
		RiskMultiplier:       1,
		NegligenceMultiplier: 1,
	}
}

func positive(label string, weight float64) model.Factor {
	return model.Factor{Label: label, Impact: model.ImpactPositive, Weight: weight}
}

func negative(label string, weight float64) model.Factor {
	return model.Factor{Label: label, Impact: model.ImpactNegative, Weight: weight}
}

func neutral(label string) model.Factor {
	return model.Factor{Label: label, Impact: model.ImpactNeutral, Weight: 0}
}

// multiplierFactor reports a multiplier as a factor whose weight is its
// deviation from 1.
func multiplierFactor(label string, mult float64) model.Factor {
	w := math.Max(-1, math.Min(1, mult-1))
	switch {
	case w > 0:
		return positive(label, w)
	case w < 0:
		return negative(label, w)
	default:
		return neutral(label)
	}
}
