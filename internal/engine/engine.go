package engine

import (
	"math"

	"settlement-engine/internal/estimator"
	"settlement-engine/internal/model"
	"settlement-engine/internal/rules"
	"settlement-engine/internal/schedule"
)

// Calculate scores a case. It is a pure function of the case and the schedule:
// identical inputs always produce identical results, and no input fails.
func Calculate(in *model.CaseInput, s *schedule.Schedule) *model.SettlementResult {
	if s == nil {
		s = schedule.Default()
	}
	if in == nil {
		in = &model.CaseInput{}
	}

	ws := rules.NewWorksheet(s)
	factors := []model.Factor{}
	for _, rule := range rules.All() {
		factors = append(factors, rule.Apply(ws, in)...)
	}

	high := math.Round(amount(ws.Capped) * s.Range.High)
	if ws.PolicyLimit > 0 && high > ws.PolicyLimit {
		high = math.Floor(ws.PolicyLimit)
	}

	result := &model.SettlementResult{
		LowEstimate:  int64(math.Round(high * s.Range.Low)),
		MidEstimate:  int64(math.Round(high * s.Range.Mid)),
		HighEstimate: int64(high),
		MedicalCosts: int64(math.Round(amount(ws.MedicalCosts))),
		Factors:      factors,
	}
	result.Explanation = explain(in, ws, result)

	return result
}

// EstimateMedicalCosts runs only the medical cost estimator, rounded the same
// way Calculate reports medical costs.
func EstimateMedicalCosts(in *model.CaseInput, s *schedule.Schedule) *model.EstimateResult {
	if s == nil {
		s = schedule.Default()
	}
	if in == nil {
		in = &model.CaseInput{}
	}
	return &model.EstimateResult{
		MedicalCosts: int64(math.Round(amount(estimator.Estimate(&in.Treatment, s)))),
	}
}

// maxAmount is the largest reported dollar figure. Integers up to 2^53 are
// exact in a float64 and convert to int64 without overflow.
const maxAmount = 1 << 53

// amount clamps a running total to [0, maxAmount]. Totals that overflowed to
// +Inf report maxAmount; NaN reports 0.
func amount(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	return math.Min(v, maxAmount)
}
