package rules

import "settlement-engine/internal/model"

// LostWagesRule adds missed work at the daily rate of the annual income. Wages
// are economic damages and carry no multiplier of their own.
type LostWagesRule struct{}

func (r *LostWagesRule) Apply(ws *Worksheet, in *model.CaseInput) []model.Factor {
	w := ws.Schedule.LostWages
	daily := in.Demographics.AnnualIncome.NonNegative() / w.WorkDaysPerYear
	lost := in.Impact.MissedWorkDays.NonNegative() * daily

	ws.Base += lost
	if lost > w.FactorThreshold {
		return []model.Factor{positive("Significant Lost Wages", 0.4)}
	}
	return nil
}
