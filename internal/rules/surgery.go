package rules

import "settlement-engine/internal/model"

type SurgeryRule struct{}

func (r *SurgeryRule) Apply(ws *Worksheet, in *model.CaseInput) []model.Factor {
	t := in.Treatment
	if t.SurgeryType == "" {
		return nil
	}
	cost := ws.Schedule.SurgeryCost(string(t.SurgeryType))
	d := ws.Schedule.SurgeryDamages

	switch {
	case bool(t.SurgeryCompleted):
		ws.Base += cost * d.CompletedFraction
		return []model.Factor{positive("Surgery Completed", 0.8)}
	case bool(t.SurgeryRecommended):
		ws.Base += cost * d.RecommendedFraction
		return []model.Factor{positive("Surgery Recommended", 0.6)}
	}
	return nil
}
