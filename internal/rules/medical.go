package rules

import (
	"settlement-engine/internal/estimator"
	"settlement-engine/internal/model"
)

type MedicalCostsRule struct{}

func (r *MedicalCostsRule) Apply(ws *Worksheet, in *model.CaseInput) []model.Factor {
	var factors []model.Factor

	if in.Treatment.UseEstimatedCosts {
		ws.MedicalCosts = estimator.Estimate(&in.Treatment, ws.Schedule)
		factors = append(factors, neutral("Using Estimated Medical Costs"))
	} else {
		ws.MedicalCosts = in.Treatment.TotalMedicalCosts.NonNegative()
	}

	ws.Base += ws.MedicalCosts
	return factors
}
