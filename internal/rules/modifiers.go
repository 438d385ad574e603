package rules

import (
	"fmt"
	"math"

	"settlement-engine/internal/model"
)

var severityLabels = map[model.ImpactSeverity]string{
	model.SeverityLow:          "Low Impact Collision",
	model.SeverityModerate:     "Moderate Impact",
	model.SeveritySevere:       "Severe Impact",
	model.SeverityCatastrophic: "Catastrophic Impact",
}

type SeverityRule struct{}

func (r *SeverityRule) Apply(ws *Worksheet, in *model.CaseInput) []model.Factor {
	sev := in.AccidentDetails.ImpactSeverity
	label, known := severityLabels[sev]
	mult, priced := ws.Schedule.Severity[string(sev)]
	if !known || !priced {
		return nil
	}
	ws.RiskMultiplier *= mult
	return []model.Factor{multiplierFactor(label, mult)}
}

// AgeRule applies the recovery and eggshell adjustments: younger claimants heal
// faster, older ones are more fragile. An unset age is neutral.
type AgeRule struct{}

func (r *AgeRule) Apply(ws *Worksheet, in *model.CaseInput) []model.Factor {
	a := ws.Schedule.Age
	age := in.Demographics.Age.Float()

	switch {
	case age > 0 && age < a.YoungBelow:
		ws.RiskMultiplier *= a.YoungMultiplier
		return []model.Factor{multiplierFactor("Young Age (Faster Recovery)", a.YoungMultiplier)}
	case age > a.ElderlyAbove:
		ws.RiskMultiplier *= a.ElderlyMultiplier
		return []model.Factor{multiplierFactor("Advanced Age (Fragile/Eggshell)", a.ElderlyMultiplier)}
	}
	return nil
}

// PreExistingRule raises the value for pre-existing conditions. The defendant
// takes the plaintiff as found, so fragility enhances rather than discounts.
type PreExistingRule struct{}

func (r *PreExistingRule) Apply(ws *Worksheet, in *model.CaseInput) []model.Factor {
	n := len(in.Injuries.PreExistingConditions)
	if n == 0 {
		return nil
	}
	p := ws.Schedule.PreExisting
	enhancement := math.Min(p.Cap, float64(n)*p.PerCondition)

	ws.RiskMultiplier *= 1 + enhancement
	return []model.Factor{positive(fmt.Sprintf("%d Pre-existing Conditions (Eggshell Plaintiff)", n), enhancement)}
}

type PriorAccidentsRule struct{}

func (r *PriorAccidentsRule) Apply(ws *Worksheet, in *model.CaseInput) []model.Factor {
	n := in.AccidentDetails.PriorAccidents.Count()
	if n == 0 {
		return nil
	}
	p := ws.Schedule.PriorAccidents
	reduction := math.Min(p.Cap, n*p.PerAccident)

	ws.RiskMultiplier *= 1 - reduction
	return []model.Factor{negative(fmt.Sprintf("%d Prior Accidents", int64(n)), -reduction)}
}
