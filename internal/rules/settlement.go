package rules

import (
	"fmt"
	"math"

	"settlement-engine/internal/model"
)

// NegligenceRule applies pure comparative fault: recovery shrinks in proportion
// to the claimant's share with no bar at any percentage.
type NegligenceRule struct{}

func (r *NegligenceRule) Apply(ws *Worksheet, in *model.CaseInput) []model.Factor {
	fault := math.Max(0, math.Min(100, in.AccidentDetails.FaultPercentage.Float()))
	ws.Fault = fault
	ws.NegligenceMultiplier = 1 - fault/100

	if fault > 0 {
		return []model.Factor{negative(fmt.Sprintf("%g%% Comparative Negligence", fault), -0.8)}
	}
	return nil
}

// PolicyCapRule computes the gross value and caps it at the known policy limit.
type PolicyCapRule struct{}

func (r *PolicyCapRule) Apply(ws *Worksheet, in *model.CaseInput) []model.Factor {
	ws.Gross = math.Max(0, ws.Base*ws.RiskMultiplier*ws.NegligenceMultiplier)
	ws.Capped = ws.Gross

	limit := in.Insurance.PolicyLimits.Float()
	if !in.Insurance.PolicyLimitsKnown || limit <= 0 {
		return nil
	}
	ws.PolicyLimit = limit

	if ws.Gross > limit {
		ws.Capped = limit
		ws.CapBinding = true
		return []model.Factor{negative("Limited by Insurance Policy", -0.9)}
	}
	return nil
}

// AttorneyFeeRule notes the contingency fee. Fees are never deducted from the
// estimates, which stay gross.
type AttorneyFeeRule struct{}

func (r *AttorneyFeeRule) Apply(ws *Worksheet, in *model.CaseInput) []model.Factor {
	if !in.Insurance.HasAttorney {
		return nil
	}
	ws.Contingency = ws.Schedule.Contingency(in.Insurance.AttorneyContingency.Float())
	return []model.Factor{neutral(fmt.Sprintf("Attorney Fees (%g%% of gross)", ws.Contingency))}
}
