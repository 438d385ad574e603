package rules

import (
	"math"

	"settlement-engine/internal/model"
)

type LifeImpactRule struct{}

func (r *LifeImpactRule) Apply(ws *Worksheet, in *model.CaseInput) []model.Factor {
	li := ws.Schedule.LifeImpact
	im := in.Impact
	var factors []model.Factor

	if im.PermanentImpairment {
		rating := math.Min(100, im.ImpairmentRating.NonNegative())
		if rating == 0 {
			rating = li.DefaultImpairmentRating
		}
		ws.Base += rating * li.ImpairmentPerPoint
		factors = append(factors, positive("Permanent Impairment", 0.9))
	}

	if im.EmotionalDistress {
		ws.Base += li.EmotionalDistress
		factors = append(factors, positive("Emotional Distress/PTSD", 0.2))
	}

	if im.LossOfConsortium {
		ws.Base += li.LossOfConsortium
		factors = append(factors, positive("Loss of Consortium", 0.2))
	}

	if im.DillonVLeggClaim {
		ws.Base += li.DillonVLegg
		factors = append(factors, positive("Dillon v. Legg Claim", 0.2))
	}

	return factors
}
