package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"settlement-engine/internal/model"
)

func TestText(t *testing.T) {
	res := &model.SettlementResult{
		LowEstimate:  9100,
		MidEstimate:  11050,
		HighEstimate: 1300000,
		MedicalCosts: 8000,
		Factors: []model.Factor{
			{Label: "Ongoing Treatment", Impact: model.ImpactPositive, Weight: 0.3},
			{Label: "20% Comparative Negligence", Impact: model.ImpactNegative, Weight: -0.8},
			{Label: "Moderate Impact", Impact: model.ImpactNeutral},
		},
		Explanation: "This appears to be a minor soft tissue injury case.",
	}

	out := Text(res)

	assert.Contains(t, out, "Low:            $9,100\n")
	assert.Contains(t, out, "High:           $1,300,000\n")
	assert.Contains(t, out, "Medical costs:  $8,000\n")
	assert.Contains(t, out, "+ Ongoing Treatment")
	assert.Contains(t, out, "+0.30\n")
	assert.Contains(t, out, "- 20% Comparative Negligence")
	assert.Contains(t, out, "-0.80\n")
	assert.Contains(t, out, "= Moderate Impact")
	assert.True(t, strings.HasSuffix(out, "minor soft tissue injury case.\n"))
}

func TestTextNoFactors(t *testing.T) {
	out := Text(&model.SettlementResult{HighEstimate: 500})

	assert.Contains(t, out, "  none\n")
	assert.Contains(t, out, "$500")
}

func TestEstimate(t *testing.T) {
	assert.Equal(t, "Estimated medical costs: $49,000\n", Estimate(&model.EstimateResult{MedicalCosts: 49000}))
}
