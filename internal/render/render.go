// Package render produces a plain-text report from a settlement result.
package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"settlement-engine/internal/model"
)

// Text renders a settlement result as a terminal report.
func Text(res *model.SettlementResult) string {
	var b strings.Builder

	b.WriteString("Settlement Estimate\n")
	b.WriteString("===================\n\n")
	fmt.Fprintf(&b, "  Low:            %s\n", dollars(res.LowEstimate))
	fmt.Fprintf(&b, "  Mid:            %s\n", dollars(res.MidEstimate))
	fmt.Fprintf(&b, "  High:           %s\n", dollars(res.HighEstimate))
	fmt.Fprintf(&b, "  Medical costs:  %s\n\n", dollars(res.MedicalCosts))

	b.WriteString("Factors\n")
	b.WriteString("-------\n")
	if len(res.Factors) == 0 {
		b.WriteString("  none\n")
	}
	for _, f := range res.Factors {
		fmt.Fprintf(&b, "  %s %-50s %+.2f\n", marker(f.Impact), f.Label, f.Weight)
	}

	if res.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(res.Explanation)
		b.WriteString("\n")
	}
	return b.String()
}

// Estimate renders an estimator-only result.
func Estimate(res *model.EstimateResult) string {
	return fmt.Sprintf("Estimated medical costs: %s\n", dollars(res.MedicalCosts))
}

func dollars(v int64) string {
	return "$" + humanize.Comma(v)
}

func marker(impact model.FactorImpact) string {
	switch impact {
	case model.ImpactPositive:
		return "+"
	case model.ImpactNegative:
		return "-"
	default:
		return "="
	}
}
