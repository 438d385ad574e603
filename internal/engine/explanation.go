package engine

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"settlement-engine/internal/model"
	"settlement-engine/internal/rules"
)

const disclaimer = "These estimates are based on actual California settlement data and realistic pain & suffering calculations. " +
	"Insurance companies evaluate medical costs, injury severity, treatment complexity, permanence, and comparative fault. " +
	"Initial offers are typically 30-50% below these estimates. " +
	"For cases with fractures, TBI, spinal injuries, or scarring, settlement values often exceed simple medical cost multipliers due to permanent impact and pain & suffering."

func explain(in *model.CaseInput, ws *rules.Worksheet, res *model.SettlementResult) string {
	e := ws.Schedule.Explanation
	high := float64(res.HighEstimate)

	var sentences []string
	switch {
	case high < e.MinorBelow:
		sentences = append(sentences, "This appears to be a minor soft tissue injury case.")
	case high < e.ModerateBelow:
		sentences = append(sentences, "This appears to be a moderate injury case with significant treatment or complications.")
	case high < e.SeriousBelow:
		sentences = append(sentences, "This appears to be a serious injury case with major treatment requirements.")
	default:
		sentences = append(sentences, "This appears to be a catastrophic injury case with life-altering consequences.")
	}

	if in.AccidentDetails.ImpactSeverity == model.SeverityLow {
		sentences = append(sentences, "The low impact nature will make causation challenging to prove.")
	}
	if in.Treatment.SurgeryCompleted || in.Treatment.SurgeryRecommended {
		sentences = append(sentences, "The need for surgery significantly increases case value.")
	}
	if len(in.Injuries.PreExistingConditions) > 0 {
		sentences = append(sentences, "Pre-existing conditions invoke the eggshell plaintiff doctrine - the defendant takes you as they find you.")
	}
	if ws.Fault > e.SharedFaultAbove {
		sentences = append(sentences, "Your shared fault substantially reduces the settlement value.")
	}
	if ws.CapBinding {
		sentences = append(sentences, "The settlement is capped by available insurance limits.")
	}

	var b strings.Builder
	b.WriteString(strings.Join(sentences, " "))
	b.WriteString("\n\n")
	b.WriteString(disclaimer)

	if in.Insurance.HasAttorney {
		keep := 1 - ws.Contingency/100
		netLow := int64(math.Round(float64(res.LowEstimate) * keep))
		netHigh := int64(math.Round(float64(res.HighEstimate) * keep))
		b.WriteString(" With attorney fees, your net recovery would be approximately $")
		b.WriteString(humanize.Comma(netLow))
		b.WriteString(" to $")
		b.WriteString(humanize.Comma(netHigh))
		b.WriteString(".")
	}

	return b.String()
}
