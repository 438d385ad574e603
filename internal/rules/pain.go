package rules

import "settlement-engine/internal/model"

// PainAndSufferingRule accrues general damages per treatment event on top of a
// flat floor.
type PainAndSufferingRule struct{}

func (r *PainAndSufferingRule) Apply(ws *Worksheet, in *model.CaseInput) []model.Factor {
	p := ws.Schedule.PainAndSuffering
	t := in.Treatment

	accrued := p.Floor
	accrued += t.EmergencyRoomVisits.Count() * p.EmergencyRoom
	accrued += t.UrgentCareVisits.Count() * p.UrgentCare
	accrued += t.ChiropracticSessions.Count() * p.Chiropractic
	accrued += t.PhysicalTherapySessions.Count() * p.PhysicalTherapy
	accrued += t.PainManagementVisits.Count() * p.PainManagement
	accrued += t.OrthopedicConsults.Count() * p.Orthopedic

	accrued += t.TPIInjections.Count() * p.TPIInjection
	accrued += t.PRPInjections.Count() * p.PRPInjection
	accrued += t.FacetInjections.Count() * p.FacetInjection
	accrued += t.MBBInjections.Count() * p.MBBInjection
	accrued += t.ESIInjections.Count() * p.ESIInjection
	accrued += t.RFAInjections.Count() * p.RFAInjection

	accrued += t.XRays.Count() * p.XRay
	accrued += t.MRIs.Count() * p.MRI
	accrued += t.CTScans.Count() * p.CTScan

	var factors []model.Factor
	if t.OngoingTreatment {
		accrued *= p.OngoingTreatmentUplift
		factors = append(factors, positive("Ongoing Treatment", 0.3))
	}

	ws.PainAndSuffering = accrued
	ws.Base += accrued
	return factors
}
