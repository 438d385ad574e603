// Package estimator derives a billed medical total from treatment counts when
// the claimant has no exact figure.
package estimator

import (
	"settlement-engine/internal/model"
	"settlement-engine/internal/schedule"
)

// Estimate sums count × unit cost over every treatment category. A recommended
// surgery with a known type adds its flat cost; completion alone adds nothing.
func Estimate(t *model.Treatment, s *schedule.Schedule) float64 {
	if s == nil {
		s = schedule.Default()
	}
	c := s.UnitCosts

	var estimated float64
	estimated += t.EmergencyRoomVisits.Count() * c.EmergencyRoom
	estimated += t.UrgentCareVisits.Count() * c.UrgentCare
	estimated += t.ChiropracticSessions.Count() * c.Chiropractic
	estimated += t.PhysicalTherapySessions.Count() * c.PhysicalTherapy

	// imaging
	estimated += t.XRays.Count() * c.XRay
	estimated += t.MRIs.Count() * c.MRI
	estimated += t.CTScans.Count() * c.CTScan

	estimated += t.PainManagementVisits.Count() * c.PainManagement
	estimated += t.OrthopedicConsults.Count() * c.Orthopedic

	estimated += InjectionCost(t, s)

	if t.SurgeryRecommended && t.SurgeryType != "" {
		estimated += s.SurgeryCost(string(t.SurgeryType))
	}

	return estimated
}

// InjectionCost is the billed cost of all injection procedures.
func InjectionCost(t *model.Treatment, s *schedule.Schedule) float64 {
	c := s.UnitCosts
	return t.TPIInjections.Count()*c.TPIInjection +
		t.FacetInjections.Count()*c.FacetInjection +
		t.MBBInjections.Count()*c.MBBInjection +
		t.ESIInjections.Count()*c.ESIInjection +
		t.RFAInjections.Count()*c.RFAInjection +
		t.PRPInjections.Count()*c.PRPInjection
}
