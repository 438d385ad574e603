package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"settlement-engine/internal/model"
	"settlement-engine/internal/schedule"
)

func TestEstimateEmptyTreatment(t *testing.T) {
	assert.Equal(t, 0.0, Estimate(&model.Treatment{}, nil))
}

func TestEstimateSumsEveryCategory(t *testing.T) {
	tr := &model.Treatment{
		EmergencyRoomVisits:     1,
		UrgentCareVisits:        2,
		ChiropracticSessions:    10,
		PhysicalTherapySessions: 5,
		XRays:                   2,
		MRIs:                    1,
		CTScans:                 1,
		PainManagementVisits:    2,
		OrthopedicConsults:      1,
		TPIInjections:           1,
		FacetInjections:         1,
		MBBInjections:           1,
		ESIInjections:           1,
		RFAInjections:           1,
		PRPInjections:           1,
	}

	// 3000 + 1000 + 1500 + 1000 + 2000 + 3500 + 1500 + 750 + 37000
	assert.Equal(t, 51250.0, Estimate(tr, schedule.Default()))
	assert.Equal(t, 37000.0, InjectionCost(tr, schedule.Default()))
}

func TestEstimateSurgery(t *testing.T) {
	tests := []struct {
		name string
		tr   model.Treatment
		want float64
	}{
		{"recommended minor", model.Treatment{SurgeryRecommended: true, SurgeryType: model.SurgeryMinor}, 40000},
		{"recommended major", model.Treatment{SurgeryRecommended: true, SurgeryType: model.SurgeryMajor}, 125000},
		{"recommended without type", model.Treatment{SurgeryRecommended: true}, 0},
		{"completed only", model.Treatment{SurgeryCompleted: true, SurgeryType: model.SurgeryModerate}, 0},
		{"unknown type", model.Treatment{SurgeryRecommended: true, SurgeryType: "elective"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Estimate(&tt.tr, nil))
		})
	}
}

func TestEstimateIgnoresNegativeAndFractionalCounts(t *testing.T) {
	tr := &model.Treatment{EmergencyRoomVisits: -4, MRIs: 1.9}
	assert.Equal(t, 2000.0, Estimate(tr, nil))
}
