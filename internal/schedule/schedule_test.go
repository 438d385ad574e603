package schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchedule(t *testing.T) {
	s := Default()

	assert.Equal(t, 3000.0, s.UnitCosts.EmergencyRoom)
	assert.Equal(t, 15000.0, s.UnitCosts.RFAInjection)
	assert.Equal(t, 125000.0, s.SurgeryCost("major"))
	assert.Equal(t, 0.0, s.SurgeryCost("cosmetic"))
	assert.Equal(t, 500.0, s.PainAndSuffering.Floor)
	assert.Equal(t, 1.25, s.PainAndSuffering.OngoingTreatmentUplift)
	assert.Equal(t, 0.6, s.Severity["low"])
	assert.Equal(t, 250.0, s.LostWages.WorkDaysPerYear)
	assert.Same(t, s, Default())
}

func TestUnitCostsStayBelowPainWeightsForVisits(t *testing.T) {
	s := Default()

	assert.Less(t, s.UnitCosts.Chiropractic, s.PainAndSuffering.Chiropractic)
	assert.Less(t, s.UnitCosts.UrgentCare, s.PainAndSuffering.UrgentCare)
	assert.Less(t, s.UnitCosts.PainManagement, s.PainAndSuffering.PainManagement)
	assert.Less(t, s.SurgeryCost("minor"), s.SurgeryCost("moderate"))
	assert.Less(t, s.SurgeryCost("moderate"), s.SurgeryCost("major"))
}

func TestLookups(t *testing.T) {
	s := Default()

	assert.Equal(t, 80000.0, s.FractureValue("spine"))
	assert.Equal(t, 30000.0, s.FractureValue("toe"))
	assert.Equal(t, 200000.0, s.TBIValue("severe"))
	assert.Equal(t, 35000.0, s.TBIValue(""))
	assert.Equal(t, 40.0, s.Contingency(40))
	assert.Equal(t, 33.0, s.Contingency(0))
	assert.Equal(t, 33.0, s.Contingency(50))
}

func TestParsePartialOverride(t *testing.T) {
	s, err := Parse([]byte("unit_costs:\n  emergency_room: 4000\nfractures:\n  sites:\n    toe: 8000\n"))
	require.NoError(t, err)

	assert.Equal(t, 4000.0, s.UnitCosts.EmergencyRoom)
	assert.Equal(t, 500.0, s.UnitCosts.UrgentCare)
	assert.Equal(t, 8000.0, s.FractureValue("toe"))
	assert.Equal(t, 80000.0, s.FractureValue("spine"))

	assert.Equal(t, 3000.0, Default().UnitCosts.EmergencyRoom)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"negative floor":  "pain_and_suffering:\n  floor: -1\n",
		"unordered range": "range:\n  low: 0.9\n  mid: 0.8\n",
		"zero severity":   "severity:\n  low: 0\n",
		"prior cap":       "prior_accidents:\n  cap: 1.5\n",
		"not yaml":        "unit_costs: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidSchedule)
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	out, err := Default().YAML()
	require.NoError(t, err)

	s, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tbi:\n  mild: 40000\n"), 0o600))

	s, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 40000.0, s.TBIValue("mild"))

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/schedule.yaml" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("scarring:\n  facial: 60000\n"))
	}))
	defer srv.Close()

	s, err := Load(context.Background(), srv.URL+"/schedule.yaml")
	require.NoError(t, err)
	assert.Equal(t, 60000.0, s.Scarring.Facial)

	_, err = Load(context.Background(), srv.URL+"/other.yaml")
	assert.Error(t, err)
}

func TestLoadEmptySourceUsesDefault(t *testing.T) {
	s, err := Load(context.Background(), "  ")
	require.NoError(t, err)
	assert.Same(t, Default(), s)
}
