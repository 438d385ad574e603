// Package schedule holds the rate schedule behind the settlement heuristic: every
// unit cost, damages value, multiplier and threshold the scorer uses.
package schedule

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSchedule = errors.New("invalid rate schedule")

//go:embed default.yaml
var defaultYAML []byte

// Schedule is read-only once loaded; the scorer shares one instance across requests.
type Schedule struct {
	Version          int                `yaml:"version" json:"version"`
	UnitCosts        UnitCosts          `yaml:"unit_costs" json:"unitCosts"`
	SurgeryCosts     map[string]float64 `yaml:"surgery_costs" json:"surgeryCosts"`
	PainAndSuffering PainAndSuffering   `yaml:"pain_and_suffering" json:"painAndSuffering"`
	SurgeryDamages   SurgeryDamages     `yaml:"surgery_damages" json:"surgeryDamages"`
	TBI              map[string]float64 `yaml:"tbi" json:"tbi"`
	Spinal           Spinal             `yaml:"spinal" json:"spinal"`
	Fractures        Fractures          `yaml:"fractures" json:"fractures"`
	Scarring         Scarring           `yaml:"scarring" json:"scarring"`
	LostWages        LostWages          `yaml:"lost_wages" json:"lostWages"`
	LifeImpact       LifeImpact         `yaml:"life_impact" json:"lifeImpact"`
	Severity         map[string]float64 `yaml:"severity" json:"severity"`
	Age              Age                `yaml:"age" json:"age"`
	PreExisting      Adjustment         `yaml:"pre_existing" json:"preExisting"`
	PriorAccidents   PriorAccidents     `yaml:"prior_accidents" json:"priorAccidents"`
	Range            Range              `yaml:"range" json:"range"`
	Attorney         Attorney           `yaml:"attorney" json:"attorney"`
	Explanation      Explanation        `yaml:"explanation" json:"explanation"`
}

type UnitCosts struct {
	EmergencyRoom   float64 `yaml:"emergency_room" json:"emergencyRoom"`
	UrgentCare      float64 `yaml:"urgent_care" json:"urgentCare"`
	Chiropractic    float64 `yaml:"chiropractic" json:"chiropractic"`
	PhysicalTherapy float64 `yaml:"physical_therapy" json:"physicalTherapy"`
	XRay            float64 `yaml:"xray" json:"xray"`
	MRI             float64 `yaml:"mri" json:"mri"`
	CTScan          float64 `yaml:"ct_scan" json:"ctScan"`
	PainManagement  float64 `yaml:"pain_management" json:"painManagement"`
	Orthopedic      float64 `yaml:"orthopedic" json:"orthopedic"`
	TPIInjection    float64 `yaml:"tpi_injection" json:"tpiInjection"`
	FacetInjection  float64 `yaml:"facet_injection" json:"facetInjection"`
	MBBInjection    float64 `yaml:"mbb_injection" json:"mbbInjection"`
	ESIInjection    float64 `yaml:"esi_injection" json:"esiInjection"`
	RFAInjection    float64 `yaml:"rfa_injection" json:"rfaInjection"`
	PRPInjection    float64 `yaml:"prp_injection" json:"prpInjection"`
}

// PainAndSuffering weights are per treatment event and sit above the billed unit
// cost of the same event.
type PainAndSuffering struct {
	Floor                  float64 `yaml:"floor" json:"floor"`
	EmergencyRoom          float64 `yaml:"emergency_room" json:"emergencyRoom"`
	UrgentCare             float64 `yaml:"urgent_care" json:"urgentCare"`
	Chiropractic           float64 `yaml:"chiropractic" json:"chiropractic"`
	PhysicalTherapy        float64 `yaml:"physical_therapy" json:"physicalTherapy"`
	PainManagement         float64 `yaml:"pain_management" json:"painManagement"`
	Orthopedic             float64 `yaml:"orthopedic" json:"orthopedic"`
	TPIInjection           float64 `yaml:"tpi_injection" json:"tpiInjection"`
	PRPInjection           float64 `yaml:"prp_injection" json:"prpInjection"`
	FacetInjection         float64 `yaml:"facet_injection" json:"facetInjection"`
	MBBInjection           float64 `yaml:"mbb_injection" json:"mbbInjection"`
	ESIInjection           float64 `yaml:"esi_injection" json:"esiInjection"`
	RFAInjection           float64 `yaml:"rfa_injection" json:"rfaInjection"`
	XRay                   float64 `yaml:"xray" json:"xray"`
	MRI                    float64 `yaml:"mri" json:"mri"`
	CTScan                 float64 `yaml:"ct_scan" json:"ctScan"`
	OngoingTreatmentUplift float64 `yaml:"ongoing_treatment_uplift" json:"ongoingTreatmentUplift"`
}

type SurgeryDamages struct {
	CompletedFraction   float64 `yaml:"completed_fraction" json:"completedFraction"`
	RecommendedFraction float64 `yaml:"recommended_fraction" json:"recommendedFraction"`
}

type Spinal struct {
	Herniation              float64 `yaml:"herniation" json:"herniation"`
	NerveRootCompression    float64 `yaml:"nerve_root_compression" json:"nerveRootCompression"`
	Radiculopathy           float64 `yaml:"radiculopathy" json:"radiculopathy"`
	Myelopathy              float64 `yaml:"myelopathy" json:"myelopathy"`
	PreExistingDegeneration float64 `yaml:"pre_existing_degeneration" json:"preExistingDegeneration"`
}

type Fractures struct {
	Default float64            `yaml:"default" json:"default"`
	Sites   map[string]float64 `yaml:"sites" json:"sites"`
}

type Scarring struct {
	General float64 `yaml:"general" json:"general"`
	Facial  float64 `yaml:"facial" json:"facial"`
}

type LostWages struct {
	WorkDaysPerYear float64 `yaml:"work_days_per_year" json:"workDaysPerYear"`
	FactorThreshold float64 `yaml:"factor_threshold" json:"factorThreshold"`
}

type LifeImpact struct {
	ImpairmentPerPoint      float64 `yaml:"impairment_per_point" json:"impairmentPerPoint"`
	DefaultImpairmentRating float64 `yaml:"default_impairment_rating" json:"defaultImpairmentRating"`
	EmotionalDistress       float64 `yaml:"emotional_distress" json:"emotionalDistress"`
	LossOfConsortium        float64 `yaml:"loss_of_consortium" json:"lossOfConsortium"`
	DillonVLegg             float64 `yaml:"dillon_v_legg" json:"dillonVLegg"`
}

type Age struct {
	YoungBelow        float64 `yaml:"young_below" json:"youngBelow"`
	YoungMultiplier   float64 `yaml:"young_multiplier" json:"youngMultiplier"`
	ElderlyAbove      float64 `yaml:"elderly_above" json:"elderlyAbove"`
	ElderlyMultiplier float64 `yaml:"elderly_multiplier" json:"elderlyMultiplier"`
}

// Adjustment is a per-item multiplier step with a ceiling on the total step.
type Adjustment struct {
	PerCondition float64 `yaml:"per_condition" json:"perCondition"`
	Cap          float64 `yaml:"cap" json:"cap"`
}

type PriorAccidents struct {
	PerAccident float64 `yaml:"per_accident" json:"perAccident"`
	Cap         float64 `yaml:"cap" json:"cap"`
}

type Range struct {
	Low  float64 `yaml:"low" json:"low"`
	Mid  float64 `yaml:"mid" json:"mid"`
	High float64 `yaml:"high" json:"high"`
}

type Attorney struct {
	DefaultContingency   float64   `yaml:"default_contingency" json:"defaultContingency"`
	AllowedContingencies []float64 `yaml:"allowed_contingencies" json:"allowedContingencies"`
}

type Explanation struct {
	MinorBelow       float64 `yaml:"minor_below" json:"minorBelow"`
	ModerateBelow    float64 `yaml:"moderate_below" json:"moderateBelow"`
	SeriousBelow     float64 `yaml:"serious_below" json:"seriousBelow"`
	SharedFaultAbove float64 `yaml:"shared_fault_above" json:"sharedFaultAbove"`
}

var (
	defaultOnce     sync.Once
	defaultSchedule *Schedule
)

// Default returns the embedded schedule. The returned value is shared and must
// not be modified.
func Default() *Schedule {
	defaultOnce.Do(func() {
		s, err := Parse(nil)
		if err != nil {
			panic(fmt.Sprintf("schedule: embedded default: %v", err))
		}
		defaultSchedule = s
	})
	return defaultSchedule
}

// Parse decodes an override document on top of the embedded defaults, so a
// partial document only changes the keys it names.
func Parse(data []byte) (*Schedule, error) {
	s := &Schedule{}
	if err := yaml.Unmarshal(defaultYAML, s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

var client = &http.Client{
	Timeout: 2 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:    10,
		IdleConnTimeout: 90 * time.Second,
	},
}

// Load resolves a schedule source: empty for the embedded default, an http(s)
// URL, or a file path.
func Load(ctx context.Context, source string) (*Schedule, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return Default(), nil
	}
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = fetch(ctx, source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("schedule: load %s: %w", source, err)
	}
	return Parse(data)
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
}

// YAML renders the schedule in the same format Parse accepts.
func (s *Schedule) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}

// Validate checks the structural rules the scorer relies on: no negative values,
// positive multipliers and an ordered estimate band.
func (s *Schedule) Validate() error {
	var problems []string
	check := func(name string, v float64) {
		if v < 0 {
			problems = append(problems, name+" is negative")
		}
	}
	positive := func(name string, v float64) {
		if v <= 0 {
			problems = append(problems, name+" must be positive")
		}
	}

	for name, v := range s.SurgeryCosts {
		check("surgery_costs."+name, v)
	}
	for name, v := range s.TBI {
		check("tbi."+name, v)
	}
	for name, v := range s.Fractures.Sites {
		check("fractures.sites."+name, v)
	}
	for name, v := range s.Severity {
		positive("severity."+name, v)
	}
	check("fractures.default", s.Fractures.Default)
	check("pain_and_suffering.floor", s.PainAndSuffering.Floor)
	positive("pain_and_suffering.ongoing_treatment_uplift", s.PainAndSuffering.OngoingTreatmentUplift)
	positive("lost_wages.work_days_per_year", s.LostWages.WorkDaysPerYear)
	positive("age.young_multiplier", s.Age.YoungMultiplier)
	positive("age.elderly_multiplier", s.Age.ElderlyMultiplier)
	check("pre_existing.per_condition", s.PreExisting.PerCondition)
	check("pre_existing.cap", s.PreExisting.Cap)
	check("prior_accidents.per_accident", s.PriorAccidents.PerAccident)
	if s.PriorAccidents.Cap < 0 || s.PriorAccidents.Cap >= 1 {
		problems = append(problems, "prior_accidents.cap must be in [0, 1)")
	}
	check("range.low", s.Range.Low)
	if !(s.Range.Low <= s.Range.Mid && s.Range.Mid <= s.Range.High) {
		problems = append(problems, "range must satisfy low <= mid <= high")
	}
	if s.Range.High != 1 {
		problems = append(problems, "range.high must be 1")
	}
	if s.Attorney.DefaultContingency < 0 || s.Attorney.DefaultContingency >= 100 {
		problems = append(problems, "attorney.default_contingency must be in [0, 100)")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSchedule, strings.Join(problems, "; "))
	}
	return nil
}

// SurgeryCost is the flat cost for a surgery type; unknown types cost nothing.
func (s *Schedule) SurgeryCost(surgeryType string) float64 {
	return s.SurgeryCosts[surgeryType]
}

// FractureValue is the damages value for a site, falling back to the default.
func (s *Schedule) FractureValue(site string) float64 {
	if v, ok := s.Fractures.Sites[site]; ok {
		return v
	}
	return s.Fractures.Default
}

// TBIValue returns the value for a severity tier; an unset or unknown tier is
// valued as mild.
func (s *Schedule) TBIValue(severity string) float64 {
	if v, ok := s.TBI[severity]; ok {
		return v
	}
	return s.TBI["mild"]
}

// Contingency returns the fee percentage to report, using the default when the
// given value is not one of the allowed tiers.
func (s *Schedule) Contingency(pct float64) float64 {
	for _, allowed := range s.Attorney.AllowedContingencies {
		if pct == allowed {
			return pct
		}
	}
	return s.Attorney.DefaultContingency
}
