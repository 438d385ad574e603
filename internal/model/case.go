package model

import (
	"bytes"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

var ErrInvalidInput = errors.New("invalid request data")

type ImpactSeverity string

const (
	SeverityLow          ImpactSeverity = "low"
	SeverityModerate     ImpactSeverity = "moderate"
	SeveritySevere       ImpactSeverity = "severe"
	SeverityCatastrophic ImpactSeverity = "catastrophic"
)

type TBISeverity string

const (
	TBIMild     TBISeverity = "mild"
	TBIModerate TBISeverity = "moderate"
	TBISevere   TBISeverity = "severe"
)

type SurgeryType string

const (
	SurgeryMinor    SurgeryType = "minor"
	SurgeryModerate SurgeryType = "moderate"
	SurgeryMajor    SurgeryType = "major"
)

type CaseInput struct {
	Demographics    Demographics    `json:"demographics"`
	AccidentDetails AccidentDetails `json:"accidentDetails"`
	Injuries        Injuries        `json:"injuries"`
	Treatment       Treatment       `json:"treatment"`
	Impact          Impact          `json:"impact"`
	Insurance       Insurance       `json:"insurance"`
}

type Demographics struct {
	Age          Number `json:"age"`
	Occupation   string `json:"occupation"`
	AnnualIncome Number `json:"annualIncome"`
}

type AccidentDetails struct {
	DateOfAccident  string         `json:"dateOfAccident"`
	FaultPercentage Number         `json:"faultPercentage"`
	PriorAccidents  Number         `json:"priorAccidents"`
	ImpactSeverity  ImpactSeverity `json:"impactSeverity"`
}

type Injuries struct {
	PrimaryInjury         string       `json:"primaryInjury"`
	SecondaryInjuries     StringList   `json:"secondaryInjuries"`
	PreExistingConditions StringList   `json:"preExistingConditions"`
	Fractures             StringList   `json:"fractures"`
	TBI                   Flag         `json:"tbi"`
	TBISeverity           TBISeverity  `json:"tbiSeverity,omitempty"`
	SpinalIssues          SpinalIssues `json:"spinalIssues"`
	Scarring              Scarring     `json:"scarring"`
}

type SpinalIssues struct {
	Herniation              Flag `json:"herniation"`
	NerveRootCompression    Flag `json:"nerveRootCompression"`
	Radiculopathy           Flag `json:"radiculopathy"`
	Myelopathy              Flag `json:"myelopathy"`
	PreExistingDegeneration Flag `json:"preExistingDegeneration"`
}

// Scarring tags disfigurement explicitly. Free-text injury names are still
// searched when these are unset.
type Scarring struct {
	Present Flag `json:"present"`
	Facial  Flag `json:"facial"`
}

type Treatment struct {
	EmergencyRoomVisits     Number      `json:"emergencyRoomVisits"`
	UrgentCareVisits        Number      `json:"urgentCareVisits"`
	ChiropracticSessions    Number      `json:"chiropracticSessions"`
	PhysicalTherapySessions Number      `json:"physicalTherapySessions"`
	XRays                   Number      `json:"xrays"`
	MRIs                    Number      `json:"mris"`
	CTScans                 Number      `json:"ctScans"`
	PainManagementVisits    Number      `json:"painManagementVisits"`
	OrthopedicConsults      Number      `json:"orthopedicConsults"`
	TPIInjections           Number      `json:"tpiInjections"`
	FacetInjections         Number      `json:"facetInjections"`
	MBBInjections           Number      `json:"mbbInjections"`
	ESIInjections           Number      `json:"esiInjections"`
	RFAInjections           Number      `json:"rfaInjections"`
	PRPInjections           Number      `json:"prpInjections"`
	SurgeryRecommended      Flag        `json:"surgeryRecommended"`
	SurgeryCompleted        Flag        `json:"surgeryCompleted"`
	SurgeryType             SurgeryType `json:"surgeryType,omitempty"`
	TotalMedicalCosts       Number      `json:"totalMedicalCosts"`
	UseEstimatedCosts       Flag        `json:"useEstimatedCosts"`
	OngoingTreatment        Flag        `json:"ongoingTreatment"`
}

type Impact struct {
	MissedWorkDays      Number `json:"missedWorkDays"`
	LossOfConsortium    Flag   `json:"lossOfConsortium"`
	EmotionalDistress   Flag   `json:"emotionalDistress"`
	DillonVLeggClaim    Flag   `json:"dylanVLeggClaim"`
	PermanentImpairment Flag   `json:"permanentImpairment"`
	ImpairmentRating    Number `json:"impairmentRating,omitempty"`
}

type Insurance struct {
	PolicyLimitsKnown   Flag   `json:"policyLimitsKnown"`
	PolicyLimits        Number `json:"policyLimits,omitempty"`
	HasAttorney         Flag   `json:"hasAttorney"`
	AttorneyContingency Number `json:"attorneyContingency,omitempty"`
}

// DecodeCase parses a case payload. Only the overall shape is checked: the body
// must be a JSON object. Field values are coerced, never rejected.
func DecodeCase(body []byte) (*CaseInput, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return nil, fmt.Errorf("%w: body is not a JSON object", ErrInvalidInput)
	}
	var in CaseInput
	if err := json.Unmarshal(body, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return &in, nil
}
