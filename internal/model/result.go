package model

type FactorImpact string

const (
	ImpactPositive FactorImpact = "positive"
	ImpactNegative FactorImpact = "negative"
	ImpactNeutral  FactorImpact = "neutral"
)

type Factor struct {
	Label  string       `json:"factor"`
	Impact FactorImpact `json:"impact"`
	Weight float64      `json:"weight"`
}

type SettlementResult struct {
	LowEstimate  int64    `json:"lowEstimate"`
	MidEstimate  int64    `json:"midEstimate"`
	HighEstimate int64    `json:"highEstimate"`
	MedicalCosts int64    `json:"medicalCosts"`
	Factors      []Factor `json:"factors"`
	Explanation  string   `json:"explanation"`
}

type EstimateResult struct {
	MedicalCosts int64 `json:"medicalCosts"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
