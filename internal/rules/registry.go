package rules

var registry = []Rule{
	&MedicalCostsRule{},
	&PainAndSufferingRule{},
	&SurgeryRule{},
	&InjectionRule{},
	&TBIRule{},
	&SpinalRule{},
	&FractureRule{},
	&ScarringRule{},
	&LostWagesRule{},
	&LifeImpactRule{},
	&SeverityRule{},
	&AgeRule{},
	&PreExistingRule{},
	&PriorAccidentsRule{},
	&NegligenceRule{},
	&PolicyCapRule{},
	&AttorneyFeeRule{},
}

// All returns the scoring rules in evaluation order.
func All() []Rule {
	return registry
}
