package rules

import (
	"fmt"
	"strings"

	"settlement-engine/internal/model"
)

// InjectionRule adds the procedure value of each injection type with a factor
// per type performed.
type InjectionRule struct{}

func (r *InjectionRule) Apply(ws *Worksheet, in *model.CaseInput) []model.Factor {
	t := in.Treatment
	c := ws.Schedule.UnitCosts

	procedures := []struct {
		count  float64
		value  float64
		label  string
		weight float64
	}{
		{t.TPIInjections.Count(), c.TPIInjection, "Trigger Point Injections", 0.4},
		{t.FacetInjections.Count(), c.FacetInjection, "Facet Joint Injections", 0.5},
		{t.MBBInjections.Count(), c.MBBInjection, "Medial Branch Blocks", 0.5},
		{t.ESIInjections.Count(), c.ESIInjection, "Epidural Steroid Injections", 0.4},
		{t.RFAInjections.Count(), c.RFAInjection, "RF Ablation Procedures", 0.7},
		{t.PRPInjections.Count(), c.PRPInjection, "PRP Injections", 0.1},
	}

	var factors []model.Factor
	for _, p := range procedures {
		if p.count <= 0 {
			continue
		}
		ws.Base += p.count * p.value
		factors = append(factors, positive(fmt.Sprintf("%d %s", int64(p.count), p.label), p.weight))
	}
	return factors
}

type TBIRule struct{}

func (r *TBIRule) Apply(ws *Worksheet, in *model.CaseInput) []model.Factor {
	if !in.Injuries.TBI {
		return nil
	}
	ws.Base += ws.Schedule.TBIValue(string(in.Injuries.TBISeverity))
	return []model.Factor{positive("Traumatic Brain Injury", 0.9)}
}

type SpinalRule struct{}

func (r *SpinalRule) Apply(ws *Worksheet, in *model.CaseInput) []model.Factor {
	sp := in.Injuries.SpinalIssues
	v := ws.Schedule.Spinal

	var value float64
	count := 0
	for _, issue := range []struct {
		present bool
		value   float64
	}{
		{bool(sp.Herniation), v.Herniation},
		{bool(sp.NerveRootCompression), v.NerveRootCompression},
		{bool(sp.Radiculopathy), v.Radiculopathy},
		{bool(sp.Myelopathy), v.Myelopathy},
		{bool(sp.PreExistingDegeneration), v.PreExistingDegeneration},
	} {
		if issue.present {
			value += issue.value
			count++
		}
	}

	if count == 0 {
		return nil
	}
	ws.Base += value
	return []model.Factor{positive(fmt.Sprintf("%d Spinal Issues", count), 0.8)}
}

type FractureRule struct{}

func (r *FractureRule) Apply(ws *Worksheet, in *model.CaseInput) []model.Factor {
	fractures := in.Injuries.Fractures
	if len(fractures) == 0 {
		return nil
	}

	var value float64
	for _, f := range fractures {
		site, _ := model.SiteOf(f)
		value += ws.Schedule.FractureValue(string(site))
	}

	ws.Base += value
	return []model.Factor{positive(fmt.Sprintf("%d Fractures", len(fractures)), 0.8)}
}

// ScarringRule values disfigurement from the explicit scarring tags, falling
// back to the injury names.
type ScarringRule struct{}

func (r *ScarringRule) Apply(ws *Worksheet, in *model.CaseInput) []model.Factor {
	inj := &in.Injuries
	if !bool(inj.Scarring.Present) && !mentions(inj, "scar", "disfigurement") {
		return nil
	}

	if isFacial(inj) {
		ws.Base += ws.Schedule.Scarring.Facial
		return []model.Factor{positive("Facial Scarring/Disfigurement", 0.7)}
	}
	ws.Base += ws.Schedule.Scarring.General
	return []model.Factor{positive("Scarring/Disfigurement", 0.7)}
}

func isFacial(inj *model.Injuries) bool {
	if inj.Scarring.Facial {
		return true
	}
	for _, f := range inj.Fractures {
		if site, _ := model.SiteOf(f); site == model.SiteFacial {
			return true
		}
	}
	return mentions(inj, "facial")
}

// mentions reports whether the primary or any secondary injury name contains
// one of the terms, case-insensitively.
func mentions(inj *model.Injuries, terms ...string) bool {
	names := append([]string{inj.PrimaryInjury}, inj.SecondaryInjuries...)
	for _, name := range names {
		lower := strings.ToLower(name)
		for _, term := range terms {
			if strings.Contains(lower, term) {
				return true
			}
		}
	}
	return false
}
