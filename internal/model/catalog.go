package model

import "strings"

var CommonInjuries = []string{
	"Whiplash / Neck Strain",
	"Back Strain / Sprain",
	"Shoulder Injury",
	"Knee Injury",
	"Concussion / Mild TBI",
	"Soft Tissue Damage",
	"Disc Herniation",
	"Rotator Cuff Tear",
	"Meniscus Tear",
	"Ligament Tear (ACL/MCL)",
	"Fracture",
	"Internal Injuries",
	"Scarring / Disfigurement",
	"PTSD / Psychological Injury",
}

var PreExistingConditions = []string{
	"Prior Back Problems",
	"Prior Neck Problems",
	"Arthritis",
	"Fibromyalgia",
	"Previous Surgery (Same Area)",
	"Diabetes",
	"Obesity",
	"Osteoporosis",
	"Previous Car Accident Injuries",
	"Chronic Pain Syndrome",
}

type FractureSite string

const (
	SiteSkull    FractureSite = "skull"
	SiteFacial   FractureSite = "facial"
	SiteSpine    FractureSite = "spine"
	SiteRibs     FractureSite = "ribs"
	SiteArm      FractureSite = "arm"
	SiteWrist    FractureSite = "wrist"
	SiteHand     FractureSite = "hand"
	SiteLeg      FractureSite = "leg"
	SiteAnkle    FractureSite = "ankle"
	SiteFoot     FractureSite = "foot"
	SitePelvis   FractureSite = "pelvis"
	SiteClavicle FractureSite = "clavicle"
)

// CommonFractures maps the fracture checklist labels to anatomical sites.
var CommonFractures = map[string]FractureSite{
	"Rib Fracture":                   SiteRibs,
	"Clavicle (Collarbone) Fracture": SiteClavicle,
	"Wrist Fracture":                 SiteWrist,
	"Ankle Fracture":                 SiteAnkle,
	"Vertebral Compression Fracture": SiteSpine,
	"Facial Bone Fracture":           SiteFacial,
	"Pelvic Fracture":                SitePelvis,
	"Femur Fracture":                 SiteLeg,
	"Tibia/Fibula Fracture":          SiteLeg,
	"Humerus Fracture":               SiteArm,
}

var knownSites = map[FractureSite]bool{
	SiteSkull: true, SiteFacial: true, SiteSpine: true, SiteRibs: true,
	SiteArm: true, SiteWrist: true, SiteHand: true, SiteLeg: true,
	SiteAnkle: true, SiteFoot: true, SitePelvis: true, SiteClavicle: true,
}

// SiteOf resolves a fracture entry, either a site key or a checklist label.
// The second result is false for entries that match neither.
func SiteOf(fracture string) (FractureSite, bool) {
	s := strings.TrimSpace(fracture)
	if site, ok := CommonFractures[s]; ok {
		return site, true
	}
	site := FractureSite(strings.ToLower(s))
	if knownSites[site] {
		return site, true
	}
	return site, false
}
