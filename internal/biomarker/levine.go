package biomarker

// levineAliases maps raw lab-report names to Levine PhenoAge Calculator
// IDs. Levine uses 9 measured markers plus derived age. Note "CRP"
// aliases to S-hsCRP here but not in the Bortz table.
var levineAliases = map[string]ID{
	"Age": Age,

	"Albumin":   "S-albumin",
	"S-albumin": "S-albumin",

	"Creatinine":   "S-creatinine",
	"S-creatinine": "S-creatinine",

	"Glucose":           "S-glucose",
	"S-glucose":         "S-glucose",
	"Glucose (Fasting)": "S-glucose",

	"hsCRP":   "S-hsCRP",
	"hs-CRP":  "S-hsCRP",
	"S-hsCRP": "S-hsCRP",
	"CRP":     "S-hsCRP",

	"LYM":             "LYM",
	"Lymphocytes (%)": "LYM",
	"Lymphocytes":     "LYM",

	"MCV": "MCV",

	"RDW":          "RDW",
	"RDW (RDW-CV)": "RDW",
	"RDW-SD":       "RDW",
	"RDW-CV":       "RDW",

	"ALP":                  "S-ALP",
	"S-ALP":                "S-ALP",
	"Alkaline Phosphatase": "S-ALP",

	"WBC":                    "WBC",
	"White Blood Cell Count": "WBC",
	"White Blood Cells":      "WBC",
	"Leukocytes":             "WBC",
}

// LevineRequired lists the IDs that must all be present at the same
// cutoff date for a Levine snapshot to be usable. Sparse panels fail
// this for early dates; those dates are skipped, not emitted partially.
var LevineRequired = []ID{
	"LYM",
	"MCV",
	"RDW",
	"S-ALP",
	"S-albumin",
	"S-creatinine",
	"S-glucose",
	"S-hsCRP",
	"WBC",
	Age,
}

// NewLevineResolver returns the resolver for the Levine PhenoAge
// Calculator alias table.
func NewLevineResolver() *Resolver {
	return NewResolver("levine", levineAliases)
}
