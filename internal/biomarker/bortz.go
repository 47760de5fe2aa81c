package biomarker

// bortzAliases maps raw lab-report names to Bortz Blood Age Calculator
// IDs. Only markers in this table ever reach a Bortz snapshot.
var bortzAliases = map[string]ID{
	"Age": Age,

	"Albumin":   "S-albumin",
	"S-albumin": "S-albumin",

	"ALP":   "S-ALP",
	"S-ALP": "S-ALP",

	"Urea":   "S-urea",
	"S-urea": "S-urea",
	"BUN":    "S-urea",

	"Cholesterol":       "S-cholesterol",
	"Total Cholesterol": "S-cholesterol",
	"S-cholesterol":     "S-cholesterol",

	"Creatinine":   "S-creatinine",
	"S-creatinine": "S-creatinine",

	"Cystatin C":   "S-cystatin-C",
	"S-cystatin-C": "S-cystatin-C",

	"HbA1c":   "B-HbA1c",
	"B-HbA1c": "B-HbA1c",

	"hsCRP":   "S-hsCRP",
	"hs-CRP":  "S-hsCRP",
	"S-hsCRP": "S-hsCRP",

	"GGT":   "S-GGT",
	"S-GGT": "S-GGT",

	"Red Blood Cell Count": "RBC",
	"RBC":                  "RBC",

	"MCV": "MCV",

	"RDW":          "RDW",
	"RDW (RDW-CV)": "RDW",
	"RDW-SD":       "RDW",
	"RDW-CV":       "RDW",

	"Absolute Monocytes":   "MONOabs",
	"MONOabs":              "MONOabs",
	"Monocytes (Absolute)": "MONOabs",

	"Absolute Neutrophils":   "NEUabs",
	"NEUabs":                 "NEUabs",
	"Neutrophils (Absolute)": "NEUabs",

	"LYM":             "LYM",
	"Lymphocytes (%)": "LYM",

	"ALT":   "S-ALT",
	"S-ALT": "S-ALT",

	"SHBG":   "S-SHBG",
	"S-SHBG": "S-SHBG",

	"Vitamin D (25-OH)":     "S-25-OH-D",
	"Vitamin D - 25(OH)D":   "S-25-OH-D",
	"Vitamin D3 (25-OH D3)": "S-25-OH-D",
	"Vitamin D, 25-Hydroxy": "S-25-OH-D",
	"S-25-OH-D":             "S-25-OH-D",

	"Glucose":           "S-glucose",
	"S-glucose":         "S-glucose",
	"Glucose (Fasting)": "S-glucose",

	"MCH": "MCH",

	"ApoA1":             "S-ApoA1",
	"S-ApoA1":           "S-ApoA1",
	"Apolipoprotein A1": "S-ApoA1",
}

// NewBortzResolver returns the resolver for the Bortz Blood Age
// Calculator alias table.
func NewBortzResolver() *Resolver {
	return NewResolver("bortz", bortzAliases)
}
