package formula

import "github.com/wonny/bloodage/internal/biomarker"

// Base URL prefixes for the two supported calculators. Fixed per
// formula; the encoded query is appended directly.
const (
	BortzBaseURL  = "https://www.longevity-tools.com/humanitys-bortz-blood-age#?"
	LevineBaseURL = "https://www.longevity-tools.com/levine-pheno-age#"
)

// Encoding selects how a snapshot serializes into query parameters.
type Encoding int

const (
	// EncodingValueUnit emits id=pct(value_unit) pairs with full
	// percent-encoding (Bortz).
	EncodingValueUnit Encoding = iota

	// EncodingValueOnly emits plain id=value pairs, no units, no
	// escaping (Levine).
	EncodingValueOnly
)

// Formula bundles one calculator's alias table, required-ID set, base
// URL and encoding. Constructed once at startup; read-only afterwards.
type Formula struct {
	Name     string
	BaseURL  string
	Resolver *biomarker.Resolver
	Required []biomarker.ID
	Encoding Encoding
}

// Bortz returns the Bortz Blood Age Calculator formula. It has no
// required set: any non-empty snapshot produces an entry.
func Bortz() Formula {
	return Formula{
		Name:     "bortz",
		BaseURL:  BortzBaseURL,
		Resolver: biomarker.NewBortzResolver(),
		Encoding: EncodingValueUnit,
	}
}

// Levine returns the Levine PhenoAge Calculator formula. All ten IDs
// (nine markers plus derived age) must be present at the same cutoff.
func Levine() Formula {
	return Formula{
		Name:     "levine",
		BaseURL:  LevineBaseURL,
		Resolver: biomarker.NewLevineResolver(),
		Required: biomarker.LevineRequired,
		Encoding: EncodingValueOnly,
	}
}

// ByName returns the named formula. Recognized names: bortz, levine.
func ByName(name string) (Formula, bool) {
	switch name {
	case "bortz":
		return Bortz(), true
	case "levine":
		return Levine(), true
	default:
		return Formula{}, false
	}
}

// All returns every supported formula, bortz first.
func All() []Formula {
	return []Formula{Bortz(), Levine()}
}
