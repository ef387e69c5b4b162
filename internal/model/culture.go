package model

// CultureType identifies one of the eight organizational culture archetypes.
type CultureType string

const (
	CultureCaring    CultureType = "caring"
	CulturePurpose   CultureType = "purpose"
	CultureLearning  CultureType = "learning"
	CultureEnjoyment CultureType = "enjoyment"
	// CultureTagResults carries the "Tag" infix so it cannot clash with the
	// CultureResults struct below.
	CultureTagResults CultureType = "results"
	CultureAuthority  CultureType = "authority"
	CultureSafety     CultureType = "safety"
	CultureOrder      CultureType = "order"
)

// CultureTypes lists every archetype in canonical order. The order matches
// the keys of CultureResults and is stable across releases.
var CultureTypes = []CultureType{
	CultureCaring,
	CulturePurpose,
	CultureLearning,
	CultureEnjoyment,
	CultureTagResults,
	CultureAuthority,
	CultureSafety,
	CultureOrder,
}

// ParseCultureType maps a raw string onto the closed tag set.
// The second return value reports whether the tag is recognized.
func ParseCultureType(s string) (CultureType, bool) {
	switch t := CultureType(s); t {
	case CultureCaring, CulturePurpose, CultureLearning, CultureEnjoyment,
		CultureTagResults, CultureAuthority, CultureSafety, CultureOrder:
		return t, true
	}
	return "", false
}

// CultureResults is the integer percentage breakdown of a submission across
// all eight culture types. Each value is rounded independently, so the sum
// is not guaranteed to be exactly 100.
type CultureResults struct {
	Caring    int `json:"caring"`
	Purpose   int `json:"purpose"`
	Learning  int `json:"learning"`
	Enjoyment int `json:"enjoyment"`
	Results   int `json:"results"`
	Authority int `json:"authority"`
	Safety    int `json:"safety"`
	Order     int `json:"order"`
}

// Get returns the percentage stored for the given culture type.
func (r CultureResults) Get(t CultureType) int {
	switch t {
	case CultureCaring:
		return r.Caring
	case CulturePurpose:
		return r.Purpose
	case CultureLearning:
		return r.Learning
	case CultureEnjoyment:
		return r.Enjoyment
	case CultureTagResults:
		return r.Results
	case CultureAuthority:
		return r.Authority
	case CultureSafety:
		return r.Safety
	case CultureOrder:
		return r.Order
	}
	return 0
}

// Set stores the percentage for the given culture type. Unknown tags are
// ignored; callers are expected to pass parsed tags only.
func (r *CultureResults) Set(t CultureType, pct int) {
	switch t {
	case CultureCaring:
		r.Caring = pct
	case CulturePurpose:
		r.Purpose = pct
	case CultureLearning:
		r.Learning = pct
	case CultureEnjoyment:
		r.Enjoyment = pct
	case CultureTagResults:
		r.Results = pct
	case CultureAuthority:
		r.Authority = pct
	case CultureSafety:
		r.Safety = pct
	case CultureOrder:
		r.Order = pct
	}
}
