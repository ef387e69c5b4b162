package model

// CultureInfo is the presentation metadata for one culture type: a display
// name, an icon identifier, a narrative description, and coaching lists the
// results page renders alongside the percentage breakdown.
type CultureInfo struct {
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Strengths   []string `json:"strengths"`
	GrowthAreas []string `json:"growthAreas"`
	Color       string   `json:"color"`
}
