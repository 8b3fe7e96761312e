package domain

// EntryInsight is the structured travel insight generated for an entry.
type EntryInsight struct {
	Summary     string   `json:"summary"`
	Tips        []string `json:"tips"`
	RegionFacts []string `json:"region_facts"`
}
