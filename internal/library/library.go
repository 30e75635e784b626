// Package library serves the static wellness reference tables searched from
// the profile and scan views.
package library

import "strings"

// Entry is one reference record. Not every field applies to every table:
// peptides carry a frequency, herbs an element, frequencies an Hz value.
type Entry struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Frequency   string `json:"frequency,omitempty"`
	Element     string `json:"element,omitempty"`
	Hz          int    `json:"hz,omitempty"`
}

// Result is an entry tagged with the table it came from.
type Result struct {
	Entry
	Type string `json:"type"`
}

var tables = map[string][]Entry{
	"peptides": {
		{Name: "BPC-157", Category: "healing", Description: "Body Protection Compound, gut healing, tissue repair", Frequency: "528Hz"},
		{Name: "Epithalon", Category: "longevity", Description: "Telomerase activator, anti-aging peptide", Frequency: "741Hz"},
		{Name: "Semax", Category: "cognitive", Description: "Nootropic peptide, BDNF enhancer", Frequency: "639Hz"},
		{Name: "TB-500", Category: "healing", Description: "Thymosin Beta-4, wound healing, flexibility", Frequency: "417Hz"},
	},
	"herbs": {
		{Name: "Ashwagandha", Category: "adaptogen", Description: "Stress reduction, cortisol balance", Element: "Earth"},
		{Name: "Lion's Mane", Category: "cognitive", Description: "NGF support, brain regeneration", Element: "Air"},
		{Name: "Reishi", Category: "immune", Description: "Immune modulation, spirit calming", Element: "Water"},
		{Name: "Rhodiola", Category: "energy", Description: "Energy, endurance, altitude adaptation", Element: "Fire"},
	},
	"frequencies": {
		{Name: "Liberation", Hz: 396, Description: "Liberating guilt and fear"},
		{Name: "Change", Hz: 417, Description: "Undoing situations and facilitating change"},
		{Name: "Transformation", Hz: 528, Description: "Transformation and miracles, DNA repair"},
		{Name: "Connection", Hz: 639, Description: "Connecting relationships"},
		{Name: "Awakening", Hz: 741, Description: "Awakening intuition"},
		{Name: "Spiritual", Hz: 852, Description: "Returning to spiritual order"},
	},
}

// Search matches query case-insensitively against names and descriptions.
// A table name ("peptides", "herbs", "frequencies") narrows the search;
// "all" or empty searches everything.
func Search(query, table string) []Result {
	needle := strings.ToLower(strings.TrimSpace(query))
	if table == "all" {
		table = ""
	}

	results := []Result{}
	for name, entries := range tables {
		if table != "" && table != name {
			continue
		}
		for _, entry := range entries {
			if needle == "" ||
				strings.Contains(strings.ToLower(entry.Name), needle) ||
				strings.Contains(strings.ToLower(entry.Description), needle) {
				results = append(results, Result{Entry: entry, Type: name})
			}
		}
	}
	return results
}
