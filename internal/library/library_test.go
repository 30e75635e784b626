package library

import "testing"

func TestSearchByName(t *testing.T) {
	results := Search("reishi", "all")
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if results[0].Name != "Reishi" || results[0].Type != "herbs" {
		t.Fatalf("unexpected result: %+v", results[0])
	}
}

func TestSearchByDescription(t *testing.T) {
	results := Search("healing", "peptides")
	if len(results) != 2 {
		t.Fatalf("expected two healing peptides, got %d", len(results))
	}
	for _, r := range results {
		if r.Type != "peptides" {
			t.Fatalf("category filter leaked: %+v", r)
		}
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	lower := Search("dna", "frequencies")
	upper := Search("DNA", "frequencies")
	if len(lower) != 1 || len(upper) != 1 {
		t.Fatalf("expected case-insensitive match, got %d and %d", len(lower), len(upper))
	}
}

func TestSearchUnknownTerm(t *testing.T) {
	if results := Search("nonexistent-substance", "all"); len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}
