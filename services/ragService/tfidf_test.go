package ragService

import (
	"math"
	"testing"
)

func testIndex() *Index {
	return BuildIndex([]*Document{
		{ID: "a", Category: "billing", Content: "pricing plans and subscription billing for teams", Keywords: []string{"pricing", "billing"}},
		{ID: "b", Category: "setup", Content: "install the cli and run init to get started", Keywords: []string{"install", "cli"}},
		{ID: "c", Category: "community", Content: "earn xp and badges for answering questions", Keywords: []string{"xp", "badges"}},
	})
}

func TestSelfSimilarityIsOne(t *testing.T) {
	idx := testIndex()
	text := "install the cli and run init to get started"
	sim := idx.Similarity(text, text)
	if math.Abs(sim-1.0) > 1e-9 {
		t.Errorf("self similarity = %f, expected 1.0", sim)
	}
}

func TestSimilarityIsSymmetric(t *testing.T) {
	idx := testIndex()
	a := "how much does the pro plan cost"
	b := "pricing plans and subscription billing"
	if s1, s2 := idx.Similarity(a, b), idx.Similarity(b, a); math.Abs(s1-s2) > 1e-12 {
		t.Errorf("similarity not symmetric: %f vs %f", s1, s2)
	}
}

func TestSearchRanksRelevantDocFirst(t *testing.T) {
	idx := testIndex()
	results := idx.Search("how do I install the cli", 3)
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	if results[0].Doc.ID != "b" {
		t.Errorf("expected doc b first, got %s", results[0].Doc.ID)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Error("results not sorted by descending score")
		}
	}
}

func TestSearchAppliesFloorAndK(t *testing.T) {
	idx := testIndex()
	if results := idx.Search("completely unrelated zebra astronomy", 3); len(results) != 0 {
		t.Errorf("expected no results below similarity floor, got %d", len(results))
	}
	if results := idx.Search("install pricing xp badges cli billing", 2); len(results) > 2 {
		t.Errorf("expected at most 2 results, got %d", len(results))
	}
}

func TestDefaultIndexAnswersBillingQuestions(t *testing.T) {
	idx := DefaultIndex()
	results := idx.Search("how much does the pro subscription cost per month", 3)
	if len(results) == 0 {
		t.Fatal("expected billing docs for a pricing question")
	}
	if results[0].Doc.Category != "billing" {
		t.Errorf("expected a billing doc first, got %s (%s)", results[0].Doc.ID, results[0].Doc.Category)
	}
}

func TestFormatContext(t *testing.T) {
	if got := FormatContext(nil); got != "" {
		t.Errorf("empty results should format to empty string, got %q", got)
	}
	idx := testIndex()
	out := FormatContext(idx.Search("install the cli", 3))
	if out == "" {
		t.Fatal("expected non-empty context block")
	}
}
