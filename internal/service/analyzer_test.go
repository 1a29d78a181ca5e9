package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intakeflow/internal/model"
)

// testCatalog matches the scenario catalog used throughout the service tests
func testCatalog() *model.Catalog {
	return &model.Catalog{
		Sections: []model.Section{
			{ID: "leningdeel", Title: "Leningdeel", Points: []string{"A", "B"}},
			{ID: "aow", Title: "AOW", Points: []string{"C"}},
		},
	}
}

// fakeClassifier returns canned results per call
type fakeClassifier struct {
	results []map[model.SectionID][]string
	err     error
	calls   int
}

func (f *fakeClassifier) Classify(ctx context.Context, combinedText string, catalog *model.Catalog) (map[model.SectionID][]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	i := f.calls - 1
	if i >= len(f.results) {
		i = len(f.results) - 1
	}
	return f.results[i], nil
}

func TestAnalyzeFailureMarksFullCatalogMissing(t *testing.T) {
	catalog := testCatalog()
	analyzer := NewGapAnalyzer(&fakeClassifier{err: errors.New("boom")}, catalog)

	missing := analyzer.Analyze(context.Background(), "whatever")

	assert.Equal(t, catalog.FullMissing(), missing)
}

func TestAnalyzeNormalizesAgainstCatalog(t *testing.T) {
	catalog := testCatalog()
	analyzer := NewGapAnalyzer(&fakeClassifier{results: []map[model.SectionID][]string{{
		"leningdeel": {"B", "niet-bestaand punt", "B"},
		"verzonnen":  {"X"},
		// aow omitted: counts as covered
	}}}, catalog)

	missing := analyzer.Analyze(context.Background(), "tekst")

	require.Len(t, missing, 2, "exactly the catalog section keys")
	assert.Equal(t, []string{"B"}, missing["leningdeel"])
	assert.Empty(t, missing["aow"])
	_, ok := missing["verzonnen"]
	assert.False(t, ok)
}

func TestAnalyzeKeepsCatalogPointOrder(t *testing.T) {
	catalog := testCatalog()
	analyzer := NewGapAnalyzer(&fakeClassifier{results: []map[model.SectionID][]string{{
		"leningdeel": {"B", "A"},
		"aow":        {"C"},
	}}}, catalog)

	missing := analyzer.Analyze(context.Background(), "tekst")

	assert.Equal(t, []string{"A", "B"}, missing["leningdeel"])
}

func TestAnalyzeIdempotentForDeterministicClassifier(t *testing.T) {
	catalog := testCatalog()
	analyzer := NewGapAnalyzer(&fakeClassifier{results: []map[model.SectionID][]string{{
		"leningdeel": {"A"},
		"aow":        {},
	}}}, catalog)

	first := analyzer.Analyze(context.Background(), "zelfde tekst")
	second := analyzer.Analyze(context.Background(), "zelfde tekst")

	assert.Equal(t, first, second)
}
