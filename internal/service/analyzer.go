package service

import (
	"context"

	"intakeflow/internal/logger"
	"intakeflow/internal/model"
)

// GapClassifier is the external text-classification collaborator. Given the
// conversation so far it judges, per section, which checklist points are
// insufficiently covered. It may fail.
type GapClassifier interface {
	Classify(ctx context.Context, combinedText string, catalog *model.Catalog) (map[model.SectionID][]string, error)
}

// GapAnalyzer turns classifier output into a MissingMap that is always
// consistent with the catalog
type GapAnalyzer struct {
	classifier GapClassifier
	catalog    *model.Catalog
}

// NewGapAnalyzer creates a new gap analyzer
func NewGapAnalyzer(classifier GapClassifier, catalog *model.Catalog) *GapAnalyzer {
	return &GapAnalyzer{
		classifier: classifier,
		catalog:    catalog,
	}
}

// Analyze classifies the combined conversation text and normalizes the
// result. When classification fails it marks every catalog point missing, so
// a broken classifier means asking everything rather than hiding gaps.
func (a *GapAnalyzer) Analyze(ctx context.Context, combinedText string) model.MissingMap {
	raw, err := a.classifier.Classify(ctx, combinedText, a.catalog)
	if err != nil {
		logger.Log.WithError(err).Warn("gap classification failed, marking full checklist missing")
		return a.catalog.FullMissing()
	}
	return a.normalize(raw)
}

// normalize reduces raw classifier output to the catalog: exactly the catalog
// section keys, values restricted to that section's points, deduplicated and
// in catalog point order. Sections the classifier omitted count as covered.
func (a *GapAnalyzer) normalize(raw map[model.SectionID][]string) model.MissingMap {
	out := make(model.MissingMap, len(a.catalog.Sections))
	for _, section := range a.catalog.Sections {
		reported := make(map[string]bool, len(raw[section.ID]))
		for _, label := range raw[section.ID] {
			reported[label] = true
		}
		missing := []string{}
		for _, p := range section.Points {
			if reported[p] {
				missing = append(missing, p)
			}
		}
		if dropped := len(reported) - len(missing); dropped > 0 {
			logger.Log.WithFields(map[string]interface{}{
				"section": section.ID,
				"dropped": dropped,
			}).Debug("classifier reported labels outside the catalog")
		}
		out[section.ID] = missing
	}
	return out
}
