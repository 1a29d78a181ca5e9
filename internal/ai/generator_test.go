package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intakeflow/internal/config"
	"intakeflow/internal/model"
)

func leningdeelSection() model.Section {
	return testCatalog().Sections[0]
}

func TestGenerateParsesModelResponse(t *testing.T) {
	srv := newMockAPIServer(t, `{
		"question": "Wat is het gewenste leningbedrag?",
		"context": "Zonder bedrag kan geen advies worden opgesteld.",
		"related_points": ["Leningbedrag en onderbouwing"]
	}`)
	defer srv.Close()

	gen := NewGenerator(newTestClient(srv.URL + "/v1"))
	qa, err := gen.Generate(context.Background(), leningdeelSection(),
		[]string{"Leningbedrag en onderbouwing"}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Wat is het gewenste leningbedrag?", qa.Question)
	assert.Equal(t, "Zonder bedrag kan geen advies worden opgesteld.", qa.Context)
	assert.Equal(t, model.SectionID("leningdeel"), qa.Section)
	assert.Equal(t, []string{"Leningbedrag en onderbouwing"}, qa.RelatedPoints)
	assert.False(t, qa.Answered)
}

func TestGenerateFillsDefaultContext(t *testing.T) {
	srv := newMockAPIServer(t, `{"question": "Wat is het bedrag?", "context": "", "related_points": []}`)
	defer srv.Close()

	gen := NewGenerator(newTestClient(srv.URL + "/v1"))
	qa, err := gen.Generate(context.Background(), leningdeelSection(),
		[]string{"Leningbedrag en onderbouwing"}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Informatie over leningdeel", qa.Context)
}

func TestGenerateRejectsEmptyQuestion(t *testing.T) {
	srv := newMockAPIServer(t, `{"question": "  ", "context": "c", "related_points": []}`)
	defer srv.Close()

	gen := NewGenerator(newTestClient(srv.URL + "/v1"))
	_, err := gen.Generate(context.Background(), leningdeelSection(),
		[]string{"Leningbedrag en onderbouwing"}, nil)

	assert.Error(t, err)
}

func TestMockGenerateUsesScriptedQuestion(t *testing.T) {
	gen := NewGenerator(NewClient(&config.AIConfig{TimeoutMS: 1000}))

	qa, err := gen.Generate(context.Background(), leningdeelSection(),
		[]string{"Leningbedrag en onderbouwing", "Rentevaste periode met onderbouwing"}, nil)

	require.NoError(t, err)
	assert.NotEmpty(t, qa.Question)
	assert.Equal(t, []string{"Leningbedrag en onderbouwing"}, qa.RelatedPoints, "scripted fallback targets the first missing point")
	assert.Equal(t, model.SectionID("leningdeel"), qa.Section)
}
