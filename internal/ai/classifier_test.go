package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intakeflow/internal/config"
	"intakeflow/internal/model"
)

func testCatalog() *model.Catalog {
	return &model.Catalog{
		Sections: []model.Section{
			{ID: "leningdeel", Title: "Leningdeel", Points: []string{
				"Leningbedrag en onderbouwing",
				"Rentevaste periode met onderbouwing",
			}},
			{ID: "aow", Title: "AOW", Points: []string{
				"Pensioenopbouw en inkomen",
			}},
		},
	}
}

// newMockAPIServer serves a fixed completion content in the OpenAI wire shape
func newMockAPIServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func newTestClient(baseURL string) *Client {
	return NewClient(&config.AIConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Models: config.OpenAIModels{
			Classify: "gpt-4o-mini",
			Question: "gpt-4o",
			Report:   "gpt-4o",
			Explain:  "gpt-4o-mini",
		},
		Temperature: 0.3,
		TimeoutMS:   5000,
	})
}

func TestClassifyParsesModelResponse(t *testing.T) {
	srv := newMockAPIServer(t, `{
		"missing_topics": {
			"leningdeel": ["Leningbedrag en onderbouwing"],
			"aow": []
		},
		"explanation": "rente is behandeld"
	}`)
	defer srv.Close()

	classifier := NewClassifier(newTestClient(srv.URL + "/v1"))
	raw, err := classifier.Classify(context.Background(), "gesprek", testCatalog())

	require.NoError(t, err)
	assert.Equal(t, []string{"Leningbedrag en onderbouwing"}, raw["leningdeel"])
	assert.Empty(t, raw["aow"])
}

func TestClassifyStripsMarkdownFences(t *testing.T) {
	srv := newMockAPIServer(t, "```json\n{\"missing_topics\": {\"aow\": [\"Pensioenopbouw en inkomen\"]}, \"explanation\": \"\"}\n```")
	defer srv.Close()

	classifier := NewClassifier(newTestClient(srv.URL + "/v1"))
	raw, err := classifier.Classify(context.Background(), "gesprek", testCatalog())

	require.NoError(t, err)
	assert.Equal(t, []string{"Pensioenopbouw en inkomen"}, raw["aow"])
}

func TestClassifyNormalizesSectionKeys(t *testing.T) {
	srv := newMockAPIServer(t, `{"missing_topics": {" Leningdeel ": ["Leningbedrag en onderbouwing"]}, "explanation": ""}`)
	defer srv.Close()

	classifier := NewClassifier(newTestClient(srv.URL + "/v1"))
	raw, err := classifier.Classify(context.Background(), "gesprek", testCatalog())

	require.NoError(t, err)
	assert.Contains(t, raw, model.SectionID("leningdeel"))
}

func TestClassifyMalformedJSON(t *testing.T) {
	srv := newMockAPIServer(t, "dit is geen json")
	defer srv.Close()

	classifier := NewClassifier(newTestClient(srv.URL + "/v1"))
	_, err := classifier.Classify(context.Background(), "gesprek", testCatalog())

	assert.Error(t, err)
}

func TestClassifyMissingTopicsFieldRequired(t *testing.T) {
	srv := newMockAPIServer(t, `{"explanation": "leeg object"}`)
	defer srv.Close()

	classifier := NewClassifier(newTestClient(srv.URL + "/v1"))
	_, err := classifier.Classify(context.Background(), "gesprek", testCatalog())

	assert.Error(t, err)
}

func TestClassifyAPIErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "overloaded"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	classifier := NewClassifier(newTestClient(srv.URL + "/v1"))
	_, err := classifier.Classify(context.Background(), "gesprek", testCatalog())

	assert.Error(t, err)
}

func TestMockClassifyWithoutAPIKey(t *testing.T) {
	classifier := NewClassifier(NewClient(&config.AIConfig{TimeoutMS: 1000}))

	raw, err := classifier.Classify(context.Background(),
		"We bespraken het leningbedrag en de pensioenopbouw.", testCatalog())

	require.NoError(t, err)
	assert.Equal(t, []string{"Rentevaste periode met onderbouwing"}, raw["leningdeel"])
	assert.Empty(t, raw["aow"])
}

func TestMockClassifyEmptyTranscript(t *testing.T) {
	classifier := NewClassifier(NewClient(&config.AIConfig{TimeoutMS: 1000}))
	catalog := testCatalog()

	raw, err := classifier.Classify(context.Background(), "", catalog)

	require.NoError(t, err)
	for _, s := range catalog.Sections {
		assert.Equal(t, s.Points, raw[s.ID], "nothing mentioned means everything missing")
	}
}
