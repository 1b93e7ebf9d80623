package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testIdeas struct {
	Ideas []struct {
		Name   string `json:"name"`
		Sector string `json:"sector"`
	} `json:"ideas"`
	Score float64 `json:"score"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	raw := `{"ideas":[{"name":"Wells","sector":"WASH"}],"score":0.95}`
	result, err := ExtractJSON[testIdeas](raw, nil)
	require.NoError(t, err)
	require.Len(t, result.Ideas, 1)
	assert.Equal(t, "Wells", result.Ideas[0].Name)
	assert.Equal(t, 0.95, result.Score)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"ideas\":[],\"score\":0.88}\n```"
	result, err := ExtractJSON[testIdeas](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.88, result.Score)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "Here are the ideas:\n{\"ideas\":[{\"name\":\"Clinic\",\"sector\":\"Health\"}]}\nGood luck!"
	result, err := ExtractJSON[testIdeas](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Clinic", result.Ideas[0].Name)
}

func TestExtractJSON_BracesAndCommentMarkersInsideStrings(t *testing.T) {
	raw := `{"ideas":[{"name":"Schools {phase 1} // http://x.org /* y */","sector":"Edu"}]}`
	result, err := ExtractJSON[testIdeas](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Schools {phase 1} // http://x.org /* y */", result.Ideas[0].Name)
}

func TestExtractJSON_EscapedQuotes(t *testing.T) {
	raw := `{"ideas":[{"name":"The \"Safe\" Route}","sector":"Protection"}]}`
	result, err := ExtractJSON[testIdeas](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, `The "Safe" Route}`, result.Ideas[0].Name)
}

func TestExtractJSON_RepairsCommentsTrailingCommasAndDecimals(t *testing.T) {
	raw := `{
		// ranked output
		"ideas": [
			{"name": "Wells", "sector": "WASH",}, /* first */
		],
		"score": .5,
	}`
	result, err := ExtractJSON[testIdeas](raw, nil)
	require.NoError(t, err)
	require.Len(t, result.Ideas, 1)
	assert.Equal(t, 0.5, result.Score)
}

func TestExtractJSON_NegativeLeadingDecimal(t *testing.T) {
	type delta struct {
		D float64 `json:"d"`
	}
	result, err := ExtractJSON[delta](`{"d":-.25}`, nil)
	require.NoError(t, err)
	assert.Equal(t, -0.25, result.D)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[testIdeas]("I cannot help with that.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Unbalanced(t *testing.T) {
	_, err := ExtractJSON[testIdeas](`{"ideas":[{"name":"x"}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	_, err := ExtractJSON[testIdeas](`{"ideas": broken}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_TypeMismatch(t *testing.T) {
	_, err := ExtractJSON[testIdeas](`{"score":"high"}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidationFailure(t *testing.T) {
	validator := func(p testIdeas) error {
		if len(p.Ideas) != 4 {
			return fmt.Errorf("want 4 ideas, got %d", len(p.Ideas))
		}
		return nil
	}
	_, err := ExtractJSON(`{"ideas":[]}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}
