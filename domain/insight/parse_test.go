package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"bare number", "0.8", 0.8},
		{"number in prose", "I would rate the importance of this course 0.75 because it covers fundamentals.", 0.75},
		{"trailing punctuation", "Rating: 0.6.", 0.6},
		{"clamped above one", "This deserves a 7 out of anything.", 1},
		{"zero", "0 - not relevant at all", 0},
		{"integer one", "1 is my rating", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractScore(tt.text)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestExtractScoreNoNumericToken(t *testing.T) {
	for _, text := range []string{
		"",
		"no numbers here at all",
		"version v2 is not a number token",
	} {
		_, err := extractScore(text)
		assert.Error(t, err, "text %q", text)
	}
}

func TestParseRecommendations(t *testing.T) {
	reply := `Here are three career paths for this student:

1. Data Engineer
   Required skills they already have: Python, SQL
   Skills they need to develop: Spark, Airflow
   Recommended next steps: build an ETL portfolio project, apply for internships

2. Machine Learning Engineer
   Required skills they already have: Python
   Skills they need to develop: PyTorch, MLOps
   Recommended next steps: take an ML systems course

3. Backend Developer
   Recommended next steps: contribute to open source`

	recs := parseRecommendations(reply)
	require.Len(t, recs, 3)

	assert.Equal(t, "Data Engineer", recs[0].Title)
	assert.Equal(t, []string{"Python", "SQL"}, recs[0].ExistingSkills)
	assert.Equal(t, []string{"Spark", "Airflow"}, recs[0].SkillsToDevelop)
	assert.Equal(t, []string{"build an ETL portfolio project", "apply for internships"}, recs[0].NextSteps)

	assert.Equal(t, "Machine Learning Engineer", recs[1].Title)
	assert.Equal(t, []string{"PyTorch", "MLOps"}, recs[1].SkillsToDevelop)

	assert.Equal(t, "Backend Developer", recs[2].Title)
	assert.Empty(t, recs[2].ExistingSkills)
	assert.Equal(t, []string{"contribute to open source"}, recs[2].NextSteps)
}

func TestParseRecommendationsMalformed(t *testing.T) {
	// Detail lines before any numbered item, and junk lines, are dropped.
	reply := `Required skills they already have: Python
random chatter
1. Product Analyst
   more chatter without a label`

	recs := parseRecommendations(reply)
	require.Len(t, recs, 1)
	assert.Equal(t, "Product Analyst", recs[0].Title)
	assert.Empty(t, recs[0].ExistingSkills)
}

func TestParseRecommendationsEmpty(t *testing.T) {
	assert.Empty(t, parseRecommendations(""))
	assert.Empty(t, parseRecommendations("I cannot help with that."))
}
