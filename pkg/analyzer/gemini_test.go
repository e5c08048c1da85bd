package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validAnalysisJSON = `{
	"summary": "Developers struggle with container networking.",
	"problemClusters": [
		{"title": "DNS resolution failures", "description": "Containers cannot resolve service names", "severity": 7.5, "mentionCount": 6, "examples": ["my containers cannot resolve each other"]}
	],
	"productIdeas": [
		{"title": "Network debugger", "description": "Visualize container networks", "targetProblem": "DNS resolution failures", "impactScore": 8}
	]
}`

func TestParseAnalysisText(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		a, err := ParseAnalysisText(validAnalysisJSON)
		require.NoError(t, err)
		assert.Equal(t, "Developers struggle with container networking.", a.Summary)
		require.Len(t, a.ProblemClusters, 1)
		assert.Equal(t, 7.5, a.ProblemClusters[0].Severity)
	})

	t.Run("fenced json", func(t *testing.T) {
		a, err := ParseAnalysisText("```json\n" + validAnalysisJSON + "\n```")
		require.NoError(t, err)
		assert.Len(t, a.ProductIdeas, 1)
	})

	t.Run("fence without language tag", func(t *testing.T) {
		a, err := ParseAnalysisText("```\n" + validAnalysisJSON + "\n```")
		require.NoError(t, err)
		assert.Len(t, a.ProblemClusters, 1)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := ParseAnalysisText("I could not find any pain points, sorry!")
		require.ErrorIs(t, err, ErrInvalidAnalysis)
	})
}

func TestAnalysisValidate(t *testing.T) {
	t.Run("nil analysis", func(t *testing.T) {
		var a *Analysis
		require.ErrorIs(t, a.Validate(), ErrInvalidAnalysis)
	})

	t.Run("empty clusters are valid", func(t *testing.T) {
		a := &Analysis{Summary: "nothing found"}
		require.NoError(t, a.Validate())
	})

	t.Run("nameless cluster", func(t *testing.T) {
		a := &Analysis{ProblemClusters: []ProblemCluster{{Severity: 5}}}
		require.ErrorIs(t, a.Validate(), ErrInvalidAnalysis)
	})

	t.Run("severity out of range", func(t *testing.T) {
		a := &Analysis{ProblemClusters: []ProblemCluster{{Title: "x", Severity: 10.5}}}
		require.ErrorIs(t, a.Validate(), ErrInvalidAnalysis)
	})

	t.Run("negative mention count", func(t *testing.T) {
		a := &Analysis{ProblemClusters: []ProblemCluster{{Title: "x", Severity: 5, MentionCount: -1}}}
		require.ErrorIs(t, a.Validate(), ErrInvalidAnalysis)
	})

	t.Run("impact out of range", func(t *testing.T) {
		a := &Analysis{ProductIdeas: []ProductIdea{{Title: "x", ImpactScore: 11}}}
		require.ErrorIs(t, a.Validate(), ErrInvalidAnalysis)
	})
}
