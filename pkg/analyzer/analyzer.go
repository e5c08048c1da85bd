// Package analyzer defines the LLM analysis port and its Gemini-backed
// implementation. The pipeline hands it a compact transcript of scraped
// stories and comments; it returns clustered pain points and product ideas.
package analyzer

import (
	"context"
	"errors"
	"fmt"
)

// AnalysisSchemaVersion is stamped on persisted analyses so readers can
// reject payloads written by an incompatible encoder.
const AnalysisSchemaVersion = 1

// ErrInvalidAnalysis indicates the model returned output that does not
// match the expected structure. Treated as transient by callers (retried).
var ErrInvalidAnalysis = errors.New("analyzer returned structurally invalid output")

// StoryInput is one story in the analysis payload, already capped by the
// pipeline (text and comment snippets truncated before they get here).
type StoryInput struct {
	Title    string   `json:"title"`
	Text     string   `json:"text,omitempty"`
	Tag      string   `json:"tag"`
	Points   int      `json:"points"`
	Comments []string `json:"comments,omitempty"`
}

// Payload is the full analyzer input for one search.
type Payload struct {
	Stories []StoryInput `json:"stories"`
}

// ProblemCluster is one theme of user pain distilled from the transcript.
type ProblemCluster struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Severity     float64  `json:"severity"`
	MentionCount int      `json:"mentionCount"`
	Examples     []string `json:"examples"`
}

// ProductIdea is a product opportunity the model derives from a cluster.
type ProductIdea struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	TargetProblem string  `json:"targetProblem"`
	ImpactScore   float64 `json:"impactScore"`
}

// Analysis is the validated analyzer output.
type Analysis struct {
	Summary         string           `json:"summary"`
	ProblemClusters []ProblemCluster `json:"problemClusters"`
	ProductIdeas    []ProductIdea    `json:"productIdeas"`
	Model           string           `json:"model,omitempty"`
	TokensUsed      int              `json:"tokensUsed,omitempty"`
}

// Analyzer is the port the pipeline depends on.
type Analyzer interface {
	Analyze(ctx context.Context, topic string, payload Payload) (*Analysis, error)
}

// Validate checks the structural invariants the rest of the system relies
// on: scores within [0,10] and no nameless clusters or ideas. An empty
// cluster list is valid; the pipeline falls back to tag-based pain points.
func (a *Analysis) Validate() error {
	if a == nil {
		return fmt.Errorf("%w: nil analysis", ErrInvalidAnalysis)
	}
	for i, c := range a.ProblemClusters {
		if c.Title == "" {
			return fmt.Errorf("%w: cluster %d has no title", ErrInvalidAnalysis, i)
		}
		if c.Severity < 0 || c.Severity > 10 {
			return fmt.Errorf("%w: cluster %d severity %.2f out of [0,10]", ErrInvalidAnalysis, i, c.Severity)
		}
		if c.MentionCount < 0 {
			return fmt.Errorf("%w: cluster %d negative mention count", ErrInvalidAnalysis, i)
		}
	}
	for i, p := range a.ProductIdeas {
		if p.Title == "" {
			return fmt.Errorf("%w: idea %d has no title", ErrInvalidAnalysis, i)
		}
		if p.ImpactScore < 0 || p.ImpactScore > 10 {
			return fmt.Errorf("%w: idea %d impact %.2f out of [0,10]", ErrInvalidAnalysis, i, p.ImpactScore)
		}
	}
	return nil
}
