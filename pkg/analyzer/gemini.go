package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

// GeminiAnalyzer implements Analyzer against the Gemini API.
// Each call is single-shot; retry policy belongs to the caller.
type GeminiAnalyzer struct {
	client *genai.Client
	model  string
}

// NewGeminiAnalyzer creates a Gemini-backed analyzer.
func NewGeminiAnalyzer(ctx context.Context, apiKey, model string) (*GeminiAnalyzer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiAnalyzer{client: client, model: model}, nil
}

// Analyze sends the transcript to Gemini and parses the structured response.
// Non-JSON or structurally invalid output is returned as ErrInvalidAnalysis
// so the pipeline's retry loop can treat it as transient.
func (g *GeminiAnalyzer) Analyze(ctx context.Context, topic string, payload Payload) (*Analysis, error) {
	prompt, err := BuildPrompt(topic, payload)
	if err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	resp, err := g.client.Models.GenerateContent(
		ctx,
		g.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		config,
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate failed: %w", err)
	}

	var text string
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
	}
	if text == "" {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidAnalysis)
	}

	analysis, err := ParseAnalysisText(text)
	if err != nil {
		slog.Warn("Analyzer response failed to parse", "model", g.model, "error", err)
		return nil, err
	}

	analysis.Model = g.model
	if resp.UsageMetadata != nil {
		analysis.TokensUsed = int(resp.UsageMetadata.TotalTokenCount)
	}
	return analysis, nil
}

// ParseAnalysisText decodes the model's JSON output, tolerating markdown
// code fences, and validates the result.
func ParseAnalysisText(text string) (*Analysis, error) {
	text = stripCodeFence(text)

	var analysis Analysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnalysis, err)
	}
	if err := analysis.Validate(); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// stripCodeFence removes a surrounding ```json ... ``` block if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
