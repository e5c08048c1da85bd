package analyzer

import (
	"encoding/json"
	"fmt"
)

// BuildPrompt renders the analysis instruction plus the JSON transcript.
// The payload is expected to be pre-capped by the pipeline; this function
// only serializes it.
func BuildPrompt(topic string, payload Payload) (string, error) {
	transcript, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal analysis payload: %w", err)
	}

	return fmt.Sprintf(`You are a product researcher mining Hacker News discussions about %q.

Below is a JSON transcript of stories and top comments. Identify the recurring
pain points people describe and the product opportunities they imply.

Respond with a single JSON object, no prose, matching exactly:
{
  "summary": "two or three sentences describing the overall sentiment",
  "problemClusters": [
    {
      "title": "short name of the pain point",
      "description": "what users struggle with and why",
      "severity": 0-10,
      "mentionCount": <number of distinct comments describing it>,
      "examples": ["verbatim comment excerpts supporting this cluster"]
    }
  ],
  "productIdeas": [
    {
      "title": "short product name",
      "description": "what it does",
      "targetProblem": "title of the cluster it addresses",
      "impactScore": 0-10
    }
  ]
}

Rules:
- examples MUST be verbatim substrings of comments from the transcript.
- Never invent pain points that the transcript does not support.
- Return an empty problemClusters array if the transcript is too thin.

Transcript:
%s`, topic, transcript), nil
}
