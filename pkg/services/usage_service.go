package services

import (
	"context"
	"fmt"

	"github.com/painscope/painscope/ent"
)

// UsageService records external API consumption per search for cost
// reporting.
type UsageService struct {
	client            *ent.Client
	costPerMillionUSD float64
}

// NewUsageService creates a UsageService with the configured token price.
func NewUsageService(client *ent.Client, costPerMillionUSD float64) *UsageService {
	return &UsageService{client: client, costPerMillionUSD: costPerMillionUSD}
}

// Record stores one usage row for a search.
func (s *UsageService) Record(ctx context.Context, searchID, service string, tokensUsed int) error {
	cost := float64(tokensUsed) / 1_000_000 * s.costPerMillionUSD

	_, err := s.client.ApiUsage.Create().
		SetSearchID(searchID).
		SetService(service).
		SetTokensUsed(tokensUsed).
		SetEstimatedCostUsd(cost).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record api usage: %w", err)
	}
	return nil
}
