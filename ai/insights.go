// Package ai generates short natural-language summaries of profiled
// data. The generator consumes column profiles and chosen chart
// mappings, never raw rows; absent a credential, or on any call failure,
// it degrades to deterministic fallback text so report export is never
// blocked.
package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"autoviz/domain/chart"
	"autoviz/domain/profile"
	"autoviz/internal/config"
	"autoviz/internal/errors"
	"autoviz/ports"
)

// PlaceholderText is returned when nothing can be summarized
const PlaceholderText = "no insights available"

// InsightGenerator produces report insight text. Implements
// ports.InsightGenerator.
type InsightGenerator struct {
	client ports.LLMClient
	cfg    config.AIConfig
}

// NewInsightGenerator creates a generator; a nil client or empty key
// disables the LLM path entirely
func NewInsightGenerator(client ports.LLMClient, cfg config.AIConfig) *InsightGenerator {
	return &InsightGenerator{client: client, cfg: cfg}
}

// Generate returns insight text for the chosen charts. The LLM path is
// attempted only with a configured credential; every failure mode falls
// back to BasicStats and a nil error, per the degradation contract.
func (g *InsightGenerator) Generate(ctx context.Context, profiles []profile.ColumnProfile, chosen []chart.Suggestion, language string) (string, error) {
	if g.client == nil || !g.cfg.Enabled() {
		return BasicStats(profiles, chosen), nil
	}

	prompt := BuildPrompt(profiles, chosen, language)
	text, err := g.client.ChatCompletion(ctx, g.cfg.Model, prompt, g.cfg.MaxTokens)
	if err != nil {
		wrapped := errors.InsightUnavailable(err)
		log.Printf("[InsightGenerator] LLM call failed, using fallback: %v", wrapped)
		return BasicStats(profiles, chosen), nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return BasicStats(profiles, chosen), nil
	}
	return text, nil
}

// BasicStats is the deterministic fallback: one bullet per numeric
// column referenced by a chosen chart
func BasicStats(profiles []profile.ColumnProfile, chosen []chart.Suggestion) string {
	byName := make(map[string]profile.ColumnProfile, len(profiles))
	for _, p := range profiles {
		byName[p.Name] = p
	}

	lines := []string{"Insights (basic):"}
	seen := make(map[string]bool)
	for _, s := range chosen {
		if s.Y == "" || seen[s.Y] {
			continue
		}
		p, ok := byName[s.Y]
		if !ok || !p.IsNumeric() {
			continue
		}
		seen[s.Y] = true
		lines = append(lines, fmt.Sprintf("- %s: min=%.3g, max=%.3g, mean=%.3g",
			p.Name, p.Numeric.Min, p.Numeric.Max, p.Numeric.Mean))
	}

	if len(lines) == 1 {
		return PlaceholderText
	}
	return strings.Join(lines, "\n")
}
