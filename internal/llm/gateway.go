package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/daybreak-labs/companion-api/pkg/logger"
	"github.com/daybreak-labs/companion-api/pkg/metrics"
)

// ErrGenerationFailed marks a failed provider call on the reply path.
// Callers surface it to the user; the insight path never returns it.
var ErrGenerationFailed = errors.New("generation failed")

const systemPrompt = "You are Daybreak, a warm and practical personal productivity companion. " +
	"You help the user reflect on their day, track goals, capture notes, and stay motivated. " +
	"Keep answers concise, concrete, and encouraging."

const replyFallback = "I'm having trouble coming up with a response right now. Please try again."

// Fixed insight list used whenever insight generation fails or parses empty.
var insightFallback = []string{
	"You're building momentum - keep showing up each day!",
	"Take a moment to appreciate one thing you finished today.",
}

// Gateway adapts the provider client to the two operations the
// orchestration layer needs: chat replies and daily insights.
type Gateway struct {
	client Client
	model  string
	logger *logger.Logger
}

// NewGateway creates a gateway over the given provider client. A nil
// client is allowed; every generation call then fails (or falls back)
// instead of preventing startup.
func NewGateway(client Client, model string, log *logger.Logger) *Gateway {
	return &Gateway{
		client: client,
		model:  model,
		logger: log,
	}
}

// GenerateReply produces the assistant's answer to the latest message,
// given the prior turns of the conversation in chronological order.
// Provider errors are returned to the caller wrapped in
// ErrGenerationFailed; an empty provider result yields a fixed fallback
// sentence instead.
func (g *Gateway) GenerateReply(ctx context.Context, latestMessage string, priorTurns []ChatMessage) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("%w: no provider configured", ErrGenerationFailed)
	}

	msgs := make([]ChatMessage, 0, len(priorTurns)+1)
	msgs = append(msgs, priorTurns...)
	msgs = append(msgs, ChatMessage{Role: "user", Content: latestMessage})

	start := time.Now()
	resp, err := g.client.Complete(ctx, &CompletionRequest{
		Model:       g.model,
		System:      systemPrompt,
		Messages:    msgs,
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		metrics.RecordGeneration(g.client.Name(), "reply", "error", time.Since(start).Seconds())
		g.logger.Error("reply generation failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	metrics.RecordGeneration(g.client.Name(), "reply", "success", time.Since(start).Seconds())

	if strings.TrimSpace(resp.Content) == "" {
		return replyFallback, nil
	}
	return resp.Content, nil
}

// GenerateDailyInsights turns today's activity counters into 3-4 short
// encouraging strings. Failure here is cosmetic: any provider error or an
// unparseable result yields the fixed fallback list, never an error.
func (g *Gateway) GenerateDailyInsights(ctx context.Context, chatCount, goalCount, noteCount int) []string {
	if g.client == nil {
		metrics.InsightFallbacksTotal.Inc()
		return insightFallback
	}

	prompt := fmt.Sprintf(
		"Today the user had %d chat sessions, completed %d goals, and created %d notes. "+
			"Write 3-4 short encouraging insights about their day. "+
			"Respond with only a JSON array of strings, nothing else.",
		chatCount, goalCount, noteCount,
	)

	start := time.Now()
	resp, err := g.client.Complete(ctx, &CompletionRequest{
		Model:       g.model,
		System:      systemPrompt,
		Messages:    []ChatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   512,
		Temperature: 0.8,
	})
	if err != nil {
		metrics.RecordGeneration(g.client.Name(), "insights", "error", time.Since(start).Seconds())
		metrics.InsightFallbacksTotal.Inc()
		g.logger.Warn("insight generation failed, using fallback", zap.Error(err))
		return insightFallback
	}
	metrics.RecordGeneration(g.client.Name(), "insights", "success", time.Since(start).Seconds())

	insights := parseInsights(resp.Content)
	if len(insights) == 0 {
		metrics.InsightFallbacksTotal.Inc()
		g.logger.Warn("insight response did not parse, using fallback")
		return insightFallback
	}
	return insights
}

// parseInsights extracts a JSON string array from provider output, which
// may be wrapped in prose or a code fence.
func parseInsights(content string) []string {
	startIdx := strings.Index(content, "[")
	endIdx := strings.LastIndex(content, "]")
	if startIdx < 0 || endIdx <= startIdx {
		return nil
	}

	var insights []string
	if err := json.Unmarshal([]byte(content[startIdx:endIdx+1]), &insights); err != nil {
		return nil
	}

	out := insights[:0]
	for _, s := range insights {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
