package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreak-labs/companion-api/pkg/logger"
)

type fakeClient struct {
	content string
	err     error
	gotReq  *CompletionRequest
}

func (f *fakeClient) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &CompletionResponse{Content: f.content}, nil
}

func (f *fakeClient) Name() string     { return "fake" }
func (f *fakeClient) Models() []string { return []string{"fake-model"} }

func TestGenerateReplyBuildsTranscript(t *testing.T) {
	client := &fakeClient{content: "an answer"}
	gw := NewGateway(client, "fake-model", logger.NewNop())

	prior := []ChatMessage{
		{Role: "user", Content: "earlier question"},
		{Role: "assistant", Content: "earlier answer"},
	}
	reply, err := gw.GenerateReply(context.Background(), "latest question", prior)
	require.NoError(t, err)
	assert.Equal(t, "an answer", reply)

	require.NotNil(t, client.gotReq)
	assert.NotEmpty(t, client.gotReq.System)
	require.Len(t, client.gotReq.Messages, 3)
	assert.Equal(t, "earlier question", client.gotReq.Messages[0].Content)
	assert.Equal(t, "earlier answer", client.gotReq.Messages[1].Content)
	assert.Equal(t, ChatMessage{Role: "user", Content: "latest question"}, client.gotReq.Messages[2])
}

func TestGenerateReplyErrorIsSurfaced(t *testing.T) {
	client := &fakeClient{err: errors.New("provider exploded")}
	gw := NewGateway(client, "", logger.NewNop())

	_, err := gw.GenerateReply(context.Background(), "hello", nil)
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestGenerateReplyEmptyContentFallsBack(t *testing.T) {
	client := &fakeClient{content: "   "}
	gw := NewGateway(client, "", logger.NewNop())

	reply, err := gw.GenerateReply(context.Background(), "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, replyFallback, reply)
}

func TestGenerateReplyWithoutClientFails(t *testing.T) {
	gw := NewGateway(nil, "", logger.NewNop())

	_, err := gw.GenerateReply(context.Background(), "hello", nil)
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestGenerateDailyInsightsMasksProviderFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("provider exploded")}
	gw := NewGateway(client, "", logger.NewNop())

	insights := gw.GenerateDailyInsights(context.Background(), 3, 1, 2)
	assert.Equal(t, insightFallback, insights)
	assert.Len(t, insights, 2)
}

func TestGenerateDailyInsightsWithoutClientFallsBack(t *testing.T) {
	gw := NewGateway(nil, "", logger.NewNop())

	insights := gw.GenerateDailyInsights(context.Background(), 0, 0, 0)
	assert.Equal(t, insightFallback, insights)
}

func TestGenerateDailyInsightsParsesArray(t *testing.T) {
	client := &fakeClient{content: `Here are your insights: ["great chat streak", "one goal down", "notes are adding up"]`}
	gw := NewGateway(client, "", logger.NewNop())

	insights := gw.GenerateDailyInsights(context.Background(), 3, 1, 2)
	assert.Equal(t, []string{"great chat streak", "one goal down", "notes are adding up"}, insights)
}

func TestGenerateDailyInsightsEmptyArrayFallsBack(t *testing.T) {
	client := &fakeClient{content: "[]"}
	gw := NewGateway(client, "", logger.NewNop())

	insights := gw.GenerateDailyInsights(context.Background(), 0, 0, 0)
	assert.Equal(t, insightFallback, insights)
}

func TestParseInsights(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"plain array", `["a","b"]`, []string{"a", "b"}},
		{"fenced array", "```json\n[\"a\",\"b\"]\n```", []string{"a", "b"}},
		{"prose wrapped", `Sure! ["a"] hope that helps`, []string{"a"}},
		{"blank entries dropped", `["a","  "]`, []string{"a"}},
		{"no array", "no insights today", nil},
		{"malformed", `["a",]`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseInsights(tt.content))
		})
	}
}
