package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lira-support-be/pkg/llm"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	return NewProviderWithClient(openai.NewClientWithConfig(cfg), "gpt-4o-mini")
}

func completionBody(content string) string {
	return `{"choices":[{"message":{"role":"assistant","content":"` + content + `"}}]}`
}

func TestChatReturnsTrimmedReply(t *testing.T) {
	var captured openai.ChatCompletionRequest
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody("  Rose Glow is 450 BDT.  ")))
	})

	reply, err := p.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "you are a support agent"},
		{Role: "user", Content: "price of rose glow?"},
	}, llm.WithMaxTokens(200))
	require.NoError(t, err)
	assert.Equal(t, "Rose Glow is 450 BDT.", reply)

	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.Equal(t, 200, captured.MaxTokens)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[1].Role)
}

func TestChatNormalizesModelRole(t *testing.T) {
	var captured openai.ChatCompletionRequest
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody("ok")))
	})

	_, err := p.Chat(context.Background(), []llm.Message{
		{Role: "model", Content: "earlier reply"},
	})
	require.NoError(t, err)
	assert.Equal(t, "assistant", captured.Messages[0].Role)
}

func TestChatModelOptionOverrides(t *testing.T) {
	var captured openai.ChatCompletionRequest
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody("ok")))
	})

	_, err := p.Chat(context.Background(),
		[]llm.Message{{Role: "user", Content: "hi"}},
		llm.WithModel("gpt-4o"))
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", captured.Model)
}

func TestChatUpstreamError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusServiceUnavailable)
	})

	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrModelUnavailable)
}

func TestChatEmptyChoices(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrModelUnavailable)
}
