package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEndpoint struct {
	server   *httptest.Server
	calls    atomic.Int32
	lastBody atomic.Value
	lastAuth atomic.Value
}

func newFakeEndpoint(t *testing.T, status int, reply string, delay time.Duration) *fakeEndpoint {
	f := &fakeEndpoint{}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		body, _ := io.ReadAll(r.Body)
		f.lastBody.Store(body)
		f.lastAuth.Store(r.Header.Get("Authorization"))

		if r.URL.Path != "/chat/completions" {
			http.Error(w, "unexpected path "+r.URL.Path, http.StatusNotFound)
			return
		}

		if delay > 0 {
			time.Sleep(delay)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"upstream exploded","type":"server_error"}}`))
			return
		}
		resp := map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   DefaultModel,
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": reply},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeEndpoint) body(t *testing.T) map[string]any {
	raw, ok := f.lastBody.Load().([]byte)
	require.True(t, ok, "endpoint was never called")
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return decoded
}

var allClients = []string{ClientOpenAI, ClientLangChain, ClientREST}

var testMessages = []Message{
	{Role: RoleSystem, Content: "system prompt text"},
	{Role: RoleUser, Content: "earlier question"},
	{Role: RoleAssistant, Content: "earlier answer"},
	{Role: RoleUser, Content: "What are the skills"},
}

func TestCompleteReturnsFirstChoice(t *testing.T) {
	for _, client := range allClients {
		t.Run(client, func(t *testing.T) {
			endpoint := newFakeEndpoint(t, http.StatusOK, "Python, C++, SQL...", 0)

			completer, err := New(Config{Client: client, APIKey: "test-key", BaseURL: endpoint.server.URL})
			require.NoError(t, err)
			assert.Equal(t, client, completer.Name())
			assert.Equal(t, DefaultModel, completer.Model())

			reply, err := completer.Complete(context.Background(), testMessages)
			require.NoError(t, err)
			assert.Equal(t, "Python, C++, SQL...", reply)
			assert.Equal(t, int32(1), endpoint.calls.Load())
			assert.Equal(t, "Bearer test-key", endpoint.lastAuth.Load())

			body := endpoint.body(t)
			assert.Equal(t, DefaultModel, body["model"])
			assert.InDelta(t, Temperature, body["temperature"], 1e-9)

			raw, _ := endpoint.lastBody.Load().([]byte)
			for _, m := range testMessages {
				assert.Contains(t, string(raw), m.Content)
			}

			messages, ok := body["messages"].([]any)
			require.True(t, ok)
			require.Len(t, messages, len(testMessages))
			for i, m := range testMessages {
				assert.Equal(t, m.Role, messages[i].(map[string]any)["role"])
			}
		})
	}
}

func TestCompleteSendsMaxTokens(t *testing.T) {
	for _, client := range []string{ClientOpenAI, ClientREST} {
		t.Run(client, func(t *testing.T) {
			endpoint := newFakeEndpoint(t, http.StatusOK, "ok", 0)

			completer, err := New(Config{Client: client, APIKey: "test-key", BaseURL: endpoint.server.URL})
			require.NoError(t, err)

			_, err = completer.Complete(context.Background(), testMessages)
			require.NoError(t, err)
			assert.EqualValues(t, MaxTokens, endpoint.body(t)["max_tokens"])
		})
	}
}

func TestMissingAPIKeyMakesNoRequest(t *testing.T) {
	for _, client := range allClients {
		t.Run(client, func(t *testing.T) {
			endpoint := newFakeEndpoint(t, http.StatusOK, "unused", 0)

			completer, err := New(Config{Client: client, BaseURL: endpoint.server.URL})
			require.NoError(t, err)

			_, err = completer.Complete(context.Background(), testMessages)
			assert.ErrorIs(t, err, ErrMissingAPIKey)
			assert.Equal(t, "Groq API key not configured", err.Error())
			assert.Equal(t, int32(0), endpoint.calls.Load())
		})
	}
}

func TestUpstreamFailureIsServiceError(t *testing.T) {
	for _, client := range allClients {
		t.Run(client, func(t *testing.T) {
			endpoint := newFakeEndpoint(t, http.StatusInternalServerError, "", 0)

			completer, err := New(Config{Client: client, APIKey: "test-key", BaseURL: endpoint.server.URL})
			require.NoError(t, err)

			_, err = completer.Complete(context.Background(), testMessages)
			var serviceErr *ServiceError
			require.True(t, errors.As(err, &serviceErr), "expected ServiceError, got %T: %v", err, err)
			assert.NotEmpty(t, serviceErr.Error())
			// No retries against the upstream.
			assert.Equal(t, int32(1), endpoint.calls.Load())
		})
	}
}

func TestTimeoutIsServiceError(t *testing.T) {
	for _, client := range allClients {
		t.Run(client, func(t *testing.T) {
			endpoint := newFakeEndpoint(t, http.StatusOK, "too late", 500*time.Millisecond)

			completer, err := New(Config{Client: client, APIKey: "test-key", BaseURL: endpoint.server.URL, Timeout: 50 * time.Millisecond})
			require.NoError(t, err)

			_, err = completer.Complete(context.Background(), testMessages)
			var serviceErr *ServiceError
			assert.True(t, errors.As(err, &serviceErr), "expected ServiceError, got %T: %v", err, err)
		})
	}
}

func TestCallerCancellationDoesNotAbortCompletion(t *testing.T) {
	endpoint := newFakeEndpoint(t, http.StatusOK, "finished anyway", 0)

	completer, err := New(Config{APIKey: "test-key", BaseURL: endpoint.server.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reply, err := completer.Complete(ctx, testMessages)
	require.NoError(t, err)
	assert.Equal(t, "finished anyway", reply)
}

func TestNewRejectsUnknownClient(t *testing.T) {
	_, err := New(Config{Client: "carrier-pigeon"})
	assert.Error(t, err)
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, ClientOpenAI, cfg.Client)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}
