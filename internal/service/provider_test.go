package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"daylog_relay/internal/config"
	"daylog_relay/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func upstream(t *testing.T, handler http.HandlerFunc) config.AIConfig {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return config.AIConfig{
		BaseURL:        srv.URL,
		APIKey:         "test-key",
		TimeoutSeconds: 5,
	}
}

func requireRelayError(t *testing.T, err error) *util.RelayError {
	t.Helper()
	var relayErr *util.RelayError
	require.True(t, errors.As(err, &relayErr), "expected *util.RelayError, got %T: %v", err, err)
	return relayErr
}

func TestOpenAIProvider(t *testing.T) {
	t.Run("returns first choice", func(t *testing.T) {
		var gotBody []byte
		cfg := upstream(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			gotBody, _ = io.ReadAll(r.Body)
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"파이썬은 언어입니다."},"finish_reason":"stop"}]}`)
		})
		cfg.Model = "gpt-4o-mini"

		p := NewOpenAIProvider(cfg, &http.Client{Timeout: cfg.Timeout()})
		text, err := p.SendPrompt(context.Background(), "파이썬이 뭐야?")
		require.NoError(t, err)

		assert.Equal(t, "파이썬은 언어입니다.", text)
		assert.Equal(t, "gpt-4o-mini", gjson.GetBytes(gotBody, "model").String())
		assert.Equal(t, "user", gjson.GetBytes(gotBody, "messages.0.role").String())
		assert.Equal(t, "파이썬이 뭐야?", gjson.GetBytes(gotBody, "messages.0.content").String())
	})

	t.Run("no choices is malformed", func(t *testing.T) {
		cfg := upstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `{"id":"c1","choices":[]}`)
		})

		_, err := NewOpenAIProvider(cfg, http.DefaultClient).SendPrompt(context.Background(), "hi")
		assert.ErrorIs(t, err, util.ErrMalformedResponse)
	})

	t.Run("api error keeps status and body", func(t *testing.T) {
		body := `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`
		cfg := upstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, body)
		})

		_, err := NewOpenAIProvider(cfg, http.DefaultClient).SendPrompt(context.Background(), "hi")
		relayErr := requireRelayError(t, err)
		assert.Equal(t, util.KindUpstream, relayErr.Kind)
		assert.Equal(t, http.StatusUnauthorized, relayErr.StatusCode)
		assert.Equal(t, body, relayErr.Detail)
	})

	t.Run("rate limit body is relayed", func(t *testing.T) {
		body := `{"error":{"message":"Rate limit reached for gpt-4o-mini","type":"requests","code":"rate_limit_exceeded"}}`
		cfg := upstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			io.WriteString(w, body)
		})

		_, err := NewOpenAIProvider(cfg, http.DefaultClient).SendPrompt(context.Background(), "hi")
		relayErr := requireRelayError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, relayErr.StatusCode)
		assert.Equal(t, body, relayErr.Detail)
	})

	t.Run("non json error body keeps status", func(t *testing.T) {
		cfg := upstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			io.WriteString(w, "upstream gateway exploded")
		})

		_, err := NewOpenAIProvider(cfg, http.DefaultClient).SendPrompt(context.Background(), "hi")
		relayErr := requireRelayError(t, err)
		assert.Equal(t, http.StatusBadGateway, relayErr.StatusCode)
		assert.Equal(t, "upstream gateway exploded", relayErr.Detail)
	})
}

func TestGeminiProvider(t *testing.T) {
	t.Run("extracts candidate text", func(t *testing.T) {
		cfg := upstream(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/models/gemini-1.5-flash:generateContent", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
			assert.Empty(t, r.URL.Query().Get("key"))

			var req geminiRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "질문", req.Contents[0].Parts[0].Text)

			io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"`+"```json\\n{\\\"percent\\\": 91}\\n```"+`"}],"role":"model"}}]}`)
		})
		cfg.Model = "gemini-1.5-flash"

		text, err := NewGeminiProvider(cfg, http.DefaultClient).SendPrompt(context.Background(), "질문")
		require.NoError(t, err)
		assert.Equal(t, "```json\n{\"percent\": 91}\n```", text)
	})

	t.Run("missing parts is malformed", func(t *testing.T) {
		cfg := upstream(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"candidates":[{"finishReason":"SAFETY"}]}`)
		})
		cfg.Model = "gemini-1.5-flash"

		_, err := NewGeminiProvider(cfg, http.DefaultClient).SendPrompt(context.Background(), "q")
		relayErr := requireRelayError(t, err)
		assert.Equal(t, http.StatusInternalServerError, relayErr.StatusCode)
		assert.Equal(t, util.MalformedResponseMessage, relayErr.Detail)
	})

	t.Run("upstream status and body propagate", func(t *testing.T) {
		body := `{"error":{"code":400,"message":"API key not valid.","status":"INVALID_ARGUMENT"}}`
		cfg := upstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, body)
		})
		cfg.Model = "gemini-1.5-flash"

		_, err := NewGeminiProvider(cfg, http.DefaultClient).SendPrompt(context.Background(), "q")
		relayErr := requireRelayError(t, err)
		assert.Equal(t, http.StatusBadRequest, relayErr.StatusCode)
		assert.Equal(t, body, relayErr.Detail)
	})
}

func TestHuggingFaceProvider(t *testing.T) {
	t.Run("splits on instruction delimiter", func(t *testing.T) {
		cfg := upstream(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/mistralai/Mistral-7B-Instruct-v0.2", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.Equal(t, "true", r.Header.Get("x-wait-for-model"))

			body, _ := io.ReadAll(r.Body)
			inputs := gjson.GetBytes(body, "inputs").String()
			assert.Equal(t, "[INST] 안녕? [/INST]", inputs)

			io.WriteString(w, `[{"generated_text":"[INST] 안녕? [/INST]  안녕하세요! "}]`)
		})
		cfg.Model = "mistralai/Mistral-7B-Instruct-v0.2"

		text, err := NewHuggingFaceProvider(cfg, http.DefaultClient).SendPrompt(context.Background(), "안녕?")
		require.NoError(t, err)
		assert.Equal(t, "안녕하세요!", text)
	})

	t.Run("object body is malformed", func(t *testing.T) {
		cfg := upstream(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"generated_text":"oops"}`)
		})
		cfg.Model = "m"

		_, err := NewHuggingFaceProvider(cfg, http.DefaultClient).SendPrompt(context.Background(), "q")
		assert.ErrorIs(t, err, util.ErrMalformedResponse)
	})

	t.Run("loading error propagates 503", func(t *testing.T) {
		cfg := upstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			io.WriteString(w, `{"error":"Model is currently loading","estimated_time":20}`)
		})
		cfg.Model = "m"

		_, err := NewHuggingFaceProvider(cfg, http.DefaultClient).SendPrompt(context.Background(), "q")
		relayErr := requireRelayError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, relayErr.StatusCode)
		assert.Contains(t, relayErr.Detail, "Model is currently loading")
	})
}

func TestAnswerAfterInstruction(t *testing.T) {
	assert.Equal(t, "b", answerAfterInstruction("[INST] a [/INST] x [INST] y [/INST] b"))
	assert.Equal(t, "plain", answerAfterInstruction("  plain "))
}

func TestTransportFailureIsUpstream500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := config.AIConfig{BaseURL: srv.URL, APIKey: "k", Model: "m"}
	client := &http.Client{Timeout: 20 * time.Millisecond}

	_, err := NewGeminiProvider(cfg, client).SendPrompt(context.Background(), "q")
	relayErr := requireRelayError(t, err)
	assert.Equal(t, util.KindUpstream, relayErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, relayErr.StatusCode)
}

func TestNewProviderSelectsByName(t *testing.T) {
	for _, name := range []string{config.ProviderOpenAI, config.ProviderGemini, config.ProviderHuggingFace} {
		p, err := NewProvider(config.AIConfig{Provider: name, APIKey: "k", BaseURL: "http://localhost", Model: "m"})
		require.NoError(t, err)
		assert.Equal(t, name, p.Name())
	}

	_, err := NewProvider(config.AIConfig{Provider: "bard"})
	assert.Error(t, err)
}

func TestInstrumentRecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)

	p := Instrument(&stubProvider{err: util.ErrMalformedResponse}, "m")
	_, err := p.SendPrompt(context.Background(), "prompt")
	assert.ErrorIs(t, err, util.ErrMalformedResponse)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "upstream stub", spans[0].Name())
	assert.Equal(t, "malformed", spans[0].Status().Description)
}
