package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"daylog_relay/internal/config"
	"daylog_relay/internal/util"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(cfg config.AIConfig, httpClient *http.Client) *OpenAIProvider {
	captured := *httpClient
	captured.Transport = errorBodyTransport{next: httpClient.Transport}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL
	clientConfig.HTTPClient = &captured

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}
}

func (p *OpenAIProvider) Name() string { return config.ProviderOpenAI }

func (p *OpenAIProvider) SendPrompt(ctx context.Context, prompt string) (string, error) {
	var errBody []byte
	ctx = context.WithValue(ctx, errorBodyKey{}, &errBody)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", translateOpenAIError(err, errBody)
	}

	if len(resp.Choices) == 0 {
		return "", util.ErrMalformedResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// SDK 只保留 error.message，这里把原始错误响应体一并返回给调用方
func translateOpenAIError(err error, body []byte) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		detail := string(body)
		if detail == "" {
			detail = apiErr.Message
		}
		return util.UpstreamStatusError(apiErr.HTTPStatusCode, detail)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		detail := string(body)
		if detail == "" {
			detail = string(reqErr.Body)
		}
		if detail == "" {
			detail = reqErr.Error()
		}
		return util.UpstreamStatusError(reqErr.HTTPStatusCode, detail)
	}

	return util.UpstreamTransportError(err)
}

type errorBodyKey struct{}

// errorBodyTransport 复制非2xx响应体到请求 context 中的 *[]byte
type errorBodyTransport struct {
	next http.RoundTripper
}

func (t errorBodyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}

	resp, err := next.RoundTrip(req)
	if err != nil || resp.StatusCode < http.StatusBadRequest {
		return resp, err
	}

	sink, ok := req.Context().Value(errorBodyKey{}).(*[]byte)
	if !ok {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	*sink = body
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}
