package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"daylog_relay/internal/config"
	"daylog_relay/internal/util"

	"github.com/tidwall/gjson"
)

type GeminiProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

func NewGeminiProvider(cfg config.AIConfig, client *http.Client) *GeminiProvider {
	return &GeminiProvider{
		client:  client,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}
}

func (p *GeminiProvider) Name() string { return config.ProviderGemini }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

func (p *GeminiProvider) SendPrompt(ctx context.Context, prompt string) (string, error) {
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, url.PathEscape(p.model))

	body, err := postJSON(ctx, p.client, endpoint, map[string]string{
		"x-goog-api-key": p.apiKey,
	}, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	text := gjson.GetBytes(body, "candidates.0.content.parts.0.text")
	if text.Type != gjson.String {
		return "", util.ErrMalformedResponse
	}
	return text.String(), nil
}
