package service

import (
	"context"
	"net/http"
	"strings"

	"daylog_relay/internal/config"
	"daylog_relay/internal/util"

	"github.com/tidwall/gjson"
)

// 推理接口会回显提示词，只取最后一个 [/INST] 之后的内容
const (
	instructionOpen  = "[INST]"
	instructionClose = "[/INST]"
)

type HuggingFaceProvider struct {
	client  *http.Client
	baseURL string
	token   string
	model   string
}

func NewHuggingFaceProvider(cfg config.AIConfig, client *http.Client) *HuggingFaceProvider {
	return &HuggingFaceProvider{
		client:  client,
		baseURL: cfg.BaseURL,
		token:   cfg.APIKey,
		model:   cfg.Model,
	}
}

func (p *HuggingFaceProvider) Name() string { return config.ProviderHuggingFace }

func (p *HuggingFaceProvider) SendPrompt(ctx context.Context, prompt string) (string, error) {
	payload := map[string]any{
		"inputs": instructionOpen + " " + prompt + " " + instructionClose,
		"parameters": map[string]any{
			"max_new_tokens": 512,
			"temperature":    0.2,
		},
	}

	body, err := postJSON(ctx, p.client, p.baseURL+"/"+p.model, map[string]string{
		"Authorization": "Bearer " + p.token,
		// 模型未加载时等待，而不是直接返回503
		"x-wait-for-model": "true",
	}, payload)
	if err != nil {
		return "", err
	}

	generated := gjson.GetBytes(body, "0.generated_text")
	if generated.Type != gjson.String {
		return "", util.ErrMalformedResponse
	}

	return answerAfterInstruction(generated.String()), nil
}

func answerAfterInstruction(text string) string {
	if i := strings.LastIndex(text, instructionClose); i >= 0 {
		text = text[i+len(instructionClose):]
	}
	return strings.TrimSpace(text)
}
