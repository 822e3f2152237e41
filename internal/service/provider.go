package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"daylog_relay/internal/config"
	"daylog_relay/internal/util"
	"daylog_relay/pkg/logger"
	"daylog_relay/pkg/monitoring"
	"daylog_relay/pkg/tracing"

	pkgerrors "github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// Provider 上游模型，失败时返回 *util.RelayError
type Provider interface {
	Name() string
	SendPrompt(ctx context.Context, prompt string) (string, error)
}

// NewProvider 按配置选择上游，并加上追踪、监控和日志
func NewProvider(cfg config.AIConfig) (Provider, error) {
	client := &http.Client{Timeout: cfg.Timeout()}

	var p Provider
	switch cfg.Provider {
	case config.ProviderOpenAI:
		p = NewOpenAIProvider(cfg, client)
	case config.ProviderGemini:
		p = NewGeminiProvider(cfg, client)
	case config.ProviderHuggingFace:
		p = NewHuggingFaceProvider(cfg, client)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}

	return Instrument(p, cfg.Model), nil
}

type instrumentedProvider struct {
	next  Provider
	model string
}

func Instrument(p Provider, model string) Provider {
	return &instrumentedProvider{next: p, model: model}
}

func (p *instrumentedProvider) Name() string { return p.next.Name() }

func (p *instrumentedProvider) SendPrompt(ctx context.Context, prompt string) (string, error) {
	ctx, span := tracing.Tracer.Start(ctx, "upstream "+p.next.Name())
	defer span.End()
	span.SetAttributes(
		attribute.String("relay.provider", p.next.Name()),
		attribute.String("relay.model", p.model),
		attribute.Int("relay.prompt_length", len(prompt)),
	)

	start := time.Now()
	text, err := p.next.SendPrompt(ctx, prompt)
	elapsed := time.Since(start)

	outcome := outcomeOf(err)
	monitoring.ObserveUpstream(p.next.Name(), outcome, elapsed)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		logger.Log.Warn("upstream call failed",
			zap.String("model", p.model),
			zap.String("outcome", outcome),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return "", err
	}

	logger.Log.Debug("upstream call finished",
		zap.String("model", p.model),
		zap.Int("prompt_length", len(prompt)),
		zap.Int("answer_length", len(text)),
		zap.Duration("elapsed", elapsed),
	)
	return text, nil
}

func outcomeOf(err error) string {
	if err == nil {
		return "ok"
	}
	var relayErr *util.RelayError
	if errors.As(err, &relayErr) {
		switch relayErr.Kind {
		case util.KindMalformedResponse:
			return "malformed"
		case util.KindUpstream:
			return "upstream_error"
		}
	}
	return "error"
}

// postJSON 非2xx响应保留上游状态码和响应体
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, payload interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "encode upstream request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, util.UpstreamTransportError(pkgerrors.Wrap(err, "build upstream request"))
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, util.UpstreamTransportError(pkgerrors.Wrap(err, "upstream request"))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, util.UpstreamTransportError(pkgerrors.Wrap(err, "read upstream response"))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, util.UpstreamStatusError(resp.StatusCode, string(body))
	}

	return body, nil
}
