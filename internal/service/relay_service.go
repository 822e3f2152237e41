package service

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"daylog_relay/internal/model"
	"daylog_relay/internal/util"

	"github.com/tidwall/gjson"
)

var (
	fencePrefix = regexp.MustCompile("^\\s*```(?:json)?\\s*")
	fenceSuffix = regexp.MustCompile("\\s*```\\s*$")
)

// StripCodeFence 去掉模型输出前后的 ```json 代码块标记
func StripCodeFence(text string) string {
	text = fencePrefix.ReplaceAllString(text, "")
	return fenceSuffix.ReplaceAllString(text, "")
}

type RelayService struct {
	provider Provider
}

func NewRelayService(provider Provider) *RelayService {
	return &RelayService{provider: provider}
}

func (s *RelayService) ProviderName() string {
	return s.provider.Name()
}

func (s *RelayService) AskQuestion(ctx context.Context, question string) (*model.AskResponse, error) {
	answer, err := s.provider.SendPrompt(ctx, question)
	if err != nil {
		return nil, err
	}

	return &model.AskResponse{
		Question: question,
		Answer:   answer,
	}, nil
}

// ScoreLog 达成率按模型返回值使用，不重新计算也不截断
func (s *RelayService) ScoreLog(ctx context.Context, log model.ActivityLog) (*model.ScoreResult, error) {
	raw, err := s.provider.SendPrompt(ctx, BuildScorePrompt(log))
	if err != nil {
		return nil, err
	}

	return ParseScoreResult(raw)
}

func ParseScoreResult(raw string) (*model.ScoreResult, error) {
	text := StripCodeFence(raw)
	if !gjson.Valid(text) {
		return nil, util.MalformedJSONError(fmt.Errorf("model output is not valid JSON: %q", preview(text)))
	}

	result := gjson.Parse(text)
	percent := result.Get("percent")
	advice := result.Get("advice_msg")
	if percent.Type != gjson.Number || advice.Type != gjson.String {
		return nil, util.ErrMalformedResponse
	}

	return &model.ScoreResult{
		Percent:   int(percent.Int()),
		AdviceMsg: advice.String(),
	}, nil
}

func preview(s string) string {
	const limit = 200
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
