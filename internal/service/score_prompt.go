package service

import (
	"fmt"
	"strconv"
	"strings"

	"daylog_relay/internal/model"
)

// 记录不足 MinLoggedHours 小时时模型应返回的建议
const InsufficientRecordMessage = "기록이 부족해 평가할 수 없습니다."

const (
	IdealWeight    = 1.2
	MinLoggedHours = 4
)

type WeightGroup struct {
	Label   string
	Weight  float64
	Members []model.Activity
}

var ScoreWeights = []WeightGroup{
	{Label: "핵심 활동", Weight: 1.2, Members: []model.Activity{model.ActivityStudy, model.ActivityWork, model.ActivityReading}},
	{Label: "수면", Weight: 0.8, Members: []model.Activity{model.ActivitySleep}},
	{Label: "여가 활동", Weight: 0.3, Members: []model.Activity{model.ActivityHobby, model.ActivityYoutube, model.ActivityGame}},
	{Label: "운동", Weight: 1.0, Members: []model.Activity{model.ActivityExercise}},
	{Label: "집안일", Weight: 0.85, Members: []model.Activity{model.ActivityHousework}},
	{Label: "친구", Weight: 0.85, Members: []model.Activity{model.ActivityFriends}},
}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func activityNames(as []model.Activity) string {
	names := make([]string, len(as))
	for i, a := range as {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}

// BuildScorePrompt 生成评分提示词，计算交给模型
func BuildScorePrompt(log model.ActivityLog) string {
	mode := log.Mode
	if mode == "" {
		mode = model.ModeNormal
	}

	var sb strings.Builder
	sb.WriteString("너는 하루 활동 기록을 평가하는 생활 코치야. 아래 규칙대로 계산하고 JSON으로만 답해.\n\n")

	sb.WriteString("[입력]\n")
	fmt.Fprintf(&sb, "날짜: %s\n", log.Date)
	fmt.Fprintf(&sb, "모드: %s\n", mode)
	sb.WriteString("활동 시간(단위: 시간):\n")
	for _, a := range model.Activities {
		fmt.Fprintf(&sb, "- %s: %s\n", a, formatHours(log.Hours(a)))
	}

	sb.WriteString("\n[계산 규칙]\n")
	sb.WriteString("1. 총 시간 = 모든 활동 시간의 합\n")
	fmt.Fprintf(&sb, "2. 총 시간이 %d시간 미만이면 계산하지 말고 {\"percent\": 0, \"advice_msg\": \"%s\"} 를 그대로 반환\n",
		MinLoggedHours, InsufficientRecordMessage)
	fmt.Fprintf(&sb, "3. 이상 점수 = 총 시간 × %s\n", formatHours(IdealWeight))
	sb.WriteString("4. 실제 점수 = 각 활동 시간 × 가중치의 합\n")
	for _, g := range ScoreWeights {
		fmt.Fprintf(&sb, "   - %s(%s): %s\n", g.Label, activityNames(g.Members), formatHours(g.Weight))
	}
	sb.WriteString("5. 기본 달성률 = 실제 점수 ÷ 이상 점수 × 100\n")
	sb.WriteString("6. 보정\n")
	sb.WriteString("   - sleep 7~8시간: +3\n")
	sb.WriteString("   - sleep 6시간 미만 또는 10시간 초과: -15\n")
	if model.IsHoliday(log.Mode) {
		sb.WriteString("   - 오늘은 휴일이므로 핵심 활동 부족 보정은 적용하지 않는다\n")
	} else {
		fmt.Fprintf(&sb, "   - 핵심 활동(%s) 합계 6시간 미만: -10\n", activityNames(ScoreWeights[0].Members))
	}
	fmt.Fprintf(&sb, "   - 여가 활동(%s) 합계 2시간 초과: 초과 1시간당 -5\n", activityNames(ScoreWeights[2].Members))
	sb.WriteString("7. 최종 달성률은 0 이상 100 이하의 정수로 맞춘다\n")
	sb.WriteString("8. 평가: 90 이상 \"good\", 70~89 \"mediocre\", 70 미만 \"poor\". advice_msg 에는 평가에 맞는 한두 문장의 조언을 쓴다\n")

	sb.WriteString("\n[출력 형식]\n")
	sb.WriteString("{\"percent\": <정수>, \"advice_msg\": \"<문자열>\"}\n")
	sb.WriteString("코드 블록이나 설명 없이 JSON 객체 하나만 출력해.")

	return sb.String()
}
