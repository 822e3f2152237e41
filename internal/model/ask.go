package model

// AskRequest 问题和活动记录二选一
type AskRequest struct {
	Question   string             `json:"question,omitempty" example:"오늘 날씨 어때?"`
	Date       string             `json:"date,omitempty" example:"2025-07-01"`
	Mode       string             `json:"mode,omitempty" example:"normal"`
	Activities map[string]float64 `json:"activities,omitempty" binding:"omitempty,dive,keys,oneof=study work hobby reading exercise housework friends sleep youtube game,endkeys,gte=0"`
}

func (r AskRequest) IsScoring() bool {
	return r.Activities != nil
}

func (r AskRequest) Log() ActivityLog {
	return ActivityLog{
		Date:       r.Date,
		Mode:       r.Mode,
		Activities: r.Activities,
	}
}

type AskResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ScoreResult 由上游模型给出，服务端不计算
type ScoreResult struct {
	Percent   int    `json:"percent" example:"85"`
	AdviceMsg string `json:"advice_msg" example:"수면 시간이 적절합니다."`
}
