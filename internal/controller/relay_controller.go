package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"daylog_relay/internal/model"
	"daylog_relay/internal/service"
	"daylog_relay/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type RelayController struct {
	relayService *service.RelayService
}

func NewRelayController(relayService *service.RelayService) *RelayController {
	return &RelayController{relayService: relayService}
}

// Ask 转发问题或活动记录到上游模型
// @Summary 问答或每日活动评分
// @Description 有 question 时原样转发给模型；有 activities 时生成达成率评分提示词后转发
// @Tags relay
// @Accept json
// @Produce json
// @Param request body model.AskRequest true "问题或活动记录"
// @Success 200 {object} model.AskResponse
// @Success 200 {object} model.ScoreResult
// @Failure 400 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /ask [post]
func (c *RelayController) Ask(ctx *gin.Context) {
	var req model.AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.RelayFailure(ctx, util.ValidationError("%s", bindingDetail(err)))
		return
	}

	question := strings.TrimSpace(req.Question)
	switch {
	case question != "" && req.IsScoring():
		util.RelayFailure(ctx, util.ValidationError("question and activities cannot be sent together"))
	case question != "":
		resp, err := c.relayService.AskQuestion(ctx.Request.Context(), req.Question)
		if err != nil {
			util.RelayFailure(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, resp)
	case req.IsScoring():
		result, err := c.relayService.ScoreLog(ctx.Request.Context(), req.Log())
		if err != nil {
			util.RelayFailure(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, result)
	default:
		util.RelayFailure(ctx, util.ErrEmptyRequest)
	}
}

// Evaluate 原样返回严格类型的活动记录
// @Summary 活动记录回显
// @Description 校验完整的活动记录并原样返回，不调用模型
// @Tags relay
// @Accept json
// @Produce json
// @Param request body model.StrictActivityLog true "活动记录"
// @Success 200 {object} util.Response{data=model.StrictActivityLog}
// @Failure 400 {object} util.ErrorResponse
// @Router /evaluate [post]
func (c *RelayController) Evaluate(ctx *gin.Context) {
	var log model.StrictActivityLog
	if err := ctx.ShouldBindJSON(&log); err != nil {
		util.RelayFailure(ctx, util.ValidationError("%s", bindingDetail(err)))
		return
	}

	util.Success(ctx, log)
}

// bindingDetail 将校验错误展开为 "字段: 规则"
func bindingDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Sprintf("invalid request body: %v", err)
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("%s: %s", field, rule))
	}
	return "invalid request body: " + strings.Join(parts, "; ")
}
