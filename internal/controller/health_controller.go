package controller

import (
	"daylog_relay/internal/config"
	"daylog_relay/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	AI config.AIConfig
}

func NewHealthController(cfg config.AIConfig) *HealthController {
	return &HealthController{AI: cfg}
}

// @Summary 健康检查
// @Description 检查服务状态，不调用上游模型
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"upstream": gin.H{
				"provider": c.AI.Provider,
				"model":    c.AI.Model,
			},
		},
	})
}
