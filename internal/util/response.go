package util

import (
	"errors"
	"fmt"
	"net/http"

	"daylog_relay/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse 错误响应结构
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, detail string) {
	c.AbortWithStatusJSON(code, ErrorResponse{Detail: detail})
}

func BadRequest(c *gin.Context, detail string) {
	Error(c, http.StatusBadRequest, detail)
}

// RelayFailure *RelayError 保留其状态码，其他错误统一返回500
func RelayFailure(c *gin.Context, err error) {
	var relayErr *RelayError
	if errors.As(err, &relayErr) {
		fields := []zap.Field{
			zap.String("kind", string(relayErr.Kind)),
			zap.Int("status", relayErr.StatusCode),
			zap.String("path", c.FullPath()),
		}
		if relayErr.StatusCode >= http.StatusInternalServerError {
			logger.Log.Error("relay request failed", append(fields, zap.String("detail", relayErr.Detail))...)
		} else {
			logger.Log.Warn("relay request rejected", append(fields, zap.String("detail", relayErr.Detail))...)
		}
		Error(c, relayErr.StatusCode, relayErr.Detail)
		return
	}

	logger.Log.Error("Internal server error", zap.Error(err), zap.String("path", c.FullPath()))
	Error(c, http.StatusInternalServerError, fmt.Sprintf("%T: %v", err, err))
}
