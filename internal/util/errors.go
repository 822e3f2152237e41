package util

import (
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	KindUpstream          ErrorKind = "UPSTREAM_ERROR"
	KindMalformedResponse ErrorKind = "MALFORMED_RESPONSE"
	KindValidation        ErrorKind = "VALIDATION_ERROR"
)

const MalformedResponseMessage = "malformed response from upstream model"

var (
	// 上游响应缺少预期字段
	ErrMalformedResponse = NewRelayError(KindMalformedResponse, http.StatusInternalServerError, MalformedResponseMessage)

	ErrEmptyRequest = NewRelayError(KindValidation, http.StatusBadRequest, "either question or activities must be provided")
)

// RelayError 转发错误，StatusCode 原样返回给调用方
type RelayError struct {
	Kind       ErrorKind
	StatusCode int
	Detail     string
}

func NewRelayError(kind ErrorKind, statusCode int, detail string) *RelayError {
	return &RelayError{
		Kind:       kind,
		StatusCode: statusCode,
		Detail:     detail,
	}
}

func (e RelayError) WithDetail(format string, parts ...interface{}) *RelayError {
	e.Detail = fmt.Sprintf(format, parts...)
	return &e
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// UpstreamStatusError 非4xx/5xx状态码统一为500
func UpstreamStatusError(statusCode int, body string) *RelayError {
	if statusCode < http.StatusBadRequest || statusCode > 599 {
		statusCode = http.StatusInternalServerError
	}
	return NewRelayError(KindUpstream, statusCode, body)
}

func UpstreamTransportError(err error) *RelayError {
	return NewRelayError(KindUpstream, http.StatusInternalServerError, err.Error())
}

func MalformedJSONError(err error) *RelayError {
	return ErrMalformedResponse.WithDetail("%s: %v", MalformedResponseMessage, err)
}

func ValidationError(format string, parts ...interface{}) *RelayError {
	return NewRelayError(KindValidation, http.StatusBadRequest, fmt.Sprintf(format, parts...))
}
