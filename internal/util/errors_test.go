package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDetailIsImmutable(t *testing.T) {
	changed := ErrMalformedResponse.WithDetail("%s", "changed")

	assert.Equal(t, MalformedResponseMessage, ErrMalformedResponse.Detail)
	assert.Equal(t, "changed", changed.Detail)
	assert.Equal(t, KindMalformedResponse, changed.Kind)
}

func TestUpstreamStatusError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   int
	}{
		{"client error kept", http.StatusTooManyRequests, http.StatusTooManyRequests},
		{"server error kept", http.StatusServiceUnavailable, http.StatusServiceUnavailable},
		{"redirect collapses", http.StatusFound, http.StatusInternalServerError},
		{"garbage collapses", 0, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := UpstreamStatusError(tt.status, `{"error":"nope"}`)
			assert.Equal(t, tt.want, err.StatusCode)
			assert.Equal(t, `{"error":"nope"}`, err.Detail)
			assert.Equal(t, KindUpstream, err.Kind)
		})
	}
}

func TestMalformedJSONError(t *testing.T) {
	err := MalformedJSONError(errors.New("unexpected end of JSON input"))

	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, "malformed response from upstream model: unexpected end of JSON input", err.Detail)

	var relayErr *RelayError
	assert.True(t, errors.As(error(err), &relayErr))
}
