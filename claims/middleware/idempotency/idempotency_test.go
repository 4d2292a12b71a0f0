package idempotency

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.dev"
	"encore.dev/middleware"
)

func newRequest(ctx context.Context, path string, headers http.Header, payload interface{}) middleware.Request {
	encoreReq := &encore.Request{
		Path:    path,
		Headers: headers,
		Payload: payload,
	}
	return middleware.NewRequest(ctx, encoreReq)
}

func TestRequestKey(t *testing.T) {
	testCases := []struct {
		name          string
		headers       http.Header
		expectedKey   string
		expectedError string
	}{
		{
			name:        "valid_key",
			headers:     http.Header{HeaderName: []string{"claim-key-123"}},
			expectedKey: "claim-key-123",
		},
		{
			name:        "key_with_special_chars",
			headers:     http.Header{HeaderName: []string{"claim-key_123-abc.def"}},
			expectedKey: "claim-key_123-abc.def",
		},
		{
			name:        "surrounding_whitespace_trimmed",
			headers:     http.Header{HeaderName: []string{"  claim-key-123  "}},
			expectedKey: "claim-key-123",
		},
		{
			name:          "missing_header",
			headers:       http.Header{},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "empty_header_value",
			headers:       http.Header{HeaderName: []string{""}},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "whitespace_only_header",
			headers:       http.Header{HeaderName: []string{"   "}},
			expectedError: "X-Idempotency-Key header is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := newRequest(context.Background(), "/v1/claims/adjudicate", tc.headers, nil)

			key, err := requestKey(req)

			if tc.expectedError != "" {
				assert.NotNil(t, err)
				if err != nil {
					assert.Contains(t, err.Error(), tc.expectedError)
				}
				assert.Empty(t, key)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, tc.expectedKey, key)
			}
		})
	}
}

func TestPayloadHash(t *testing.T) {
	req := func(payload interface{}) middleware.Request {
		return newRequest(context.Background(), "/v1/claims/adjudicate", http.Header{}, payload)
	}

	t.Run("nil_payload", func(t *testing.T) {
		assert.Empty(t, payloadHash(req(nil)))
	})

	t.Run("deterministic", func(t *testing.T) {
		payload := map[string]interface{}{"policy_name": "Gold", "copay_percentage": 10}
		first := payloadHash(req(payload))
		second := payloadHash(req(payload))

		assert.Len(t, first, 64)
		assert.Regexp(t, "^[a-f0-9]{64}$", first)
		assert.Equal(t, first, second)
	})

	t.Run("different_payloads_differ", func(t *testing.T) {
		a := payloadHash(req(map[string]interface{}{"copay_percentage": 10}))
		b := payloadHash(req(map[string]interface{}{"copay_percentage": 20}))
		assert.NotEqual(t, a, b)
	})
}

func TestMiddleware_MissingKey(t *testing.T) {
	req := newRequest(context.Background(), "/v1/claims/adjudicate", http.Header{}, map[string]interface{}{"policy_name": "Gold"})

	nextCalled := false
	next := func(req middleware.Request) middleware.Response {
		nextCalled = true
		return middleware.Response{Payload: map[string]interface{}{"ok": true}}
	}

	response := Middleware(req, next)

	assert.NotNil(t, response.Err)
	if response.Err != nil {
		assert.Contains(t, response.Err.Error(), "X-Idempotency-Key header is required")
	}
	assert.False(t, nextCalled, "endpoint must not run without an idempotency key")
	assert.Nil(t, response.Payload)
}
