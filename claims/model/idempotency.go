package model

import (
	"encoding/json"
	"time"
)

// IdempotencyKey addresses one cached request: the endpoint path plus the
// caller-supplied key.
type IdempotencyKey struct {
	Resource string
	Key      string
}

// IdempotencyCacheEntry is what the idempotency middleware stores per key.
type IdempotencyCacheEntry struct {
	Status          string          `json:"status"`
	RequestBodyHash string          `json:"request_body_hash"`
	Response        json.RawMessage `json:"response,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
