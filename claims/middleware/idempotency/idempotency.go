// Package idempotency deduplicates claim submissions. A client retrying a
// POST with the same X-Idempotency-Key gets the cached adjudication back
// instead of a second run; the same key with a different body is a conflict.
package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/claims/model"
)

const HeaderName = "X-Idempotency-Key"

const (
	statusProcessing = "processing"
	statusCompleted  = "completed"
)

//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := requestKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := payloadHash(req)

	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      key,
	}

	entry, cacheErr := Cache.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		if errors.Is(cacheErr, cache.Miss) {
			return runAndRecord(req, next, cacheKey, bodyHash)
		}
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
		}
	}

	return replayOrConflict(req, next, entry, bodyHash, key)
}

// runAndRecord processes a first-seen request: claim the key, run the
// endpoint, and cache the outcome. A failed request releases the key so the
// client can retry.
func runAndRecord(req middleware.Request, next middleware.Next, cacheKey model.IdempotencyKey, bodyHash string) middleware.Response {
	if err := Cache.Set(req.Context(), cacheKey, model.IdempotencyCacheEntry{
		Status:    statusProcessing,
		CreatedAt: time.Now(),
	}); err != nil {
		rlog.Error("failed to claim idempotency key", "error", err)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to claim idempotency key"}}
	}

	response := next(req)

	if response.Err != nil {
		releaseKey(req.Context(), cacheKey)
	} else {
		recordCompleted(req.Context(), cacheKey, bodyHash, response)
	}

	return response
}

func replayOrConflict(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, bodyHash, key string) middleware.Response {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return middleware.Response{
			Err: &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"},
		}
	}

	switch entry.Status {
	case statusProcessing:
		rlog.Info("concurrent claim submission detected", "key", key)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
		}
	case statusCompleted:
		return replayResponse(req, next, entry, key)
	default:
		rlog.Warn("unknown idempotency entry status, processing as new request", "key", key, "status", entry.Status)
		return next(req)
	}
}

// replayResponse rebuilds the endpoint's typed response from the cached
// JSON. A corrupted entry falls through to a fresh run.
func replayResponse(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, key string) middleware.Response {
	if len(entry.Response) > 0 {
		responseType := req.Data().API.ResponseType
		if responseType != nil {
			responseValue := reflect.New(responseType.Elem()).Interface()
			if err := json.Unmarshal(entry.Response, responseValue); err == nil {
				rlog.Info("returning cached adjudication response", "key", key)
				return middleware.Response{Payload: responseValue}
			}
			rlog.Error("failed to unmarshal cached response", "key", key)
		}
	}
	return next(req)
}

func requestKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(HeaderName))
	}
	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}
	return key, nil
}

// payloadHash fingerprints the request body for conflict detection.
func payloadHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body for idempotency hash", "error", err)
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

func releaseKey(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, err := Cache.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to release idempotency key after error", "error", err)
	}
}

func recordCompleted(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash string, response middleware.Response) {
	entry := model.IdempotencyCacheEntry{
		Status:          statusCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}
	if response.Payload != nil {
		payloadBytes, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return
		}
		entry.Response = payloadBytes
	}
	if err := Cache.Set(ctx, cacheKey, entry); err != nil {
		rlog.Error("failed to cache completed response", "error", err)
	}
}
