// Package extraction wraps the document extraction service that turns
// uploaded bill and policy documents into structured payloads.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"encore.dev/beta/errs"

	"encore.app/claims/model"
)

// Client fetches extraction results for uploaded documents.
type Client interface {
	ExtractBill(ctx context.Context, documentID string) (*model.ClaimPayload, error)
	ExtractPolicy(ctx context.Context, documentID string) (*model.PolicyRules, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient returns a Client backed by the extraction service's HTTP API.
func NewHTTPClient(baseURL string) Client {
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *httpClient) ExtractBill(ctx context.Context, documentID string) (*model.ClaimPayload, error) {
	var payload model.ClaimPayload
	if err := c.get(ctx, "/v1/extractions/bills/"+url.PathEscape(documentID), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *httpClient) ExtractPolicy(ctx context.Context, documentID string) (*model.PolicyRules, error) {
	var rules model.PolicyRules
	if err := c.get(ctx, "/v1/extractions/policies/"+url.PathEscape(documentID), &rules); err != nil {
		return nil, err
	}
	return &rules, nil
}

func (c *httpClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: fmt.Sprintf("failed to build extraction request: %v", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &errs.Error{Code: errs.Unavailable, Message: fmt.Sprintf("extraction service unreachable: %v", err)}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return &errs.Error{Code: errs.NotFound, Message: "document not found in extraction service"}
	default:
		return &errs.Error{Code: errs.Unavailable, Message: fmt.Sprintf("extraction service returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &errs.Error{Code: errs.Unavailable, Message: fmt.Sprintf("failed to read extraction response: %v", err)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &errs.Error{Code: errs.Internal, Message: fmt.Sprintf("malformed extraction response: %v", err)}
	}
	return nil
}
