package blockchain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"apnaghar/internal/usecase/interfaces"
)

// MiddlewareClient posts evidence hashes to the external blockchain
// middleware. Anchoring is best effort: the middleware's response is not a
// source of truth and every failure here is logged, never propagated.
//
// An empty base URL disables anchoring entirely.
type MiddlewareClient struct {
	baseURL string
	http    *http.Client
}

var _ interfaces.IAnchorClient = (*MiddlewareClient)(nil)

func NewMiddlewareClient(baseURL string) *MiddlewareClient {
	if baseURL == "" {
		log.Printf("[evidence][anchor] middleware not configured; anchoring disabled")
	}
	return &MiddlewareClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *MiddlewareClient) AnchorMilestone(ctx context.Context, milestoneID, projectID string, sha256s []string) error {
	return c.post(ctx, "/milestone", map[string]interface{}{
		"milestone_id":   milestoneID,
		"project_id":     projectID,
		"content_hashes": sha256s,
	})
}

func (c *MiddlewareClient) AnchorProperty(ctx context.Context, propertyID, projectID string, sha256s []string) error {
	return c.post(ctx, "/property", map[string]interface{}{
		"property_id":    propertyID,
		"project_id":     projectID,
		"content_hashes": sha256s,
	})
}

func (c *MiddlewareClient) AnchorDocument(ctx context.Context, documentID string, sha256 string) error {
	return c.post(ctx, "/document", map[string]interface{}{
		"document_id":  documentID,
		"content_hash": sha256,
	})
}

func (c *MiddlewareClient) post(ctx context.Context, path string, body map[string]interface{}) error {
	if c.baseURL == "" {
		return nil
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("middleware %s returned status %d", path, resp.StatusCode)
	}
	return nil
}
