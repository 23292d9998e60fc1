package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"outreach-tracker/internal/models"
)

// Client wraps the four wire operations of the company collection. It never
// retries: a transport failure surfaces as ErrStoreUnavailable, a non-2xx
// response as ErrWriteRejected.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the server at baseURL. No request timeout
// is installed: an issued call runs to completion or failure.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

type writeResponse struct {
	Success       bool   `json:"success"`
	InsertedID    string `json:"insertedId"`
	ModifiedCount int64  `json:"modifiedCount"`
	DeletedCount  int64  `json:"deletedCount"`
}

// ListAll fetches the full collection, sorted by serialNo ascending by the
// server. Every record is normalized before it is returned, so legacy status
// fields never escape this layer.
func (c *Client) ListAll(ctx context.Context) ([]models.Company, error) {
	const op = "list companies"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/companies", nil)
	if err != nil {
		return nil, unavailable(op, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, unavailable(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// A server-side failure on read means the store is down as far as
		// the caller is concerned, same as a transport failure.
		msg, _ := readError(resp.Body)
		return nil, unavailable(op, fmt.Errorf("status %d: %s", resp.StatusCode, msg))
	}

	var companies []models.Company
	if err := json.NewDecoder(resp.Body).Decode(&companies); err != nil {
		return nil, unavailable(op, err)
	}

	for i := range companies {
		companies[i].Normalize()
	}
	return companies, nil
}

// Create inserts a record that carries no store identity yet and returns the
// identity the store assigned.
func (c *Client) Create(ctx context.Context, company models.Company) (string, error) {
	const op = "create company"

	company.StoreID = ""
	resp, err := c.send(ctx, http.MethodPost, company)
	if err != nil {
		return "", unavailable(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, details := readError(resp.Body)
		return "", rejected(op, msg, details)
	}

	var result writeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", unavailable(op, err)
	}
	return result.InsertedID, nil
}

// Update rewrites the record addressed by its store identity with the full
// field set in company. The server applies a set-fields merge, so callers
// must always resend every field to avoid accidental loss.
func (c *Client) Update(ctx context.Context, storeID string, company models.Company) (int64, error) {
	const op = "update company"

	company.StoreID = storeID
	resp, err := c.send(ctx, http.MethodPut, company)
	if err != nil {
		return 0, unavailable(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, details := readError(resp.Body)
		return 0, rejected(op, msg, details)
	}

	var result writeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, unavailable(op, err)
	}
	return result.ModifiedCount, nil
}

// Delete removes the record addressed by its store identity. A missing id
// yields count 0, not an error. The client identity rides along in the query
// string for log correlation; the server ignores it.
func (c *Client) Delete(ctx context.Context, storeID, clientID string) (int64, error) {
	const op = "delete company"

	q := url.Values{}
	q.Set("_id", storeID)
	if clientID != "" {
		q.Set("id", clientID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/companies?"+q.Encode(), nil)
	if err != nil {
		return 0, unavailable(op, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, unavailable(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, details := readError(resp.Body)
		return 0, rejected(op, msg, details)
	}

	var result writeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, unavailable(op, err)
	}
	return result.DeletedCount, nil
}

func (c *Client) send(ctx context.Context, method string, company models.Company) (*http.Response, error) {
	body, err := json.Marshal(company)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/companies", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.http.Do(req)
}

func readError(r io.Reader) (message, details string) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "unreadable error response", ""
	}

	var er errorResponse
	if json.Unmarshal(data, &er) == nil && er.Error != "" {
		return er.Error, er.Details
	}
	return fmt.Sprintf("unexpected response: %s", bytes.TrimSpace(data)), ""
}
