// Package arango implements the aql.Executor capability on top of the
// ArangoDB HTTP cursor API.
package arango

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/arangoql/arangoql/aql"
)

const defaultTimeout = 30 * time.Second

// Config holds the connection settings for one database.
type Config struct {
	// Endpoint is the server base URL, e.g. http://localhost:8529.
	Endpoint string
	// Database is the database name, e.g. _system.
	Database string
	Username string
	Password string
	// HTTPClient overrides the default client (30s timeout) when set.
	HTTPClient *http.Client
}

// Client executes AQL statements through the /_api/cursor endpoint and
// pages further batches with the cursor id the server hands back. It
// implements aql.Executor.
//
// A Client is safe for concurrent use; the sequential-fetch constraint
// lives on individual cursors, not on the client.
type Client struct {
	endpoint   string
	database   string
	username   string
	password   string
	httpClient *http.Client
}

var _ aql.Executor = (*Client)(nil)

// NewClient builds a client from the given configuration.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		endpoint:   cfg.Endpoint,
		database:   cfg.Database,
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: httpClient,
	}
}

type cursorRequest struct {
	Query     string `json:"query"`
	BatchSize int    `json:"batchSize,omitempty"`
}

type cursorResponse struct {
	Error        bool              `json:"error"`
	Code         int               `json:"code"`
	ErrorNum     int               `json:"errorNum,omitempty"`
	ErrorMessage string            `json:"errorMessage,omitempty"`
	Result       []json.RawMessage `json:"result"`
	HasMore      bool              `json:"hasMore"`
	ID           string            `json:"id,omitempty"`
}

// Execute runs a statement and returns the first batch plus the cursor
// id when the server has more. An empty id means the result fit in one
// batch.
func (c *Client) Execute(ctx context.Context, statement string, batchSize int) (aql.ResultSet, string, error) {
	requestID := uuid.NewString()
	slog.Debug("executing aql statement",
		"requestId", requestID,
		"database", c.database,
		"batchSize", batchSize)

	body := cursorRequest{Query: statement}
	if batchSize > 0 {
		body.BatchSize = batchSize
	}
	resp, err := c.doCursorRequest(ctx, http.MethodPost, c.cursorURL(""), &body)
	if err != nil {
		slog.Error("aql statement failed", "requestId", requestID, "error", err)
		return nil, "", err
	}
	return resp.Result, continuation(resp), nil
}

// FetchNext exchanges a cursor id for the next batch. The batch size
// was fixed when the cursor was created, so the argument is ignored
// here.
func (c *Client) FetchNext(ctx context.Context, handle string, _ int) (aql.ResultSet, string, error) {
	resp, err := c.doCursorRequest(ctx, http.MethodPost, c.cursorURL(handle), nil)
	if err != nil {
		return nil, "", err
	}
	return resp.Result, continuation(resp), nil
}

// Close deletes a server-side cursor before it is exhausted. Cursors
// left to drain fully are closed by the server itself.
func (c *Client) Close(ctx context.Context, handle string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.cursorURL(handle), nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.username, c.password)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("closing cursor: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		return httpError(resp.StatusCode, 0, "")
	}
	return nil
}

func (c *Client) cursorURL(handle string) string {
	url := fmt.Sprintf("%s/_db/%s/_api/cursor", c.endpoint, c.database)
	if handle != "" {
		url += "/" + handle
	}
	return url
}

func (c *Client) doCursorRequest(ctx context.Context, method, url string, body *cursorRequest) (*cursorResponse, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding cursor request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("building cursor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending cursor request: %w", err)
	}
	defer resp.Body.Close()

	var parsed cursorResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		// 600 is ArangoDB's own status for corrupt JSON payloads; a
		// response this client cannot decode gets the same category.
		return nil, httpError(600, 0, err.Error())
	}
	if parsed.Error || resp.StatusCode >= 300 {
		status := parsed.Code
		if status == 0 {
			status = resp.StatusCode
		}
		return nil, httpError(status, parsed.ErrorNum, parsed.ErrorMessage)
	}
	return &parsed, nil
}

func continuation(resp *cursorResponse) string {
	if !resp.HasMore {
		return ""
	}
	return resp.ID
}
