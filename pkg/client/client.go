package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Entry is one log line on the wire. Seq and Hash are assigned server-side
// and populated on query results.
type Entry struct {
	Seq       uint64    `json:"seq,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
	Level     string    `json:"level"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	Hash      string    `json:"hash,omitempty"`
}

// Client talks to an ares-core server.
type Client struct {
	baseURL string
	token   string
	service string
	httpc   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token sent on ingestion requests.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithService sets the default service name used by Send.
func WithService(service string) Option {
	return func(c *Client) { c.service = service }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// New creates a client for the given base URL, e.g. "http://127.0.0.1:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Send emits one log line and discards any failure. The call is bounded by a
// 2 second timeout so a slow or absent server cannot stall the caller.
func (c *Client) Send(level, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, _ = c.Ingest(ctx, Entry{Level: level, Service: c.service, Message: message})
}

// Ingest submits entries and returns the sequence numbers the server
// assigned. Entries without a timestamp are stamped server-side.
func (c *Client) Ingest(ctx context.Context, entries ...Entry) ([]uint64, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	var body any = entries
	if len(entries) == 1 {
		body = entries[0]
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/logs", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return nil, apiError("ingest", resp)
	}

	var ack struct {
		Seqs []uint64 `json:"seqs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return nil, err
	}
	return ack.Seqs, nil
}

// Query fetches stored entries. Empty level or service leaves that filter
// off; both set means both must match.
func (c *Client) Query(ctx context.Context, level, service string) ([]Entry, error) {
	q := url.Values{}
	if level != "" {
		q.Set("level", level)
	}
	if service != "" {
		q.Set("service", service)
	}
	target := c.baseURL + "/v1/logs"
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, apiError("query", resp)
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Export runs an export on the server and returns the rendered artifact for
// the given format ("csv" or "text") plus its version and digest headers.
func (c *Client) Export(ctx context.Context, format string) (data []byte, version, sha256 string, err error) {
	target := c.baseURL + "/v1/export"
	if format != "" {
		target += "?format=" + url.QueryEscape(format)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, "", "", err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, "", "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", "", apiError("export", resp)
	}
	data, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", "", err
	}
	return data, resp.Header.Get("X-Export-Version"), resp.Header.Get("X-Content-Sha256"), nil
}

func apiError(op string, resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body)
	if body.Error != "" {
		return fmt.Errorf("%s: %s (%s)", op, body.Error, resp.Status)
	}
	return fmt.Errorf("%s: unexpected status %s", op, resp.Status)
}
