package uploader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	logpkg "github.com/Arescoreadmin/ares-core/pkg/log"
)

// Error reports a failed transfer of an already-valid local artifact. It is
// deliberately distinct from export failures: the local bundle stays intact
// and re-uploadable.
type Error struct {
	Key string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("upload %s: %v", e.Key, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Client uploads objects to a bucket behind an HTTP object-store endpoint.
type Client struct {
	endpoint string
	bucket   string
	httpc    *http.Client
	logger   logpkg.Logger
}

// New returns a Client for the given endpoint and bucket.
func New(endpoint, bucket string, logger logpkg.Logger) *Client {
	if logger == nil {
		logger = logpkg.NewLogger().With(logpkg.Component("uploader"))
	}
	return &Client{
		endpoint: endpoint,
		bucket:   bucket,
		httpc:    &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
	}
}

// Put stores body under key. A non-zero retainUntil is forwarded as a
// compliance-mode object-lock so the destination refuses early deletion.
func (c *Client) Put(ctx context.Context, key string, body []byte, contentType string, retainUntil time.Time) error {
	u, err := url.JoinPath(c.endpoint, c.bucket, key)
	if err != nil {
		return &Error{Key: key, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewReader(body))
	if err != nil {
		return &Error{Key: key, Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if !retainUntil.IsZero() {
		// S3 object-lock headers; COMPLIANCE mode blocks deletion until the date
		req.Header.Set("x-amz-object-lock-mode", "COMPLIANCE")
		req.Header.Set("x-amz-object-lock-retain-until-date", retainUntil.UTC().Format(time.RFC3339))
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &Error{Key: key, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Key: key, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	c.logger.Debug("object uploaded", logpkg.Str("key", key), logpkg.Int("bytes", len(body)))
	return nil
}
