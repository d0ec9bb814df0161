package dav

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Client defines the WebDAV/CalDAV operations the bridge forwards upstream.
type Client interface {
	// Propfind issues a PROPFIND with the given Depth header and XML body.
	Propfind(ctx context.Context, url, depth, body string) ([]byte, error)
	// Report issues a REPORT with the given Depth header and XML body.
	Report(ctx context.Context, url, depth, body string) ([]byte, error)
	// PutCalendar uploads an ICS object with If-None-Match: * semantics.
	PutCalendar(ctx context.Context, url string, ics []byte) error
	// Delete removes a calendar object.
	Delete(ctx context.Context, url string) error
}

// NewClient creates an upstream client from the configuration.
func NewClient(cfg Config) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Strict transport timeouts so a wedged upstream can't hold a request
	// past the configured deadline.
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}
}

type httpClient struct {
	cfg  Config
	http *http.Client
}

func (c *httpClient) Propfind(ctx context.Context, url, depth, body string) ([]byte, error) {
	return c.do(ctx, "PROPFIND", url, depth, "application/xml; charset=utf-8", nil, []byte(body), nil)
}

func (c *httpClient) Report(ctx context.Context, url, depth, body string) ([]byte, error) {
	return c.do(ctx, "REPORT", url, depth, "application/xml; charset=utf-8", nil, []byte(body), nil)
}

func (c *httpClient) PutCalendar(ctx context.Context, url string, ics []byte) error {
	headers := map[string]string{"If-None-Match": "*"}
	_, err := c.do(ctx, http.MethodPut, url, "", "text/calendar; charset=utf-8", headers, ics,
		map[int]bool{200: true, 201: true, 204: true})
	return err
}

func (c *httpClient) Delete(ctx context.Context, url string) error {
	_, err := c.do(ctx, http.MethodDelete, url, "", "", nil, nil,
		map[int]bool{200: true, 202: true, 204: true})
	return err
}

// do performs one upstream request. When accepted is nil, any status below
// 400 passes; otherwise the reply status must be in the accepted set.
func (c *httpClient) do(ctx context.Context, method, url, depth, contentType string, headers map[string]string, body []byte, accepted map[int]bool) ([]byte, error) {
	if c.cfg.AppleID == "" || c.cfg.ApplePassword == "" {
		return nil, ErrCredentialsMissing
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}

	req.SetBasicAuth(c.cfg.AppleID, c.cfg.ApplePassword)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if depth != "" {
		req.Header.Set("Depth", depth)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	ok := resp.StatusCode < 400
	if accepted != nil {
		ok = accepted[resp.StatusCode]
	}
	if !ok {
		msg := string(data)
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: msg}
	}

	return data, nil
}
