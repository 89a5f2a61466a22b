package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/tradedash/internal/common"
	"github.com/dmitrijs2005/tradedash/internal/logging"
	"github.com/google/uuid"
)

const (
	defaultTimeout = 15 * time.Second
	maxErrorBody   = 64 << 10
)

// HTTPClient is the request layer: every call to the backend goes through
// it. It is safe for concurrent use.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     logging.Logger
}

// Options overrides HTTPClient dependencies. Zero values get defaults.
type Options struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	Tokens     TokenSource
	Logger     logging.Logger
}

// NewHTTPClient builds a client for the backend rooted at baseURL, e.g.
// "http://localhost:8000". Request paths are appended verbatim.
func NewHTTPClient(baseURL string, opts Options) (*HTTPClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("base URL is empty")
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("base URL %q must start with http:// or https://", baseURL)
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	tokens := opts.Tokens
	if tokens == nil {
		tokens = TokenSourceFunc(func(context.Context) (string, error) { return "", nil })
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &HTTPClient{baseURL: baseURL, httpClient: hc, tokens: tokens, logger: logger}, nil
}

// Get issues GET path and decodes the JSON response into out (nil discards it).
func (c *HTTPClient) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post sends body as JSON and decodes the response into out.
func (c *HTTPClient) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put sends body as JSON and decodes the response into out.
func (c *HTTPClient) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues DELETE path and decodes the response into out.
func (c *HTTPClient) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// Close drops idle keep-alive connections.
func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			return &APIError{Kind: KindTransport, Message: msgUnexpected, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &APIError{Kind: KindTransport, Message: msgUnexpected, Err: err}
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if token := c.token(ctx); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}

	log := c.logger.With("method", method, "path", path, "request_id", requestID)
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err, "elapsed", time.Since(started))
		return transportError(err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "request done", "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &APIError{Kind: KindDecode, Status: resp.StatusCode, Message: msgBadBody, Err: err}
	}
	return nil
}

// token picks the per-call override first, then the TokenSource. A failing
// source sends the request unauthenticated; the backend decides.
func (c *HTTPClient) token(ctx context.Context) string {
	if token, ok := accessTokenFromContext(ctx); ok {
		return token
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.logger.Warn(ctx, "token lookup failed, sending unauthenticated", "error", err)
		return ""
	}
	return token
}

func transportError(err error) *APIError {
	msg := msgUnexpected
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		msg = msgTimeout
	}
	return &APIError{Kind: KindTransport, Message: msg, Err: err}
}

func statusError(resp *http.Response) *APIError {
	text := http.StatusText(resp.StatusCode)
	if text == "" {
		text = strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	}
	apiErr := &APIError{
		Kind:    KindHTTPStatus,
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, text),
		Err:     fmt.Errorf("unexpected status %d", resp.StatusCode),
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}
	if detail, ok := parseDetail(data); ok {
		apiErr.Message = detail
	}
	return apiErr
}

// errorBody is the backend's error envelope. detail is usually a string but
// validation failures send a list of objects, hence RawMessage.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// parseDetail returns detail only when it is a non-empty JSON string.
func parseDetail(data []byte) (string, bool) {
	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil || len(body.Detail) == 0 {
		return "", false
	}
	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err != nil {
		return "", false
	}
	detail = strings.TrimSpace(detail)
	return detail, detail != ""
}
