package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrRequestFailed wraps failures to reach the remote server.
	ErrRequestFailed = errors.New("http request failed")
	// ErrUnmarshal wraps failures to decode a response body.
	ErrUnmarshal = errors.New("http response decode failed")
)

// StatusError is returned when the remote server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	defaultHeaders     map[string]string
	defaultQueryParams map[string]string
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	DefaultHeaders      map[string]string
	DefaultQueryParams  map[string]string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	Logger              HTTPLogger
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = NopLogger{}
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		defaultHeaders:     opts.DefaultHeaders,
		defaultQueryParams: opts.DefaultQueryParams,
		logger:             opts.Logger,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// doRequest builds the URL, executes the request and decodes the JSON response
// into successResp on 2xx or errorResp otherwise.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams map[string]string, successResp any, errorResp any) (any, any, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	requestURL := hc.buildURL(path)
	if query := hc.buildQueryString(queryParams); query != "" {
		requestURL += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return nil, nil, 0, err
	}
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}

	logHeaders := flattenHeaders(req.Header)
	hc.logger.LogRequest(method, requestURL, logHeaders)

	start := time.Now()
	resp, err := hc.client.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrRequestFailed, err)
		hc.logger.LogResponseError(method, requestURL, logHeaders, 0, "", time.Since(start).Milliseconds(), err)
		return nil, nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBytes, err := io.ReadAll(resp.Body)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrRequestFailed, err)
		hc.logger.LogResponseError(method, requestURL, logHeaders, resp.StatusCode, "", latency, err)
		return nil, nil, resp.StatusCode, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if successResp != nil {
			if err = json.Unmarshal(respBytes, successResp); err != nil {
				err = fmt.Errorf("%w: %w", ErrUnmarshal, err)
				hc.logger.LogResponseError(method, requestURL, logHeaders, resp.StatusCode, string(respBytes), latency, err)
				return nil, nil, resp.StatusCode, err
			}
		}
		hc.logger.LogResponseSuccess(method, requestURL, logHeaders, resp.StatusCode, latency)
		return successResp, nil, resp.StatusCode, nil
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode}
	hc.logger.LogResponseError(method, requestURL, logHeaders, resp.StatusCode, string(respBytes), latency, statusErr)

	if errorResp != nil {
		if err = json.Unmarshal(respBytes, errorResp); err != nil {
			return nil, nil, resp.StatusCode, fmt.Errorf("%w: %w", ErrUnmarshal, err)
		}
	}

	return nil, errorResp, resp.StatusCode, statusErr
}

// buildURL joins the base URL and path with exactly one slash between them.
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return hc.baseURL + path
}

// buildQueryString merges the client's default query parameters with params
// (params win) and encodes them in key order.
func (hc *Client) buildQueryString(params map[string]string) string {
	if len(params) == 0 && len(hc.defaultQueryParams) == 0 {
		return ""
	}

	values := url.Values{}
	for key, value := range hc.defaultQueryParams {
		values.Set(key, value)
	}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}

func flattenHeaders(header http.Header) map[string]string {
	flat := make(map[string]string, len(header))
	for key := range header {
		flat[key] = header.Get(key)
	}
	return flat
}
