// Package marketplace implements the repository ports against the remote marketplace HTTP API.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"bikeshare/config"
	deliverycontext "bikeshare/internal/delivery/context"
	domainerrors "bikeshare/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxErrorBody bounds how much of a failed response body is kept for diagnostics.
const maxErrorBody = 512

// Params defines the dependencies of the marketplace client
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Client is a typed JSON client for the marketplace API.
type Client struct {
	baseURL    *url.URL
	headers    map[string]string
	httpClient *http.Client
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewClient creates a marketplace client from configuration.
func NewClient(params Params) (*Client, error) {
	cfg := params.Config.Marketplace
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("marketplace base url is not configured")
	}

	baseURL, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse marketplace base url")
	}

	return &Client{
		baseURL: baseURL,
		headers: cfg.Headers,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   params.Logger,
	}, nil
}

// call describes one upstream request.
type call struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
}

// do executes the call and decodes a JSON response into out when out is non-nil.
func (c *Client) do(ctx context.Context, req call, out any) error {
	endpoint := c.baseURL.JoinPath(req.path)
	if len(req.query) > 0 {
		endpoint.RawQuery = req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return errors.Wrapf(err, "encode %s request", req.op)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint.String(), body)
	if err != nil {
		return errors.WithStack(err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for key, value := range c.headers {
		httpReq.Header.Set(key, value)
	}

	// Add X-Request-Id header for tracing
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	log := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	log.Debug("Marketplace request",
		slog.String("op", req.op),
		slog.String("method", req.method),
		slog.String("path", req.path),
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return domainerrors.NewUpstreamError(req.op, 0, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Debug("Marketplace request failed",
			slog.String("op", req.op),
			slog.Int("status", resp.StatusCode),
		)

		return domainerrors.NewUpstreamError(req.op, resp.StatusCode, string(snippet), nil)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidUpstreamPayload.WithDetails(err.Error()), req.op)
	}

	if err := c.check(out); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidUpstreamPayload.WithDetails(err.Error()), req.op)
	}

	return nil
}

// check validates a decoded payload. Slices are validated element by element.
func (c *Client) check(out any) error {
	value := reflect.Indirect(reflect.ValueOf(out))
	if value.Kind() == reflect.Slice {
		return c.validate.Var(value.Interface(), "dive")
	}

	return c.validate.Struct(out)
}

// hasStatus reports whether err is an upstream error with one of the given statuses.
func hasStatus(err error, statuses ...int) bool {
	var upstream *domainerrors.UpstreamError
	if !errors.As(err, &upstream) {
		return false
	}

	for _, status := range statuses {
		if upstream.StatusCode == status {
			return true
		}
	}

	return false
}
