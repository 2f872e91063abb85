// Package restapi is the dashboard's client for the platform's REST backend.
// Every call carries the session's bearer token, a request id and the
// operator's language, and failures are normalized into the domain taxonomy.
package restapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmehra2102/menudash/internal/domain"
	"github.com/dmehra2102/menudash/internal/infrastructure/config"
	"github.com/dmehra2102/menudash/pkg/auth"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 64 << 10
)

type Client struct {
	baseURL *url.URL
	http    *http.Client
	tokens  domain.TokenSource
	locale  string
	logger  *zap.Logger
	tracer  trace.Tracer
}

func New(cfg config.APIConfig, tokens domain.TokenSource, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid API base URL: %q", cfg.BaseURL)
	}

	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tokens: tokens,
		locale: cfg.Locale,
		logger: logger,
		tracer: otel.Tracer("restapi-client"),
	}, nil
}

type request struct {
	method      string
	route       string // low-cardinality label, e.g. /api/products/{id}
	path        string
	query       url.Values
	body        io.Reader
	contentType string
}

func pageQuery(q domain.ListQuery) url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("size", strconv.Itoa(q.PageSize))
	return v
}

func (c *Client) do(ctx context.Context, req request, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, "restapi."+req.method)
	defer span.End()

	span.SetAttributes(
		attribute.String("http.route", req.route),
		attribute.String("http.method", req.method),
	)

	start := time.Now()
	requestID := uuid.New().String()
	code := "transport_error"

	apiActiveRequests.WithLabelValues(req.method, req.route).Inc()
	defer func() {
		apiActiveRequests.WithLabelValues(req.method, req.route).Dec()
		apiRequestDuration.WithLabelValues(req.method, req.route).Observe(time.Since(start).Seconds())
		apiRequestsTotal.WithLabelValues(req.method, req.route, code).Inc()
		c.logRequest(ctx, req, requestID, code, time.Since(start), err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	u := c.baseURL.JoinPath(req.path)
	if len(req.query) > 0 {
		u.RawQuery = req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), req.body)
	if err != nil {
		return &APIError{Method: req.method, Path: req.path, Err: fmt.Errorf("%w: %w", domain.ErrNetwork, err)}
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(requestIDHeader, requestID)
	if c.locale != "" {
		httpReq.Header.Set("Accept-Language", c.locale)
	}
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	if token := c.tokens.Token(); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return &APIError{Method: req.method, Path: req.path, Err: fmt.Errorf("%w: %w", domain.ErrNetwork, err)}
	}
	defer resp.Body.Close()

	code = strconv.Itoa(resp.StatusCode)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode >= 400 {
		return &APIError{
			Method:  req.method,
			Path:    req.path,
			Status:  resp.StatusCode,
			Message: readErrorMessage(resp.Body),
			Err:     classify(resp.StatusCode),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{
			Method: req.method,
			Path:   req.path,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%w: malformed response: %v", domain.ErrServer, err),
		}
	}
	return nil
}

func (c *Client) logRequest(ctx context.Context, req request, requestID, code string, d time.Duration, err error) {
	fields := []zap.Field{
		zap.String("method", req.method),
		zap.String("route", req.route),
		zap.String("request_id", requestID),
		zap.String("code", code),
		zap.Duration("duration", d),
	}
	if u, uerr := auth.UserContextFromContext(ctx); uerr == nil {
		fields = append(fields, zap.String("user_id", u.UserID))
	}

	if err != nil {
		c.logger.Warn("API request failed", append(fields, zap.Int("status", StatusOf(err)), zap.Error(err))...)
		return
	}
	c.logger.Debug("API request completed", fields...)
}

func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		return payload.Error
	}
	return strings.TrimSpace(string(raw))
}
