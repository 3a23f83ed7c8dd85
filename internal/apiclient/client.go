// Package apiclient wraps the CHARGILI REST API. Every request carries
// the operator's bearer token; failures come back as *errors.APIError.
package apiclient

import (
	"context"
	"encoding/json"
	"mime"
	"net/http"
	"strings"
	"sync"
	"time"

	apperrors "chargili/internal/errors"
	"chargili/internal/logger"

	"github.com/gofiber/fiber/v2"
)

const (
	MsgDefault      = "Une erreur est survenue"
	MsgUnauthorized = "Session expirée. Veuillez vous reconnecter"
)

// TokenSource returns the bearer token of the operator behind ctx.
type TokenSource func(ctx context.Context) string

// UnauthorizedFunc is notified when the API answers 401.
type UnauthorizedFunc func(ctx context.Context)

type Options struct {
	BaseURL string
	// Zero keeps the transport default.
	Timeout time.Duration
	Token   TokenSource
	Logger  *logger.Logger
}

type Client struct {
	baseURL string
	timeout time.Duration
	token   TokenSource
	http    *fiber.Client
	log     *logger.Logger

	mu           sync.RWMutex
	unauthorized []UnauthorizedFunc
}

func New(opts Options) *Client {
	token := opts.Token
	if token == nil {
		token = func(context.Context) string { return "" }
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		timeout: opts.Timeout,
		token:   token,
		http:    &fiber.Client{UserAgent: "chargili-backoffice"},
		log:     log,
	}
}

// OnUnauthorized subscribes fn to 401 responses.
func (c *Client) OnUnauthorized(fn UnauthorizedFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unauthorized = append(c.unauthorized, fn)
}

func (c *Client) emitUnauthorized(ctx context.Context) {
	c.mu.RLock()
	subscribers := append([]UnauthorizedFunc(nil), c.unauthorized...)
	c.mu.RUnlock()
	for _, fn := range subscribers {
		fn(ctx)
	}
}

// Request describes one API call. Path is absolute from the API root.
type Request struct {
	Method   string
	Path     string
	Query    Query
	Body     interface{}
	Fallback string
}

// Response is a raw successful API answer.
type Response struct {
	Status      int
	Body        []byte
	ContentType string
	Disposition string
}

// Do sends req and decodes a JSON body into out when out is not nil.
func (c *Client) Do(ctx context.Context, req Request, out interface{}) error {
	resp, err := c.Send(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		c.log.Errorw("decode api response", "path", req.Path, "error", err)
		return &apperrors.APIError{Status: resp.Status, Message: fallback(req.Fallback), Err: err}
	}
	return nil
}

// Send performs req and returns the raw response of a 2xx answer.
func (c *Client) Send(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	url := c.baseURL + req.Path
	if encoded := req.Query.Encode(); encoded != "" {
		url += "?" + encoded
	}

	agent := c.agent(req.Method, url)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if token := c.token(ctx); token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	if req.Body != nil {
		agent.JSON(req.Body)
	}
	if timeout := c.timeoutFor(ctx); timeout > 0 {
		agent.Timeout(timeout)
	}

	raw := fiber.AcquireResponse()
	defer fiber.ReleaseResponse(raw)
	agent.SetResponse(raw)

	start := time.Now()
	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		c.log.Warnw("api unreachable", "method", req.Method, "path", req.Path, "error", errs[0])
		return nil, apperrors.NetworkError(errs[0])
	}
	c.log.Debugw("api call", "method", req.Method, "path", req.Path, "status", status, "latency", time.Since(start))

	// A caller that gave up must not see a late answer.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch {
	case status == http.StatusUnauthorized:
		c.emitUnauthorized(ctx)
		return nil, apperrors.NewAPIError(status, serverMessage(body, MsgUnauthorized))
	case status >= http.StatusBadRequest:
		return nil, apperrors.NewAPIError(status, serverMessage(body, fallback(req.Fallback)))
	}

	return &Response{
		Status:      status,
		Body:        body,
		ContentType: string(raw.Header.ContentType()),
		Disposition: string(raw.Header.Peek(fiber.HeaderContentDisposition)),
	}, nil
}

func (c *Client) agent(method, url string) *fiber.Agent {
	switch method {
	case fiber.MethodPost:
		return c.http.Post(url)
	case fiber.MethodPut:
		return c.http.Put(url)
	case fiber.MethodPatch:
		return c.http.Patch(url)
	case fiber.MethodDelete:
		return c.http.Delete(url)
	}
	return c.http.Get(url)
}

// timeoutFor honours both the configured timeout and the ctx deadline.
func (c *Client) timeoutFor(ctx context.Context) time.Duration {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); timeout == 0 || remaining < timeout {
			timeout = remaining
		}
	}
	if timeout < 0 {
		return time.Millisecond
	}
	return timeout
}

func serverMessage(body []byte, fallbackMsg string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fallbackMsg
}

func fallback(msg string) string {
	if msg == "" {
		return MsgDefault
	}
	return msg
}

// FilenameFrom extracts the filename of a Content-Disposition header.
func FilenameFrom(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}
