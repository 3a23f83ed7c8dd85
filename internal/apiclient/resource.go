package apiclient

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Resource is one REST collection of the API with its fallback message.
type Resource struct {
	client   *Client
	base     string
	fallback string
}

// Resource binds base (e.g. "/api/backoffice/agents") to the client.
func (c *Client) Resource(base, fallback string) *Resource {
	return &Resource{client: c, base: base, fallback: fallback}
}

func (r *Resource) request(method, path string, q Query, body interface{}, fallback string) Request {
	if fallback == "" {
		fallback = r.fallback
	}
	return Request{Method: method, Path: r.base + path, Query: q, Body: body, Fallback: fallback}
}

func (r *Resource) Get(ctx context.Context, path string, q Query, out interface{}) error {
	return r.client.Do(ctx, r.request(fiber.MethodGet, path, q, nil, ""), out)
}

func (r *Resource) Post(ctx context.Context, path string, body, out interface{}) error {
	return r.client.Do(ctx, r.request(fiber.MethodPost, path, nil, body, ""), out)
}

func (r *Resource) Put(ctx context.Context, path string, body, out interface{}) error {
	return r.client.Do(ctx, r.request(fiber.MethodPut, path, nil, body, ""), out)
}

func (r *Resource) Patch(ctx context.Context, path string, body, out interface{}) error {
	return r.client.Do(ctx, r.request(fiber.MethodPatch, path, nil, body, ""), out)
}

func (r *Resource) Delete(ctx context.Context, path string) error {
	return r.client.Do(ctx, r.request(fiber.MethodDelete, path, nil, nil, ""), nil)
}

// With overrides the fallback message for a single call.
func (r *Resource) With(fallback string) *Resource {
	return &Resource{client: r.client, base: r.base, fallback: fallback}
}

// Download posts body and returns the raw payload.
func (r *Resource) Download(ctx context.Context, path string, body interface{}) (*Response, error) {
	return r.client.Send(ctx, r.request(fiber.MethodPost, path, nil, body, ""))
}

// Backoffice is the root of the backoffice REST collections.
const Backoffice = "/api/backoffice"
