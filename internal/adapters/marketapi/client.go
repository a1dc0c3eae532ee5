// Package marketapi is the HTTP adapter for the marketplace backend. It
// implements the store ports over plain JSON endpoints. The client never
// retries; retry policy belongs to the transport layer behind the API.
package marketapi

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

	"github.com/arale275/autix-sub001/internal/apperrors"
	"github.com/arale275/autix-sub001/internal/core/domain"
	"github.com/arale275/autix-sub001/internal/core/ports"
	"github.com/arale275/autix-sub001/internal/dto"
	"github.com/arale275/autix-sub001/internal/utils/mapping"
)

const defaultTimeout = 15 * time.Second

// Client talks to the marketplace backend API.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// NewClient creates a client for the given base URL. Token may be empty for
// unauthenticated backends.
func NewClient(baseURL, token string, options ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Ensure Client implements all store ports.
var (
	_ ports.InquiryStore = (*Client)(nil)
	_ ports.RequestStore = (*Client)(nil)
	_ ports.CarStore     = (*Client)(nil)
)

// ListInquiries returns the dealer's current inquiry snapshot.
func (c *Client) ListInquiries(ctx context.Context, dealerID string) ([]domain.Inquiry, error) {
	var out []dto.InquiryResponse
	path := "/api/v1/dealers/" + url.PathEscape(dealerID) + "/inquiries"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return mapping.ToDomainInquirySlice(out), nil
}

// UpdateInquiryStatus persists an already-validated inquiry transition.
func (c *Client) UpdateInquiryStatus(ctx context.Context, id int64, target domain.InquiryStatus) (*domain.Inquiry, error) {
	var out dto.InquiryResponse
	path := fmt.Sprintf("/api/v1/inquiries/%d/status", id)
	if err := c.do(ctx, http.MethodPatch, path, dto.UpdateStatusRequest{Status: string(target)}, &out); err != nil {
		return nil, err
	}
	in := mapping.ToDomainInquiry(out)
	return &in, nil
}

// DeleteInquiry removes an inquiry.
func (c *Client) DeleteInquiry(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/inquiries/%d", id), nil, nil)
}

// ListRequests returns the buyer's current car request snapshot.
func (c *Client) ListRequests(ctx context.Context, buyerID string) ([]domain.CarRequest, error) {
	var out []dto.CarRequestResponse
	path := "/api/v1/buyers/" + url.PathEscape(buyerID) + "/requests"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return mapping.ToDomainCarRequestSlice(out), nil
}

// UpdateRequestStatus persists an already-validated request transition.
func (c *Client) UpdateRequestStatus(ctx context.Context, id int64, target domain.RequestStatus) (*domain.CarRequest, error) {
	var out dto.CarRequestResponse
	path := fmt.Sprintf("/api/v1/requests/%d/status", id)
	if err := c.do(ctx, http.MethodPatch, path, dto.UpdateStatusRequest{Status: string(target)}, &out); err != nil {
		return nil, err
	}
	r := mapping.ToDomainCarRequest(out)
	return &r, nil
}

// DeleteRequest removes a car request.
func (c *Client) DeleteRequest(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/requests/%d", id), nil, nil)
}

// ListCars returns the dealer's current inventory snapshot.
func (c *Client) ListCars(ctx context.Context, dealerID string) ([]domain.Car, error) {
	var out []dto.CarResponse
	path := "/api/v1/dealers/" + url.PathEscape(dealerID) + "/cars"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return mapping.ToDomainCarSlice(out), nil
}

// UpdateCarStatus persists an already-validated listing transition.
func (c *Client) UpdateCarStatus(ctx context.Context, id int64, target domain.CarStatus) (*domain.Car, error) {
	var out dto.CarResponse
	path := fmt.Sprintf("/api/v1/cars/%d/status", id)
	if err := c.do(ctx, http.MethodPatch, path, dto.UpdateStatusRequest{Status: string(target)}, &out); err != nil {
		return nil, err
	}
	car := mapping.ToDomainCar(out)
	return &car, nil
}

// DeleteCar removes a listing.
func (c *Client) DeleteCar(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/cars/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marketapi: encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("marketapi: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("marketapi: %s %s: %w: %w", method, path, apperrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("marketapi: decode response: %w: %w", apperrors.ErrTransport, err)
		}
		return nil
	}

	return c.statusError(method, path, resp)
}

// statusError maps backend failures onto the engine taxonomy.
func (c *Client) statusError(method, path string, resp *http.Response) error {
	msg := readErrorMessage(resp.Body)
	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("marketapi: %s %s: %w", method, path, apperrors.ErrNotFound)
	case http.StatusConflict:
		return fmt.Errorf("marketapi: %s %s: %s: %w", method, path, msg, apperrors.ErrInvalidTransition)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("marketapi: %s %s: %s: %w", method, path, msg, apperrors.ErrValidation)
	default:
		return fmt.Errorf("marketapi: %s %s: unexpected status %d: %w", method, path, resp.StatusCode, apperrors.ErrTransport)
	}
}

func readErrorMessage(r io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 4096)).Decode(&payload); err != nil || payload.Error == "" {
		return "request failed"
	}
	return payload.Error
}
