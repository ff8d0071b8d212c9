package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/fadilmartias/intern-coach/internal/dto"
	"github.com/fadilmartias/intern-coach/internal/model"
	"github.com/go-resty/resty/v2"
)

const apiPath = "/api/internships"

// ErrNotFound is returned when the server reports 404 for the target record.
var ErrNotFound = errors.New("internship not found")

// Client talks to the store service's HTTP surface. It holds no record
// state: callers re-fetch the full collection after every mutation.
type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json"),
	}
}

// List fetches the full collection.
func (c *Client) List(ctx context.Context) ([]model.Internship, error) {
	var internships []model.Internship
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&internships).
		Get(apiPath)
	if err != nil {
		return nil, fmt.Errorf("fetch internships: %w", err)
	}
	if resp.IsError() {
		return nil, apiError("fetch internships", resp)
	}
	return internships, nil
}

// Create submits a new application and returns the stored record.
func (c *Client) Create(ctx context.Context, in dto.CreateInternshipInput) (model.Internship, error) {
	var rec model.Internship
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(in).
		SetResult(&rec).
		Post(apiPath)
	if err != nil {
		return model.Internship{}, fmt.Errorf("create internship: %w", err)
	}
	if resp.IsError() {
		return model.Internship{}, apiError("create internship", resp)
	}
	return rec, nil
}

// Patch merges the supplied fields over the record with the given id.
func (c *Client) Patch(ctx context.Context, id string, in dto.UpdateInternshipInput) (model.Internship, error) {
	var rec model.Internship
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(in).
		SetResult(&rec).
		Patch(apiPath + "/" + id)
	if err != nil {
		return model.Internship{}, fmt.Errorf("update internship: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return model.Internship{}, ErrNotFound
	}
	if resp.IsError() {
		return model.Internship{}, apiError("update internship", resp)
	}
	return rec, nil
}

// UpdateStatus moves a record to a new lifecycle stage.
func (c *Client) UpdateStatus(ctx context.Context, id, status string) (model.Internship, error) {
	return c.Patch(ctx, id, dto.UpdateInternshipInput{Status: &status})
}

// Delete removes one record; unknown ids succeed.
func (c *Client) Delete(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(apiPath + "/" + id)
	if err != nil {
		return fmt.Errorf("delete internship: %w", err)
	}
	if resp.IsError() {
		return apiError("delete internship", resp)
	}
	return nil
}

// Clear wipes the whole collection.
func (c *Client) Clear(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(apiPath)
	if err != nil {
		return fmt.Errorf("clear internships: %w", err)
	}
	if resp.IsError() {
		return apiError("clear internships", resp)
	}
	return nil
}

func apiError(op string, resp *resty.Response) error {
	return fmt.Errorf("%s: server returned %s", op, resp.Status())
}
