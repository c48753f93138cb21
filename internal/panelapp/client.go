// Package panelapp fetches signed-off panel definitions from the
// PanelApp REST API and normalizes them into the records the dedupe
// pipeline operates on. It is the boundary between raw upstream data
// and the core: everything past it is in-memory and deterministic.
package panelapp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/woook/paneldump/pkg/errors"
	"github.com/woook/paneldump/pkg/logging"
	"github.com/woook/paneldump/pkg/panels"
)

// DefaultBaseURL is the production PanelApp API root.
const DefaultBaseURL = "https://panelapp.genomicsengland.co.uk/api/v1"

// defaultHTTPTimeout bounds each request to the API.
const defaultHTTPTimeout = 60 * time.Second

// Client talks to the PanelApp API.
type Client struct {
	http    *http.Client
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root, used by tests
// and mirror deployments.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// NewClient creates a PanelApp API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: defaultHTTPTimeout},
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SignedOffPanels retrieves every signed-off panel with its gene and
// region lists, following pagination until exhausted. When keep is
// non-empty, only panels whose ID is in keep are normalized. The
// returned list preserves the API's panel order.
func (c *Client) SignedOffPanels(ctx context.Context, keep map[int]bool) (panels.Panels, error) {
	log := logging.Ctx(ctx)

	var out panels.Panels
	url := c.baseURL + "/panels/signedoff/?format=json"

	for url != "" {
		var pg page
		if err := c.get(ctx, url, &pg); err != nil {
			return nil, err
		}

		for _, detail := range pg.Results {
			if len(keep) > 0 && !keep[detail.ID] {
				continue
			}
			out = append(out, extractPanel(detail))
		}

		if pg.Next == nil {
			break
		}
		url = *pg.Next
	}

	log.Info().Int("panels", len(out)).Msg("Signed-off panels retained")
	return out, nil
}

// Panel retrieves one signed-off panel by ID.
func (c *Client) Panel(ctx context.Context, id int) (panels.Panel, error) {
	url := fmt.Sprintf("%s/panels/%d/?format=json", c.baseURL, id)

	var detail panelDetail
	if err := c.get(ctx, url, &detail); err != nil {
		return panels.Panel{}, errors.WrapResource("fetch", "panel", fmt.Sprint(id), err)
	}

	return extractPanel(detail), nil
}

// get performs a GET request and decodes the JSON response.
func (c *Client) get(ctx context.Context, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.WrapResource("create", "request", "GET "+url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapAPI(url, 0, err)
	}

	return decodeResponse(resp, url, target)
}

// decodeResponse decodes a JSON response into the target structure.
func decodeResponse(resp *http.Response, endpoint string, target any) error {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &errors.APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "PanelApp response", err)
	}

	return nil
}
