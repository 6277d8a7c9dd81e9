package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reliefops/kestrel/pkg/domain/interfaces"
	"github.com/reliefops/kestrel/pkg/domain/model"
	"github.com/reliefops/kestrel/pkg/domain/types"
)

const defaultTimeout = 10 * time.Second

// Client talks to the upstream emergency backend over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option is a functional option for configuring Client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a new feed client for the given upstream base URL
func New(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

var _ interfaces.FeedClient = (*Client)(nil)

// FetchEvents pulls the latest geolocated event records from the
// upstream /events/live endpoint, bounded by limit
func (c *Client) FetchEvents(ctx context.Context, limit int) ([]*model.RawEvent, error) {
	endpoint := fmt.Sprintf("%s/events/live?%s", c.baseURL, url.Values{
		"limit": []string{fmt.Sprintf("%d", limit)},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create feed request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch live events",
			goerr.V("url", endpoint))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, goerr.New("unexpected status from feed",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)))
	}

	var events []*model.RawEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, goerr.Wrap(err, "failed to decode feed response")
	}

	return events, nil
}

// Respond offers a responder for the case. The upstream identifies the
// responder by the X-User-Id header.
func (c *Client) Respond(ctx context.Context, caseID types.CaseID, responderID types.ResponderID, message string) error {
	if caseID == "" {
		return goerr.New("case ID is empty")
	}
	if responderID == "" {
		return goerr.New("responder ID is empty")
	}

	payload, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return goerr.Wrap(err, "failed to marshal respond payload")
	}

	endpoint := fmt.Sprintf("%s/cases/%s/respond", c.baseURL, url.PathEscape(caseID.String()))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return goerr.Wrap(err, "failed to create respond request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", responderID.String())

	return c.do(req, "respond to case", caseID)
}

// Complete marks the case resolved upstream
func (c *Client) Complete(ctx context.Context, caseID types.CaseID) error {
	if caseID == "" {
		return goerr.New("case ID is empty")
	}

	endpoint := fmt.Sprintf("%s/cases/%s/complete", c.baseURL, url.PathEscape(caseID.String()))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create complete request")
	}

	return c.do(req, "complete case", caseID)
}

func (c *Client) do(req *http.Request, action string, caseID types.CaseID) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to "+action,
			goerr.V("caseID", caseID))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return goerr.New("upstream rejected "+action,
			goerr.V("caseID", caseID),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)))
	}

	return nil
}
