package sanity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const DefaultTimeout = 15 * time.Second

// Client queries the hosted content store's HTTP query API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Options configure the dataset a Client reads from.
type Options struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool
}

// NewClient builds a client for one project/dataset pair. The CDN host serves
// cached documents; turn it off when fresh reads matter more than latency.
func NewClient(opts Options) *Client {
	host := "api.sanity.io"
	if opts.UseCDN {
		host = "apicdn.sanity.io"
	}
	base := fmt.Sprintf("https://%s.%s/v%s/data/query/%s",
		opts.ProjectID, host, opts.APIVersion, opts.Dataset)
	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a local server.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

type queryEnvelope struct {
	Result json.RawMessage `json:"result"`
}

// Query runs a GROQ query and decodes the result envelope into out. Params are
// serialized as JSON and passed as $-prefixed query parameters per the store's
// HTTP contract.
func (c *Client) Query(ctx context.Context, groq string, params map[string]any, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("query", groq)
	for k, v := range params {
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode param %s: %w", k, err)
		}
		q.Set("$"+k, string(encoded))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("content store request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("content store returned status %d", resp.StatusCode)
	}

	var envelope queryEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}
	if envelope.Result == nil || string(envelope.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	return nil
}

// Projects runs a query expected to return a list of project records.
func (c *Client) Projects(ctx context.Context, groq string, params map[string]any) ([]Record, error) {
	var records []Record
	if err := c.Query(ctx, groq, params, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Project runs a query expected to return a single project record. A nil
// record means the query matched nothing.
func (c *Client) Project(ctx context.Context, groq string, params map[string]any) (*Record, error) {
	var record *Record
	if err := c.Query(ctx, groq, params, &record); err != nil {
		return nil, err
	}
	return record, nil
}
