package vendus

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

	"github.com/cantinhoapps/vendus-gateway/internal/config"
	"github.com/cantinhoapps/vendus-gateway/internal/observability"
	"github.com/cantinhoapps/vendus-gateway/internal/web"
)

// Client wraps outbound calls to the Vendus API. Every call attaches the
// bearer token from configuration; missing base URL or token is reported
// before any network dial is attempted.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.VendusBaseURL,
		token:   cfg.VendusAPIKey,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) ListProducts(ctx context.Context) (any, error) {
	return c.do(ctx, http.MethodGet, "/products", nil)
}

func (c *Client) ListCustomers(ctx context.Context) (any, error) {
	return c.do(ctx, http.MethodGet, "/customers/list", nil)
}

func (c *Client) CreateCustomer(ctx context.Context, payload map[string]any) (any, error) {
	return c.do(ctx, http.MethodPost, "/customers/create", payload)
}

func (c *Client) CreateOrder(ctx context.Context, payload map[string]any) (any, error) {
	return c.do(ctx, http.MethodPost, "/orders/create", payload)
}

func (c *Client) ListOrders(ctx context.Context, customerID string) (any, error) {
	path := "/orders"
	if customerID != "" {
		path += "?" + url.Values{"customer_id": {customerID}}.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) CreateDocument(ctx context.Context, payload map[string]any) (any, error) {
	return c.do(ctx, http.MethodPost, "/documents", payload)
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (any, error) {
	if c.baseURL == "" {
		return nil, &web.ConfigError{Key: "VENDUS_BASE_URL"}
	}
	if c.token == "" {
		return nil, &web.ConfigError{Key: "VENDUS_API_KEY"}
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("vendus: codificar payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, joinURL(c.baseURL, path), body)
	if err != nil {
		return nil, fmt.Errorf("vendus: %s %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	endpoint := metricEndpoint(path)
	started := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		observability.ObserveUpstream(endpoint, 0, started)
		return nil, fmt.Errorf("vendus: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.ObserveUpstream(endpoint, resp.StatusCode, started)
		return nil, fmt.Errorf("vendus: ler resposta de %s: %w", path, err)
	}
	observability.ObserveUpstream(endpoint, resp.StatusCode, started)

	parsed := safeParse(raw)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &web.UpstreamError{Status: resp.StatusCode, Body: parsed}
	}
	return parsed, nil
}

// safeParse parses the body as JSON; on failure the caller still gets
// something to inspect instead of an error.
func safeParse(raw []byte) any {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return map[string]any{"raw": string(raw)}
	}
	return v
}

// joinURL joins base and path without doubling or dropping slashes.
func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// metricEndpoint strips the query so listing calls collapse into one label.
func metricEndpoint(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}
