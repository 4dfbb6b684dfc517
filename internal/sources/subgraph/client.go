// Package subgraph fetches tokenized-domain records from the upstream
// indexing service over its GraphQL endpoint, one endpoint per chain.
package subgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"domainsight/internal/domain"
)

// DefaultBatchSize is how many records a batch query asks for.
const DefaultBatchSize = 1000

// Client queries per-chain subgraph endpoints.
type Client struct {
	httpClient *http.Client
	endpoints  map[string]string
	primary    string
}

// New creates a client over the given chain -> endpoint map. primary
// names the chain used when callers do not specify one.
func New(endpoints map[string]string, primary string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoints:  endpoints,
		primary:    primary,
	}
}

// Primary returns the default chain name.
func (c *Client) Primary() string { return c.primary }

// Chains returns the configured chain names, sorted.
func (c *Client) Chains() []string {
	chains := make([]string, 0, len(c.endpoints))
	for chain := range c.endpoints {
		chains = append(chains, chain)
	}
	sort.Strings(chains)
	return chains
}

// Endpoints returns the chain -> endpoint map.
func (c *Client) Endpoints() map[string]string { return c.endpoints }

// HasChain reports whether a chain has a configured endpoint.
func (c *Client) HasChain(chain string) bool {
	_, ok := c.endpoints[chain]
	return ok
}

// FetchDomain looks a single domain up on the given chain. It returns
// domain.ErrDomainNotFound when the subgraph has no record for the
// name, and a *domain.UpstreamError for transport or query failures.
func (c *Client) FetchDomain(ctx context.Context, chain, name string) (*domain.Record, error) {
	var resp domainResponse
	err := c.post(ctx, chain, gqlRequest{
		Query:     queryDomain,
		Variables: map[string]any{"name": name},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, &domain.UpstreamError{Chain: chain, Err: fmt.Errorf("query failed: %s", resp.Errors[0].Message)}
	}
	if resp.Data.Name == nil {
		return nil, domain.ErrDomainNotFound
	}
	return resp.Data.Name, nil
}

// FetchDomains returns up to limit records from the given chain.
func (c *Client) FetchDomains(ctx context.Context, chain string, limit int) ([]domain.Record, error) {
	if limit <= 0 {
		limit = DefaultBatchSize
	}

	var resp domainsResponse
	err := c.post(ctx, chain, gqlRequest{
		Query:     queryDomains,
		Variables: map[string]any{"first": limit},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, &domain.UpstreamError{Chain: chain, Err: fmt.Errorf("query failed: %s", resp.Errors[0].Message)}
	}
	return resp.Data.Names, nil
}

// post executes one GraphQL call and decodes the response envelope.
func (c *Client) post(ctx context.Context, chain string, body gqlRequest, out any) error {
	endpoint, ok := c.endpoints[chain]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownChain, chain)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.UpstreamError{Chain: chain, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return &domain.UpstreamError{Chain: chain, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.UpstreamError{Chain: chain, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
