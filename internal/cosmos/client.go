// Package cosmos queries the Cosmos REST API of an Evmos node.
//
// The client is purpose-built for upgrade planning: it knows the three
// endpoints the planner needs and nothing else. Transient robustness
// (retries, backoff, rate limiting, timeouts) lives here so that callers
// never have to deal with it.
package cosmos

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MalteHerrmann/proposer/internal/clock"
	"github.com/MalteHerrmann/proposer/internal/model"
	"go.uber.org/ratelimit"
)

const (
	latestBlockEndpoint = "/cosmos/base/tendermint/v1beta1/blocks/latest"
	blocksEndpoint      = "/cosmos/base/tendermint/v1beta1/blocks/"
	balancesEndpoint    = "/cosmos/bank/v1beta1/balances/"

	// The public lava.build endpoints throttle aggressively.
	requestsPerSecond = 5

	maxAttempts  = 3
	retryBackoff = 2 * time.Second

	defaultHTTPTimeout = 30 * time.Second
)

// Metrics records outcome and duration of REST operations.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

type noopMetrics struct{}

func (noopMetrics) Observe(string, error, time.Time) {}

// Client fetches block and balance data from a node REST endpoint.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	limiter    ratelimit.Limiter
	metrics    Metrics
	attempts   int
	backoff    time.Duration
}

// NewClient constructs a client for the given REST base URL.
func NewClient(baseURL string, httpClient *http.Client, metrics Metrics) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q in base url %q", parsed.Scheme, baseURL)
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &Client{
		baseURL:    parsed,
		httpClient: httpClient,
		limiter:    ratelimit.New(requestsPerSecond),
		metrics:    metrics,
		attempts:   maxAttempts,
		backoff:    retryBackoff,
	}, nil
}

// NewClientForNetwork constructs a client against the default REST provider
// of the given network.
func NewClientForNetwork(network model.Network, httpClient *http.Client, metrics Metrics) (*Client, error) {
	profile, err := model.ProfileFor(network)
	if err != nil {
		return nil, err
	}
	return NewClient(profile.RestURL, httpClient, metrics)
}

// LatestBlock returns the newest block of the chain.
func (c *Client) LatestBlock(ctx context.Context) (sample model.BlockSample, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("latest_block", err, started)
	}()

	body, err := c.get(ctx, latestBlockEndpoint)
	if err != nil {
		return model.BlockSample{}, fmt.Errorf("get latest block: %w", err)
	}

	sample, err = parseBlockBody(body)
	if err != nil {
		return model.BlockSample{}, fmt.Errorf("parse latest block: %w", err)
	}
	return sample, nil
}

// BlockAt returns the block at the given height.
func (c *Client) BlockAt(ctx context.Context, height uint64) (sample model.BlockSample, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("block_at", err, started)
	}()

	body, err := c.get(ctx, blocksEndpoint+strconv.FormatUint(height, 10))
	if err != nil {
		return model.BlockSample{}, fmt.Errorf("get block at height %d: %w", height, err)
	}

	sample, err = parseBlockBody(body)
	if err != nil {
		return model.BlockSample{}, fmt.Errorf("parse block at height %d: %w", height, err)
	}
	return sample, nil
}

// HasBalance reports whether the address holds a non-zero amount of denom.
func (c *Client) HasBalance(ctx context.Context, address, denom string) (has bool, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("has_balance", err, started)
	}()

	endpoint := balancesEndpoint + url.PathEscape(address) + "/by_denom?denom=" + url.QueryEscape(denom)
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return false, fmt.Errorf("get balance of %s: %w", address, err)
	}

	amount, err := parseBalanceBody(body)
	if err != nil {
		return false, fmt.Errorf("parse balance of %s: %w", address, err)
	}
	return amount != "0", nil
}

// get runs a GET request against the endpoint with rate limiting and
// bounded retries.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	ref, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	target := c.baseURL.ResolveReference(ref).String()

	var lastErr error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		if attempt > 1 {
			if err := clock.Backoff(ctx, c.backoff, attempt-1); err != nil {
				return nil, err
			}
		}

		c.limiter.Take()

		body, err := c.doGet(ctx, target)
		if err == nil {
			return body, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
	}

	return nil, fmt.Errorf("after %d attempts: %w", c.attempts, lastErr)
}

func (c *Client) doGet(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
