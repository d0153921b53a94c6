package fuzzy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/iho/bankrecon/internal/usecase"
)

// HTTPClient implements usecase.FuzzyMatcher against an external
// description-matching service. Transient transport failures and 5xx
// responses are retried with exponential backoff inside the caller's
// deadline; the orchestrator treats whatever error survives as "no fuzzy
// matches" and continues.
type HTTPClient struct {
	endpoint string
	client   *http.Client
	logger   zerolog.Logger

	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
}

// NewHTTPClient creates a new fuzzy matcher client.
func NewHTTPClient(endpoint string, timeout time.Duration, logger zerolog.Logger) *HTTPClient {
	return &HTTPClient{
		endpoint:        endpoint,
		client:          &http.Client{Timeout: timeout},
		logger:          logger,
		maxRetries:      2,
		initialInterval: 100 * time.Millisecond,
		maxInterval:     1 * time.Second,
	}
}

type matchRequest struct {
	LedgerEntries []usecase.FuzzyEntry `json:"ledger_entries"`
	BankEntries   []usecase.FuzzyEntry `json:"bank_entries"`
}

type matchResponse struct {
	Matches []usecase.FuzzyMatch `json:"matches"`
}

// Match sends both description lists to the external service.
func (c *HTTPClient) Match(ctx context.Context, ledger, bank []usecase.FuzzyEntry) ([]usecase.FuzzyMatch, error) {
	body, err := json.Marshal(matchRequest{LedgerEntries: ledger, BankEntries: bank})
	if err != nil {
		return nil, fmt.Errorf("failed to encode fuzzy match request: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialInterval
	b.MaxInterval = c.maxInterval

	var matches []usecase.FuzzyMatch
	retryCount := 0

	err = backoff.Retry(func() error {
		matches, err = c.doRequest(ctx, body)
		if err == nil {
			return nil
		}

		retryCount++
		if retryCount > c.maxRetries {
			return backoff.Permanent(err)
		}

		c.logger.Warn().Err(err).Int("retry", retryCount).Msg("fuzzy matcher request failed, retrying")
		return err
	}, backoff.WithContext(b, ctx))
	if err != nil {
		return nil, err
	}

	return matches, nil
}

func (c *HTTPClient) doRequest(ctx context.Context, body []byte) ([]usecase.FuzzyMatch, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build fuzzy match request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fuzzy matcher request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fuzzy matcher returned status %d", resp.StatusCode)
	}

	var decoded matchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode fuzzy match response: %w", err)
	}

	return decoded.Matches, nil
}
