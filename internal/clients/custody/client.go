package custody

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/clients/client"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/config"
)

const transfersEndpoint = "/v1/transfers"

type direction string

const (
	directionIn  direction = "in"
	directionOut direction = "out"
)

type transferRequest struct {
	Reference   string `json:"reference"`
	Participant string `json:"participant"`
	Direction   string `json:"direction"`
	Amount      string `json:"amount"`
}

type transferResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// Client talks to an external custody service over HTTP.
type Client struct {
	httpClient *http.Client
	cfg        *config.CustodyConfig
}

var _ Custody = (*Client)(nil)

func NewClient(cfg *config.CustodyConfig) *Client {
	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *Client) GetBaseURL() string {
	return strings.TrimSuffix(c.cfg.URL, "/")
}

func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

func (c *Client) TransferIn(ctx context.Context, participant string, amount sdkmath.Uint) error {
	return c.transfer(ctx, participant, amount, directionIn)
}

func (c *Client) TransferOut(ctx context.Context, participant string, amount sdkmath.Uint) error {
	return c.transfer(ctx, participant, amount, directionOut)
}

func (c *Client) transfer(ctx context.Context, participant string, amount sdkmath.Uint, dir direction) error {
	// the reference stays the same across retries so the custody side can
	// deduplicate a request whose response was lost
	req := &transferRequest{
		Reference:   uuid.New().String(),
		Participant: participant,
		Direction:   string(dir),
		Amount:      amount.String(),
	}
	opts := &client.HttpClientOptions{
		Path: transfersEndpoint,
	}

	call := func() (*transferResponse, error) {
		return client.SendRequest[transferRequest, transferResponse](ctx, c, http.MethodPost, opts, req)
	}

	_, err := clientCallWithRetry(ctx, call, c.cfg)
	if err != nil {
		var httpErr *client.HttpError
		if errors.As(err, &httpErr) && httpErr.IsClientError() {
			return fmt.Errorf("%w: %s", ErrTransferDeclined, httpErr.Body)
		}
		return fmt.Errorf("failed to transfer %s %s for %s: %w", dir, amount, participant, err)
	}

	log.Ctx(ctx).Debug().
		Str("reference", req.Reference).
		Str("participant", participant).
		Str("direction", string(dir)).
		Stringer("amount", amount).
		Msg("custody transfer accepted")
	return nil
}

// shouldRetry is false for declined transfers, everything else is assumed
// transient.
func shouldRetry(err error) bool {
	var httpErr *client.HttpError
	if errors.As(err, &httpErr) {
		return !httpErr.IsClientError()
	}
	return err != nil
}

func clientCallWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[T],
	cfg *config.CustodyConfig,
) (T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(shouldRetry),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Warn().
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.MaxRetryTimes).
				Err(err).
				Msg("custody request failed, retrying with exponential backoff")
		}))
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
