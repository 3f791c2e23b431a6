package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/observability/metrics"
)

type BaseClient interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() time.Duration
	GetHttpClient() *http.Client
}

type HttpClientOptions struct {
	Timeout time.Duration
	Path    string
	// TemplatePath is used as the metrics label so that path parameters do
	// not blow up label cardinality.
	TemplatePath string
	Headers      map[string]string
}

// HttpError is returned for any non 2xx response.
type HttpError struct {
	StatusCode int
	Body       string
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Body)
}

// IsClientError reports whether the remote side rejected the request itself.
func (e *HttpError) IsClientError() bool {
	return e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError
}

// SendRequest sends input as a JSON body and decodes a JSON response into R.
func SendRequest[I any, R any](
	ctx context.Context, client BaseClient, method string, opts *HttpClientOptions, input *I,
) (*R, error) {
	timeout := client.GetDefaultRequestTimeout()
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	completeUrl := client.GetBaseURL() + opts.Path

	var body io.Reader
	if input != nil {
		payload, err := json.Marshal(input)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request payload: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, completeUrl, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	templatePath := opts.TemplatePath
	if templatePath == "" {
		templatePath = opts.Path
	}
	recordDuration := metrics.StartClientRequestDurationTimer(client.GetBaseURL(), method, templatePath)

	resp, err := client.GetHttpClient().Do(req)
	if err != nil {
		recordDuration(0)
		return nil, fmt.Errorf("failed to send request to %s: %w", opts.Path, err)
	}
	defer resp.Body.Close()
	recordDuration(resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Ctx(ctx).Debug().
			Int("status_code", resp.StatusCode).
			Str("path", templatePath).
			Msg("request returned non success status")
		return nil, &HttpError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var output R
	if len(respBody) == 0 {
		return &output, nil
	}
	if err := json.Unmarshal(respBody, &output); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	return &output, nil
}
