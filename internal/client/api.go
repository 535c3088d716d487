package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"catalog/admin/internal/config"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// apiClient is the shared transport of the entity services.
type apiClient struct {
	rl         ratelimit.Limiter
	httpClient *resty.Client
}

func newAPIClient(cfg config.APIConfig) *apiClient {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetLogger(log.StandardLogger())

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &apiClient{
		rl:         rl,
		httpClient: client,
	}
}

// do performs one request. Failures are always *Error; nothing is retried.
func (c *apiClient) do(ctx context.Context, op, method, path string, body, result any) error {
	c.rl.Take()

	req := c.httpClient.R().
		SetContext(ctx).
		SetError(&apiErrorBody{})
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)

	if resp != nil && resp.IsError() {
		apiErr := &Error{
			Kind:   kindForStatus(resp.StatusCode()),
			Op:     op,
			Status: resp.StatusCode(),
		}
		if errBody, ok := resp.Error().(*apiErrorBody); ok {
			apiErr.Message = errBody.text()
		}
		log.Debugf("API %s %s failed with status %d", method, path, resp.StatusCode())
		return apiErr
	}

	if err != nil {
		if ctx.Err() != nil {
			return &Error{Kind: KindTransport, Op: op, Err: fmt.Errorf("request cancelled: %w", ctx.Err())}
		}
		log.Warnf("API %s %s failed: %v", method, path, err)
		return &Error{Kind: KindTransport, Op: op, Err: err}
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return &Error{Kind: KindTransport, Op: op, Status: resp.StatusCode()}
	}

	return nil
}

func (c *apiClient) Close() error {
	return c.httpClient.Close()
}
