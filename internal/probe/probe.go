package probe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/imroc/req/v3"

	"github.com/eventtickets/eventtickets/internal/server/handlers/api"
	"github.com/eventtickets/eventtickets/internal/server/handlers/system"
	"github.com/eventtickets/eventtickets/internal/version"
)

const (
	pathHealth = "/health"
	pathInfo   = "/api/v1/info"

	DefaultTimeout = 5 * time.Second
)

var (
	ErrNoBaseURL = errors.New("probe: base url missing")
	ErrUnhealthy = errors.New("probe: gateway unhealthy")
)

// Client talks to a running API gateway.
type Client struct {
	client *req.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, ErrNoBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := req.C().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetUserAgent(version.UserAgent()).
		SetCommonErrorResult(&api.APIError{}).
		SetJsonMarshal(jsonMarshal).
		SetJsonUnmarshal(jsonUnmarshal)

	return &Client{client: client}, nil
}

// Health fails unless the gateway answers 2xx with a healthy status.
func (c *Client) Health(ctx context.Context) (*system.HealthStatus, error) {
	var resp system.HealthStatus
	res, err := c.client.R().
		SetContext(ctx).
		SetSuccessResult(&resp).
		Get(pathHealth)

	if err := handleResponse(res, err, "health"); err != nil {
		return nil, err
	}

	if resp.Status != system.StatusHealthy {
		return nil, fmt.Errorf("%w: status %q", ErrUnhealthy, resp.Status)
	}

	return &resp, nil
}

func (c *Client) Info(ctx context.Context) (*system.APIInfo, error) {
	var resp system.APIInfo
	res, err := c.client.R().
		SetContext(ctx).
		SetSuccessResult(&resp).
		Get(pathInfo)

	if err := handleResponse(res, err, "info"); err != nil {
		return nil, err
	}

	return &resp, nil
}

func handleResponse(res *req.Response, requestErr error, operation string) error {
	if requestErr != nil {
		// non-json error bodies fail to decode into APIError
		if res != nil && res.Response != nil && res.IsErrorState() {
			return fmt.Errorf("%s: unexpected status %d: %w", operation, res.StatusCode, requestErr)
		}
		return fmt.Errorf("http request error: %s %w", operation, requestErr)
	}

	if res.IsSuccessState() {
		return nil
	}

	if apiErr, ok := res.ErrorResult().(*api.APIError); ok && apiErr.Code != "" {
		return fmt.Errorf("%s: %w (status %d)", operation, apiErr, res.StatusCode)
	}

	return fmt.Errorf("%s: unexpected status %d", operation, res.StatusCode)
}
