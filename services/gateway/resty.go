package gatewaysvc

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Khadar01822/pms-dashboard/core"
)

type restyGateway struct {
	client *resty.Client
	log    *zap.Logger
}

var _ core.Gateway = (*restyGateway)(nil)

// NewRestyGateway returns a Gateway against the configured API base URL.
// No retries and no client-side timeout; failures surface as errors and the
// caller degrades to a notification.
func NewRestyGateway(log *zap.Logger) core.Gateway {
	client := resty.New().
		SetBaseURL(core.Conf.GetString("apiBaseURL")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &restyGateway{client: client, log: log}
}

func (g *restyGateway) do(ctx context.Context, method, path string, body, out interface{}) error {
	req := g.client.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		g.log.Error("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return errors.Wrapf(err, "%s %s", method, path)
	}
	if resp.IsError() {
		apiErr := &core.APIError{Status: resp.StatusCode()}
		var serverErr struct {
			Message string `json:"message"`
		}
		if jsonErr := json.Unmarshal(resp.Body(), &serverErr); jsonErr == nil {
			apiErr.Message = serverErr.Message
		}
		g.log.Warn("api request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
		)
		return apiErr
	}
	return nil
}

func (g *restyGateway) Get(ctx context.Context, path string, out interface{}) error {
	return g.do(ctx, http.MethodGet, path, nil, out)
}

func (g *restyGateway) Post(ctx context.Context, path string, body, out interface{}) error {
	return g.do(ctx, http.MethodPost, path, body, out)
}

func (g *restyGateway) Put(ctx context.Context, path string, body, out interface{}) error {
	return g.do(ctx, http.MethodPut, path, body, out)
}

func (g *restyGateway) Delete(ctx context.Context, path string) error {
	return g.do(ctx, http.MethodDelete, path, nil, nil)
}
