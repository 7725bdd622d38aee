package webapi

import (
	"context"
	"net/url"

	"github.com/Egor213/LogiBoard/internal/domain"
)

func (c *Client) GetAlerts(ctx context.Context, filter domain.Filter) ([]domain.AlertData, error) {
	q := url.Values{}
	if filter.Service != "" {
		q.Set("service", filter.Service)
	}
	if filter.Level != "" {
		q.Set("level", filter.Level)
	}

	var alerts []domain.AlertData
	if err := c.get(ctx, "/alerts/", q, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}
