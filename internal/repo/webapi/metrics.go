package webapi

import (
	"context"
	"net/url"
	"sort"

	"github.com/Egor213/LogiBoard/internal/domain"
)

type servicesResponse struct {
	Services []string `json:"services"`
}

type allMetricsResponse struct {
	Metrics map[string][]domain.MetricData `json:"metrics"`
}

func (c *Client) GetServices(ctx context.Context) ([]string, error) {
	var resp servicesResponse
	if err := c.get(ctx, "/services", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Services, nil
}

func (c *Client) GetServiceMetrics(ctx context.Context, service string) (domain.ServiceMetrics, error) {
	var resp domain.ServiceMetrics
	if err := c.get(ctx, "/metrics/service/"+url.PathEscape(service), nil, &resp); err != nil {
		return domain.ServiceMetrics{}, err
	}
	if resp.Service == "" {
		resp.Service = service
	}
	return resp, nil
}

func (c *Client) GetLevelMetrics(ctx context.Context, level string) (domain.LevelMetrics, error) {
	var resp domain.LevelMetrics
	if err := c.get(ctx, "/metrics/level/"+url.PathEscape(level), nil, &resp); err != nil {
		return domain.LevelMetrics{}, err
	}
	if resp.Level == "" {
		resp.Level = level
	}
	return resp, nil
}

// GetAllMetrics flattens the per-service map; the map key wins over any
// service field inside the rows.
func (c *Client) GetAllMetrics(ctx context.Context) ([]domain.MetricData, error) {
	var resp allMetricsResponse
	if err := c.get(ctx, "/metrics/service/all", nil, &resp); err != nil {
		return nil, err
	}

	services := make([]string, 0, len(resp.Metrics))
	for service := range resp.Metrics {
		services = append(services, service)
	}
	sort.Strings(services)

	var metrics []domain.MetricData
	for _, service := range services {
		for _, m := range resp.Metrics[service] {
			m.Service = service
			metrics = append(metrics, m)
		}
	}
	return metrics, nil
}
