package webapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Egor213/LogiBoard/internal/domain"
)

func limitQuery(limit int) url.Values {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

func (c *Client) GetRecentLogs(ctx context.Context, limit int) ([]domain.LogEntry, error) {
	var logs []domain.LogEntry
	if err := c.get(ctx, "/logs/recent", limitQuery(limit), &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) GetLogsByService(ctx context.Context, service string, limit int) ([]domain.LogEntry, error) {
	var logs []domain.LogEntry
	if err := c.get(ctx, "/logs/service/"+url.PathEscape(service), limitQuery(limit), &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) GetLogsByLevel(ctx context.Context, level string, limit int) ([]domain.LogEntry, error) {
	var logs []domain.LogEntry
	if err := c.get(ctx, "/logs/level/"+url.PathEscape(level), limitQuery(limit), &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// RegisterLog posts a new log line. The log service may answer with an ack
// instead of the stored bucket, in which case the entry is built from reg.
func (c *Client) RegisterLog(ctx context.Context, reg *domain.LogRegistration) (domain.LogEntry, error) {
	var created domain.LogEntry
	if err := c.post(ctx, "/logs/", reg, &created); err != nil {
		return domain.LogEntry{}, err
	}

	if created.Service == "" {
		created.Service = reg.Service
	}
	if created.Level == "" {
		created.Level = reg.Level
	}
	if created.Count == 0 {
		created.Count = 1
	}
	if created.Timestamp == "" {
		created.Timestamp = reg.Timestamp
	}
	return created, nil
}
