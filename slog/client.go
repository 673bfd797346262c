// Package slog provides logging decorators for revodoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/revoapp/revodoc"
)

// Ensure LoggingDataClient implements revodoc.DataClient at compile time.
var _ revodoc.DataClient = (*LoggingDataClient)(nil)

// LoggingDataClient wraps a DataClient with structured logging. Each call
// gets a request id so a fetch and its fallback lines correlate in the log.
type LoggingDataClient struct {
	next   revodoc.DataClient
	logger *slog.Logger
}

// NewLoggingDataClient creates a new LoggingDataClient.
func NewLoggingDataClient(next revodoc.DataClient, logger *slog.Logger) *LoggingDataClient {
	return &LoggingDataClient{next: next, logger: logger}
}

// Releases delegates to the wrapped client and logs the outcome.
func (c *LoggingDataClient) Releases(ctx context.Context) ([]*revodoc.Release, revodoc.FetchOutcome) {
	begin := time.Now()
	requestID := uuid.New().String()

	releases, outcome := c.next.Releases(ctx)

	c.log("releases", requestID, outcome, len(releases), time.Since(begin))
	return releases, outcome
}

// TroubleshootingIssues delegates to the wrapped client and logs the outcome.
func (c *LoggingDataClient) TroubleshootingIssues(ctx context.Context, labels []string) ([]*revodoc.Issue, revodoc.FetchOutcome) {
	begin := time.Now()
	requestID := uuid.New().String()

	issues, outcome := c.next.TroubleshootingIssues(ctx, labels)

	c.log("troubleshooting_issues", requestID, outcome, len(issues), time.Since(begin))
	return issues, outcome
}

func (c *LoggingDataClient) log(op, requestID string, outcome revodoc.FetchOutcome, count int, duration time.Duration) {
	attrs := []any{
		"op", op,
		"request_id", requestID,
		"outcome", outcome.String(),
		"count", count,
		"duration", duration,
	}
	if outcome.Degraded() {
		c.logger.Warn("fetch degraded", attrs...)
		return
	}
	c.logger.Info("fetch", attrs...)
}
