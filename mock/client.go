package mock

import (
	"context"

	"github.com/revoapp/revodoc"
)

var _ revodoc.DataClient = (*DataClient)(nil)

// DataClient is a mock implementation of revodoc.DataClient.
type DataClient struct {
	ReleasesFn              func(ctx context.Context) ([]*revodoc.Release, revodoc.FetchOutcome)
	TroubleshootingIssuesFn func(ctx context.Context, labels []string) ([]*revodoc.Issue, revodoc.FetchOutcome)
}

func (c *DataClient) Releases(ctx context.Context) ([]*revodoc.Release, revodoc.FetchOutcome) {
	return c.ReleasesFn(ctx)
}

func (c *DataClient) TroubleshootingIssues(ctx context.Context, labels []string) ([]*revodoc.Issue, revodoc.FetchOutcome) {
	return c.TroubleshootingIssuesFn(ctx, labels)
}

var _ revodoc.Refresher = (*Refresher)(nil)

// Refresher is a mock implementation of revodoc.Refresher.
type Refresher struct {
	RefreshReleasesFn              func(ctx context.Context) ([]*revodoc.Release, revodoc.FetchOutcome)
	RefreshTroubleshootingIssuesFn func(ctx context.Context, labels []string) ([]*revodoc.Issue, revodoc.FetchOutcome)
}

func (r *Refresher) RefreshReleases(ctx context.Context) ([]*revodoc.Release, revodoc.FetchOutcome) {
	return r.RefreshReleasesFn(ctx)
}

func (r *Refresher) RefreshTroubleshootingIssues(ctx context.Context, labels []string) ([]*revodoc.Issue, revodoc.FetchOutcome) {
	return r.RefreshTroubleshootingIssuesFn(ctx, labels)
}
