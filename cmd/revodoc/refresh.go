package main

import (
	"fmt"

	"github.com/revoapp/revodoc"
	"golang.org/x/sync/errgroup"
)

// Run executes the refresh command. Both endpoints are fetched concurrently,
// bypassing the fresh-cache check so the durable tier is rewritten.
func (c *RefreshCmd) Run(deps *Dependencies) error {
	var (
		releaseCount, issueCount     int
		releaseOutcome, issueOutcome revodoc.FetchOutcome
	)

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		releases, outcome := deps.Refresher.RefreshReleases(ctx)
		releaseCount, releaseOutcome = len(releases), outcome
		return nil
	})
	g.Go(func() error {
		issues, outcome := deps.Refresher.RefreshTroubleshootingIssues(ctx, c.Labels)
		issueCount, issueOutcome = len(issues), outcome
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "releases: %s (%d records)\n", releaseOutcome, releaseCount)
	fmt.Fprintf(deps.Stdout, "fixes:    %s (%d records)\n", issueOutcome, issueCount)

	if releaseOutcome == revodoc.ServedNone || issueOutcome == revodoc.ServedNone {
		return revodoc.Errorf(revodoc.EUNAVAILABLE, "refresh incomplete: update server unreachable")
	}
	return nil
}
