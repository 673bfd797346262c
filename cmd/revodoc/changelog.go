package main

import (
	"fmt"

	"github.com/revoapp/revodoc"
)

// Run executes the changelog command.
func (c *ChangelogCmd) Run(deps *Dependencies) error {
	releases, outcome := deps.Client.Releases(deps.Ctx)

	if outcome == revodoc.ServedNone {
		fmt.Fprintln(deps.Stderr, "error: could not reach the update server and no cached releases exist. Check your connection and retry.")
		return revodoc.Errorf(revodoc.EUNAVAILABLE, "no release data available")
	}
	if outcome == revodoc.ServedStale {
		fmt.Fprintln(deps.Stderr, "note: showing cached releases; the update server could not be reached.")
	}

	if len(releases) == 0 {
		fmt.Fprintln(deps.Stdout, "No releases published yet.")
		return nil
	}

	if c.Limit > 0 && len(releases) > c.Limit {
		releases = releases[:c.Limit]
	}

	for i, release := range releases {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintf(deps.Stdout, "%s  %s\n", release.TagName, release.DisplayName())
		if !release.PublishedAt.IsZero() {
			fmt.Fprintf(deps.Stdout, "Published: %s\n", release.PublishedAt.Format("2006-01-02"))
		}
		if release.Body != "" {
			fmt.Fprintf(deps.Stdout, "\n%s\n", release.Body)
		}
	}

	return nil
}
