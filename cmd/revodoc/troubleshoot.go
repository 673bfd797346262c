package main

import (
	"fmt"

	"github.com/revoapp/revodoc"
)

// Run executes the troubleshoot command.
func (c *TroubleshootCmd) Run(deps *Dependencies) error {
	issues, outcome := deps.Client.TroubleshootingIssues(deps.Ctx, c.Labels)

	if outcome == revodoc.ServedNone {
		fmt.Fprintln(deps.Stderr, "error: could not reach the update server and no cached fixes exist. Check your connection and retry.")
		return revodoc.Errorf(revodoc.EUNAVAILABLE, "no troubleshooting data available")
	}
	if outcome == revodoc.ServedStale {
		fmt.Fprintln(deps.Stderr, "note: showing cached fixes; the update server could not be reached.")
	}

	fixes := revodoc.NormalizeIssues(issues)
	filtered := revodoc.FilterFixes(fixes, revodoc.FixFilter{
		Category: revodoc.Category(c.Category),
		Query:    c.Query,
	})

	if len(filtered) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching fixes found.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Known fixes (%d of %d):\n\n", len(filtered), len(fixes))
	for _, fix := range filtered {
		fmt.Fprintf(deps.Stdout, "  #%d [%s] %s\n", fix.Number, fix.Category, fix.Title)
		if fix.HTMLURL != "" {
			fmt.Fprintf(deps.Stdout, "     %s\n", fix.HTMLURL)
		}
	}

	return nil
}
