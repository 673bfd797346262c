package main

import (
	_ "embed"
	"fmt"
)

// guideMarkdown is the product guide shipped with the binary. The guide is
// static content; only the troubleshooting and changelog pages are remote.
//
//go:embed guide.md
var guideMarkdown string

// Run executes the guide command.
func (c *GuideCmd) Run(deps *Dependencies) error {
	fmt.Fprint(deps.Stdout, guideMarkdown)
	return nil
}
