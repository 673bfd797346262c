// Package blackfriday implements revodoc.Renderer using the Blackfriday
// Markdown processor.
package blackfriday

import (
	"strings"

	"github.com/revoapp/revodoc"
	"github.com/russross/blackfriday/v2"
)

// Ensure Renderer implements revodoc.Renderer at compile time.
var _ revodoc.Renderer = (*Renderer)(nil)

// Renderer converts Markdown to HTML.
type Renderer struct {
	extensions blackfriday.Extensions
}

// NewRenderer creates a new Renderer with GitHub-flavored extensions, which
// matches how release notes and issue bodies are written.
func NewRenderer() *Renderer {
	return &Renderer{
		extensions: blackfriday.CommonExtensions | blackfriday.AutoHeadingIDs,
	}
}

// Render transforms Markdown text into HTML.
func (r *Renderer) Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", revodoc.Errorf(revodoc.EINVALID, "empty markdown input")
	}

	out := blackfriday.Run([]byte(markdown), blackfriday.WithExtensions(r.extensions))
	return string(out), nil
}
