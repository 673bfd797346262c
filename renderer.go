package revodoc

import "html"

// Renderer converts Markdown to HTML.
type Renderer interface {
	// Render transforms Markdown text into HTML.
	Render(markdown string) (string, error)
}

// RenderMarkdown renders text with r, degrading to HTML-escaped preformatted
// text when no renderer is available or rendering fails.
func RenderMarkdown(r Renderer, text string) string {
	if r != nil {
		if out, err := r.Render(text); err == nil {
			return out
		}
	}
	return "<pre>" + html.EscapeString(text) + "</pre>"
}
