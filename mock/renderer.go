package mock

import "github.com/revoapp/revodoc"

var _ revodoc.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of revodoc.Renderer.
type Renderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *Renderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}
