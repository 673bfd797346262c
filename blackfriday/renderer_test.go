package blackfriday_test

import (
	"testing"

	"github.com/revoapp/revodoc"
	"github.com/revoapp/revodoc/blackfriday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders headings and lists", func(t *testing.T) {
		t.Parallel()

		r := blackfriday.NewRenderer()
		html, err := r.Render("## Fixes\n\n- Crash on login\n- Mic not detected\n")

		require.NoError(t, err)
		assert.Contains(t, html, "<h2")
		assert.Contains(t, html, "<li>Crash on login</li>")
	})

	t.Run("renders fenced code blocks", func(t *testing.T) {
		t.Parallel()

		r := blackfriday.NewRenderer()
		html, err := r.Render("```\nrevo --reset\n```\n")

		require.NoError(t, err)
		assert.Contains(t, html, "<code>")
		assert.Contains(t, html, "revo --reset")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		r := blackfriday.NewRenderer()
		_, err := r.Render("   ")

		require.Error(t, err)
		assert.Equal(t, revodoc.EINVALID, revodoc.ErrorCode(err))
	})
}
