package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/revoapp/revodoc"
	"github.com/revoapp/revodoc/blackfriday"
	main "github.com/revoapp/revodoc/cmd/revodoc"
	"github.com/revoapp/revodoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes the three site pages", func(t *testing.T) {
		t.Parallel()

		client := &mock.DataClient{
			ReleasesFn: func(_ context.Context) ([]*revodoc.Release, revodoc.FetchOutcome) {
				return testReleases(), revodoc.ServedFresh
			},
			TroubleshootingIssuesFn: func(_ context.Context, labels []string) ([]*revodoc.Issue, revodoc.FetchOutcome) {
				return testIssues(), revodoc.ServedFresh
			},
		}

		out := t.TempDir()
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Client:   client,
			Renderer: blackfriday.NewRenderer(),
		}

		cmd := &main.BuildCmd{Out: out, Labels: []string{"troubleshooting"}}
		require.NoError(t, cmd.Run(deps))

		guide, err := os.ReadFile(filepath.Join(out, "guide.html"))
		require.NoError(t, err)
		assert.Contains(t, string(guide), "Revo Guide")

		changelog, err := os.ReadFile(filepath.Join(out, "changelog.html"))
		require.NoError(t, err)
		assert.Contains(t, string(changelog), "Summer Update")
		assert.Contains(t, string(changelog), "<li>Crash on login</li>")

		troubleshooting, err := os.ReadFile(filepath.Join(out, "troubleshooting.html"))
		require.NoError(t, err)
		assert.Contains(t, string(troubleshooting), "#12 Crash on login")
		assert.Contains(t, string(troubleshooting), "<h2>windows</h2>")
		assert.NotContains(t, string(troubleshooting), "Fix crash") // pull request excluded
	})

	t.Run("degrades to escaped text when the renderer fails", func(t *testing.T) {
		t.Parallel()

		client := &mock.DataClient{
			ReleasesFn: func(_ context.Context) ([]*revodoc.Release, revodoc.FetchOutcome) {
				return testReleases(), revodoc.ServedFresh
			},
			TroubleshootingIssuesFn: func(_ context.Context, labels []string) ([]*revodoc.Issue, revodoc.FetchOutcome) {
				return nil, revodoc.ServedFresh
			},
		}
		renderer := &mock.Renderer{
			RenderFn: func(markdown string) (string, error) {
				return "", revodoc.Errorf(revodoc.EINTERNAL, "renderer unavailable")
			},
		}

		out := t.TempDir()
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Client:   client,
			Renderer: renderer,
		}

		cmd := &main.BuildCmd{Out: out, Labels: []string{"troubleshooting"}}
		require.NoError(t, cmd.Run(deps))

		guide, err := os.ReadFile(filepath.Join(out, "guide.html"))
		require.NoError(t, err)
		assert.Contains(t, string(guide), "<pre># Revo Guide")
	})

	t.Run("notes unavailable data instead of failing", func(t *testing.T) {
		t.Parallel()

		client := &mock.DataClient{
			ReleasesFn: func(_ context.Context) ([]*revodoc.Release, revodoc.FetchOutcome) {
				return nil, revodoc.ServedNone
			},
			TroubleshootingIssuesFn: func(_ context.Context, labels []string) ([]*revodoc.Issue, revodoc.FetchOutcome) {
				return nil, revodoc.ServedNone
			},
		}

		out := t.TempDir()
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Client:   client,
			Renderer: blackfriday.NewRenderer(),
		}

		cmd := &main.BuildCmd{Out: out, Labels: []string{"troubleshooting"}}
		require.NoError(t, cmd.Run(deps))

		changelog, err := os.ReadFile(filepath.Join(out, "changelog.html"))
		require.NoError(t, err)
		assert.Contains(t, string(changelog), "Release data is unavailable")
	})
}
