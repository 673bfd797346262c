package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/revoapp/revodoc/cmd/revodoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuideCmd_Run(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}}

	cmd := &main.GuideCmd{}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, stdout.String(), "# Revo Guide")
	assert.Contains(t, stdout.String(), "## Pairing your device")
}
