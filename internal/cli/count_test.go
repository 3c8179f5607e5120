package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountNonTTYFallsBackToStatus(t *testing.T) {
	homeDir := t.TempDir()
	seedTally(t, homeDir, 12)

	stdout := new(bytes.Buffer)
	cmd := countCmd
	cmd.SetOut(stdout)

	err := runCount(cmd, homeDir, fixedNow)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Count:")
	assert.Contains(t, stdout.String(), "12")
}
