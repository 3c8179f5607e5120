package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execStatus(homeDir string) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := statusCmd
	cmd.SetOut(stdout)

	err := runStatus(cmd, homeDir, fixedNow)
	return stdout.String(), err
}

func TestStatusFreshState(t *testing.T) {
	homeDir := t.TempDir()

	stdout, err := execStatus(homeDir)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Count:")
	assert.Contains(t, stdout, "Today:")
	assert.Contains(t, stdout, "Streak:")
	assert.Contains(t, stdout, "Bead:")
	assert.Contains(t, stdout, "not started")
	assert.Contains(t, stdout, "2025-06-15")
}

func TestStatusWithCount(t *testing.T) {
	homeDir := t.TempDir()
	seedTally(t, homeDir, 120)

	stdout, err := execStatus(homeDir)

	require.NoError(t, err)
	assert.Contains(t, stdout, "120")
	assert.Contains(t, stdout, "Streak:")
}

func TestFormatBead(t *testing.T) {
	assert.Equal(t, "not started", formatBead(0))
	assert.Equal(t, "1 of 108 (round 1)", formatBead(1))
	assert.Equal(t, "108 of 108 (round 1)", formatBead(108))
	assert.Equal(t, "1 of 108 (round 2)", formatBead(109))
	assert.Equal(t, "12 of 108 (round 2)", formatBead(120))
}
