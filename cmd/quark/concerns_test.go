package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcernsCommandListsRegistry(t *testing.T) {
	t.Parallel()

	out, _, err := executeRoot(t, "concerns")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 30)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, out, "<color>")

	var margin string
	for _, line := range lines {
		if strings.HasPrefix(line, "Margin ") {
			margin = line
		}
	}
	require.NotEmpty(t, margin)
	assert.Contains(t, margin, "S3")
}
