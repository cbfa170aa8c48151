package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestReplRunsUntilQuit(t *testing.T) {
	out := run(t, "hello\n/quit\nnever sent\n", "--llm", "none", "--deterministic", "--session", "cli-1")

	assert.Contains(t, out, "Session cli-1")
	assert.Contains(t, out, "[trip_intake]")
	assert.NotContains(t, out, "never sent")
}

func TestReplReportsTransitionErrors(t *testing.T) {
	out := run(t, "/pay\n", "--llm", "none", "--session", "cli-2")

	assert.Contains(t, out, "! ")
}

func TestReplDumpsSession(t *testing.T) {
	out := run(t, "I'm going to Japan\n/session\n", "--llm", "none", "--session", "cli-3")

	assert.Contains(t, out, `"sessionId": "cli-3"`)
	assert.Contains(t, out, "Japan")
}

func TestExtractCommand(t *testing.T) {
	out := run(t, "", "extract", "two", "adults", "going", "to", "Portugal")

	assert.Contains(t, out, "Portugal")
}

func TestUnknownProviderFails(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--llm", "bard"})

	assert.Error(t, cmd.Execute())
}
