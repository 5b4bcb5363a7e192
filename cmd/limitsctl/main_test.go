package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignArg(t *testing.T) {
	id, err := campaignArg([]string{"42"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"0", "-3", "abc"} {
		_, err := campaignArg([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"check", "check-all", "pause", "resume", "enforce-cpc", "sync", "audit", "migrate"})
}

func TestEnforceCPC_RequiresTwoArgs(t *testing.T) {
	assert.Error(t, enforceCPCCmd.Args(enforceCPCCmd, []string{"1"}))
	assert.NoError(t, enforceCPCCmd.Args(enforceCPCCmd, []string{"1", "2.5"}))
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, map[string]int{"total": 2}))
	assert.JSONEq(t, `{"total": 2}`, buf.String())
}
