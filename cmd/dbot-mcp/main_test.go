package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("DBOT_CONFIG", "")
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(""), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "dbot-mcp dev\n", out)
}

func TestToolsPrintsCatalog(t *testing.T) {
	code, out, errOut := runCLI(t, "tools", "limit-order")
	require.Equal(t, 0, code, errOut)

	var tools []struct {
		Name        string         `json:"name"`
		Description string         `json:"description"`
		InputSchema map[string]any `json:"inputSchema"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &tools))
	require.Len(t, tools, 9)
	assert.Equal(t, "create_limit_order", tools[0].Name)
	assert.Equal(t, "object", tools[0].InputSchema["type"])
	assert.NotEmpty(t, tools[0].Description)
}

func TestUnknownAdapterIsUsageError(t *testing.T) {
	code, _, errOut := runCLI(t, "tools", "margin")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, `unknown adapter "margin"`)
}

func TestMissingAdapterIsUsageError(t *testing.T) {
	code, _, errOut := runCLI(t, "serve")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "error:")
}

func TestServeWithoutAPIKeyIsConfigError(t *testing.T) {
	t.Setenv("DBOT_API_KEY", "")
	code, out, errOut := runCLI(t, "serve", "fast-swap")
	assert.Equal(t, 10, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "DBOT_API_KEY")
}
