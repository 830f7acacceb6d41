package cmd_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/kindform/app/datakind"
	"github.com/km-arc/kindform/cmd"
)

func run(t *testing.T, catalog string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("FORM_CATALOG", catalog)

	var out bytes.Buffer
	root := cmd.NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--env", os.DevNull}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCheck_Valid(t *testing.T) {
	out, err := run(t, "", "check", "--option", "1", "192.168.0.1, 10.0.0.1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"option":1,"values":["192.168.0.1","10.0.0.1"]}`, out)
}

func TestCheck_PathIsOneValue(t *testing.T) {
	out, err := run(t, "", "check", "-o", "5", "/etc/passwd")
	require.NoError(t, err)
	assert.JSONEq(t, `{"option":5,"values":["/etc/passwd"]}`, out)
}

func TestCheck_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"no option", []string{"check", "10.0.0.1"}, "Please select an option first"},
		{"unknown option", []string{"check", "--option", "9", "10.0.0.1"}, "Please select an option first"},
		{"empty", []string{"check", "--option", "3"}, "This field is required"},
		{"too many", []string{"check", "--option", "1", "1.1.1.1,2.2.2.2,3.3.3.3"}, "Maximum number of items exceeded"},
		{"out of range", []string{"check", "--option", "4", "65536"}, "Invalid format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, datakind.ErrInvalid), "got %v", err)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Empty(t, out)
		})
	}
}

func TestCheck_CatalogFile_CompressedIPv6(t *testing.T) {
	_, err := run(t, "../config/catalog.yaml", "check", "--option", "2", "::1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid format")
}

func TestOptions(t *testing.T) {
	out, err := run(t, "", "options")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "OPTION"))
	assert.Contains(t, lines[1], "ipv4")
	assert.Contains(t, lines[5], "Filename with path (max 1)")
}

func TestOptions_BadCatalog(t *testing.T) {
	_, err := run(t, "testdata/missing.yaml", "options")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
