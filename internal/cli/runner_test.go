package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code     int
	out, err string
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(append([]string{"--no-color"}, args...), Streams{
		In:  strings.NewReader(stdin),
		Out: &out,
		Err: &errOut,
	})
	return result{code: code, out: out.String(), err: errOut.String()}
}

func writeList(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestRun_InteractiveSession(t *testing.T) {
	res := run(t, "milk\ny\neggs\nn\n")

	require.Equal(t, 0, res.code, res.err)
	assert.Contains(t, res.out, "Welcome to Usagi's Shopping List!")
	assert.True(t, strings.HasSuffix(res.out, "Final list:\nYour shopping list:\n1. milk\n2. eggs\n"), res.out)
	assert.Empty(t, res.err)
}

func TestRun_QuitExitsCleanly(t *testing.T) {
	res := run(t, "bread\n/quit\n")
	require.Equal(t, 0, res.code)
	assert.True(t, strings.HasSuffix(res.out, "Goodbye!\n"))
	assert.NotContains(t, res.out, "Final list:")
}

func TestRun_SaveFromSession(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.txt")
	res := run(t, "tea\n/save "+p+"\nn\n")
	require.Equal(t, 0, res.code)

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "tea\n", string(b))
}

func TestRun_PreloadFlag(t *testing.T) {
	p := writeList(t, "rice\nbeans\n")
	res := run(t, "", "--load", p)

	require.Equal(t, 0, res.code)
	assert.Contains(t, res.out, "Loaded items from '"+p+"' (now 2 items)")
	assert.True(t, strings.HasSuffix(res.out, "1. rice\n2. beans\n"))
}

func TestRun_PreloadMissingFileIsNotFatal(t *testing.T) {
	res := run(t, "", "--load", filepath.Join(t.TempDir(), "missing.txt"))
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.out, "Failed to open file: ")
	assert.Contains(t, res.out, "(shopping list is empty)")
}

func TestRun_AddViewRemove(t *testing.T) {
	p := filepath.Join(t.TempDir(), "groceries.txt")

	res := run(t, "", "add", p, "Buy", "milk")
	require.Equal(t, 0, res.code, res.err)
	assert.Contains(t, res.out, "added (now 1 items)")

	res = run(t, "", "add", p, "eggs")
	require.Equal(t, 0, res.code, res.err)

	res = run(t, "", "ls", p)
	require.Equal(t, 0, res.code, res.err)
	assert.Contains(t, res.out, "Total 2")
	assert.Contains(t, res.out, "1. • Buy milk")
	assert.Contains(t, res.out, "2. • eggs")

	res = run(t, "", "rm", p, "1")
	require.Equal(t, 0, res.code, res.err)
	assert.Contains(t, res.out, "removed: Buy milk")

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "eggs\n", string(b))
}

func TestRun_AddEmptyItem(t *testing.T) {
	res := run(t, "", "add", filepath.Join(t.TempDir(), "x.txt"), "  ")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.err, "add: empty item")
}

func TestRun_RemoveErrors(t *testing.T) {
	p := writeList(t, "milk\n")

	res := run(t, "", "rm", p, "5")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.err, "index out of range: have 1, got 5")
	assert.Contains(t, res.err, "Hint: run `usagi ls")
	assert.Equal(t, 1, strings.Count(res.err, "index out of range"))

	res = run(t, "", "rm", p, "abc")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.err, "rm: not a number: abc")

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "milk\n", string(b))
}

func TestRun_ViewMissingFile(t *testing.T) {
	res := run(t, "", "view", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.err, "load: ")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown subcommand", args: []string{"frobnicate"}},
		{name: "missing args", args: []string{"rm"}},
		{name: "unknown flag", args: []string{"--nope"}},
		{name: "unknown theme", args: []string{"--theme", "sparkly"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, "", tt.args...)
			assert.Equal(t, 2, res.code)
			assert.NotEmpty(t, res.err)
		})
	}
}

func TestRun_VerboseLogsToStderr(t *testing.T) {
	p := filepath.Join(t.TempDir(), "list.txt")
	res := run(t, "", "-v", "add", p, "milk")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.err, `"logger":"usagi"`)
	assert.Contains(t, res.err, `"msg":"saved"`)
}

func TestRun_QuietByDefault(t *testing.T) {
	p := writeList(t, "milk\n")
	res := run(t, "/remove 9\n", "--load", p)
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.out, "Invalid index")
	assert.Empty(t, res.err)
}

func TestRun_FormatFlag(t *testing.T) {
	p := filepath.Join(t.TempDir(), "list.json")

	res := run(t, "", "add", "--format", "json", p, "milk")
	require.Equal(t, 0, res.code, res.err)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"milk\"\n]\n", string(b))

	res = run(t, "", "ls", "--format", "json", p)
	require.Equal(t, 0, res.code, res.err)
	assert.Contains(t, res.out, "1. • milk")

	res = run(t, "", "ls", "--format", "yaml", p)
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.err, `unknown format "yaml"`)
}

func TestRun_DefaultFormatIgnoresExtension(t *testing.T) {
	p := filepath.Join(t.TempDir(), "list.json")
	res := run(t, "", "add", p, "milk")
	require.Equal(t, 0, res.code, res.err)

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "milk\n", string(b))
}

func TestRun_PreloadJSONNamedTextFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "old.json")
	require.NoError(t, os.WriteFile(p, []byte("bread\nbutter\n"), 0o644))

	res := run(t, "", "--load", p)
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.out, "(now 2 items)")
	assert.True(t, strings.HasSuffix(res.out, "1. bread\n2. butter\n"))
}

func TestRun_VerboseShowsRecoverableFailures(t *testing.T) {
	p := writeList(t, "milk\n")
	res := run(t, "/remove 9\n", "-v", "--load", p)
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.err, `"level":"warn"`)
	assert.Contains(t, res.err, `"msg":"remove rejected"`)
}
