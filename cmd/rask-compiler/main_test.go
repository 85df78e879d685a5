package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const labelSource = "const Label = () => createVNode(1);\n"

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestHelpAndSubcommands(t *testing.T) {
	tests := []struct {
		args    []string
		wantOut string
		wantErr bool
	}{
		{args: []string{"--help"}, wantOut: "rewrites function components"},
		{args: []string{"transform", "--help"}, wantOut: "Rewrite the function components"},
		{args: []string{"serve", "--help"}, wantOut: "MessagePack-framed"},
		{args: []string{"version"}, wantOut: "rask-compiler dev"},
		{args: []string{"unknown"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantOut)
		})
	}
}

func TestTransformStdin(t *testing.T) {
	out, err := execute(t, labelSource, "transform")
	require.NoError(t, err)
	assert.Contains(t, out, `import { RaskStatelessComponent as _RaskStatelessComponent } from "rask-ui";`)
	assert.Contains(t, out, "const Label = class Label extends _RaskStatelessComponent {")
}

func TestTransformImportSourceFlag(t *testing.T) {
	out, err := execute(t, labelSource, "transform", "--import-source", "custom-ui")
	require.NoError(t, err)
	assert.Contains(t, out, `from "custom-ui";`)
}

func TestTransformImportSourceEnv(t *testing.T) {
	t.Setenv("RASK_IMPORT_SOURCE", "env-ui")

	out, err := execute(t, labelSource, "transform", "-")
	require.NoError(t, err)
	assert.Contains(t, out, `from "env-ui";`)
}

func TestTransformConfigFile(t *testing.T) {
	config := writeFile(t, t.TempDir(), "rask.yaml", "import_source: file-ui\n")

	out, err := execute(t, labelSource, "transform", "--config", config)
	require.NoError(t, err)
	assert.Contains(t, out, `from "file-ui";`)

	// Flags win over the config file.
	out, err = execute(t, labelSource, "transform", "--config", config, "--import-source", "flag-ui")
	require.NoError(t, err)
	assert.Contains(t, out, `from "flag-ui";`)
}

func TestTransformMissingConfigFile(t *testing.T) {
	_, err := execute(t, labelSource, "transform", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}

func TestTransformWrite(t *testing.T) {
	dir := t.TempDir()
	changed := writeFile(t, dir, "label.js", labelSource)
	plain := writeFile(t, dir, "plain.js", "const x = 1;\n")

	out, err := execute(t, "", "transform", "--write", "--jobs", "1", changed, plain)
	require.NoError(t, err)
	assert.Equal(t, changed+"\n", out)

	data, err := os.ReadFile(changed)
	require.NoError(t, err)
	assert.Contains(t, string(data), "class Label extends _RaskStatelessComponent")

	data, err = os.ReadFile(plain)
	require.NoError(t, err)
	assert.Equal(t, "const x = 1;\n", string(data))
}

func TestTransformDiff(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "label.js", labelSource)
	plain := writeFile(t, dir, "plain.js", "const x = 1;\n")

	out, err := execute(t, "", "transform", "--diff", file, plain)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "--- "+file+"\n+++ "+file+"\n"), out)
	assert.Contains(t, out, "-const Label = () => createVNode(1);\n")
	assert.Contains(t, out, "+const Label = class Label extends _RaskStatelessComponent {\n")
	assert.NotContains(t, out, plain)

	// Files are left alone.
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, labelSource, string(data))
}

func TestTransformMultipleFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "b.js", "const b = 2;\n")
	second := writeFile(t, dir, "a.js", "const a = 1;\n")

	out, err := execute(t, "", "transform", first, second)
	require.NoError(t, err)
	assert.Equal(t, "// "+first+"\nconst b = 2;\n// "+second+"\nconst a = 1;\n", out)
}

func TestTransformErrors(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.js", "function (")

	_, err := execute(t, "", "transform", broken)
	assert.ErrorContains(t, err, "syntax error")

	_, err = execute(t, "", "transform", filepath.Join(dir, "missing.js"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, labelSource, "transform", "--write")
	assert.ErrorIs(t, err, ErrWriteStdin)

	_, err = execute(t, "", "transform", "--write", "--diff", broken)
	assert.ErrorContains(t, err, "none of the others can be")
}

func TestServeEmptyInput(t *testing.T) {
	out, err := execute(t, "", "serve", "--cwd", t.TempDir(), "--cache-size", "4")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestLineDiff(t *testing.T) {
	got := lineDiff("a.js", "x\ny\n", "x\nz\n")
	assert.True(t, strings.HasPrefix(got, "--- a.js\n+++ a.js\n"))
	assert.Contains(t, got, " x\n")
	assert.Contains(t, got, "-y\n")
	assert.Contains(t, got, "+z\n")
}
