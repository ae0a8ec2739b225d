package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `5 3
1 1 E
RFRFRFRF

3 2 N
FRRFLLFFRRFLL

0 3 W
LLFFFLFLFL
`

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestRun_Stdin(t *testing.T) {
	out, _, err := execute(t, sample)
	require.NoError(t, err)
	require.Equal(t, "1 1 E\n3 3 N LOST\n2 3 S\n", out)
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", sample)
	b := writeFile(t, dir, "b.txt", "1 1\n1 1 N\nF\n")

	out, _, err := execute(t, "", "--workers", "2", a, b)
	require.NoError(t, err)
	want := "== " + a + " ==\n1 1 E\n3 3 N LOST\n2 3 S\n" +
		"== " + b + " ==\n1 1 N LOST\n"
	require.Equal(t, want, out)
}

func TestRun_Render(t *testing.T) {
	_, errOut, err := execute(t, sample, "--render")
	require.NoError(t, err)
	require.Contains(t, errOut, "*")
	require.Contains(t, errOut, "S")
}

func TestRun_ParseError(t *testing.T) {
	out, errOut, err := execute(t, "5 3 1\n1 1 E\nF\n")
	require.Error(t, err)
	require.Empty(t, out)
	require.Contains(t, err.Error(), "line 1")
	require.Contains(t, errOut, "Error:")
}

func TestRun_MissingFile(t *testing.T) {
	_, _, err := execute(t, "", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestRun_Config(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "cfg.yaml", "log:\n  level: loud\n")
	_, _, err := execute(t, sample, "--config", cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log level")

	cfg = writeFile(t, dir, "ok.yaml", "render: true\nworkers: 1\n")
	out, errOut, err := execute(t, sample, "--config", cfg)
	require.NoError(t, err)
	require.Equal(t, "1 1 E\n3 3 N LOST\n2 3 S\n", out)
	require.Contains(t, errOut, "*")
}

func TestRun_BadWorkersFlag(t *testing.T) {
	_, _, err := execute(t, sample, "--workers", "0")
	require.Error(t, err)
}
