package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type testOut struct {
	stdout, stderr bytes.Buffer
}

// run executes avl with args, reading stdin from in. The home directory is
// an empty temp dir so no user config gets picked up.
func run(t *testing.T, in string, args ...string) (*testOut, error) {
	t.Helper()
	app := newApp()
	out := &testOut{}
	app.rootCmd.SetIn(strings.NewReader(in))
	app.rootCmd.SetOut(&out.stdout)
	app.rootCmd.SetErr(&out.stderr)
	args = append([]string{"--home", t.TempDir()}, args...)
	return out, app.Execute(context.Background(), args)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestBuild_Stdin(t *testing.T) {
	out, err := run(t, "d b f a c e g", "build")
	require.NoError(t, err)
	require.Equal(t, "words:    7\ndistinct: 7\nheight:   2\ncheck:    ok\n", out.stdout.String())
}

func TestBuild_Print(t *testing.T) {
	out, err := run(t, "b, a. c!", "build", "--print")
	require.NoError(t, err)
	require.Contains(t, out.stdout.String(), "check:    ok\n\n        c(0)\nb(1)\n        a(0)\n")
}

func TestBuild_Files(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "the quick brown fox\n")
	b := writeFile(t, dir, "b.txt", "The lazy dog and the fox")
	out, err := run(t, "", "build", "--top", "2", a, b)
	require.NoError(t, err)
	s := out.stdout.String()
	require.Contains(t, s, "words:    10\n")
	require.Contains(t, s, "distinct: 8\n")
	require.Contains(t, s, "       2 fox\n       2 the\n")

	out, err = run(t, "", "build", "--lower", "--exclude", "THE,and", "--top", "1", a, b)
	require.NoError(t, err)
	s = out.stdout.String()
	require.Contains(t, s, "words:    6\n")
	require.Contains(t, s, "distinct: 5\n")
	require.Contains(t, s, "       2 fox\n")
}

func TestBuild_Unbalanced(t *testing.T) {
	out, err := run(t, "a b c d e", "build", "--unbalanced")
	require.NoError(t, err)
	require.Contains(t, out.stdout.String(), "height:   4\n")
	require.Contains(t, out.stdout.String(), "check:    ok\n")
}

func TestBuild_MissingFile(t *testing.T) {
	_, err := run(t, "", "build", filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
	require.ErrorContains(t, err, "opening input")
}

func TestBuild_StdinTwice(t *testing.T) {
	_, err := run(t, "a b", "build", "-", "-")
	require.ErrorIs(t, err, errStdinTwice)

	dir := t.TempDir()
	f := writeFile(t, dir, "a.txt", "c d")
	out, err := run(t, "a b", "build", "-", f)
	require.NoError(t, err)
	require.Contains(t, out.stdout.String(), "words:    4\n")
}

func TestLevels(t *testing.T) {
	out, err := run(t, "a b c d e f g", "levels")
	require.NoError(t, err)
	require.Equal(t, "  0 1\n  1 2\n  2 4\n", out.stdout.String())

	out, err = run(t, "a b c", "levels", "--unbalanced")
	require.NoError(t, err)
	require.Equal(t, "  0 1\n  1 1\n  2 1\n", out.stdout.String())

	out, err = run(t, "", "levels")
	require.NoError(t, err)
	require.Empty(t, out.stdout.String())
}

func TestCompare(t *testing.T) {
	out, err := run(t, "a b c d e f g", "compare")
	require.NoError(t, err)
	lines := strings.Split(out.stdout.String(), "\n")
	require.Len(t, lines, 6)
	require.Equal(t, []string{"size", "7", "7"}, strings.Fields(lines[1]))
	require.Equal(t, []string{"height", "2", "6"}, strings.Fields(lines[2]))
	require.Equal(t, []string{"mean", "depth", "1.43", "3.00"}, strings.Fields(lines[3]))
	require.True(t, strings.HasPrefix(lines[4], "insert time"))
}

func TestConfigFile(t *testing.T) {
	home := t.TempDir()
	writeFile(t, home, defaultConfigFile, "lower: true\nexclude:\n  - a\n  - b\nlog-level: debug\n")
	app := newApp()
	out := &testOut{}
	app.rootCmd.SetIn(strings.NewReader("A B c C d"))
	app.rootCmd.SetOut(&out.stdout)
	app.rootCmd.SetErr(&out.stderr)
	require.NoError(t, app.Execute(context.Background(), []string{"--home", home, "build"}))
	require.True(t, app.rootConfig.Lower)
	require.Equal(t, []string{"a", "b"}, app.rootConfig.Exclude)
	require.Contains(t, out.stdout.String(), "words:    3\ndistinct: 2\n")
	require.Contains(t, out.stderr.String(), "tree built")
}

func TestEnvironment(t *testing.T) {
	t.Setenv("AVL_LOWER", "true")
	t.Setenv("AVL_LOG_LEVEL", "disabled")
	out, err := run(t, "X x Y", "build")
	require.NoError(t, err)
	require.Contains(t, out.stdout.String(), "distinct: 2\n")
	require.Empty(t, out.stderr.String())
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "", "build", "--log-level", "loud")
	require.ErrorContains(t, err, `invalid log level "loud"`)
}
