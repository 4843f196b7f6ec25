package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ErikKalkoken/exprcalc/internal/config"
)

type output struct {
	code   int
	stdout string
	stderr string
}

// runWith runs the app with a config file in a temporary folder.
func runWith(t *testing.T, cfg string, stdin string, args ...string) output {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	args = append([]string{"-config", p}, args...)
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return output{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRun(t *testing.T) {
	t.Run("should evaluate infix expressions from arguments", func(t *testing.T) {
		got := runWith(t, "", "", "1 + 2 * 3", "(1 + 2) * 3")
		assert.Equal(t, exitOK, got.code)
		assert.Equal(t, "1 + 2 * 3 = 7\n(1 + 2) * 3 = 9\n", got.stdout)
		assert.Empty(t, got.stderr)
	})
	t.Run("should show postfix notation", func(t *testing.T) {
		got := runWith(t, "", "", "-show-postfix", "1 - 2 - 3")
		assert.Equal(t, exitOK, got.code)
		assert.Equal(t, "1 - 2 - 3 => 1 2 - 3 - = -4\n", got.stdout)
	})
	t.Run("should evaluate postfix expressions", func(t *testing.T) {
		got := runWith(t, "", "", "-postfix", "1.5 2.3 +")
		assert.Equal(t, exitOK, got.code)
		assert.Equal(t, "1.5 2.3 + = 3.8\n", got.stdout)
	})
	t.Run("should read expressions from standard input", func(t *testing.T) {
		got := runWith(t, "", "# numbers\n10 / 4\n\n-1 + 2\n")
		assert.Equal(t, exitOK, got.code)
		assert.Equal(t, "10 / 4 = 2.5\n-1 + 2 = 1\n", got.stdout)
	})
	t.Run("should read expressions from a file", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "input.txt")
		if err := os.WriteFile(p, []byte("2 * 21\n"), 0644); err != nil {
			t.Fatal(err)
		}
		got := runWith(t, "", "", "-f", p)
		assert.Equal(t, exitOK, got.code)
		assert.Equal(t, "2 * 21 = 42\n", got.stdout)
	})
	t.Run("should report missing file", func(t *testing.T) {
		got := runWith(t, "", "", "-f", filepath.Join(t.TempDir(), "missing.txt"))
		assert.Equal(t, exitFailed, got.code)
		assert.NotEmpty(t, got.stderr)
	})
	t.Run("should report failures and continue", func(t *testing.T) {
		got := runWith(t, "", "", "1 / 0", "2 + 2", "(1 + 2", "3 / 0")
		assert.Equal(t, exitFailed, got.code)
		assert.Equal(t, "2 + 2 = 4\n", got.stdout)
		assert.Contains(t, got.stderr, "1 / 0: division by zero")
		assert.Contains(t, got.stderr, "(1 + 2: unmatched parenthesis")
		assert.Contains(t, got.stderr, "Division By Zero: 2\nUnmatched Parenthesis: 1\n")
	})
	t.Run("should not show summary for a single expression", func(t *testing.T) {
		got := runWith(t, "", "", "1 +")
		assert.Equal(t, exitFailed, got.code)
		assert.Equal(t, "1 +: insufficient operands: \"+\"\n", got.stderr)
	})
	t.Run("should show tokens", func(t *testing.T) {
		got := runWith(t, "", "", "-tokens", "--", "-1 + 2", " ")
		assert.Equal(t, exitOK, got.code)
		assert.Equal(t, "-1 + 2: \"-1\" \"+\" \"2\"\n : <none>\n", got.stdout)
	})
	t.Run("should show integral results in another base", func(t *testing.T) {
		got := runWith(t, "", "", "-base", "16", "255", "1 / 2")
		assert.Equal(t, exitOK, got.code)
		assert.Equal(t, "255 = 255 (base 16: FF)\n1 / 2 = 0.5\n", got.stdout)
	})
	t.Run("should use settings from config file", func(t *testing.T) {
		got := runWith(t, "thousands_separator: true\nshow_postfix: true\n", "", "1000 * 1000")
		assert.Equal(t, exitOK, got.code)
		assert.Equal(t, "1000 * 1000 => 1000 1000 * = 1,000,000\n", got.stdout)
	})
	t.Run("flags should take precedence over config file", func(t *testing.T) {
		got := runWith(t, "precision: 1\n", "", "-precision", "3", "1 / 3")
		assert.Equal(t, exitOK, got.code)
		assert.Equal(t, "1 / 3 = 0.333\n", got.stdout)
	})
	t.Run("should show compact results", func(t *testing.T) {
		got := runWith(t, "", "", "-compact", "-precision", "2", "1234.56 * 1000")
		assert.Equal(t, exitOK, got.code)
		assert.Equal(t, "1234.56 * 1000 = 1.23 M\n", got.stdout)
	})
	t.Run("should keep decimals of small compact results", func(t *testing.T) {
		got := runWith(t, "", "", "-compact", "1 / 2", "2000 + 500")
		assert.Equal(t, exitOK, got.code)
		assert.Equal(t, "1 / 2 = 0.5\n2000 + 500 = 2.50 K\n", got.stdout)
	})
	t.Run("should reject invalid config file", func(t *testing.T) {
		got := runWith(t, "unknown: 1\n", "", "1 + 1")
		assert.Equal(t, exitFailed, got.code)
		assert.Empty(t, got.stdout)
	})
	t.Run("should report missing config file given as flag", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		p := filepath.Join(t.TempDir(), "missing.yaml")
		code := run(context.Background(), []string{"-config", p, "1 + 1"}, strings.NewReader(""), &stdout, &stderr)
		assert.Equal(t, exitFailed, code)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "missing.yaml")
	})
	t.Run("should reject invalid settings from flags", func(t *testing.T) {
		got := runWith(t, "", "", "-base", "1", "1 + 1")
		assert.Equal(t, exitUsage, got.code)
	})
	t.Run("should reject unknown flags", func(t *testing.T) {
		got := runWith(t, "", "", "-unknown")
		assert.Equal(t, exitUsage, got.code)
	})
	t.Run("should show help", func(t *testing.T) {
		got := runWith(t, "", "", "-h")
		assert.Equal(t, exitOK, got.code)
		assert.Contains(t, got.stderr, "-show-postfix")
	})
	t.Run("should show directories", func(t *testing.T) {
		got := runWith(t, "", "", "-show-dirs")
		assert.Equal(t, exitOK, got.code)
		assert.Contains(t, got.stdout, "config.yaml")
	})
}

func TestApplyTo(t *testing.T) {
	t.Run("should only apply flags given on the command line", func(t *testing.T) {
		o, err := parseFlags([]string{"-workers", "2", "-thousands"}, &bytes.Buffer{})
		if !assert.NoError(t, err) {
			return
		}
		c := config.Config{Precision: 3, Workers: 8}
		got := o.applyTo(c)
		want := config.Config{Precision: 3, Workers: 2, ThousandsSeparator: true}
		assert.Equal(t, want, got)
	})
	t.Run("can disable settings from config file", func(t *testing.T) {
		o, err := parseFlags([]string{"-show-postfix=false"}, &bytes.Buffer{})
		if !assert.NoError(t, err) {
			return
		}
		got := o.applyTo(config.Config{ShowPostfix: true, Workers: 1})
		assert.False(t, got.ShowPostfix)
	})
}

func TestLogLevelFlag(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tc := range cases {
		var l logLevelFlag
		if assert.NoError(t, l.Set(tc.in)) {
			assert.Equal(t, tc.want, l.value)
			assert.Equal(t, tc.want.String(), l.String())
		}
	}
	t.Run("should reject unknown level", func(t *testing.T) {
		var l logLevelFlag
		assert.Error(t, l.Set("verbose"))
	})
}
