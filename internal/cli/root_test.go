package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/docxwrap/docxwrap/pkg/errors"
)

func newTestCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestConversionMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"io", errors.New(errors.ErrCodeIO, "copy failed"), msgIO},
		{"skeleton", errors.New(errors.ErrCodeSkeleton, "placeholder missing"), msgIO},
		{"image", errors.New(errors.ErrCodeImage, "parse svg"), msgImage},
		{"extractor", errors.New(errors.ErrCodeExtractorNotFound, "not on PATH"), msgExtractor},
		{"source", errors.New(errors.ErrCodeSourceInvalid, "no pages"), msgSource},
		{"other", errors.New(errors.ErrCodeInvalidInput, "source path is required"), "source path is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := conversionMessage(tt.err); got != tt.want {
				t.Errorf("conversionMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootCommandArgs(t *testing.T) {
	c := newTestCLI()
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	root.SetArgs([]string{"only-one.pdf"})
	if err := root.Execute(); err == nil {
		t.Error("one positional argument should be rejected")
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	c := newTestCLI()
	root := c.RootCommand()

	for _, name := range []string{"cache", "completion"} {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestCachePathCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	c := newTestCLI()
	c.Config.CacheDir = ""
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"cache", "path"})

	if err := root.Execute(); err != nil {
		t.Fatalf("cache path error: %v", err)
	}
}
