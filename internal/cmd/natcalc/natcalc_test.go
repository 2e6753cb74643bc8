package natcalc

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/capitalone/natural"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("natcalc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Base != 10 || cfg.Prompt != "> " || cfg.Locale != "en-US" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("NATCALC_BASE", "16")
	t.Setenv("NATCALC_PROMPT", "$ ")

	cfg, err := ParseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Base != 16 || cfg.Prompt != "$ " {
		t.Fatalf("env not applied: %+v", cfg)
	}

	cfg, err = ParseConfig(newFlagSet(), []string{"-base", "2", "-locale", "fr-FR"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Base != 2 || cfg.Locale != "fr-FR" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	if _, err := ParseConfig(newFlagSet(), []string{"-base", "37"}); !errors.Is(err, natural.ErrInvalidBase) {
		t.Fatalf("base 37: got %v, want ErrInvalidBase", err)
	}
	if _, err := ParseConfig(newFlagSet(), []string{"-nope"}); err == nil {
		t.Fatal("expected flag error")
	}

	t.Setenv("NATCALC_BASE", "ten")
	if _, err := ParseConfig(newFlagSet(), nil); err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func run(t *testing.T, cfg Config, input string) string {
	t.Helper()
	var out bytes.Buffer
	if err := Run(context.Background(), cfg, strings.NewReader(input), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func TestRunSession(t *testing.T) {
	cfg := Config{Base: 10, Prompt: "> ", Locale: "en-US"}
	out := run(t, cfg, strings.Join([]string{
		"99",
		"push 1",
		"+",
		"4",
		"mul",
		"base 16",
		"stack",
		"quit",
		"7",
	}, "\n"))

	for _, want := range []string{
		"Working in base 10.",
		"  100\n",
		"  400\n",
		"Stack (base 16, 1 numbers):\n  190\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "  7\n") {
		t.Fatalf("command after quit was run:\n%s", out)
	}
}

func TestRunReportsUserErrors(t *testing.T) {
	cfg := Config{Base: 2, Prompt: "", Locale: "en-US"}
	out := run(t, cfg, strings.Join([]string{
		"pop",
		"12",
		"1",
		"add",
		"base 40",
		"base two",
		"push",
		"frobnicate now",
		"",
		"help",
		"pop",
	}, "\n"))

	for _, want := range []string{
		"error: not enough numbers on the stack",
		"error: not valid base-2 digits",
		"error: not in 2 .. 36",
		"error: not an integer",
		"error: usage: push <digits>",
		`error: unknown command "frobnicate"`,
		"Commands:",
		"The stack is empty.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunInvalidBase(t *testing.T) {
	err := Run(context.Background(), Config{Base: 1, Locale: "en-US"}, strings.NewReader(""), io.Discard)
	if !errors.Is(err, natural.ErrInvalidBase) {
		t.Fatalf("got %v, want ErrInvalidBase", err)
	}
}

func TestRunCanceled(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, Config{Base: 10, Locale: "en-US"}, pr, io.Discard)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestRunInvalidLocale(t *testing.T) {
	err := Run(context.Background(), Config{Base: 10, Locale: "not a tag!"}, strings.NewReader("1\n"), io.Discard)
	if err == nil || !strings.Contains(err.Error(), "parse locale") {
		t.Fatalf("got %v, want locale error", err)
	}
}

func TestRunStopsReader(t *testing.T) {
	cfg := Config{Base: 10, Locale: "en-US"}
	for n, input := range []string{
		"quit\n1\n2\n3\n",
		"exit\n4\n5\n",
	} {
		before := runtime.NumGoroutine()
		for i := 0; i < 50; i++ {
			if err := Run(context.Background(), cfg, strings.NewReader(input), io.Discard); err != nil {
				t.Fatalf("Sample%d: run %d: %v", n, i, err)
			}
		}

		deadline := time.Now().Add(5 * time.Second)
		after := runtime.NumGoroutine()
		for after > before && time.Now().Before(deadline) {
			time.Sleep(10 * time.Millisecond)
			after = runtime.NumGoroutine()
		}
		if after > before {
			t.Fatalf("Sample%d: %d goroutines before, %d after 50 runs", n, before, after)
		}
	}
}
