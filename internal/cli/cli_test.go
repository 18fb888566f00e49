package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zforge/internal/output"
	"github.com/zarlcorp/zforge/internal/user"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty uses default", "", "users.json"},
		{"whitespace uses default", "   ", "users.json"},
		{"suffix appended", "people", "people.json"},
		{"suffix kept", "people.json", "people.json"},
		{"nested path", "out/people", "out/people.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.in); got != tt.want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"10", 10, false},
		{" 25 ", 25, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"2.5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCount(tt.in)
			if tt.wantErr {
				if !errors.Is(err, user.ErrInvalidArgument) {
					t.Errorf("ParseCount(%q): got %v, want ErrInvalidArgument", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCount(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseCount(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out", "people")

	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), []string{"-c", "3", "--output", target, "--verify"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	path := target + ".json"
	if !strings.Contains(stdout.String(), "Successfully generated 3 users and saved to "+path) {
		t.Errorf("unexpected stdout: %s", stdout.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var records []user.Record
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
}

func TestRunAgeAndDomainFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")

	var stdout, stderr bytes.Buffer
	args := []string{"--count", "20", "-o", path, "--min-age", "21", "--max-age", "25", "--domain", "corp.test"}
	if code := Run(context.Background(), args, &stdout, &stderr); code != ExitOK {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var records []user.Record
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, r := range records {
		if r.Age < 21 || r.Age > 25 {
			t.Errorf("age %d out of [21, 25]", r.Age)
		}
		if !strings.HasSuffix(r.Email, "@corp.test") {
			t.Errorf("email %q should use corp.test", r.Email)
		}
	}
}

func TestRunInvalidCount(t *testing.T) {
	for _, count := range []string{"0", "-1", "ten"} {
		t.Run(count, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "users.json")

			var stdout, stderr bytes.Buffer
			code := Run(context.Background(), []string{"-c", count, "-o", path}, &stdout, &stderr)
			if code != ExitError {
				t.Errorf("exit code = %d, want %d", code, ExitError)
			}
			if !strings.Contains(stderr.String(), "Error:") {
				t.Errorf("stderr should report the error, got %q", stderr.String())
			}
			if _, err := os.Stat(path); err == nil {
				t.Error("no file should be written for an invalid count")
			}
		})
	}
}

func TestRunInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")

	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), []string{"-o", path, "--min-age", "60", "--max-age", "30"}, &stdout, &stderr)
	if code != ExitError {
		t.Errorf("exit code = %d, want %d", code, ExitError)
	}
	if !strings.Contains(stderr.String(), "min age") {
		t.Errorf("stderr should explain the bad bounds, got %q", stderr.String())
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--bogus"}},
		{"stray argument", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := Run(context.Background(), tt.args, &stdout, &stderr); code != ExitUsage {
				t.Errorf("exit code = %d, want %d", code, ExitUsage)
			}
			if !strings.Contains(stderr.String(), "usage: zforge") {
				t.Errorf("stderr should show usage, got %q", stderr.String())
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := Run(context.Background(), []string{"-h"}, &stdout, &stderr); code != ExitOK {
		t.Errorf("exit code = %d, want %d", code, ExitOK)
	}
}

func TestRunWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), []string{"-o", filepath.Join(blocker, "users.json")}, &stdout, &stderr)
	if code != ExitError {
		t.Errorf("exit code = %d, want %d", code, ExitError)
	}
	msg := stderr.String()
	if !strings.Contains(msg, "io failure") {
		t.Errorf("stderr should report an io failure, got %q", msg)
	}
	if strings.Contains(msg, "escapes") || !strings.Contains(msg, "not a directory") {
		t.Errorf("stderr should report the blocking file, got %q", msg)
	}
}

func TestRunRelativeOutput(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), []string{"-c", "2", "-o", "out/users"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	if _, err := os.Stat(filepath.Join(dir, "out", "users.json")); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestRunAgeOverflowRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")

	var stdout, stderr bytes.Buffer
	args := []string{"-o", path, "--min-age", "0", "--max-age", "9223372036854775807"}
	if code := Run(context.Background(), args, &stdout, &stderr); code != ExitError {
		t.Errorf("exit code = %d, want %d", code, ExitError)
	}
	if !strings.Contains(stderr.String(), "max age") {
		t.Errorf("stderr should explain the bad bound, got %q", stderr.String())
	}
}

func TestRunCanceledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	if code := Run(ctx, []string{"-o", path}, &stdout, &stderr); code != ExitError {
		t.Errorf("exit code = %d, want %d", code, ExitError)
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("no file should be written after cancellation")
	}
}

func TestVerifyCountMismatch(t *testing.T) {
	w := output.New(zfilesystem.NewMemFS())

	g, err := user.New(user.DefaultConfig())
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	records, err := g.Generate(2)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := w.Save(records, "users.json"); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := verify(w, "users.json", 2); err != nil {
		t.Errorf("verify matching count: %v", err)
	}

	err = verify(w, "users.json", 3)
	if !errors.Is(err, ErrVerify) {
		t.Errorf("verify mismatch: got %v, want ErrVerify", err)
	}
	if errors.Is(err, output.ErrSerialization) {
		t.Error("a count mismatch is not a serialization failure")
	}
}

func TestForgeRejectsZeroCount(t *testing.T) {
	cfg := user.DefaultConfig()
	cfg.Count = 0
	cfg.Output = filepath.Join(t.TempDir(), "users.json")

	if _, err := Forge(cfg, Options{}); !errors.Is(err, user.ErrInvalidArgument) {
		t.Errorf("Forge: got %v, want ErrInvalidArgument", err)
	}
}
