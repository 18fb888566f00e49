// Package cli implements zforge's command-line surface.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforge/internal/output"
	"github.com/zarlcorp/zforge/internal/user"
	"golang.org/x/term"
)

// Accent is zforge's highlight color.
var Accent = lipgloss.Color("#e8a33d")

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Accent).
	Padding(0, 1)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Result describes a completed generation.
type Result struct {
	Count int
	Path  string
}

// Options controls a single Forge call beyond the generation config.
type Options struct {
	// Verify reads the written file back and checks the record count.
	Verify bool
	// GenOpts are passed through to user.New.
	GenOpts []user.Option
}

// IsInteractive reports whether stdin is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// OutputPath applies the default filename and the .json suffix.
func OutputPath(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return user.DefaultOutput
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return name
}

// ParseCount parses a record count, rejecting non-integers and values below one.
func ParseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: count %q is not an integer", user.ErrInvalidArgument, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: count must be a positive integer, got %d", user.ErrInvalidArgument, n)
	}
	return n, nil
}

// Forge generates cfg.Count records and writes them to cfg.Output.
func Forge(cfg user.Config, opts Options) (Result, error) {
	if cfg.Count <= 0 {
		return Result{}, fmt.Errorf("%w: count must be a positive integer, got %d", user.ErrInvalidArgument, cfg.Count)
	}

	g, err := user.New(cfg, opts.GenOpts...)
	if err != nil {
		return Result{}, err
	}

	records, err := g.Generate(cfg.Count)
	if err != nil {
		return Result{}, err
	}

	path := OutputPath(cfg.Output)
	w, name, err := output.Open(path)
	if err != nil {
		return Result{}, err
	}

	if err := w.Save(records, name); err != nil {
		return Result{}, err
	}

	if opts.Verify {
		if err := verify(w, name, len(records)); err != nil {
			return Result{}, err
		}
	}

	return Result{Count: len(records), Path: path}, nil
}

// ErrVerify is returned when a written file reads back with the wrong
// number of records.
var ErrVerify = errors.New("verify failed")

type loader interface {
	Load(name string) ([]user.Record, error)
}

func verify(l loader, name string, want int) error {
	got, err := l.Load(name)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if len(got) != want {
		return fmt.Errorf("%w: wrote %d records, read back %d", ErrVerify, want, len(got))
	}
	return nil
}

// SuccessMessage is the confirmation line shown after a successful run.
func SuccessMessage(r Result) string {
	return fmt.Sprintf("Successfully generated %d users and saved to %s", r.Count, r.Path)
}

// Run parses args, generates and writes the records, and reports the
// outcome. It returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitOK
	}
	if errors.Is(err, errUsage) {
		return ExitUsage
	}
	if err != nil {
		printError(stderr, err)
		return ExitError
	}

	if err := ctx.Err(); err != nil {
		printError(stderr, err)
		return ExitError
	}

	res, err := Forge(cfg, opts)
	if err != nil {
		printError(stderr, err)
		return ExitError
	}

	fmt.Fprintln(stdout, panelStyle.Render(
		zstyle.Title.Render("zforge")+"\n"+zstyle.StatusOK.Render(SuccessMessage(res)),
	))
	return ExitOK
}

var errUsage = errors.New("usage")

func parseArgs(args []string, stderr io.Writer) (user.Config, Options, error) {
	cfg := user.DefaultConfig()
	var opts Options

	fs := flag.NewFlagSet("zforge", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(fs) }

	count := strconv.Itoa(cfg.Count)
	fs.StringVar(&count, "c", count, "number of users to generate")
	fs.StringVar(&count, "count", count, "number of users to generate")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "output JSON file path")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output JSON file path")
	fs.IntVar(&cfg.MinAge, "min-age", cfg.MinAge, "minimum age, inclusive")
	fs.IntVar(&cfg.MaxAge, "max-age", cfg.MaxAge, "maximum age, inclusive")
	fs.IntVar(&cfg.PasswordLength, "password-length", cfg.PasswordLength, "password length")
	fs.StringVar(&cfg.EmailDomain, "domain", cfg.EmailDomain, "email domain")
	fs.BoolVar(&opts.Verify, "verify", false, "read the file back after writing")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, opts, err
		}
		return cfg, opts, errUsage
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "zforge: unexpected argument %q\n", fs.Arg(0))
		usage(fs)
		return cfg, opts, errUsage
	}

	n, err := ParseCount(count)
	if err != nil {
		return cfg, opts, err
	}
	cfg.Count = n

	return cfg, opts, nil
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "usage: zforge [flags]")
	fmt.Fprintln(w, "       zforge version")
	fmt.Fprintln(w)
	fs.PrintDefaults()
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, zstyle.StatusErr.Render("Error: "+err.Error()))
}
