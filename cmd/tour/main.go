// cmd/tour/main.go
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/sghaida/tour/config"
	"github.com/sghaida/tour/examples/catalog"
	"github.com/sghaida/tour/lesson"
	"github.com/sghaida/tour/log"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const usage = `usage: tour [-config file] <command> [flags] [args]

commands:
  list  [-o text|yaml]             list lessons
  run   [-all] [lesson...]         run lessons (default: configured lessons)
  notes [-html] <lesson>           print a lesson's notes
  check [-update] <lesson> <file>  compare a lesson transcript with a golden file
`

// Hooks, overridden in tests.
var (
	loadConfig  = config.Load
	newRegistry = catalog.Default
)

// app carries what every subcommand needs.
type app struct {
	cfg    config.Config
	reg    *lesson.Registry
	log    *log.Logger
	stdout io.Writer
	stderr io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the tour command and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("tour", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() { _, _ = fmt.Fprint(stderr, usage) }

	configPath := flags.String("config", "", "path to a YAML config file (default $TOUR_CONFIG)")

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "tour:", err)
		return exitFailure
	}

	a := &app{
		cfg:    cfg,
		reg:    newRegistry(),
		log:    log.New(stderr, cfg.Debug, cfg.Color),
		stdout: stdout,
		stderr: stderr,
	}
	if *configPath != "" {
		a.log.Info("config loaded from %s", *configPath)
	}
	a.log.Debug("env=%s notes=%s lessons=%v", cfg.Env, cfg.NotesFormat, cfg.Lessons)

	if err := a.reg.Err(); err != nil {
		a.log.Error("%v", err)
		return exitFailure
	}

	rest := flags.Args()
	if len(rest) == 0 {
		flags.Usage()
		return exitUsage
	}

	switch cmd, cmdArgs := rest[0], rest[1:]; cmd {
	case "list":
		return a.list(cmdArgs)
	case "run":
		return a.runLessons(cmdArgs)
	case "notes":
		return a.notes(cmdArgs)
	case "check":
		return a.check(cmdArgs)
	case "help":
		_, _ = fmt.Fprint(stdout, usage)
		return exitOK
	default:
		a.log.Error("unknown command %q", cmd)
		flags.Usage()
		return exitUsage
	}
}

func (a *app) flagSet(name string) *flag.FlagSet {
	flags := flag.NewFlagSet("tour "+name, flag.ContinueOnError)
	flags.SetOutput(a.stderr)
	return flags
}

// lookup resolves name or reports it and returns the usage exit code.
func (a *app) lookup(name string) (lesson.Lesson, int) {
	l, ok := a.reg.Get(name)
	if !ok {
		a.log.Error("%v (try `tour list`)", lesson.UnknownLessonError{Name: name})
		return lesson.Lesson{}, exitUsage
	}
	return l, exitOK
}

// ---------------------------------------------------------------------
// list
// ---------------------------------------------------------------------

func (a *app) list(args []string) int {
	flags := a.flagSet("list")
	format := flags.String("o", "text", "output format: text or yaml")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	lessons := a.reg.Lessons()

	switch *format {
	case "text":
		for _, l := range lessons {
			if _, err := fmt.Fprintf(a.stdout, "%-18s %s\n", l.Name, l.Title); err != nil {
				a.log.Error("%v", err)
				return exitFailure
			}
		}
	case "yaml":
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(lessons); err != nil {
			a.log.Error("encode lessons: %v", err)
			return exitFailure
		}
		if err := enc.Close(); err != nil {
			a.log.Error("encode lessons: %v", err)
			return exitFailure
		}
	default:
		a.log.Error("unknown output format %q (want text or yaml)", *format)
		return exitUsage
	}
	return exitOK
}

// ---------------------------------------------------------------------
// run
// ---------------------------------------------------------------------

func (a *app) runLessons(args []string) int {
	flags := a.flagSet("run")
	all := flags.Bool("all", false, "run every lesson")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	names := flags.Args()
	switch {
	case *all:
		if len(names) > 0 {
			a.log.Warning("-all runs every lesson; ignoring %v", names)
		}
		names = a.reg.Names()
	case len(names) == 0:
		names = a.cfg.Lessons
	}
	if len(names) == 0 {
		a.log.Error("no lessons to run: name one, pass -all or set %s", config.EnvLessons)
		return exitUsage
	}

	for _, name := range names {
		if _, code := a.lookup(name); code != exitOK {
			return code
		}
	}

	for i, name := range names {
		if len(names) > 1 {
			sep := ""
			if i > 0 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(a.stdout, "%s== %s ==\n", sep, name); err != nil {
				a.log.Error("%v", err)
				return exitFailure
			}
		}
		a.log.Step("running %s", name)
		if err := a.reg.Run(name, a.stdout); err != nil {
			a.log.Error("%s: %v", name, err)
			return exitFailure
		}
	}
	return exitOK
}

// ---------------------------------------------------------------------
// notes
// ---------------------------------------------------------------------

func (a *app) notes(args []string) int {
	flags := a.flagSet("notes")
	html := flags.Bool("html", a.cfg.NotesFormat == config.NotesHTML, "render the notes as HTML")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() != 1 {
		a.log.Error("notes takes exactly one lesson name")
		return exitUsage
	}

	l, code := a.lookup(flags.Arg(0))
	if code != exitOK {
		return code
	}

	if !*html {
		if _, err := io.WriteString(a.stdout, l.Notes); err != nil {
			a.log.Error("%v", err)
			return exitFailure
		}
		return exitOK
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(l.Notes), a.stdout); err != nil {
		a.log.Error("render %s notes: %v", l.Name, err)
		return exitFailure
	}
	return exitOK
}

// ---------------------------------------------------------------------
// check
// ---------------------------------------------------------------------

func (a *app) check(args []string) int {
	flags := a.flagSet("check")
	update := flags.Bool("update", false, "rewrite the golden file with the current transcript")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() != 2 {
		a.log.Error("check takes a lesson name and a golden file")
		return exitUsage
	}

	name, golden := flags.Arg(0), filepath.Clean(flags.Arg(1))
	if _, code := a.lookup(name); code != exitOK {
		return code
	}

	var got bytes.Buffer
	if err := a.reg.Run(name, &got); err != nil {
		a.log.Error("%s: %v", name, err)
		return exitFailure
	}

	if *update {
		if err := writeFileAtomic(golden, got.Bytes(), 0o644); err != nil {
			a.log.Error("update %s: %v", golden, err)
			return exitFailure
		}
		a.log.Success("updated %s", golden)
		return exitOK
	}

	want, err := os.ReadFile(golden)
	if errors.Is(err, fs.ErrNotExist) {
		a.log.Error("%s does not exist; run with -update to create it", golden)
		return exitFailure
	}
	if err != nil {
		a.log.Error("%v", err)
		return exitFailure
	}

	if bytes.Equal(want, got.Bytes()) {
		a.log.Success("%s matches %s", name, golden)
		return exitOK
	}

	diff, err := transcriptDiff(string(want), got.String(), golden, name)
	if err != nil {
		a.log.Error("diff: %v", err)
		return exitFailure
	}
	_, _ = io.WriteString(a.stdout, diff)
	a.log.Error("%s differs from %s", name, golden)
	return exitFailure
}

// transcriptDiff returns a unified diff from want to got.
func transcriptDiff(want, got, wantName, gotName string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: wantName,
		ToFile:   gotName,
		Context:  3,
	})
}

// ---------------------------------------------------------------------
// atomic writes
// ---------------------------------------------------------------------

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes data to a temporary file next to targetPath and renames it
// over targetPath, so readers see either the old or the new golden file.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	tmpFile, err := createTempFile(filepath.Dir(targetPath), filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	return renameFile(tmpPath, targetPath)
}
