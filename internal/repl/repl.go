// Package repl implements the calculator's command loop. Lines starting
// with '/' are meta-commands; everything else goes to the engine.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/itsmostafa/gocalc/internal/calc"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// ErrExit is returned by OneShot after the /exit command.
var ErrExit = errors.New("exit requested")

// Config holds configuration for a REPL.
type Config struct {
	// Output receives results, diagnostics and command output.
	Output io.Writer

	// Banner is printed once when an interactive session starts.
	Banner string

	// Prompt is shown before each line in interactive sessions.
	Prompt string

	// HistoryPath is where interactive line history is kept. Empty disables
	// history.
	HistoryPath string

	// NoColor disables styling even on a terminal.
	NoColor bool

	// Logger receives debug traces. Defaults to a discarding logger.
	Logger logrus.FieldLogger
}

// REPL reads statements and prints what the engine makes of them.
type REPL struct {
	engine      *calc.Engine
	out         io.Writer
	styles      styles
	banner      string
	prompt      string
	historyPath string
	log         logrus.FieldLogger
	failures    int
}

// New creates a REPL driving engine.
func New(engine *calc.Engine, cfg Config) *REPL {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &REPL{
		engine:      engine,
		out:         out,
		styles:      newStyles(out, cfg.NoColor),
		banner:      cfg.Banner,
		prompt:      cfg.Prompt,
		historyPath: cfg.HistoryPath,
		log:         log,
	}
}

// Failures returns how many statements have been rejected so far.
func (r *REPL) Failures() int {
	return r.failures
}

// OneShot handles a single line and prints its outcome. Rejected statements
// print a diagnostic and do not return an error; only ErrExit is returned.
func (r *REPL) OneShot(line string) error {
	if trimmed := strings.TrimSpace(line); strings.HasPrefix(trimmed, "/") {
		return r.command(trimmed)
	}

	res, err := r.engine.Exec(line)
	if err != nil {
		r.failures++
		r.printDiagnostic(err.Error())
		return nil
	}
	if res.HasValue {
		r.printResult(res)
	}
	return nil
}

// Run reads lines from in until end of input or /exit. No prompt is shown.
func (r *REPL) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := r.OneShot(scanner.Text()); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// Loop runs an interactive session until /exit, Ctrl+C or Ctrl+D.
func (r *REPL) Loop() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(r.complete)
	r.loadHistory(line)
	defer r.saveHistory(line)

	if r.banner != "" {
		fmt.Fprintln(r.out, r.banner)
	}

	for {
		input, err := line.Prompt(r.prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out, "Bye!")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		if err := r.OneShot(input); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			return err
		}
	}
}

func (r *REPL) loadHistory(prompt *liner.State) {
	if r.historyPath == "" {
		return
	}
	f, err := os.Open(r.historyPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			r.log.WithError(err).Warn("Could not open history file")
		}
		return
	}
	defer f.Close()
	if _, err := prompt.ReadHistory(f); err != nil {
		r.log.WithError(err).Warn("Could not read history file")
	}
}

func (r *REPL) saveHistory(prompt *liner.State) {
	if r.historyPath == "" {
		return
	}
	f, err := os.Create(r.historyPath)
	if err != nil {
		r.log.WithError(err).Warn("Could not create history file")
		return
	}
	defer f.Close()
	if _, err := prompt.WriteHistory(f); err != nil {
		r.log.WithError(err).Warn("Could not write history file")
	}
}
