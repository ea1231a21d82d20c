// lc — an interactive interpreter for the untyped lambda calculus.
//
// Usage: lc [file ...]
//
// Each positional argument is a source file to preload into the context
// before the prompt appears. The REPL then reads one line at a time:
// expressions reduce to normal form (traced by default), `let` lines bind
// definitions, and ':' lines are directives (:q quits).
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/zhiayang/lambda"
)

const (
	appName     = "lc"
	historyFile = ".lc_history"
	prompt      = "λ> "
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

func main() {
	os.Exit(run())
}

func run() int {
	lambda.EnableColor = isatty.IsTerminal(os.Stdout.Fd())

	ctx := lambda.NewContext()

	// trace and back-substitute by default; :t and :v toggle them off
	ctx.Flags |= lambda.FlagTrace | lambda.FlagVarReplacement

	for _, path := range os.Args[1:] {
		if err := lambda.LoadFile(ctx, os.Stdout, path); err != nil {
			fmt.Fprintln(os.Stderr, errStyle.Render("error:")+" "+err.Error())
			return 1
		}
	}

	fmt.Println(bannerStyle.Render(fmt.Sprintf("lambda %s", lambda.Version)))
	fmt.Println(dimStyle.Render("Ctrl+D or :q exits. Lines starting with ':' are directives."))

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, errStyle.Render("error:")+" "+err.Error())
			return 1
		}

		if strings.TrimSpace(line) == ":q" {
			return 0
		}

		lambda.EvalLine(ctx, os.Stdout, line)

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
	}
}
