/*
File    : gomix/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for GoMix. The REPL is
explicitly OUT OF SCOPE for THE CORE (spec.md §1): it is a thin external
collaborator that wires lexer+parser+eval+object together behind line
editing and colored output, and owns nothing of the language semantics
itself.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/gomixlang/gomix/eval"
	"github.com/gomixlang/gomix/object"
	"github.com/gomixlang/gomix/parser"
)

// Color definitions for REPL output.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session; none
// of it affects evaluation semantics.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl with the given banner, version, author,
// separator line, license string, and prompt.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to GoMix!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop against a single Environment that
// persists across lines, so a `let` on one line is visible to the next
// (spec.md §4.4's environment semantics, exercised interactively).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := object.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" || line == "exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)

		r.executeWithRecovery(writer, line, env)
	}
}

// executeWithRecovery parses and evaluates one line against env, printing
// parser errors or the evaluation result without tearing down the
// session: a bad line never ends the REPL, only the current prompt turn.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, env *object.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	p := parser.New(line)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) != 0 {
		redColor.Fprintf(writer, "parser errors:\n")
		for _, msg := range errs {
			redColor.Fprintf(writer, "\t%s\n", msg)
		}
		return
	}

	result := eval.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == object.ErrorObj {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
		return
	}
	if result == object.NULL {
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
