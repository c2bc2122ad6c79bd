/*
File    : gomix/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the GoMix interpreter. It provides
two modes of operation:
 1. REPL mode (default): interactive read-eval-print loop
 2. File mode: execute a GoMix source file given on the command line

Neither mode is part of THE CORE (spec.md §1 excludes the REPL loop
internals and source-file loading/CLI); this package only wires
lexer/parser/eval/object together behind a command line.
*/
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/gomixlang/gomix/file"
	"github.com/gomixlang/gomix/repl"
)

var MODE = "repl"
var VERSION = "v1.0.0"
var AUTHOR = "akashmaji(@iisc.ac.in)"
var LICENCE = "MIT"
var PROMPT = "GoMix >>> "

var BANNER = `
    ▄▄▄▄                       ▄▄▄  ▄▄▄     ██
  ██▀▀▀▀█                      ███  ███     ▀▀
 ██         ▄████▄             ████████   ████     ▀██  ██▀
 ██  ▄▄▄▄  ██▀  ▀██   	       ██ ██ ██     ██       ████
 ██  ▀▀██  ██    ██   █████    ██ ▀▀ ██     ██       ▄██▄
  ██▄▄▄██  ▀██▄▄██▀            ██    ██  ▄▄▄██▄▄▄   ▄█▀▀█▄
    ▀▀▀▀     ▀▀▀▀              ▀▀    ▀▀  ▀▀▀▀▀▀▀▀  ▀▀▀  ▀▀▀
`

var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// main dispatches on the command-line arguments:
//
//	gomix              - start the REPL
//	gomix <path>.gm    - run a source file
//	gomix --help       - show usage
//	gomix --version    - show version info
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		if _, err := file.Load(arg); err != nil {
			redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
			os.Exit(1)
		}
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("GoMix - a small expression-oriented scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	cyanColor.Println("  gomix                    Start interactive REPL mode")
	cyanColor.Println("  gomix <path-to-file>     Execute a GoMix file (.gm)")
	cyanColor.Println("  gomix --help             Display this help message")
	cyanColor.Println("  gomix --version          Display version information")
}

func showVersion() {
	cyanColor.Println("GoMix")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}
