/*
File    : gomix/file/file.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package file is the minimal "source-file loading" collaborator named as
out of THE CORE's scope in spec.md §1 — kept only so main/main.go has some
way to run a .gm script file, not as a testing target for THE CORE
itself.
*/
package file

import (
	"fmt"
	"os"

	"github.com/gomixlang/gomix/eval"
	"github.com/gomixlang/gomix/object"
	"github.com/gomixlang/gomix/parser"
)

// Load reads path, parses it, and evaluates it against a fresh
// Environment. Parser errors are reported to stderr and Load returns
// without evaluating; an *object.Error result from evaluation is printed
// to stderr as well. Both cases are reported via the returned error so
// the caller can choose a process exit code.
func Load(path string) (object.Value, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	p := parser.New(string(src))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) != 0 {
		for _, msg := range errs {
			fmt.Fprintln(os.Stderr, msg)
		}
		return nil, fmt.Errorf("%s: %d parser error(s)", path, len(errs))
	}

	env := object.NewEnvironment()
	result := eval.Eval(program, env)

	if errObj, ok := result.(*object.Error); ok {
		fmt.Fprintln(os.Stderr, errObj.Message)
		return result, fmt.Errorf("%s: evaluation error", path)
	}

	return result, nil
}
