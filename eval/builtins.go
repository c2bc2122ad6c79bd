/*
File    : gomix/eval/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/gomixlang/gomix/object"
)

// builtins is the fixed table looked up by evalIdentifier when a name
// isn't bound in the current Environment chain. len is required by
// spec.md §4.5; first/rest/push/puts are supplemented (SPEC_FULL.md §5)
// in the teacher's own idiom of a small, closed builtin set rather than
// a general standard library — no I/O beyond puts, no mutation, no
// user-registrable builtins.
var builtins = map[string]*object.Builtin{
	"len": {
		Fn: func(args ...object.Value) object.Value {
			if len(args) != 1 {
				return newError("wrong number of arguments. want=1, got=%d", len(args))
			}

			switch arg := args[0].(type) {
			case *object.Array:
				return &object.Integer{Value: int64(len(arg.Elements))}
			case *object.String:
				return &object.Integer{Value: int64(len(arg.Value))}
			default:
				return newError("argument to `len` not supported, got %s", args[0].Type())
			}
		},
	},
	"first": {
		Fn: func(args ...object.Value) object.Value {
			if len(args) != 1 {
				return newError("wrong number of arguments. want=1, got=%d", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return newError("argument to `first` not supported, got %s", args[0].Type())
			}
			if len(arr.Elements) > 0 {
				return arr.Elements[0]
			}
			return object.NULL
		},
	},
	"rest": {
		Fn: func(args ...object.Value) object.Value {
			if len(args) != 1 {
				return newError("wrong number of arguments. want=1, got=%d", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return newError("argument to `rest` not supported, got %s", args[0].Type())
			}
			length := len(arr.Elements)
			if length > 0 {
				newElements := make([]object.Value, length-1)
				copy(newElements, arr.Elements[1:length])
				return &object.Array{Elements: newElements}
			}
			return object.NULL
		},
	},
	"push": {
		Fn: func(args ...object.Value) object.Value {
			if len(args) != 2 {
				return newError("wrong number of arguments. want=2, got=%d", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return newError("argument to `push` not supported, got %s", args[0].Type())
			}
			length := len(arr.Elements)
			newElements := make([]object.Value, length+1)
			copy(newElements, arr.Elements)
			newElements[length] = args[1]
			return &object.Array{Elements: newElements}
		},
	},
	"puts": {
		Fn: func(args ...object.Value) object.Value {
			for _, arg := range args {
				fmt.Println(arg.Inspect())
			}
			return object.NULL
		},
	},
}
