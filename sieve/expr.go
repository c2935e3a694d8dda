package sieve

import (
	"iter"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Eval computes an integer expression, such as "FIRST + CAPACITY - 1".
// Integer defines are visible to the expression by name; other defines
// are ignored.
func Eval(expr string, defines iter.Seq2[string, string]) (value int, err error) {
	thread := starlark.Thread{Name: "bound"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range defines {
		n, perr := strconv.Atoi(str)
		if perr != nil {
			continue
		}
		pred[key] = starlark.MakeInt(n)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "bound", prog, pred)
	if err != nil {
		err = &errJoin{Kind: ErrBoundExpression(expr), Err: err}
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrBoundExpression(expr)
		return
	}

	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrBoundExpression(expr)
		return
	}

	value = int(st_int64)
	return
}
