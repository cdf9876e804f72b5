package internal

import (
	"fmt"
	"io"

	"github.com/labstack/gommon/color"
)

// reporter prints diagnostics for humans
type reporter struct {
	w     io.Writer
	color *color.Color
}

func newReporter(w io.Writer, colored bool) *reporter {
	c := color.New()
	if !colored {
		c.Disable()
	}
	return &reporter{w: w, color: c}
}

func (r *reporter) syntax(line int, tk *Token, err error) {
	fmt.Fprintf(r.w, "[line %d] %s%s: %s\n", line, r.color.Red("Error"), where(tk), err)
}

func (r *reporter) scanErrors(errs []*ScanError) {
	for _, e := range errs {
		r.syntax(e.Line, nil, e.Err)
	}
}

func (r *reporter) parseErrors(errs []*ParseError) {
	for _, e := range errs {
		r.syntax(e.Token.line, e.Token, e.Err)
	}
}

func (r *reporter) resolveError(err error) {
	if resolveErr, ok := err.(*ResolveError); ok {
		r.syntax(resolveErr.Token.line, resolveErr.Token, resolveErr.Err)
		return
	}
	fmt.Fprintln(r.w, err)
}

func (r *reporter) runtimeError(err error) {
	if runErr, ok := err.(*RuntimeError); ok {
		fmt.Fprintf(r.w, "[line %d] %s%s: %s\n", runErr.Token.line, r.color.Magenta("Runtime error"), where(runErr.Token), runErr.Err)
		return
	}
	fmt.Fprintln(r.w, err)
}
