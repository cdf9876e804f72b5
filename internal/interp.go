package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Outcome tells the caller which stage, if any, failed
type Outcome struct {
	SyntaxError  bool
	RuntimeError bool
}

// ExitCode maps the outcome to the conventional process exit status
func (o Outcome) ExitCode() int {
	if o.SyntaxError {
		return 65
	}
	if o.RuntimeError {
		return 70
	}
	return 0
}

// Runner is one interpreter session. Globals persist across Run calls, so
// a prompt can feed it line by line.
type Runner struct {
	logger      *logrus.Logger
	interpreter *Interpreter
	ids         *nodeIDs
	report      *reporter
}

// NewRunner creates a session printing program output to p and
// diagnostics and logs to errOut
func NewRunner(cfg *Config, p Printer, errOut io.Writer) *Runner {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	logger := logrus.New()
	logger.SetOutput(errOut)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    !cfg.Color,
	})
	logger.SetLevel(cfg.level())

	return &Runner{
		logger:      logger,
		interpreter: NewInterpreter(p, cfg, logger.WithField("stage", "interpret")),
		ids:         &nodeIDs{},
		report:      newReporter(errOut, cfg.Color),
	}
}

// RunSourceWithPrinter runs source code on a fresh session with default settings
func RunSourceWithPrinter(source string, p Printer, errOut io.Writer) Outcome {
	cfg := DefaultConfig()
	cfg.Color = false
	return NewRunner(cfg, p, errOut).Run(source)
}

// Run scans, parses, resolves and interprets source
func (r *Runner) Run(source string) Outcome {
	tokens, scanErrs := Tokenize(source)
	r.logger.WithFields(logrus.Fields{
		"stage":  "scan",
		"tokens": len(tokens),
		"errors": len(scanErrs),
	}).Debug("scan finished")

	stmts, parseErrs := newParser(tokens, r.ids).parse()
	r.logger.WithFields(logrus.Fields{
		"stage":      "parse",
		"statements": len(stmts),
		"errors":     len(parseErrs),
	}).Debug("parse finished")

	if len(scanErrs) > 0 || len(parseErrs) > 0 {
		r.report.scanErrors(scanErrs)
		r.report.parseErrors(parseErrs)
		return Outcome{SyntaxError: true}
	}

	if err := r.interpreter.Resolve(stmts); err != nil {
		r.logger.WithField("stage", "resolve").WithError(err).Debug("resolve failed")
		r.report.resolveError(err)
		return Outcome{SyntaxError: true}
	}

	if err := r.interpreter.Interpret(stmts); err != nil {
		r.report.runtimeError(err)
		return Outcome{RuntimeError: true}
	}

	return Outcome{}
}
